package loop

import (
	"errors"
	"fmt"
	"time"

	"lifeview/internal/core"
)

var (
	// ErrAlreadyRunning is returned by Start while the animation is running.
	ErrAlreadyRunning = errors.New("loop: animation already running")
	// ErrNotRunning is returned by Stop while the animation is stopped.
	ErrNotRunning = errors.New("loop: animation not running")
)

// State is the animation state of a Controller.
type State int

const (
	// Stopped is the initial state: no frame is scheduled.
	Stopped State = iota
	// Running means exactly one frame callback is pending.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stepper is the part of the engine the animation loop drives.
type Stepper interface {
	Step()
	Cells() []byte
}

// Renderer draws one packed snapshot.
type Renderer interface {
	Render(view []byte) error
}

// SpeedSource supplies the number of simulation steps per frame. It is read
// at the top of every frame.
type SpeedSource interface {
	Speed() int
}

// SpeedFunc adapts a function to SpeedSource.
type SpeedFunc func() int

// Speed calls f.
func (f SpeedFunc) Speed() int { return f() }

// Frame describes one completed frame.
type Frame struct {
	Index      uint64
	Generation uint64
	Steps      int
	Live       int
	StepTime   time.Duration
	RenderTime time.Duration
}

// Controller runs the cooperative animation loop: while running, every frame
// performs Speed() engine steps, renders once and yields to the Scheduler.
type Controller struct {
	engine   Stepper
	size     core.Size
	renderer Renderer
	speed    SpeedSource
	sched    Scheduler

	state  State
	handle Handle
	err    error

	frames     uint64
	generation uint64
	onFrame    func(Frame)
	now        func() time.Time
	tick       func()
}

// NewController wires a controller in the Stopped state. It does not render;
// hosts call RenderNow once before the first frame so the initial generation
// is what appears first.
func NewController(engine Stepper, size core.Size, renderer Renderer, speed SpeedSource, sched Scheduler) *Controller {
	c := &Controller{
		engine:   engine,
		size:     size,
		renderer: renderer,
		speed:    speed,
		sched:    sched,
		now:      time.Now,
	}
	c.tick = c.runFrame
	return c
}

// OnFrame registers a callback invoked after every successful frame.
func (c *Controller) OnFrame(fn func(Frame)) { c.onFrame = fn }

// State returns the current animation state.
func (c *Controller) State() State { return c.state }

// Running reports whether a frame is scheduled.
func (c *Controller) Running() bool { return c.state == Running }

// Err returns the error that stopped the loop, if any.
func (c *Controller) Err() error { return c.err }

// Generation counts the engine steps performed through this controller.
func (c *Controller) Generation() uint64 { return c.generation }

// Frames counts completed frames.
func (c *Controller) Frames() uint64 { return c.frames }

// ResetGeneration zeroes the generation counter, for instance after the
// engine was reseeded.
func (c *Controller) ResetGeneration() { c.generation = 0 }

// Start performs one frame immediately and schedules the next one.
func (c *Controller) Start() error {
	if c.state == Running {
		return ErrAlreadyRunning
	}
	c.state = Running
	if err := c.frame(); err != nil {
		c.state = Stopped
		return err
	}
	if c.state == Running {
		c.handle = c.sched.RequestFrame(c.tick)
	}
	return nil
}

// Stop cancels the pending frame. A frame already in progress completes.
func (c *Controller) Stop() error {
	if c.state != Running {
		return ErrNotRunning
	}
	if c.handle != 0 {
		c.sched.Cancel(c.handle)
	}
	c.handle = 0
	c.state = Stopped
	return nil
}

// Toggle starts a stopped controller and stops a running one.
func (c *Controller) Toggle() error {
	if c.state == Running {
		return c.Stop()
	}
	return c.Start()
}

// Advance runs exactly one frame without scheduling another. It is only
// valid while stopped.
func (c *Controller) Advance() error {
	if c.state == Running {
		return ErrAlreadyRunning
	}
	return c.frame()
}

// RenderNow draws the engine's current state without stepping.
func (c *Controller) RenderNow() error {
	return c.renderer.Render(c.engine.Cells())
}

func (c *Controller) runFrame() {
	c.handle = 0
	if c.state != Running {
		return
	}
	if err := c.frame(); err != nil {
		c.state = Stopped
		return
	}
	if c.state == Running {
		c.handle = c.sched.RequestFrame(c.tick)
	}
}

// frame steps the engine Speed() times and renders one fresh view. A render
// failure is recorded and returned; the caller must not reschedule.
func (c *Controller) frame() error {
	steps := c.speed.Speed()
	if steps < 0 {
		steps = 0
	}
	start := c.now()
	for i := 0; i < steps; i++ {
		c.engine.Step()
	}
	c.generation += uint64(steps)
	stepped := c.now()

	view := c.engine.Cells()
	if err := c.renderer.Render(view); err != nil {
		c.err = fmt.Errorf("frame %d: %w", c.frames+1, err)
		return c.err
	}
	done := c.now()
	c.frames++
	c.err = nil

	if c.onFrame != nil {
		c.onFrame(Frame{
			Index:      c.frames,
			Generation: c.generation,
			Steps:      steps,
			Live:       core.CountSet(view, c.size.Cells()),
			StepTime:   stepped.Sub(start),
			RenderTime: done.Sub(stepped),
		})
	}
	return nil
}
