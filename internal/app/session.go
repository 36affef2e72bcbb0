package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"time"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/input"
	"lifeview/internal/loop"
	"lifeview/internal/render"
	"lifeview/internal/sims/life"
	"lifeview/internal/telemetry"
)

// SpeedKey is the HUD parameter key of the steps-per-frame control.
const SpeedKey = "speed"

// Session wires one engine to the renderer, the animation controller and the
// interaction router. Everything runs on the caller's goroutine; the host
// calls Refresh once per display refresh.
type Session struct {
	engine   core.Engine
	renderer *render.Renderer
	sched    *loop.QueueScheduler
	ctrl     *loop.Controller
	router   *input.Router
	meter    *core.FrameMeter
	recorder *telemetry.Recorder
	logger   *slog.Logger

	speed    int
	maxSpeed int
	logEvery int
	seeds    func() int64

	last loop.Frame
	err  error
}

// NewSession builds a session for engine using cfg and draws the engine's
// initial state, so the first visible frame is generation zero.
func NewSession(engine core.Engine, cfg *config.Config) (*Session, error) {
	palette, err := paletteFromConfig(cfg.View.Colors)
	if err != nil {
		return nil, err
	}
	s := &Session{
		engine:   engine,
		renderer: render.NewRenderer(engine.Size(), cfg.View.CellSize, palette),
		sched:    loop.NewQueueScheduler(),
		meter:    core.NewFrameMeter(60),
		logger:   slog.Default(),
		speed:    cfg.Loop.Speed,
		maxSpeed: cfg.Loop.MaxSpeed,
		logEvery: cfg.Telemetry.LogEvery,
		seeds:    func() int64 { return time.Now().UnixNano() },
	}
	s.ctrl = loop.NewController(engine, engine.Size(), s.renderer, s, s.sched)
	s.ctrl.OnFrame(s.frameDone)
	s.router = input.NewRouter(engine, s.renderer, s.renderer.Bounds(), s.renderer.CellSize())

	if err := s.ctrl.RenderNow(); err != nil {
		return nil, fmt.Errorf("initial render: %w", err)
	}
	return s, nil
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetRecorder enables per-frame CSV output.
func (s *Session) SetRecorder(r *telemetry.Recorder) { s.recorder = r }

// Speed returns the current steps per frame. The controller reads it at the
// start of every frame.
func (s *Session) Speed() int { return s.speed }

// SetSpeed sets steps per frame, clamped to [0, max].
func (s *Session) SetSpeed(v int) {
	v = s.speedControl().Clamp(v)
	if v == s.speed {
		return
	}
	s.speed = v
	s.logger.Debug("speed changed", "speed", v)
}

// AdjustSpeed changes the speed by delta.
func (s *Session) AdjustSpeed(delta int) { s.SetSpeed(s.speed + delta) }

// Playing reports whether the animation loop is running.
func (s *Session) Playing() bool { return s.ctrl.Running() }

// Play starts the animation if it is stopped.
func (s *Session) Play() error {
	if s.ctrl.Running() {
		return nil
	}
	return s.TogglePlay()
}

// TogglePlay starts or stops the animation loop.
func (s *Session) TogglePlay() error {
	if err := s.ctrl.Toggle(); err != nil {
		return s.fail(err)
	}
	s.logger.Info("animation toggled", "state", s.ctrl.State(), "generation", s.ctrl.Generation())
	return nil
}

// Advance runs one frame while paused. It does nothing while playing.
func (s *Session) Advance() error {
	if s.ctrl.Running() {
		return nil
	}
	if err := s.ctrl.Advance(); err != nil {
		return s.fail(err)
	}
	return nil
}

// Clear kills every cell.
func (s *Session) Clear() error {
	if err := s.router.Clear(); err != nil {
		return s.fail(err)
	}
	s.ctrl.ResetGeneration()
	s.logger.Info("board cleared")
	return nil
}

// Reinitialize reseeds the engine with a fresh seed.
func (s *Session) Reinitialize() error {
	seed := s.seeds()
	if err := s.router.Reinitialize(seed); err != nil {
		return s.fail(err)
	}
	s.ctrl.ResetGeneration()
	s.logger.Info("board reinitialized", "seed", seed)
	return nil
}

// PointerDown handles a press at p on a raster displayed within bounds.
func (s *Session) PointerDown(p input.Point, mods input.Modifiers, bounds input.Rect) error {
	edit, err := s.router.PointerDown(input.PointerEvent{Pos: p, Mods: mods}, bounds)
	if err != nil {
		return s.fail(err)
	}
	s.logger.Debug("cell edit", "intent", edit.Intent, "row", edit.Cell.Row, "col", edit.Cell.Col)
	return nil
}

// Locate maps a pointer position to the cell under it.
func (s *Session) Locate(p input.Point, bounds input.Rect) input.Cell {
	return s.router.Locate(p, bounds)
}

// Refresh stands for one display refresh: it runs the pending animation
// frame, if any, and reports the first failure seen by the session.
func (s *Session) Refresh() error {
	s.sched.RunPending()
	return s.Err()
}

// MarkDisplayed records that a frame reached the screen.
func (s *Session) MarkDisplayed() { s.meter.Mark() }

// Err returns the failure that stopped the session, if any.
func (s *Session) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.ctrl.Err()
}

// Image returns the raster; it changes whenever Renders changes.
func (s *Session) Image() *image.RGBA { return s.renderer.Image() }

// Renders counts completed raster redraws.
func (s *Session) Renders() uint64 { return s.renderer.Renders() }

// RasterSize returns the raster size in pixels.
func (s *Session) RasterSize() image.Point { return s.renderer.Bounds() }

// CellSize returns the cell side length in raster pixels.
func (s *Session) CellSize() int { return s.renderer.CellSize() }

// Engine returns the driven engine.
func (s *Session) Engine() core.Engine { return s.engine }

// Generation returns the number of steps taken since the last clear or
// reinitialization.
func (s *Session) Generation() uint64 { return s.ctrl.Generation() }

// Live counts live cells in the engine's current state.
func (s *Session) Live() int {
	return core.CountSet(s.engine.Cells(), s.engine.Size().Cells())
}

// LastFrame returns statistics for the most recent animation frame.
func (s *Session) LastFrame() loop.Frame { return s.last }

// Close releases telemetry output.
func (s *Session) Close() error { return s.recorder.Close() }

// ParameterControls exposes the speed control to the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{s.speedControl()}
}

// SetIntParameter implements core.IntParameterSetter.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != SpeedKey {
		return false
	}
	s.SetSpeed(value)
	return true
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	state := "paused"
	if s.Playing() {
		state = "playing"
	}
	size := s.engine.Size()
	board := []core.Parameter{
		{Key: "engine", Label: "Engine", Type: core.ParamTypeText, Value: s.engine.Name()},
		{Key: "size", Label: "Size", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d", size.W, size.H)},
		{Key: "generation", Label: "Generation", Type: core.ParamTypeText, Value: strconv.FormatUint(s.Generation(), 10)},
		{Key: "live", Label: "Live", Type: core.ParamTypeText, Value: strconv.Itoa(s.Live())},
	}
	if r, ok := s.engine.(interface{ Rule() life.Rule }); ok {
		board = append(board, core.Parameter{Key: "rule", Label: "Rule", Type: core.ParamTypeText, Value: r.Rule().String()})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Loop",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
				{Key: SpeedKey, Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(s.speed)},
				{Key: "fps", Label: "FPS", Type: core.ParamTypeText, Value: strconv.FormatFloat(s.meter.FPS(), 'f', 1, 64)},
			},
		},
		{Name: "Board", Params: board},
	}}
}

// Actions exposes the HUD push buttons.
func (s *Session) Actions() []core.Action {
	return []core.Action{
		{Key: "play", Label: s.playLabel, Run: s.TogglePlay},
		{Key: "step", Label: staticLabel("Step"), Run: s.Advance},
		{Key: "clear", Label: staticLabel("Clear"), Run: s.Clear},
		{Key: "reinit", Label: staticLabel("Reinit"), Run: s.Reinitialize},
	}
}

func (s *Session) playLabel() string {
	if s.Playing() {
		return "Pause"
	}
	return "Play"
}

func staticLabel(l string) func() string { return func() string { return l } }

func (s *Session) speedControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    SpeedKey,
		Label:  "Speed",
		Step:   1,
		Min:    0,
		Max:    s.maxSpeed,
		HasMin: true,
		HasMax: true,
	}
}

func (s *Session) frameDone(f loop.Frame) {
	s.last = f
	rec := telemetry.NewFrameRecord(f, s.meter.FPS())
	if err := s.recorder.Write(rec); err != nil {
		s.fail(err)
		return
	}
	if s.logEvery > 0 && f.Index%uint64(s.logEvery) == 0 {
		s.logger.Info("frame", "stats", rec)
	}
}

// fail records err, stops the animation and returns err. Rejected state
// transitions are returned without poisoning the session.
func (s *Session) fail(err error) error {
	if errors.Is(err, loop.ErrAlreadyRunning) || errors.Is(err, loop.ErrNotRunning) {
		return err
	}
	if s.err == nil {
		s.err = err
	}
	if s.ctrl.Running() {
		_ = s.ctrl.Stop()
	}
	s.logger.Error("session failed", "err", err)
	return err
}

func paletteFromConfig(c config.ColorsConfig) (render.Palette, error) {
	grid, err := config.ParseHexColor(c.Grid)
	if err != nil {
		return render.Palette{}, fmt.Errorf("grid colour: %w", err)
	}
	dead, err := config.ParseHexColor(c.Dead)
	if err != nil {
		return render.Palette{}, fmt.Errorf("dead colour: %w", err)
	}
	alive, err := config.ParseHexColor(c.Alive)
	if err != nil {
		return render.Palette{}, fmt.Errorf("alive colour: %w", err)
	}
	return render.Palette{Grid: grid, Dead: dead, Alive: alive}, nil
}
