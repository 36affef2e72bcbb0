package loop

import (
	"errors"
	"testing"

	"lifeview/internal/core"
)

// fakeEngine records calls in order so tests can check that steps precede
// renders.
type fakeEngine struct {
	cells []byte
	log   *[]string
	steps int
}

func (f *fakeEngine) Step() {
	f.steps++
	*f.log = append(*f.log, "step")
}

func (f *fakeEngine) Cells() []byte {
	*f.log = append(*f.log, "cells")
	return f.cells
}

type fakeRenderer struct {
	log   *[]string
	err   error
	views int
}

func (f *fakeRenderer) Render(view []byte) error {
	*f.log = append(*f.log, "render")
	if f.err != nil {
		return f.err
	}
	f.views++
	return nil
}

// manualScheduler holds callbacks until the test fires them.
type manualScheduler struct {
	next      Handle
	pending   map[Handle]func()
	cancelled []Handle
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: map[Handle]func(){}}
}

func (m *manualScheduler) RequestFrame(fn func()) Handle {
	m.next++
	m.pending[m.next] = fn
	return m.next
}

func (m *manualScheduler) Cancel(h Handle) {
	m.cancelled = append(m.cancelled, h)
	delete(m.pending, h)
}

func (m *manualScheduler) fire() int {
	due := m.pending
	m.pending = map[Handle]func(){}
	for _, fn := range due {
		fn()
	}
	return len(due)
}

type harness struct {
	log      []string
	engine   *fakeEngine
	renderer *fakeRenderer
	sched    *manualScheduler
	speed    int
	ctrl     *Controller
}

func newHarness(speed int) *harness {
	h := &harness{speed: speed}
	h.engine = &fakeEngine{cells: make([]byte, 2), log: &h.log}
	h.renderer = &fakeRenderer{log: &h.log}
	h.sched = newManualScheduler()
	h.ctrl = NewController(h.engine, core.Size{W: 3, H: 3}, h.renderer, SpeedFunc(func() int { return h.speed }), h.sched)
	return h
}

func TestStartPerformsFrameAndSchedulesNext(t *testing.T) {
	h := newHarness(3)
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	want := []string{"step", "step", "step", "cells", "render"}
	if !equalLog(h.log, want) {
		t.Fatalf("call order %v, expected %v", h.log, want)
	}
	if h.ctrl.State() != Running {
		t.Fatalf("state %v after Start", h.ctrl.State())
	}
	if len(h.sched.pending) != 1 {
		t.Fatalf("%d frames pending after Start, expected 1", len(h.sched.pending))
	}
	if h.ctrl.Generation() != 3 {
		t.Fatalf("Generation() = %d, expected 3", h.ctrl.Generation())
	}
}

func TestStartStopLeavesNothingPending(t *testing.T) {
	h := newHarness(1)
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.ctrl.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if len(h.sched.pending) != 0 {
		t.Fatalf("%d frames pending after Stop", len(h.sched.pending))
	}
	if len(h.sched.cancelled) != 1 || h.sched.cancelled[0] != 1 {
		t.Fatalf("cancelled %v, expected exactly handle 1", h.sched.cancelled)
	}
	if h.ctrl.State() != Stopped {
		t.Fatalf("state %v after Stop", h.ctrl.State())
	}
}

func TestInvalidTransitionsRejected(t *testing.T) {
	h := newHarness(1)
	if err := h.ctrl.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Stop while stopped: %v", err)
	}
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	before := len(h.log)
	if err := h.ctrl.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("Start while running: %v", err)
	}
	if len(h.log) != before || len(h.sched.pending) != 1 {
		t.Fatal("rejected Start must not step, render or schedule")
	}
	if err := h.ctrl.Advance(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("Advance while running: %v", err)
	}
}

func TestToggleAlternates(t *testing.T) {
	h := newHarness(1)
	for i, want := range []State{Running, Stopped, Running, Stopped} {
		if err := h.ctrl.Toggle(); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if h.ctrl.State() != want {
			t.Fatalf("toggle %d: state %v, expected %v", i, h.ctrl.State(), want)
		}
	}
	if len(h.sched.pending) != 0 {
		t.Fatal("toggling off must leave no pending frame")
	}
}

func TestSpeedReadEveryFrame(t *testing.T) {
	h := newHarness(2)
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h.speed = 5
	h.sched.fire()
	if h.engine.steps != 7 {
		t.Fatalf("engine stepped %d times, expected 2+5", h.engine.steps)
	}
	h.speed = 0
	h.sched.fire()
	if h.engine.steps != 7 {
		t.Fatalf("speed 0 must not step, engine at %d", h.engine.steps)
	}
	if h.renderer.views != 3 {
		t.Fatalf("rendered %d frames, expected 3", h.renderer.views)
	}
	h.speed = -4
	h.sched.fire()
	if h.engine.steps != 7 || h.renderer.views != 4 {
		t.Fatalf("negative speed: steps %d renders %d", h.engine.steps, h.renderer.views)
	}
	if len(h.sched.pending) != 1 {
		t.Fatal("loop must stay alive at zero speed")
	}
}

func TestRenderFailureStopsLoop(t *testing.T) {
	h := newHarness(1)
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	boom := errors.New("boom")
	h.renderer.err = boom
	h.sched.fire()

	if h.ctrl.State() != Stopped {
		t.Fatalf("state %v after failed frame", h.ctrl.State())
	}
	if len(h.sched.pending) != 0 {
		t.Fatal("failed frame must not be rescheduled")
	}
	if !errors.Is(h.ctrl.Err(), boom) {
		t.Fatalf("Err() = %v", h.ctrl.Err())
	}
	if err := h.ctrl.Start(); !errors.Is(err, boom) {
		t.Fatalf("Start with failing renderer: %v", err)
	}
	if h.ctrl.State() != Stopped {
		t.Fatal("failed Start must stay stopped")
	}
}

func TestStopInsideFrameCallbackDoesNotReschedule(t *testing.T) {
	h := newHarness(1)
	if err := h.ctrl.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h.ctrl.OnFrame(func(Frame) {
		if err := h.ctrl.Stop(); err != nil {
			t.Fatalf("Stop from OnFrame: %v", err)
		}
	})
	h.sched.fire()
	if h.ctrl.State() != Stopped || len(h.sched.pending) != 0 {
		t.Fatalf("state %v pending %d", h.ctrl.State(), len(h.sched.pending))
	}
}

func TestRenderNowAndAdvance(t *testing.T) {
	h := newHarness(4)
	if err := h.ctrl.RenderNow(); err != nil {
		t.Fatalf("RenderNow: %v", err)
	}
	if h.engine.steps != 0 || h.renderer.views != 1 {
		t.Fatalf("RenderNow stepped %d times, rendered %d", h.engine.steps, h.renderer.views)
	}
	var frames []Frame
	h.ctrl.OnFrame(func(f Frame) { frames = append(frames, f) })
	if err := h.ctrl.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if h.engine.steps != 4 || len(h.sched.pending) != 0 {
		t.Fatalf("Advance: steps %d pending %d", h.engine.steps, len(h.sched.pending))
	}
	if len(frames) != 1 || frames[0].Steps != 4 || frames[0].Generation != 4 || frames[0].Index != 1 {
		t.Fatalf("frames %+v", frames)
	}
}

func TestFrameReportsLiveCells(t *testing.T) {
	h := newHarness(0)
	core.SetBit(h.engine.cells, 4)
	core.SetBit(h.engine.cells, 8)
	var got Frame
	h.ctrl.OnFrame(func(f Frame) { got = f })
	if err := h.ctrl.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got.Live != 2 {
		t.Fatalf("Live = %d, expected 2", got.Live)
	}
}

func equalLog(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
