// Package telemetry records per-frame statistics of the animation loop.
package telemetry

import (
	"log/slog"
	"time"

	"lifeview/internal/loop"
)

// FrameRecord is one CSV row describing a rendered frame.
type FrameRecord struct {
	Frame      uint64  `csv:"frame"`
	Generation uint64  `csv:"generation"`
	Steps      int     `csv:"steps"`
	Live       int     `csv:"live"`
	StepMicros int64   `csv:"step_us"`
	DrawMicros int64   `csv:"render_us"`
	FPS        float64 `csv:"fps"`
}

// NewFrameRecord converts a loop frame into a record.
func NewFrameRecord(f loop.Frame, fps float64) FrameRecord {
	return FrameRecord{
		Frame:      f.Index,
		Generation: f.Generation,
		Steps:      f.Steps,
		Live:       f.Live,
		StepMicros: f.StepTime.Microseconds(),
		DrawMicros: f.RenderTime.Microseconds(),
		FPS:        fps,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r FrameRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("frame", r.Frame),
		slog.Uint64("generation", r.Generation),
		slog.Int("steps", r.Steps),
		slog.Int("live", r.Live),
		slog.Duration("step", time.Duration(r.StepMicros)*time.Microsecond),
		slog.Duration("render", time.Duration(r.DrawMicros)*time.Microsecond),
		slog.Float64("fps", r.FPS),
	)
}

// Summary aggregates frame records.
type Summary struct {
	Frames      int
	Generations uint64
	FinalLive   int
	MaxLive     int
	AvgStep     time.Duration
	AvgRender   time.Duration
}

// Summarize folds records into a Summary.
func Summarize(records []FrameRecord) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}
	var step, draw int64
	for _, r := range records {
		step += r.StepMicros
		draw += r.DrawMicros
		if r.Live > s.MaxLive {
			s.MaxLive = r.Live
		}
	}
	last := records[len(records)-1]
	s.Frames = len(records)
	s.Generations = last.Generation
	s.FinalLive = last.Live
	s.AvgStep = time.Duration(step/int64(len(records))) * time.Microsecond
	s.AvgRender = time.Duration(draw/int64(len(records))) * time.Microsecond
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frames", s.Frames),
		slog.Uint64("generations", s.Generations),
		slog.Int("final_live", s.FinalLive),
		slog.Int("max_live", s.MaxLive),
		slog.Duration("avg_step", s.AvgStep),
		slog.Duration("avg_render", s.AvgRender),
	)
}
