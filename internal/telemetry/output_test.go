package telemetry

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"lifeview/internal/loop"
)

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	rec := NewWriterRecorder(&buf)
	for i := 1; i <= 3; i++ {
		f := loop.Frame{Index: uint64(i), Generation: uint64(2 * i), Steps: 2, Live: 10 * i, RenderTime: 1500 * time.Microsecond}
		if err := rec.Write(NewFrameRecord(f, 60)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if got := strings.Count(buf.String(), "frame,generation"); got != 1 {
		t.Fatalf("header appears %d times:\n%s", got, buf.String())
	}
	records, err := ReadFrames(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadFrames: %v", err)
	}
	if len(records) != 3 || records[2].Generation != 6 || records[0].DrawMicros != 1500 {
		t.Fatalf("records %+v", records)
	}
	if rec.Written() != 3 {
		t.Fatalf("Written() = %d", rec.Written())
	}
}

func TestNilRecorderDiscards(t *testing.T) {
	var rec *Recorder
	if err := rec.Write(FrameRecord{}); err != nil {
		t.Fatalf("nil Write: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
	r, err := NewRecorder("")
	if err != nil || r != nil {
		t.Fatalf("NewRecorder(\"\") = %v, %v", r, err)
	}
}

func TestRecorderCreatesFile(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir + "/run")
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	if err := rec.Write(FrameRecord{Frame: 1, Live: 5}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(rec.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "frame,") {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]FrameRecord{
		{Frame: 1, Generation: 1, Live: 4, StepMicros: 10, DrawMicros: 30},
		{Frame: 2, Generation: 3, Live: 9, StepMicros: 20, DrawMicros: 50},
		{Frame: 3, Generation: 5, Live: 6, StepMicros: 30, DrawMicros: 40},
	})
	if s.Frames != 3 || s.Generations != 5 || s.FinalLive != 6 || s.MaxLive != 9 {
		t.Fatalf("summary %+v", s)
	}
	if s.AvgStep != 20*time.Microsecond || s.AvgRender != 40*time.Microsecond {
		t.Fatalf("averages %v %v", s.AvgStep, s.AvgRender)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatal("empty summary should be zero")
	}
}
