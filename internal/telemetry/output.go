package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FramesFile is the name of the per-frame CSV inside the output directory.
const FramesFile = "frames.csv"

// Recorder appends frame records as CSV. A nil *Recorder discards records,
// so callers need not check whether output is enabled.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	path          string
	headerWritten bool
	written       int
}

// NewRecorder creates dir and opens frames.csv inside it. It returns nil when
// dir is empty.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, FramesFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", FramesFile, err)
	}
	return &Recorder{w: f, closer: f, path: path}, nil
}

// NewWriterRecorder writes CSV to w without owning it.
func NewWriterRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Write appends one record, emitting the header before the first row.
func (r *Recorder) Write(rec FrameRecord) error {
	if r == nil {
		return nil
	}
	records := []FrameRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
	}
	r.written++
	return nil
}

// Written returns how many records were written.
func (r *Recorder) Written() int {
	if r == nil {
		return 0
	}
	return r.written
}

// Path returns the CSV path, or "" for writer-backed and nil recorders.
func (r *Recorder) Path() string {
	if r == nil {
		return ""
	}
	return r.path
}

// Close closes the underlying file if the recorder owns one.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadFrames parses a CSV produced by Recorder.
func ReadFrames(rd io.Reader) ([]FrameRecord, error) {
	var records []FrameRecord
	if err := gocsv.Unmarshal(rd, &records); err != nil {
		return nil, fmt.Errorf("reading frames: %w", err)
	}
	return records, nil
}
