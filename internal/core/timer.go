package core

import "time"

// FrameMeter estimates the display frame rate over a rolling window of frame
// timestamps.
type FrameMeter struct {
	stamps []time.Time
	next   int
	count  int
	now    func() time.Time
}

// NewFrameMeter constructs a meter averaging over the last window frames.
func NewFrameMeter(window int) *FrameMeter {
	if window < 2 {
		window = 60
	}
	return &FrameMeter{stamps: make([]time.Time, window), now: time.Now}
}

// Mark records that a frame was presented now.
func (m *FrameMeter) Mark() {
	m.stamps[m.next] = m.now()
	m.next = (m.next + 1) % len(m.stamps)
	if m.count < len(m.stamps) {
		m.count++
	}
}

// FPS returns the average frames per second across the window, or zero until
// two frames have been recorded.
func (m *FrameMeter) FPS() float64 {
	if m.count < 2 {
		return 0
	}
	newest := m.stamps[(m.next-1+len(m.stamps))%len(m.stamps)]
	oldest := m.stamps[(m.next-m.count+len(m.stamps))%len(m.stamps)]
	span := newest.Sub(oldest)
	if span <= 0 {
		return 0
	}
	return float64(m.count-1) / span.Seconds()
}
