package engine

import "time"

// FrameMeter measures tick rate over a sliding window
// Not safe for concurrent use; owned by the loop that ticks it
type FrameMeter struct {
	clock  TimeProvider
	window time.Duration
	stamps []time.Time // tick times inside the window, oldest at head
	head   int
}

// NewFrameMeter creates a meter over the given window
func NewFrameMeter(clock TimeProvider, window time.Duration) *FrameMeter {
	if window <= 0 {
		window = time.Second
	}
	return &FrameMeter{clock: clock, window: window}
}

// Tick records one event at the current time
func (m *FrameMeter) Tick() {
	now := m.clock.Now()
	m.stamps = append(m.stamps, now)
	m.expire(now)
}

// Rate returns events per second over the window
func (m *FrameMeter) Rate() float64 {
	m.expire(m.clock.Now())
	return float64(m.Count()) / m.window.Seconds()
}

// Count returns the number of ticks inside the window
func (m *FrameMeter) Count() int {
	return len(m.stamps) - m.head
}

// Reset forgets all recorded ticks
func (m *FrameMeter) Reset() {
	m.stamps = m.stamps[:0]
	m.head = 0
}

// expire drops ticks older than the window and compacts the backing slice
func (m *FrameMeter) expire(now time.Time) {
	cutoff := now.Add(-m.window)
	for m.head < len(m.stamps) && !m.stamps[m.head].After(cutoff) {
		m.head++
	}
	if m.head > 0 && m.head*2 >= len(m.stamps) {
		n := copy(m.stamps, m.stamps[m.head:])
		m.stamps = m.stamps[:n]
		m.head = 0
	}
}
