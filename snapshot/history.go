package snapshot

import "sync"

// MaxSamples is the capacity of a rolling history buffer. At the default
// two second poll interval this covers the last two minutes.
const MaxSamples = 60

// History is a fixed-capacity FIFO of float64 samples, oldest first.
// Safe for concurrent use.
type History struct {
	mu     sync.Mutex
	values []float64
	max    int
}

// NewHistory returns an empty buffer holding at most MaxSamples values.
func NewHistory() *History {
	return &History{max: MaxSamples}
}

// Push appends a sample, evicting the oldest when the buffer is full.
func (h *History) Push(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.values = append(h.values, v)
	if len(h.values) > h.max {
		h.values = h.values[len(h.values)-h.max:]
	}
}

// Values returns a copy of the buffer, oldest first. Mutating the result
// does not affect the buffer.
func (h *History) Values() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}

// Len reports the number of stored samples.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.values)
}
