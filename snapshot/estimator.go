package snapshot

import "gitlab.com/tinyland/lab/sysdeck/probe"

// TickSample is an aggregated CPU counter reading: idle and total ticks
// summed across all cores.
type TickSample struct {
	Idle  uint64
	Total uint64
}

// Estimator computes CPU usage from consecutive cumulative tick readings.
// Usage is derived from the delta between the current reading and the
// previous one, so the very first sample always reports 0 while the
// baseline is seeded.
//
// Not safe for concurrent use; the assembler serializes polls.
type Estimator struct {
	prev   TickSample
	primed bool
}

// NewEstimator returns an estimator with no baseline.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Sample aggregates the per-core readings and returns CPU usage in [0, 100].
//
// The first call seeds the baseline and returns 0. A reading whose
// counters went backwards indicates a counter reset; the baseline is
// reseeded from the new reading and 0 is returned. A zero total delta
// also yields 0 rather than dividing by zero.
func (e *Estimator) Sample(cores []probe.CoreTicks) float64 {
	var cur TickSample
	for _, c := range cores {
		cur.Idle += c.Idle
		cur.Total += c.Total
	}

	if !e.primed || cur.Total < e.prev.Total || cur.Idle < e.prev.Idle {
		e.prev = cur
		e.primed = true
		return 0
	}

	idleDelta := cur.Idle - e.prev.Idle
	totalDelta := cur.Total - e.prev.Total
	e.prev = cur

	if totalDelta == 0 {
		return 0
	}

	usage := 100 * (1 - float64(idleDelta)/float64(totalDelta))
	return clampPercent(usage)
}

// Reset drops the baseline so the next sample reseeds and reports 0.
func (e *Estimator) Reset() {
	e.primed = false
	e.prev = TickSample{}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
