package probe

import (
	"errors"
	"testing"
)

var errNotFound = errors.New("executable file not found in $PATH")

// TestSimulatedPercentRange verifies fabricated values stay within their
// configured bounds.
func TestSimulatedPercentRange(t *testing.T) {
	s := NewSystem(0, nil)

	for i := 0; i < 1000; i++ {
		v := s.simulatedPercent(45, 75)
		if v < 45 || v > 75 {
			t.Fatalf("simulatedPercent(45, 75) = %f, out of range", v)
		}
	}

	if v := s.simulatedPercent(10, 10); v != 10 {
		t.Errorf("simulatedPercent with equal bounds = %f, want 10", v)
	}
}

func TestNewSystemDefaults(t *testing.T) {
	s := NewSystem(0, nil)
	if s.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", s.timeout, defaultTimeout)
	}
	if s.logger == nil {
		t.Error("logger should never be nil")
	}
}
