package widgets

import (
	"strings"
	"testing"
)

func TestRenderSparkline_Empty(t *testing.T) {
	if got := RenderSparkline(SparklineConfig{}); got != "" {
		t.Errorf("expected empty output for no data, got: %q", got)
	}
}

func TestRenderSparkline_AutoScale(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data: []float64{0, 50, 100},
	})

	runes := []rune(result)
	if len(runes) != 3 {
		t.Fatalf("expected 3 chars, got %d: %q", len(runes), result)
	}
	if runes[0] != '▁' {
		t.Errorf("lowest value should render '▁', got %q", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("highest value should render '█', got %q", runes[2])
	}
}

func TestRenderSparkline_AllEqual(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data: []float64{42, 42, 42},
	})

	// All-equal data renders mid-level blocks rather than dividing by zero.
	for _, r := range result {
		if r != '▅' {
			t.Errorf("expected mid-level blocks, got %q in %q", r, result)
		}
	}
}

func TestRenderSparkline_TruncatesToWidth(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data:  []float64{0, 0, 0, 100, 100},
		Width: 2,
	})

	// Only the newest two points survive, both at max.
	if result != "██" {
		t.Errorf("expected newest points only, got: %q", result)
	}
}

func TestRenderSparkline_PadsToWidth(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data:  []float64{1, 2},
		Width: 5,
	})

	if !strings.HasPrefix(result, "   ") {
		t.Errorf("expected left padding, got: %q", result)
	}
	if len([]rune(result)) != 5 {
		t.Errorf("expected width 5, got %d: %q", len([]rune(result)), result)
	}
}

func TestRenderSparkline_FixedScale(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data: []float64{50, 50},
		Min:  0,
		Max:  100,
	})

	// On a fixed 0-100 scale, 50% renders mid-height rather than flat-lining.
	for _, r := range result {
		if r == '▁' || r == '█' {
			t.Errorf("50%% on fixed scale should be mid-height, got %q in %q", r, result)
		}
	}
}

func TestRenderSparkline_ClampsOutOfRange(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data: []float64{-10, 150},
		Min:  0,
		Max:  100,
	})

	runes := []rune(result)
	if runes[0] != '▁' || runes[1] != '█' {
		t.Errorf("out-of-range values should clamp to end blocks, got: %q", result)
	}
}

func TestRenderSparkline_Label(t *testing.T) {
	result := RenderSparkline(SparklineConfig{
		Data:  []float64{1, 2, 3},
		Label: "cpu",
	})

	if !strings.HasPrefix(result, "cpu ") {
		t.Errorf("expected label prefix, got: %q", result)
	}
}

func TestRenderPercentSparkline(t *testing.T) {
	result := RenderPercentSparkline([]float64{0, 100}, 0, "")

	runes := []rune(result)
	if runes[0] != '▁' || runes[1] != '█' {
		t.Errorf("expected full-range blocks, got: %q", result)
	}
}

func TestRenderSparklineWithRange(t *testing.T) {
	result := RenderSparklineWithRange([]float64{10, 90}, 0)

	if !strings.HasPrefix(result, "10") || !strings.HasSuffix(result, "90") {
		t.Errorf("expected min/max labels, got: %q", result)
	}
}

func TestRenderSparklineWithRange_Empty(t *testing.T) {
	if got := RenderSparklineWithRange(nil, 10); got != "" {
		t.Errorf("expected empty output for no data, got: %q", got)
	}
}
