//go:build doubleprecision

package geometry

import "testing"

func TestDoublePrecisionDisplay(t *testing.T) {
	if ScalarBits != 64 {
		t.Fatalf("ScalarBits failed: expected 64, got %d", ScalarBits)
	}

	v, err := Create(0.1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	expected := "(0.1, 0.0, 0.0)"
	if result := v.String(); result != expected {
		t.Errorf("String failed: expected %q, got %q", expected, result)
	}
}

func TestDoublePrecisionRoundNarrowsPrecision(t *testing.T) {
	result := New(0.3, 0.25, -0.3).Round(0.1)

	step := float64(float32(0.1))
	expected := New(3*step, 2*step, -3*step)
	if result != expected {
		t.Errorf("Round failed: expected %v, got %v", expected, result)
	}
	if result.X == 0.30000000000000004 {
		t.Errorf("Round failed: precision was not narrowed to float32, got %v", result.X)
	}
}
