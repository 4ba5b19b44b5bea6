// Package loss provides unit tests for the cross-entropy loss.
package loss

import (
	"math"
	"testing"
)

// TestCrossEntropyKnownValue tests the loss against a hand-computed value.
func TestCrossEntropyKnownValue(t *testing.T) {
	ce := CrossEntropy{}

	yPred := []float64{0.25, 0.25, 0.25, 0.25}
	yTrue := []float64{0, 1, 0, 0}

	want := -math.Log(0.25) / 4
	got := ce.Forward(yPred, yTrue)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Forward = %v, want %v", got, want)
	}
}

// TestCrossEntropyPerfectPrediction tests that a correct one-hot
// prediction yields (near) zero loss.
func TestCrossEntropyPerfectPrediction(t *testing.T) {
	ce := CrossEntropy{}

	got := ce.Forward([]float64{0, 1, 0}, []float64{0, 1, 0})
	if got > 1e-12 {
		t.Errorf("Forward = %v, want ~0", got)
	}
}

// TestCrossEntropyClipsZero tests that a zero prediction at the true
// class stays finite.
func TestCrossEntropyClipsZero(t *testing.T) {
	ce := CrossEntropy{}

	got := ce.Forward([]float64{1, 0}, []float64{0, 1})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Forward = %v, want finite", got)
	}
	if got <= 0 {
		t.Errorf("Forward = %v, want positive", got)
	}
}

// TestCrossEntropyLengthMismatchPanics tests the kernel's precondition.
func TestCrossEntropyLengthMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Forward did not panic on length mismatch")
		}
	}()
	CrossEntropy{}.Forward([]float64{0.5, 0.5}, []float64{1})
}
