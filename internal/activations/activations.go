// Package activations provides the activation functions used by the network.
package activations

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// ReLU activation function, applied to hidden layers.
type ReLU struct{}

// Activate computes max(0, x)
func (r ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if x > 0, else 0
func (r ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// SoftmaxInPlace rewrites x with softmax(x). The maximum element is
// subtracted from every score before exponentiation so that large scores
// cannot overflow; the result is unchanged because softmax is invariant
// under a constant shift.
func SoftmaxInPlace(x []float64) {
	if len(x) == 0 {
		return
	}
	max := floats.Max(x)
	for i, v := range x {
		x[i] = math.Exp(v - max)
	}
	floats.Scale(1/floats.Sum(x), x)
}

// Softmax returns softmax(x) as a new slice, leaving x untouched.
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	SoftmaxInPlace(out)
	return out
}
