// Package loss provides the cross-entropy loss used for reporting.
package loss

import "math"

// CrossEntropy loss for classification against a softmax output.
//
// Only the forward value is exposed. The gradient of cross-entropy through
// a softmax output collapses to (prediction - target) and is applied
// directly inside the network's backward pass; keeping no Backward here
// prevents the shortcut from being paired with any other output layer.
type CrossEntropy struct{}

// Forward computes -sum(y_true * log(y_pred)) / n, clipping predictions
// away from zero so log never overflows.
func (c CrossEntropy) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("loss: prediction and target must have same length")
	}

	const eps = 1e-10
	var sum float64
	for i := 0; i < n; i++ {
		pred := yPred[i]
		if pred < eps {
			pred = eps
		}
		sum -= yTrue[i] * math.Log(pred)
	}
	return sum / float64(n)
}
