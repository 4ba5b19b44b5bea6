// Package layer provides the dense layer the network is built from.
package layer

import (
	"math/rand"

	"gomlp/internal/activations"
)

// Layer is a fixed-width set of neurons. Instead of per-neuron objects it
// keeps a dense row-major weight matrix with parallel bias and activation
// vectors: the weight from previous-layer neuron k to neuron j lives at
// weights[j*inSize+k].
type Layer struct {
	weights []float64
	biases  []float64
	// Activation values from the most recent forward pass. Transient:
	// every forward pass overwrites them in full.
	values []float64

	act     activations.Activation
	inSize  int
	outSize int
}

// New creates a layer of neuronCount neurons, each with a weight vector
// sized to the previous layer's width. Weights and biases are drawn i.i.d.
// uniformly from [-1, 1] using the supplied generator. act is applied
// element-wise during the forward pass; a nil act leaves the raw sums in
// place (the network softmaxes its output layer as a whole vector).
func New(neuronCount, prevLayerNeuronCount int, act activations.Activation, rng *rand.Rand) *Layer {
	l := &Layer{
		weights: make([]float64, neuronCount*prevLayerNeuronCount),
		biases:  make([]float64, neuronCount),
		values:  make([]float64, neuronCount),
		act:     act,
		inSize:  prevLayerNeuronCount,
		outSize: neuronCount,
	}
	for i := range l.weights {
		l.weights[i] = rng.Float64()*2 - 1
	}
	for i := range l.biases {
		l.biases[i] = rng.Float64()*2 - 1
	}
	return l
}

// Forward computes bias + weights·prev for every neuron and stores the
// (optionally activated) result in the layer's activation vector.
func (l *Layer) Forward(prev []float64) {
	for j := 0; j < l.outSize; j++ {
		sum := l.biases[j]
		wBase := j * l.inSize
		for k := 0; k < l.inSize; k++ {
			sum += l.weights[wBase+k] * prev[k]
		}
		if l.act != nil {
			sum = l.act.Activate(sum)
		}
		l.values[j] = sum
	}
}

// WeightedDeltaSum back-propagates this layer's deltas to its input side:
// for every input index k it returns sum_j(weights[j][k] * deltas[j]).
// The weights are read only, so all deltas of the network can be computed
// before any update mutates them.
func (l *Layer) WeightedDeltaSum(deltas []float64) []float64 {
	sums := make([]float64, l.inSize)
	for j := 0; j < l.outSize; j++ {
		d := deltas[j]
		wBase := j * l.inSize
		for k := 0; k < l.inSize; k++ {
			sums[k] += l.weights[wBase+k] * d
		}
	}
	return sums
}

// ApplySGD performs the in-place gradient step for this layer:
// weights[j][k] -= lr * deltas[j] * prevActivations[k] and
// biases[j] -= lr * deltas[j].
func (l *Layer) ApplySGD(deltas, prevActivations []float64, lr float64) {
	for j := 0; j < l.outSize; j++ {
		step := lr * deltas[j]
		wBase := j * l.inSize
		for k := 0; k < l.inSize; k++ {
			l.weights[wBase+k] -= step * prevActivations[k]
		}
		l.biases[j] -= step
	}
}

// Outputs returns the activation values in neuron index order. The slice
// aliases the layer's state and is overwritten by the next forward pass.
func (l *Layer) Outputs() []float64 {
	return l.values
}

// Params returns all layer parameters flattened: weights then biases.
func (l *Layer) Params() []float64 {
	params := make([]float64, 0, len(l.weights)+len(l.biases))
	params = append(params, l.weights...)
	params = append(params, l.biases...)
	return params
}

// SetParams updates weights and biases from a flattened slice (in-place).
func (l *Layer) SetParams(params []float64) {
	copy(l.weights, params[:len(l.weights)])
	copy(l.biases, params[len(l.weights):])
}

// InSize returns the previous layer's width.
func (l *Layer) InSize() int {
	return l.inSize
}

// OutSize returns the number of neurons in the layer.
func (l *Layer) OutSize() int {
	return l.outSize
}
