// Package net provides the feed-forward network and its training loop.
package net

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"gomlp/internal/activations"
	"gomlp/internal/layer"
)

// Network is an ordered sequence of dense layers trained by per-sample
// gradient descent. Hidden layers activate with ReLU; the output layer is
// a softmax over its raw sums. The learning rate is fixed at construction.
type Network struct {
	layers       []*layer.Layer
	sizes        []int
	learningRate float64
	rng          *rand.Rand

	// Input vector of the most recent forward pass, cached because the
	// backward pass needs it as the activations of the virtual layer 0.
	input []float64

	relu activations.ReLU
}

// New constructs a fully-connected network. sizes[0] is the input width
// and does not materialize a layer; every subsequent entry defines one
// layer whose neurons carry weight vectors sized to the preceding width.
// Weights and biases are initialized uniformly from [-1, 1] by a private
// generator seeded with seed, so identical (sizes, seed) pairs produce
// identical networks.
func New(sizes []int, learningRate float64, seed int64) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layer sizes, got %d", ErrInvalidConfiguration, len(sizes))
	}
	for i, sz := range sizes {
		if sz < 1 {
			return nil, fmt.Errorf("%w: layer %d has non-positive size %d", ErrInvalidConfiguration, i, sz)
		}
	}
	if learningRate <= 0 {
		return nil, fmt.Errorf("%w: learning rate must be positive, got %v", ErrInvalidConfiguration, learningRate)
	}

	n := &Network{
		sizes:        append([]int(nil), sizes...),
		learningRate: learningRate,
		rng:          rand.New(rand.NewSource(seed)),
	}
	for i := 1; i < len(sizes); i++ {
		var act activations.Activation
		if i < len(sizes)-1 {
			act = n.relu
		}
		n.layers = append(n.layers, layer.New(sizes[i], sizes[i-1], act, n.rng))
	}
	return n, nil
}

// Forward runs one forward pass: the input vector acts as the activations
// of a virtual layer 0, each hidden layer computes ReLU(bias + weights·prev),
// and the output layer's raw sums are replaced by their softmax. Every
// neuron's activation is overwritten in place; Outputs exposes the result.
func (n *Network) Forward(input []float64) error {
	if len(input) != n.sizes[0] {
		return fmt.Errorf("%w: input length %d, want %d", ErrDimensionMismatch, len(input), n.sizes[0])
	}

	n.input = append(n.input[:0], input...)
	prev := n.input
	for _, l := range n.layers {
		l.Forward(prev)
		prev = l.Outputs()
	}
	activations.SoftmaxInPlace(n.layers[len(n.layers)-1].Outputs())
	return nil
}

// Backward runs one backward pass against the activations cached by the
// immediately preceding Forward call, then updates weights and biases in
// place.
//
// The output delta is simply activation - target. That form is only
// correct because the output layer pairs softmax with a cross-entropy
// loss, whose combined gradient collapses to the subtraction; it is not a
// general derivative of softmax, and any other output activation or loss
// would need a different formula.
func (n *Network) Backward(target []float64) error {
	last := len(n.layers) - 1
	if len(target) != n.layers[last].OutSize() {
		return fmt.Errorf("%w: target length %d, want %d", ErrDimensionMismatch, len(target), n.layers[last].OutSize())
	}
	if len(n.input) != n.sizes[0] {
		return fmt.Errorf("%w: backward requires a preceding forward pass", ErrDimensionMismatch)
	}

	// All deltas are computed from output to input before any weight is
	// touched; the update below must see the pre-update weights only.
	deltas := make([][]float64, len(n.layers))
	out := n.layers[last].Outputs()
	d := make([]float64, len(out))
	for i := range out {
		d[i] = out[i] - target[i]
	}
	deltas[last] = d

	for l := last - 1; l >= 0; l-- {
		sums := n.layers[l+1].WeightedDeltaSum(deltas[l+1])
		acts := n.layers[l].Outputs()
		for j := range sums {
			sums[j] *= n.relu.Derivative(acts[j])
		}
		deltas[l] = sums
	}

	// Update every layer using the previous layer's forward-cached
	// activations; update order no longer matters.
	prev := n.input
	for l, lay := range n.layers {
		lay.ApplySGD(deltas[l], prev, n.learningRate)
		prev = lay.Outputs()
	}
	return nil
}

// Train runs epochs full passes of per-sample (online) stochastic gradient
// descent over the given samples, in the given order. No shuffling or
// batching happens here; callers that want shuffled epochs shuffle the
// dataset themselves. The network is mutated in place.
func (n *Network) Train(inputs, targets [][]float64, epochs int) error {
	if epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfiguration, epochs)
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs but %d targets", ErrDimensionMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no training samples", ErrEmptyDataset)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i := range inputs {
			if err := n.Forward(inputs[i]); err != nil {
				return err
			}
			if err := n.Backward(targets[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Predict runs a forward pass and returns the index of the maximum output
// activation. Ties break to the first-occurring maximum.
func (n *Network) Predict(input []float64) (int, error) {
	if err := n.Forward(input); err != nil {
		return 0, err
	}
	return floats.MaxIdx(n.Outputs()), nil
}

// EvaluateAccuracy predicts every input and compares the result against
// argmax(target), returning the fraction of matches. Every target must
// match the output width. Zero samples yield 0.0 rather than an error.
func (n *Network) EvaluateAccuracy(inputs, targets [][]float64) (float64, error) {
	if len(inputs) != len(targets) {
		return 0, fmt.Errorf("%w: %d inputs but %d targets", ErrDimensionMismatch, len(inputs), len(targets))
	}
	if len(inputs) == 0 {
		return 0, nil
	}

	outSize := n.layers[len(n.layers)-1].OutSize()
	correct := 0
	for i := range inputs {
		if len(targets[i]) != outSize {
			return 0, fmt.Errorf("%w: target %d has length %d, want %d", ErrDimensionMismatch, i, len(targets[i]), outSize)
		}
		predicted, err := n.Predict(inputs[i])
		if err != nil {
			return 0, err
		}
		if predicted == floats.MaxIdx(targets[i]) {
			correct++
		}
	}
	return float64(correct) / float64(len(inputs)), nil
}

// Outputs returns the output layer's activation vector from the most
// recent forward pass. The slice aliases network state.
func (n *Network) Outputs() []float64 {
	return n.layers[len(n.layers)-1].Outputs()
}

// LearningRate returns the fixed learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Sizes returns the layer-size sequence the network was built from.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Params returns all weights and biases flattened, layer by layer.
func (n *Network) Params() []float64 {
	var params []float64
	for _, l := range n.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// SetParams overwrites all weights and biases from a flattened slice laid
// out as produced by Params.
func (n *Network) SetParams(params []float64) error {
	total := 0
	for _, l := range n.layers {
		total += l.InSize()*l.OutSize() + l.OutSize()
	}
	if len(params) != total {
		return fmt.Errorf("%w: %d params, want %d", ErrDimensionMismatch, len(params), total)
	}
	offset := 0
	for _, l := range n.layers {
		count := l.InSize()*l.OutSize() + l.OutSize()
		l.SetParams(params[offset : offset+count])
		offset += count
	}
	return nil
}
