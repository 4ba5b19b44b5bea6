// Package mlp is the public surface of the module: a hand-rolled
// feed-forward classifier trained by per-sample gradient descent, plus the
// dataset preparation it consumes. It re-exports the internal packages.
package mlp

import (
	"math/rand"

	"gomlp/internal/dataset"
	"gomlp/internal/loss"
	"gomlp/internal/net"
)

// Re-export the core types.
type (
	Network      = net.Network
	Dataset      = dataset.Dataset
	CrossEntropy = loss.CrossEntropy
)

// Precondition errors, matchable with errors.Is.
var (
	ErrInvalidConfiguration = net.ErrInvalidConfiguration
	ErrDimensionMismatch    = net.ErrDimensionMismatch
	ErrEmptyDataset         = net.ErrEmptyDataset
)

// New constructs a network. layerSizes[0] is the input width; each later
// entry defines one layer. Hidden layers use ReLU, the output layer
// softmax. See net.New.
func New(layerSizes []int, learningRate float64, seed int64) (*Network, error) {
	return net.New(layerSizes, learningRate, seed)
}

// LoadCSV loads a feature+label CSV dataset. See dataset.LoadCSV.
func LoadCSV(filename string, numFeatures int, classes []string) (*Dataset, error) {
	return dataset.LoadCSV(filename, numFeatures, classes)
}

// NewRand returns a seeded generator for dataset shuffling.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
