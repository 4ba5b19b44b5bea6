// Command iris trains a feed-forward classifier on the Iris dataset and
// reports validation accuracy with per-sample predictions.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"gomlp/internal/dataset"
	"gomlp/internal/loss"
	"gomlp/internal/net"

	"gonum.org/v1/gonum/floats"
)

var irisClasses = []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"}

func main() {
	dataPath := flag.String("data", "iris_dataset.csv", "path to the iris csv file")
	layerSpec := flag.String("layers", "4,8,128,64,8,3", "comma-separated layer sizes, input width first")
	lr := flag.Float64("lr", 0.01, "learning rate")
	epochs := flag.Int("epochs", 1000, "training epochs")
	trainSplit := flag.Float64("train-split", 0.9, "fraction of samples used for training")
	seed := flag.Int64("seed", 42, "seed for weight init and shuffling")
	logEvery := flag.Int("log-every", 100, "epochs between progress lines")
	flag.Parse()

	sizes, err := parseLayers(*layerSpec)
	if err != nil {
		log.Fatalf("bad -layers: %v", err)
	}

	ds, err := dataset.LoadCSV(*dataPath, sizes[0], irisClasses)
	if err != nil {
		log.Fatalf("loading dataset: %v", err)
	}
	ds.Standardize()
	ds.Shuffle(rand.New(rand.NewSource(*seed)))
	train, valid := ds.Split(*trainSplit)
	fmt.Printf("Training set size: %d\n", train.Len())
	fmt.Printf("Validation set size: %d\n", valid.Len())

	network, err := net.New(sizes, *lr, *seed)
	if err != nil {
		log.Fatalf("building network: %v", err)
	}

	for epoch := 0; epoch < *epochs; epoch++ {
		if err := network.Train(train.Samples, train.Labels, 1); err != nil {
			log.Fatalf("training: %v", err)
		}
		if *logEvery > 0 && epoch%*logEvery == 0 {
			acc, _ := network.EvaluateAccuracy(train.Samples, train.Labels)
			log.Printf("epoch=%d loss=%.4f train_accuracy=%.3f", epoch, meanLoss(network, train), acc)
		}
	}

	accuracy, err := network.EvaluateAccuracy(valid.Samples, valid.Labels)
	if err != nil {
		log.Fatalf("evaluating: %v", err)
	}
	fmt.Printf("Accuracy: %.1f%%\n", accuracy*100)

	for i := range valid.Samples {
		predicted, err := network.Predict(valid.Samples[i])
		if err != nil {
			log.Fatalf("predicting: %v", err)
		}
		fmt.Printf("expected output: %d\tpredicted output: %d\n", floats.MaxIdx(valid.Labels[i]), predicted)
	}
}

func parseLayers(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("need at least 2 layer sizes, got %q", spec)
	}
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("layer size %q: %w", p, err)
		}
		sizes[i] = n
	}
	return sizes, nil
}

func meanLoss(n *net.Network, ds *dataset.Dataset) float64 {
	var ce loss.CrossEntropy
	total := 0.0
	for i := range ds.Samples {
		if err := n.Forward(ds.Samples[i]); err != nil {
			log.Fatalf("computing loss: %v", err)
		}
		total += ce.Forward(n.Outputs(), ds.Labels[i])
	}
	return total / float64(ds.Len())
}
