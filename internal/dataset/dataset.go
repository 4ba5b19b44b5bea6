// Package dataset loads and prepares classification datasets for the
// network: parsing, per-feature standardization, shuffling and splitting.
// The network itself consumes only the resulting feature and one-hot
// label vectors.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// Dataset is a collection of feature vectors and parallel one-hot labels.
type Dataset struct {
	Samples [][]float64
	Labels  [][]float64
}

// LoadCSV reads a headerless CSV file whose rows hold numFeatures numeric
// columns followed by a class label string. Labels are one-hot encoded by
// their index in classes. Rows with missing values, unparseable numbers or
// unknown labels are logged and skipped, as are rows of the wrong width.
func LoadCSV(filename string, numFeatures int, classes []string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	classIndex := make(map[string]int, len(classes))
	for i, c := range classes {
		classIndex[c] = i
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	d := &Dataset{}
	for i, record := range records {
		if len(record) != numFeatures+1 {
			log.Printf("dataset: skipping row %d: %d columns, want %d", i+1, len(record), numFeatures+1)
			continue
		}

		sample := make([]float64, numFeatures)
		ok := true
		for j := 0; j < numFeatures; j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				log.Printf("dataset: skipping row %d: bad value %q in column %d", i+1, record[j], j+1)
				ok = false
				break
			}
			sample[j] = val
		}
		if !ok {
			continue
		}

		cls, found := classIndex[record[numFeatures]]
		if !found {
			log.Printf("dataset: skipping row %d: unknown label %q", i+1, record[numFeatures])
			continue
		}
		label := make([]float64, len(classes))
		label[cls] = 1

		d.Samples = append(d.Samples, sample)
		d.Labels = append(d.Labels, label)
	}

	if len(d.Samples) == 0 {
		return nil, fmt.Errorf("no usable rows in %s", filename)
	}
	return d, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// Standardize rescales every feature in place to zero mean and unit
// variance (population standard deviation). Constant features become 0.
func (d *Dataset) Standardize() {
	if len(d.Samples) == 0 {
		return
	}

	numFeatures := len(d.Samples[0])
	col := make([]float64, len(d.Samples))
	for j := 0; j < numFeatures; j++ {
		for i, sample := range d.Samples {
			col[i] = sample[j]
		}
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)

		for _, sample := range d.Samples {
			if std != 0 {
				sample[j] = (sample[j] - mean) / std
			} else {
				sample[j] = 0
			}
		}
	}
}

// Shuffle permutes sample/label pairs in place using the given generator.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Samples), func(i, j int) {
		d.Samples[i], d.Samples[j] = d.Samples[j], d.Samples[i]
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
	})
}

// Split divides the dataset into two at ratio (0.0 to 1.0), returning
// (train, test) views over the same underlying vectors.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	if ratio <= 0 {
		return &Dataset{}, d
	}
	if ratio >= 1 {
		return d, &Dataset{}
	}

	splitIdx := int(float64(len(d.Samples)) * ratio)
	train := &Dataset{
		Samples: d.Samples[:splitIdx],
		Labels:  d.Labels[:splitIdx],
	}
	test := &Dataset{
		Samples: d.Samples[splitIdx:],
		Labels:  d.Labels[splitIdx:],
	}
	return train, test
}
