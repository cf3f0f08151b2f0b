// Package inference runs trained networks on new records
package inference

import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets"
import "github.com/neurlang/climber/net/feedforward"

// ErrInputSize is returned when the data width differs from the network input.
var ErrInputSize = errors.New("input size does not match the network")

// Infer returns the first output of net for data.
func Infer(net *feedforward.FeedforwardNetwork, data []float32) (float32, error) {
	if net.Seed() == nil {
		return 0, feedforward.ErrNoInput
	}
	if len(data) != net.Seed().Len() {
		return 0, errors.Wrapf(ErrInputSize, "%d values for %d inputs", len(data), net.Seed().Len())
	}
	return net.Forward(data)
}

// Prediction pairs a network output with the record label.
type Prediction struct {
	Output float32
	Label  float32
}

// Predict runs every record of loader through net. Entries the loader
// cannot produce are skipped.
func Predict(net *feedforward.FeedforwardNetwork, loader datasets.Loader) ([]Prediction, error) {
	var o []Prediction
	for loader.HasNext() {
		rec, ok := loader.Next()
		if !ok {
			continue
		}
		out, err := Infer(net, rec.Data)
		if err != nil {
			return o, errors.Wrapf(err, "prediction %d", len(o))
		}
		o = append(o, Prediction{Output: out, Label: rec.Label})
	}
	return o, nil
}
