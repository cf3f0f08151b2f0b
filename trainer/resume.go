package trainer

import "os"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/net/feedforward"

// Resume loads the weights at dstmodel into net when resume is set. A missing
// file is not an error, training then starts from the initial weights.
func Resume(net *feedforward.FeedforwardNetwork, resume *bool, dstmodel *string) error {
	if resume == nil || !*resume || dstmodel == nil || *dstmodel == "" {
		return nil
	}
	if _, err := os.Stat(*dstmodel); os.IsNotExist(err) {
		println("no model to resume at", *dstmodel)
		return nil
	}
	if err := net.ReadCompressedWeightsFromFile(*dstmodel); err != nil {
		return errors.Wrapf(err, "resume %q", *dstmodel)
	}
	return nil
}
