// Package input implements the terminal layer fed from an external seed buffer
package input

import "math/rand"

import "github.com/pkg/errors"
import "github.com/neurlang/climber/layer"

// Seed is the externally managed buffer read by input layers. It is
// re-seeded once per record, so every clone of a network reads the same one.
// A Seed must not be written while a forward pass reading it is in flight.
type Seed struct {
	vec []float32
}

// NewSeed creates a zeroed seed buffer of size floats.
func NewSeed(size int) *Seed {
	if size < 0 {
		size = 0
	}
	return &Seed{vec: make([]float32, size)}
}

// Len reports the seed size.
func (s *Seed) Len() int {
	return len(s.vec)
}

// Put copies data into the seed. The length must match exactly.
func (s *Seed) Put(data []float32) error {
	if len(data) != len(s.vec) {
		return errors.Wrapf(layer.ErrSize, "seed of %d floats, got %d", len(s.vec), len(data))
	}
	copy(s.vec, data)
	return nil
}

// Input is the terminal layer.
type Input struct {
	seed *Seed
}

// New creates an input layer reading seed.
func New(seed *Seed) (*Input, error) {
	if seed == nil || seed.Len() == 0 {
		return nil, layer.ErrDimension
	}
	return &Input{seed: seed}, nil
}

// Seed returns the shared seed buffer.
func (i *Input) Seed() *Seed {
	return i.seed
}

func (i *Input) Size() int {
	return i.seed.Len()
}

// CalculateState does nothing, the values come from the seed.
func (i *Input) CalculateState(layer.Arena) {}

func (i *Input) GetValue(idx int) (float32, bool) {
	if idx < 0 || idx >= len(i.seed.vec) {
		return 0, false
	}
	return i.seed.vec[idx], true
}

// Update does nothing, input layers have no weights.
func (i *Input) Update(layer.Arena, float32, *rand.Rand) {}

// Clone shares the seed.
func (i *Input) Clone() layer.Layer {
	return &Input{seed: i.seed}
}

func (i *Input) Vector() []float32 {
	return i.seed.vec
}
