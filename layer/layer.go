// Package layer defines the layer and arena interfaces of the feedforward network
package layer

import "math/rand"

// Arena resolves layer indexes. Layers refer to their predecessor by index
// into the arena that owns them, never by pointer.
type Arena interface {

	// Layer returns the n-th layer of the arena.
	Layer(n int) Layer
}

// Layer is one fixed-width node of the network.
type Layer interface {

	// Size reports the fixed output width.
	Size() int

	// CalculateState recomputes the cached outputs. Layers with a predecessor
	// calculate the predecessor first.
	CalculateState(a Arena)

	// GetValue returns the output at idx; false when idx is outside [0, Size()).
	GetValue(idx int) (float32, bool)

	// Update perturbs the weights of the layer and of every predecessor by
	// uniform noise in [-1, 1) scaled by rate.
	Update(a Arena, rate float32, rng *rand.Rand)

	// Clone returns an independent copy. Shared external buffers stay shared.
	Clone() Layer
}

// Vector is implemented by layers that expose their outputs as one slice.
// The slice must not be modified by the caller.
type Vector interface {
	Vector() []float32
}

// Error is a sentinel error of the layer packages.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrDimension     = Error{"layer dimension must be positive"}
	ErrNilActivation = Error{"activation is nil"}
	ErrSize          = Error{"buffer size does not match the layer"}
)
