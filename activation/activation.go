// Package activation defines the stateless transform applied by every connected layer
package activation

import "github.com/chewxy/math32"

// Activation is a pure float32 transform. Implementations hold no state
// that changes during training.
type Activation interface {

	// Activate maps the weighted sum x to the layer output.
	Activate(x float32) float32
}

// DefaultLimit is the saturation bound of Linear.
const DefaultLimit = 1000

// Identity returns its input unchanged. It never saturates.
type Identity struct{}

// Activate returns x.
func (Identity) Activate(x float32) float32 {
	return x
}

// Clipped is linear inside [-Limit, Limit] and saturates outside of it.
type Clipped struct {
	Limit float32
}

// Linear returns the clipped linear activation with the default limit.
func Linear() Clipped {
	return Clipped{Limit: DefaultLimit}
}

// Activate clamps x to [-Limit, Limit].
func (c Clipped) Activate(x float32) float32 {
	if x > c.Limit {
		return c.Limit
	}
	if x < -c.Limit {
		return -c.Limit
	}
	return x
}

// Tanh saturates to the open range (-1, 1).
type Tanh struct{}

// Activate computes tanh(x).
func (Tanh) Activate(x float32) float32 {
	return math32.Tanh(x)
}

// Sigmoid saturates to the open range (0, 1).
type Sigmoid struct{}

// Activate computes 1 / (1 + e^-x).
func (Sigmoid) Activate(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// ReLU clips negative values to 0; the range is [0, +Inf).
type ReLU struct{}

// Activate computes max(0, x).
func (ReLU) Activate(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}
