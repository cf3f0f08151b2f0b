// Package connected implements a fully connected layer with a single predecessor
package connected

import "math/rand"

import "gonum.org/v1/gonum/blas"
import "gonum.org/v1/gonum/blas/blas32"
import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/layer"

// InitialWeight is the value every weight starts from.
const InitialWeight = 1.0

// Connected holds a Size x PrevSize weight matrix (row-major) over the
// outputs of the predecessor at index prev.
type Connected struct {
	prev    int
	weights blas32.General
	cache   []float32
	gather  []float32
	act     activation.Activation
}

// MustNew creates a new connected layer or panics
func MustNew(prev, size, prevSize int, act activation.Activation) *Connected {
	o, err := New(prev, size, prevSize, act)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a connected layer of size outputs over the layer at index prev,
// which must have prevSize outputs. All weights start at InitialWeight.
func New(prev, size, prevSize int, act activation.Activation) (*Connected, error) {
	if size <= 0 || prevSize <= 0 {
		return nil, errors.Wrapf(layer.ErrDimension, "connected layer %dx%d", size, prevSize)
	}
	if prev < 0 {
		return nil, errors.Wrapf(layer.ErrDimension, "predecessor index %d", prev)
	}
	if act == nil {
		return nil, layer.ErrNilActivation
	}
	data := make([]float32, size*prevSize)
	for i := range data {
		data[i] = InitialWeight
	}
	return &Connected{
		prev: prev,
		weights: blas32.General{
			Rows:   size,
			Cols:   prevSize,
			Stride: prevSize,
			Data:   data,
		},
		cache: make([]float32, size),
		act:   act,
	}, nil
}

// Prev returns the arena index of the predecessor.
func (c *Connected) Prev() int {
	return c.prev
}

// PrevSize returns the expected predecessor width.
func (c *Connected) PrevSize() int {
	return c.weights.Cols
}

// Activation returns the activation of the layer.
func (c *Connected) Activation() activation.Activation {
	return c.act
}

func (c *Connected) Size() int {
	return c.weights.Rows
}

// Weight returns w[i][j].
func (c *Connected) Weight(i, j int) float32 {
	return c.weights.Data[i*c.weights.Stride+j]
}

// SetWeight sets w[i][j].
func (c *Connected) SetWeight(i, j int, v float32) {
	c.weights.Data[i*c.weights.Stride+j] = v
}

// Weights returns the row-major weights. The slice aliases the layer.
func (c *Connected) Weights() []float32 {
	return c.weights.Data
}

// SetWeights copies row-major weights into the layer.
func (c *Connected) SetWeights(w []float32) error {
	if len(w) != len(c.weights.Data) {
		return errors.Wrapf(layer.ErrSize, "%d weights, got %d", len(c.weights.Data), len(w))
	}
	copy(c.weights.Data, w)
	return nil
}

// CalculateState calculates the predecessor, then the activated weighted sums.
func (c *Connected) CalculateState(a layer.Arena) {
	prev := a.Layer(c.prev)
	prev.CalculateState(a)

	x := c.input(prev)
	y := blas32.Vector{N: len(c.cache), Inc: 1, Data: c.cache}
	blas32.Gemv(blas.NoTrans, 1, c.weights, blas32.Vector{N: len(x), Inc: 1, Data: x}, 0, y)
	for i, v := range c.cache {
		c.cache[i] = c.act.Activate(v)
	}
}

// input returns the predecessor outputs as one slice of PrevSize floats.
func (c *Connected) input(prev layer.Layer) []float32 {
	if v, ok := prev.(layer.Vector); ok {
		if x := v.Vector(); len(x) == c.weights.Cols {
			return x
		}
	}
	if c.gather == nil {
		c.gather = make([]float32, c.weights.Cols)
	}
	for j := range c.gather {
		val, ok := prev.GetValue(j)
		if !ok {
			panic(errors.Wrapf(layer.ErrSize, "predecessor %d has no output %d", c.prev, j).Error())
		}
		c.gather[j] = val
	}
	return c.gather
}

func (c *Connected) GetValue(idx int) (float32, bool) {
	if idx < 0 || idx >= len(c.cache) {
		return 0, false
	}
	return c.cache[idx], true
}

// Vector returns the cached outputs.
func (c *Connected) Vector() []float32 {
	return c.cache
}

// Update mutates the predecessor chain first, then every weight of c.
func (c *Connected) Update(a layer.Arena, rate float32, rng *rand.Rand) {
	a.Layer(c.prev).Update(a, rate, rng)
	for i := range c.weights.Data {
		c.weights.Data[i] += (2*rng.Float32() - 1) * rate
	}
}

// Clone deep copies the weights and the cache.
func (c *Connected) Clone() layer.Layer {
	o := *c
	o.weights.Data = append([]float32(nil), c.weights.Data...)
	o.cache = append([]float32(nil), c.cache...)
	o.gather = nil
	return &o
}
