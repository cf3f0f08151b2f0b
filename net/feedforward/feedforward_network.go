// Package feedforward implements a feedforward network type
package feedforward

import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/layer"
import "github.com/neurlang/climber/layer/connected"
import "github.com/neurlang/climber/layer/input"
import "github.com/neurlang/climber/learning"

// Error is a sentinel error of the feedforward package.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrNoInput       = Error{"network has no input layer"}
	ErrHasInput      = Error{"network already has an input layer"}
	ErrNoOutput      = Error{"network produced no output"}
	ErrShapeMismatch = Error{"stored weights do not match the network shape"}
)

// FeedforwardNetwork is an arena of layers. Layer 0 is the input layer, each
// following layer is connected to the one before it and the last layer is the
// output. Layers refer to their predecessor by index, so cloning the arena
// clones the whole chain.
type FeedforwardNetwork struct {
	layers []layer.Layer
	seed   *input.Seed
	run    string
}

// NewInput adds the input layer reading from seed. It must be the first layer.
func (f *FeedforwardNetwork) NewInput(seed *input.Seed) error {
	if len(f.layers) != 0 {
		return ErrHasInput
	}
	in, err := input.New(seed)
	if err != nil {
		return errors.Wrap(err, "input layer")
	}
	f.layers = append(f.layers, in)
	f.seed = seed
	return nil
}

// NewLayer adds a connected layer of size outputs on top of the current last layer.
func (f *FeedforwardNetwork) NewLayer(size int, act activation.Activation) error {
	if len(f.layers) == 0 {
		return ErrNoInput
	}
	prev := len(f.layers) - 1
	l, err := connected.New(prev, size, f.layers[prev].Size(), act)
	if err != nil {
		return errors.Wrapf(err, "layer %d", len(f.layers))
	}
	f.layers = append(f.layers, l)
	return nil
}

// New builds a network reading inputs values through the hidden layer sizes
// into a single output. The hidden layers share one activation.
func New(inputs int, hidden []int, hiddenAct, outputAct activation.Activation) (*FeedforwardNetwork, error) {
	var f FeedforwardNetwork
	if err := f.NewInput(input.NewSeed(inputs)); err != nil {
		return nil, err
	}
	for _, size := range hidden {
		if err := f.NewLayer(size, hiddenAct); err != nil {
			return nil, err
		}
	}
	if err := f.NewLayer(1, outputAct); err != nil {
		return nil, err
	}
	return &f, nil
}

// MustNewLayer is NewLayer that panics on error.
func (f *FeedforwardNetwork) MustNewLayer(size int, act activation.Activation) {
	if err := f.NewLayer(size, act); err != nil {
		panic(err.Error())
	}
}

// Len returns the number of layers, the input layer included.
func (f *FeedforwardNetwork) Len() int {
	return len(f.layers)
}

// Layer returns the n-th layer. The network is the arena of its layers.
func (f *FeedforwardNetwork) Layer(n int) layer.Layer {
	return f.layers[n]
}

// LenWeights returns the number of mutable weights in the network.
func (f *FeedforwardNetwork) LenWeights() (o int) {
	for _, l := range f.layers {
		if c, ok := l.(*connected.Connected); ok {
			o += len(c.Weights())
		}
	}
	return
}

// Seed returns the seed buffer read by the input layer.
func (f *FeedforwardNetwork) Seed() *input.Seed {
	return f.seed
}

// Run returns the run id stamped into saved weights.
func (f *FeedforwardNetwork) Run() string {
	return f.run
}

// SetRun sets the run id stamped into saved weights.
func (f *FeedforwardNetwork) SetRun(run string) {
	f.run = run
}

// CalculateState runs the forward pass from the output layer down to the input.
func (f *FeedforwardNetwork) CalculateState() {
	if len(f.layers) == 0 {
		return
	}
	f.layers[len(f.layers)-1].CalculateState(f)
}

// Output returns the idx-th value of the output layer.
func (f *FeedforwardNetwork) Output(idx int) (float32, bool) {
	if len(f.layers) == 0 {
		return 0, false
	}
	return f.layers[len(f.layers)-1].GetValue(idx)
}

// Forward seeds data, runs the forward pass and returns the first output.
func (f *FeedforwardNetwork) Forward(data []float32) (float32, error) {
	if f.seed == nil {
		return 0, ErrNoInput
	}
	if err := f.seed.Put(data); err != nil {
		return 0, err
	}
	f.CalculateState()
	out, ok := f.Output(0)
	if !ok {
		return 0, ErrNoOutput
	}
	return out, nil
}

// Update mutates every weight of the network in place.
func (f *FeedforwardNetwork) Update(rate float32, rng *rand.Rand) {
	if len(f.layers) == 0 {
		return
	}
	f.layers[len(f.layers)-1].Update(f, rate, rng)
}

// Clone returns a deep copy sharing only the seed buffer.
func (f *FeedforwardNetwork) Clone() *FeedforwardNetwork {
	o := &FeedforwardNetwork{
		layers: make([]layer.Layer, len(f.layers)),
		seed:   f.seed,
		run:    f.run,
	}
	for i, l := range f.layers {
		o.layers[i] = l.Clone()
	}
	return o
}

// Rebind returns a deep copy reading from another seed of the same size.
func (f *FeedforwardNetwork) Rebind(seed *input.Seed) (*FeedforwardNetwork, error) {
	if f.seed == nil {
		return nil, ErrNoInput
	}
	if seed == nil || seed.Len() != f.seed.Len() {
		return nil, errors.Wrap(layer.ErrSize, "rebind seed")
	}
	o := f.Clone()
	in, err := input.New(seed)
	if err != nil {
		return nil, err
	}
	o.layers[0] = in
	o.seed = seed
	return o, nil
}

// Mutate returns a mutated copy of f, leaving f untouched. The noise is
// scaled by the current rate of s.
func Mutate(f *FeedforwardNetwork, s learning.Schedule, rng *rand.Rand) *FeedforwardNetwork {
	o := f.Clone()
	o.Update(s.Rate(), rng)
	return o
}

// Equal reports whether both networks have the same shape and bit-identical weights.
func (f *FeedforwardNetwork) Equal(g *FeedforwardNetwork) bool {
	if len(f.layers) != len(g.layers) {
		return false
	}
	for i := range f.layers {
		if f.layers[i].Size() != g.layers[i].Size() {
			return false
		}
		a, aok := f.layers[i].(*connected.Connected)
		b, bok := g.layers[i].(*connected.Connected)
		if aok != bok {
			return false
		}
		if !aok {
			continue
		}
		wa, wb := a.Weights(), b.Weights()
		if len(wa) != len(wb) {
			return false
		}
		for j := range wa {
			if wa[j] != wb[j] {
				return false
			}
		}
	}
	return true
}
