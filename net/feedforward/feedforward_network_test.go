package feedforward

import "bytes"
import "compress/lzw"
import "encoding/json"
import "math/rand"
import "path/filepath"
import "testing"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/layer/connected"
import "github.com/neurlang/climber/layer/input"
import "github.com/neurlang/climber/learning"

func build(t *testing.T, in int, sizes ...int) *FeedforwardNetwork {
	var net FeedforwardNetwork
	if err := net.NewInput(input.NewSeed(in)); err != nil {
		t.Fatal(err)
	}
	for i, size := range sizes {
		var act activation.Activation = activation.Linear()
		if i == len(sizes)-1 {
			act = activation.Identity{}
		}
		if err := net.NewLayer(size, act); err != nil {
			t.Fatal(err)
		}
	}
	return &net
}

func TestForward(t *testing.T) {
	net := build(t, 4, 3, 1)
	out, err := net.Forward([]float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if out != 30 {
		t.Errorf("forward = %v, want 30", out)
	}
	if _, ok := net.Output(1); ok {
		t.Error("output index 1 of a width 1 layer must be absent")
	}
	if _, err := net.Forward([]float32{1}); err == nil {
		t.Error("short input accepted")
	}
	if net.LenWeights() != 4*3+3 {
		t.Errorf("LenWeights = %d", net.LenWeights())
	}
}

func TestBuildErrors(t *testing.T) {
	var net FeedforwardNetwork
	if err := net.NewLayer(3, activation.Identity{}); err != ErrNoInput {
		t.Errorf("layer before input gave %v", err)
	}
	net.NewInput(input.NewSeed(2))
	if err := net.NewInput(input.NewSeed(2)); err != ErrHasInput {
		t.Errorf("second input gave %v", err)
	}
	if err := net.NewLayer(0, activation.Identity{}); err == nil {
		t.Error("zero width layer accepted")
	}
}

func TestCloneMutateIndependent(t *testing.T) {
	net := build(t, 8, 4, 1)
	a := net.Clone()
	b := net.Clone()
	rng := rand.New(rand.NewSource(3))
	b.Update(0.1, rng)

	if !a.Equal(net) {
		t.Error("mutating one clone changed the other")
	}
	if a.Equal(b) {
		t.Error("mutated clone equals the original")
	}
	if a.Seed() != b.Seed() {
		t.Error("clones must share the seed buffer")
	}

	m := Mutate(net, learning.New(0.5, 0.9), rng)
	if !net.Equal(a) {
		t.Error("Mutate modified its argument")
	}
	if m.Equal(net) {
		t.Error("Mutate returned an unchanged network")
	}
}

func TestMutateZeroRate(t *testing.T) {
	net := build(t, 3, 2, 1)
	m := Mutate(net, learning.New(0, 0.5), rand.New(rand.NewSource(1)))
	if !m.Equal(net) {
		t.Error("zero rate changed weights")
	}
}

func TestRebind(t *testing.T) {
	net := build(t, 2, 1)
	seed := input.NewSeed(2)
	other, err := net.Rebind(seed)
	if err != nil {
		t.Fatal(err)
	}
	if other.Seed() == net.Seed() {
		t.Fatal("rebind kept the old seed")
	}
	seed.Put([]float32{1, 1})
	net.Seed().Put([]float32{5, 5})
	other.CalculateState()
	if v, _ := other.Output(0); v != 2 {
		t.Errorf("rebound output = %v, want 2", v)
	}
	if _, err := net.Rebind(input.NewSeed(3)); err == nil {
		t.Error("rebind to a wrong size seed accepted")
	}
}

func TestCompressedWeights(t *testing.T) {
	net := build(t, 5, 3, 1)
	net.Update(0.7, rand.New(rand.NewSource(11)))

	var buf bytes.Buffer
	if err := net.WriteCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	if net.Run() == "" {
		t.Error("writing did not stamp a run id")
	}
	loaded := build(t, 5, 3, 1)
	if err := loaded.ReadCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(net) {
		t.Error("weights differ after reload")
	}
	if loaded.Run() != net.Run() {
		t.Errorf("run id %q, want %q", loaded.Run(), net.Run())
	}

	name := filepath.Join(t.TempDir(), "model.json.lzw")
	if err := net.WriteCompressedWeightsToFile(name); err != nil {
		t.Fatal(err)
	}
	wrong := build(t, 5, 2, 1)
	if err := wrong.ReadCompressedWeightsFromFile(name); errors.Cause(err) != ErrShapeMismatch {
		t.Errorf("shape mismatch gave %v", err)
	}
}

func TestInitialWeights(t *testing.T) {
	net := build(t, 2, 2)
	c := net.Layer(1).(*connected.Connected)
	for _, w := range c.Weights() {
		if w != connected.InitialWeight {
			t.Fatalf("initial weight %v", w)
		}
	}
}

func TestNew(t *testing.T) {
	net, err := New(1024, []int{128}, activation.Linear(), activation.Identity{})
	if err != nil {
		t.Fatal(err)
	}
	if net.Len() != 3 || net.Layer(1).Size() != 128 || net.Layer(2).Size() != 1 {
		t.Fatalf("shape %d layers", net.Len())
	}
	if _, err := New(0, nil, nil, activation.Identity{}); err == nil {
		t.Error("zero inputs accepted")
	}
	if _, err := New(2, []int{3}, nil, activation.Identity{}); err == nil {
		t.Error("nil hidden activation accepted")
	}
}

func TestReadCompressedNetwork(t *testing.T) {
	net, err := New(6, []int{4, 3}, activation.Tanh{}, activation.Identity{})
	if err != nil {
		t.Fatal(err)
	}
	net.Update(0.5, rand.New(rand.NewSource(5)))
	name := filepath.Join(t.TempDir(), "model.json.lzw")
	if err := net.WriteCompressedWeightsToFile(name); err != nil {
		t.Fatal(err)
	}
	loaded, err := ReadCompressedNetworkFromFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(net) || loaded.Run() != net.Run() {
		t.Fatal("rebuilt network differs")
	}
	if _, ok := loaded.Layer(1).(*connected.Connected).Activation().(activation.Tanh); !ok {
		t.Error("hidden activation not restored")
	}
	data := []float32{1, -1, 0.5, 0, 2, -0.25}
	want, _ := net.Forward(data)
	if got, err := loaded.Forward(data); err != nil || got != want {
		t.Errorf("forward %v, %v, want %v", got, err, want)
	}
}

func writeDoc(t *testing.T, doc networkJson) *bytes.Buffer {
	var buf bytes.Buffer
	lw := lzw.NewWriter(&buf, lzw.LSB, 8)
	if err := json.NewEncoder(lw).Encode(doc); err != nil {
		t.Fatal(err)
	}
	lw.Close()
	return &buf
}

func TestTruncatedWeights(t *testing.T) {
	net := build(t, 2, 2, 1)
	doc := networkJson{Input: 2, Layers: []layerJson{
		{Size: 2, Prev: 0, Activation: "linear", Weights: []float32{5, 5, 5, 5}},
		{Size: 1, Prev: 1, Activation: "identity", Weights: []float32{5}},
	}}
	if err := net.ReadCompressedWeights(writeDoc(t, doc)); errors.Cause(err) != ErrShapeMismatch {
		t.Fatalf("truncated layer gave %v", err)
	}
	for _, w := range net.Layer(1).(*connected.Connected).Weights() {
		if w != connected.InitialWeight {
			t.Fatal("first layer overwritten by a rejected file")
		}
	}
	if _, err := ReadCompressedNetwork(writeDoc(t, doc)); errors.Cause(err) != ErrShapeMismatch {
		t.Errorf("rebuilding a truncated model gave %v", err)
	}
	doc.Layers[1].Weights = []float32{5, 5}
	doc.Layers[1].Activation = "softplus"
	if _, err := ReadCompressedNetwork(writeDoc(t, doc)); errors.Cause(err) != activation.ErrUnknownActivation {
		t.Errorf("unknown activation gave %v", err)
	}
}
