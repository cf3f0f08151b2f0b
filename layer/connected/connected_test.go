package connected

import "math/rand"
import "testing"

import "github.com/pkg/errors"

import "github.com/neurlang/climber/activation"
import "github.com/neurlang/climber/layer"
import "github.com/neurlang/climber/layer/input"

type arena []layer.Layer

func (a arena) Layer(n int) layer.Layer {
	return a[n]
}

func chain(t *testing.T, data []float32, sizes ...int) (arena, *input.Seed) {
	seed := input.NewSeed(len(data))
	if err := seed.Put(data); err != nil {
		t.Fatal(err)
	}
	in, err := input.New(seed)
	if err != nil {
		t.Fatal(err)
	}
	a := arena{in}
	prev := len(data)
	for _, size := range sizes {
		a = append(a, MustNew(len(a)-1, size, prev, activation.Identity{}))
		prev = size
	}
	return a, seed
}

func TestWeightedSum(t *testing.T) {
	a, _ := chain(t, []float32{1, 2, 3, 4}, 3)
	out := a[1]
	out.CalculateState(a)
	for i := 0; i < 3; i++ {
		if v, ok := out.GetValue(i); !ok || v != 10 {
			t.Errorf("output %d = %v, %v; want 10", i, v, ok)
		}
	}

	c := out.(*Connected)
	for i := 0; i < c.Size(); i++ {
		for j := 0; j < c.PrevSize(); j++ {
			c.SetWeight(i, j, float32(i-j))
		}
	}
	out.CalculateState(a)
	for i := 0; i < 3; i++ {
		var want float32
		for j := 0; j < 4; j++ {
			want += float32(j+1) * float32(i-j)
		}
		if v, _ := out.GetValue(i); v != want {
			t.Errorf("output %d = %v, want %v", i, v, want)
		}
	}
}

func TestRecursiveState(t *testing.T) {
	a, seed := chain(t, []float32{1, 1}, 3, 1)
	a[2].CalculateState(a)
	if v, _ := a[2].GetValue(0); v != 6 {
		t.Errorf("two layer output = %v, want 6", v)
	}
	seed.Put([]float32{2, 0.5})
	a[2].CalculateState(a)
	if v, _ := a[2].GetValue(0); v != 7.5 {
		t.Errorf("re-seeded output = %v, want 7.5", v)
	}
}

func TestGetValueBounds(t *testing.T) {
	a, _ := chain(t, []float32{1, 2}, 5)
	a[1].CalculateState(a)
	if _, ok := a[1].GetValue(4); !ok {
		t.Error("last index should be present")
	}
	if _, ok := a[1].GetValue(5); ok {
		t.Error("index == Size() must be absent")
	}
	if _, ok := a[1].GetValue(-1); ok {
		t.Error("negative index must be absent")
	}
}

func TestCloneIndependent(t *testing.T) {
	a, _ := chain(t, []float32{1, 2, 3}, 4, 2)
	b := arena{a[0].Clone(), a[1].Clone(), a[2].Clone()}

	rng := rand.New(rand.NewSource(7))
	b[2].Update(b, 0.5, rng)

	for n := 1; n < 3; n++ {
		orig := a[n].(*Connected).Weights()
		for i, w := range orig {
			if w != InitialWeight {
				t.Fatalf("layer %d weight %d changed to %v", n, i, w)
			}
		}
		changed := false
		for _, w := range b[n].(*Connected).Weights() {
			if w != InitialWeight {
				changed = true
			}
		}
		if !changed {
			t.Errorf("layer %d of the mutated clone is unchanged", n)
		}
	}
}

func TestUpdateBounded(t *testing.T) {
	a, _ := chain(t, []float32{1}, 8)
	rng := rand.New(rand.NewSource(1))
	a[1].Update(a, 0.25, rng)
	for _, w := range a[1].(*Connected).Weights() {
		if w < 1-0.25 || w > 1+0.25 {
			t.Errorf("weight %v outside rate bound", w)
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(0, 0, 3, activation.Identity{}); errors.Cause(err) != layer.ErrDimension {
		t.Errorf("zero size gave %v", err)
	}
	if _, err := New(0, 3, 3, nil); err != layer.ErrNilActivation {
		t.Errorf("nil activation gave %v", err)
	}
	c := MustNew(0, 2, 2, activation.Identity{})
	if err := c.SetWeights([]float32{1, 2, 3}); errors.Cause(err) != layer.ErrSize {
		t.Errorf("bad weights gave %v", err)
	}
}

func BenchmarkCalculateState(b *testing.B) {
	seed := input.NewSeed(1024)
	in, _ := input.New(seed)
	a := arena{in, MustNew(0, 128, 1024, activation.Linear())}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a[1].CalculateState(a)
	}
}
