package input

import "testing"

import "github.com/pkg/errors"
import "github.com/neurlang/climber/layer"

func TestGetValueBounds(t *testing.T) {
	seed := NewSeed(4)
	if err := seed.Put([]float32{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	in, err := New(seed)
	if err != nil {
		t.Fatal(err)
	}
	for idx := 0; idx < in.Size(); idx++ {
		v, ok := in.GetValue(idx)
		if !ok || v != float32(idx+1) {
			t.Errorf("GetValue(%d) = %v, %v", idx, v, ok)
		}
	}
	for _, idx := range []int{-1, in.Size(), in.Size() + 1} {
		if _, ok := in.GetValue(idx); ok {
			t.Errorf("GetValue(%d) should be absent", idx)
		}
	}
}

func TestSeedShared(t *testing.T) {
	seed := NewSeed(2)
	in, _ := New(seed)
	clone := in.Clone()
	seed.Put([]float32{5, 6})
	if v, _ := clone.GetValue(1); v != 6 {
		t.Errorf("clone does not see the re-seeded buffer, got %v", v)
	}
	if err := seed.Put([]float32{1}); errors.Cause(err) != layer.ErrSize {
		t.Errorf("short put gave %v", err)
	}
	if _, err := New(NewSeed(0)); err != layer.ErrDimension {
		t.Errorf("empty seed gave %v", err)
	}
}
