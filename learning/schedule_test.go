package learning

import "testing"

import "github.com/pkg/errors"

func TestScheduleAdvance(t *testing.T) {
	s := New(1, 0.5)
	next := s.Advance()
	if s.Rate() != 1 {
		t.Errorf("Advance modified the receiver: %v", s.Rate())
	}
	want := []float32{0.5, 0.25, 0.125, 0.0625}
	for i, w := range want {
		if next.Rate() != w {
			t.Errorf("step %d rate %v, want %v", i+1, next.Rate(), w)
		}
		if next.Initial() != 1 || next.Decay() != 0.5 {
			t.Errorf("step %d changed initial/decay: %v %v", i+1, next.Initial(), next.Decay())
		}
		next = next.Advance()
	}
}

func TestScheduleGrows(t *testing.T) {
	s := New(1, 2).Advance().Advance()
	if s.Rate() != 4 {
		t.Errorf("rate %v, want 4", s.Rate())
	}
}

func TestValidate(t *testing.T) {
	h := Defaults()
	if err := h.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := []func(*HyperParameters){
		func(h *HyperParameters) { h.Explore = 1.5 },
		func(h *HyperParameters) { h.Rate = -1 },
		func(h *HyperParameters) { h.ValidationShare = 2 },
		func(h *HyperParameters) { h.MaxGenerations = -3 },
	}
	for i, f := range bad {
		h := Defaults()
		f(&h)
		if err := h.Validate(); errors.Cause(err) != ErrHyperParameter {
			t.Errorf("case %d: got %v", i, err)
		}
	}
}

func TestRandSeeded(t *testing.T) {
	h := Defaults()
	h.Seed = 42
	a, b := h.Rand(), h.Rand()
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("equal seeds gave different streams")
		}
	}
}
