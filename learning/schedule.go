// Package learning implements the learning rate schedule and the hyper parameters of training
package learning

// Schedule carries the learning rate used to scale mutation noise. It is a
// value type: Advance returns the next generation's schedule and leaves the
// receiver untouched.
type Schedule struct {
	initial float32
	current float32
	decay   float32
}

// New creates a schedule starting at initial and decaying by decay each
// generation. Bounds are not enforced, a decay >= 1 grows the rate.
func New(initial, decay float32) Schedule {
	return Schedule{
		initial: initial,
		current: initial,
		decay:   decay,
	}
}

// Advance returns the schedule of the next generation.
func (s Schedule) Advance() Schedule {
	s.current *= s.decay
	return s
}

// Rate returns the current learning rate.
func (s Schedule) Rate() float32 {
	return s.current
}

// Initial returns the starting learning rate.
func (s Schedule) Initial() float32 {
	return s.initial
}

// Decay returns the per generation decay factor.
func (s Schedule) Decay() float32 {
	return s.decay
}
