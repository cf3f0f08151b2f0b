package trainer

import "github.com/chewxy/math32"

// Loss compares a network output against the record label.
type Loss func(output, label float32) float32

// Difference is the signed error output - label.
func Difference(output, label float32) float32 {
	return output - label
}

// Absolute is the absolute error.
func Absolute(output, label float32) float32 {
	return math32.Abs(output - label)
}

// Squared is the squared error.
func Squared(output, label float32) float32 {
	d := output - label
	return d * d
}

// LossByName returns the loss registered under name.
func LossByName(name string) (Loss, bool) {
	switch name {
	case "difference", "":
		return Difference, true
	case "absolute":
		return Absolute, true
	case "squared":
		return Squared, true
	}
	return nil, false
}
