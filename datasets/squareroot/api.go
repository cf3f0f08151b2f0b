package squareroot

import "math"

import "github.com/neurlang/climber/datasets"

// Sample is one integer whose square root is learned.
type Sample uint32

// Record scales the sample and its root by the size of the range.
func (s Sample) Record(limit uint32) datasets.Record {
	return datasets.Record{
		Data:  []float32{float32(s) / float32(limit)},
		Label: float32(math.Sqrt(float64(s))) / float32(math.Sqrt(float64(limit))),
	}
}

func slice(bits uint) *datasets.Slice {
	limit := uint32(1) << bits
	s := new(datasets.Slice)
	for i := uint32(0); i < limit; i++ {
		s.Records = append(s.Records, Sample(i).Record(limit))
	}
	return s
}

func Small() *datasets.Slice {
	return slice(8)
}

func Medium() *datasets.Slice {
	return slice(10)
}

func Big() *datasets.Slice {
	return slice(12)
}

func Huge() *datasets.Slice {
	return slice(14)
}
