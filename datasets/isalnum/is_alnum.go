// Package isalnum implements the IsAlnum Dataset
package isalnum

import "github.com/neurlang/climber/datasets"

// Bits is the width of a sample record.
const Bits = 8

type Sample byte

// Record returns the bits of the character, lowest first, labelled 1 for
// ASCII letters and digits.
func (c Sample) Record() datasets.Record {
	var data = make([]float32, Bits)
	for i := range data {
		data[i] = float32((c >> uint(i)) & 1)
	}
	return datasets.Record{Data: data, Label: c.Output()}
}

func (c Sample) Output() float32 {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return 1
	}
	return 0
}

// Slice returns all 256 byte values.
func Slice() *datasets.Slice {
	s := new(datasets.Slice)
	for i := 0; i < 256; i++ {
		s.Records = append(s.Records, Sample(i).Record())
	}
	return s
}
