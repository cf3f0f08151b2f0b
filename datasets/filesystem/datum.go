package filesystem

import "github.com/pkg/errors"

import "github.com/neurlang/climber/datasets/reader"

// Datum builds the record vector from a decoded source.
type Datum interface {
	From(r reader.DataReader) ([]float32, error)
}

// Float32Vector reads N big-endian floats. Extra values are ignored.
type Float32Vector struct {
	N int
}

func (d Float32Vector) From(r reader.DataReader) ([]float32, error) {
	vals := reader.Consume[float32](r, reader.Float32{})
	if len(vals) < d.N {
		return nil, errors.Wrapf(ErrShortRecord, "%d of %d floats", len(vals), d.N)
	}
	return vals[:d.N], nil
}

// Matrix reads N bytes and scales each by 1/256. Extra bytes are ignored.
type Matrix struct {
	N int
}

func (d Matrix) From(r reader.DataReader) ([]float32, error) {
	vals := reader.Consume[uint8](r, reader.Uint8{})
	if len(vals) < d.N {
		return nil, errors.Wrapf(ErrShortRecord, "%d of %d bytes", len(vals), d.N)
	}
	o := make([]float32, d.N)
	for i := range o {
		o[i] = float32(vals[i]) / 256
	}
	return o, nil
}

// DatumByName returns the datum called name ("float32" or "matrix") reading n values.
func DatumByName(name string, n int) (Datum, error) {
	if n <= 0 {
		return nil, errors.Errorf("datum width %d", n)
	}
	switch name {
	case "float32":
		return Float32Vector{N: n}, nil
	case "matrix":
		return Matrix{N: n}, nil
	}
	return nil, &FormatError{Format: name}
}
