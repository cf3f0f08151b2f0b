package reader

import "encoding/binary"
import "math"

// Codec turns a chunk of exactly Width() bytes into a value.
type Codec[T any] interface {
	Width() int
	Decode(chunk []byte) T
}

// Float32 decodes big-endian IEEE-754 single precision values.
type Float32 struct{}

func (Float32) Width() int {
	return 4
}

func (Float32) Decode(chunk []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(chunk))
}

// Float32LE decodes little-endian IEEE-754 single precision values.
type Float32LE struct{}

func (Float32LE) Width() int {
	return 4
}

func (Float32LE) Decode(chunk []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(chunk))
}

// Uint8 passes single bytes through.
type Uint8 struct{}

func (Uint8) Width() int {
	return 1
}

func (Uint8) Decode(chunk []byte) uint8 {
	return chunk[0]
}

// EncodeFloat32 encodes v the way Float32 decodes it.
func EncodeFloat32(v float32) (o [4]byte) {
	binary.BigEndian.PutUint32(o[:], math.Float32bits(v))
	return
}
