package reader

import "io"

// Binary reads chunks sequentially from a byte stream.
type Binary struct {
	src io.Reader
	buf []byte
}

// NewBinary creates a raw binary reader over src.
func NewBinary(src io.Reader) *Binary {
	return &Binary{src: src}
}

// Chunk reads exactly width bytes. A short read ends the sequence.
func (b *Binary) Chunk(width int) ([]byte, bool) {
	if width <= 0 {
		return nil, false
	}
	if cap(b.buf) < width {
		b.buf = make([]byte, width)
	}
	b.buf = b.buf[:width]
	if _, err := io.ReadFull(b.src, b.buf); err != nil {
		return nil, false
	}
	return b.buf, true
}
