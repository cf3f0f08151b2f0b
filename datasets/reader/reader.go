// Package reader decodes byte sources into sequences of fixed-width values
package reader

import "io"
import "path/filepath"
import "strings"

import "github.com/pkg/errors"

// Error is a sentinel error of the reader package.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrImageDecode   = Error{"image decode failed"}
	ErrUnknownFormat = Error{"unknown record format"}
)

// DataReader serves a source as consecutive chunks of a fixed width.
type DataReader interface {

	// Chunk returns the next width bytes. It reports false once fewer than
	// width bytes remain; the trailing partial chunk is never returned.
	// The returned slice is only valid until the next call.
	Chunk(width int) ([]byte, bool)
}

// Consume decodes every full chunk of r with codec c.
func Consume[T any](r DataReader, c Codec[T]) (o []T) {
	w := c.Width()
	for {
		chunk, ok := r.Chunk(w)
		if !ok {
			return
		}
		o = append(o, c.Decode(chunk))
	}
}

// Format tags the decoder variant used for a source.
type Format byte

const (
	Raw Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case PNG:
		return "png"
	}
	return "unknown"
}

// Detect picks the format from the file extension. Paths ending in .png are
// images, everything else is raw binary.
func Detect(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return PNG
	}
	return Raw
}

// Open wraps src in the decoder variant for format f.
func Open(f Format, src io.Reader) (DataReader, error) {
	switch f {
	case Raw:
		return NewBinary(src), nil
	case PNG:
		img, err := NewImage(src)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "format %d", f)
}
