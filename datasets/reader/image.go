package reader

import "bytes"
import "image"
import "image/png"
import "io"

import "github.com/pkg/errors"

// Image serves the samples of a decoded PNG as a flat stream, in the
// layout stored in the file: 1 byte per pixel for gray and palette images,
// 2 for gray with alpha, 3 for RGB and 4 for RGBA. 16-bit images have two
// big-endian bytes per sample. Bit depths below 8 give one byte per pixel.
type Image struct {
	buffer  []byte
	current int
}

// colorGrayAlpha is the IHDR color type of gray images with alpha, which
// the decoder widens to NRGBA.
const colorGrayAlpha = 4

// ihdrColorType is the offset of the color type byte: signature, chunk
// length and type, width, height and bit depth come first.
const ihdrColorType = 8 + 4 + 4 + 4 + 4 + 1

// NewImage decodes the whole PNG up front. A decode failure is an error for
// the whole source.
func NewImage(src io.Reader) (*Image, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(ErrImageDecode, err.Error())
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(ErrImageDecode, err.Error())
	}
	buffer, err := samples(img, raw[ihdrColorType])
	if err != nil {
		return nil, err
	}
	return &Image{buffer: buffer}, nil
}

// NewImageBytes serves an already decoded pixel buffer.
func NewImageBytes(buffer []byte) *Image {
	return &Image{buffer: buffer}
}

func samples(img image.Image, colorType byte) ([]byte, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	switch m := img.(type) {
	case *image.Gray:
		return channels(m.Pix, m.Stride, w, h, 1, 0), nil
	case *image.Gray16:
		return channels(m.Pix, m.Stride, w, h, 2, 0, 1), nil
	case *image.Paletted:
		return channels(m.Pix, m.Stride, w, h, 1, 0), nil
	case *image.RGBA:
		return channels(m.Pix, m.Stride, w, h, 4, 0, 1, 2), nil
	case *image.RGBA64:
		return channels(m.Pix, m.Stride, w, h, 8, 0, 1, 2, 3, 4, 5), nil
	case *image.NRGBA:
		if colorType == colorGrayAlpha {
			return channels(m.Pix, m.Stride, w, h, 4, 0, 3), nil
		}
		return channels(m.Pix, m.Stride, w, h, 4, 0, 1, 2, 3), nil
	case *image.NRGBA64:
		if colorType == colorGrayAlpha {
			return channels(m.Pix, m.Stride, w, h, 8, 0, 1, 6, 7), nil
		}
		return channels(m.Pix, m.Stride, w, h, 8, 0, 1, 2, 3, 4, 5, 6, 7), nil
	}
	return nil, errors.Wrapf(ErrImageDecode, "unsupported pixel type %T", img)
}

// channels copies the bytes at offsets keep of every pixel, dropping row padding.
func channels(pix []byte, stride, w, h, pixel int, keep ...int) []byte {
	o := make([]byte, 0, w*h*len(keep))
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*pixel]
		for x := 0; x < w; x++ {
			for _, k := range keep {
				o = append(o, row[x*pixel+k])
			}
		}
	}
	return o
}

// Len returns the number of unread bytes.
func (i *Image) Len() int {
	return len(i.buffer) - i.current
}

// Chunk returns the next width bytes of the pixel buffer.
func (i *Image) Chunk(width int) ([]byte, bool) {
	if width <= 0 || len(i.buffer)-i.current < width {
		return nil, false
	}
	chunk := i.buffer[i.current : i.current+width]
	i.current += width
	return chunk, true
}
