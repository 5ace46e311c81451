package pix

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"
)

// Image is a 2-D grid of pixels stored as a flat row-major,
// channel-interleaved buffer of length width*height*channels.
//
// An image constructed with New or FromData exclusively owns its buffer. An
// image constructed with View shares caller-owned memory instead; the caller
// must keep that memory alive for as long as the view is used.
type Image[T Value] struct {
	width  int
	height int
	model  Model
	data   []T
	view   bool
}

// New allocates a zero-initialized image. Zero or negative dimensions fail
// with ErrInvalidDimensions.
func New[T Value](width, height int, model Model) (*Image[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image[T]{
		width:  width,
		height: height,
		model:  model,
		data:   make([]T, width*height*model.Channels()),
	}, nil
}

// FromData builds an owning image from a row-major, channel-interleaved
// buffer, copying it. The buffer length must equal
// width*height*model.Channels().
func FromData[T Value](data []T, width, height int, model Model) (*Image[T], error) {
	im, err := View(data, width, height, model)
	if err != nil {
		return nil, err
	}
	return im.Clone(), nil
}

// View builds a non-owning image over caller-supplied memory. The view
// never copies or reallocates the buffer, and it must not outlive the
// memory it wraps; that lifetime is the caller's contract, not a runtime
// checked invariant.
func View[T Value](data []T, width, height int, model Model) (*Image[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := width * height * model.Channels(); len(data) != want {
		return nil, fmt.Errorf("%w: buffer has %d values, %dx%d %s needs %d",
			ErrShapeMismatch, len(data), width, height, model, want)
	}
	return &Image[T]{width: width, height: height, model: model, data: data, view: true}, nil
}

// Width returns the image width in pixels.
func (im *Image[T]) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image[T]) Height() int { return im.height }

// Model returns the image's color model.
func (im *Image[T]) Model() Model { return im.model }

// Channels returns the number of channels per pixel.
func (im *Image[T]) Channels() int { return im.model.Channels() }

// Data returns the backing buffer in row-major, channel-interleaved order.
// For views this is the caller's memory.
func (im *Image[T]) Data() []T { return im.data }

// IsView reports whether the image wraps externally owned memory.
func (im *Image[T]) IsView() bool { return im.view }

// Clone returns an owning copy of the image. Cloning a view detaches it
// from the external memory.
func (im *Image[T]) Clone() *Image[T] {
	data := make([]T, len(im.data))
	copy(data, im.data)
	return &Image[T]{width: im.width, height: im.height, model: im.model, data: data}
}

func (im *Image[T]) inBounds(x, y int) bool {
	return x >= 0 && x < im.width && y >= 0 && y < im.height
}

func (im *Image[T]) index(x, y int) int {
	return (y*im.width + x) * im.model.Channels()
}

// At returns a copy of the pixel at (x, y). Coordinates outside
// [0, width) x [0, height) fail with ErrOutOfBounds.
func (im *Image[T]) At(x, y int) (Pixel[T], error) {
	if !im.inBounds(x, y) {
		return Pixel[T]{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, im.width, im.height)
	}
	px := NewPixel[T](im.model)
	copy(px.data, im.data[im.index(x, y):])
	return px, nil
}

// SetPixel writes a pixel at (x, y). It fails with ErrOutOfBounds for
// coordinates beyond the image extent and ErrShapeMismatch when the pixel's
// model disagrees with the image's.
func (im *Image[T]) SetPixel(x, y int, px Pixel[T]) error {
	if !im.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, im.width, im.height)
	}
	if px.model != im.model || px.Channels() != im.Channels() {
		return fmt.Errorf("%w: %s pixel in %s image", ErrShapeMismatch, px.model, im.model)
	}
	copy(im.data[im.index(x, y):im.index(x, y)+im.Channels()], px.data)
	return nil
}

// NormAt returns the normalized value of channel c at (x, y). Coordinates
// are clamped to the image extent, which gives filters replicated-edge
// sampling for free; a channel index beyond the model's channel count
// returns 0.
func (im *Image[T]) NormAt(x, y, c int) float64 {
	if c < 0 || c >= im.Channels() {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= im.width {
		x = im.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= im.height {
		y = im.height - 1
	}
	return Norm(im.data[im.index(x, y)+c])
}

// SetNorm writes the normalized value f to channel c at (x, y), rounding
// and saturating according to T. Out-of-range coordinates are ignored.
func (im *Image[T]) SetNorm(x, y, c int, f float64) {
	if c < 0 || c >= im.Channels() || !im.inBounds(x, y) {
		return
	}
	im.data[im.index(x, y)+c] = Denorm[T](f)
}

// Convert returns a new image of the same numeric type under the target
// color model. The conversion is total and never fails.
func (im *Image[T]) Convert(to Model) *Image[T] {
	return ConvertImage[T](im, to)
}

// ConvertImage produces a new image applying both the numeric type and
// color model conversion to every pixel. The per-pixel work is independent,
// so the flat buffer is processed in parallel row ranges.
func ConvertImage[D, S Value](src *Image[S], to Model) *Image[D] {
	dst := &Image[D]{
		width:  src.width,
		height: src.height,
		model:  to,
		data:   make([]D, src.width*src.height*to.Channels()),
	}
	sch, dch := src.Channels(), to.Channels()
	parallel.Line(src.height, func(start, end int) {
		var sv, dv [4]float64
		for y := start; y < end; y++ {
			si := y * src.width * sch
			di := y * src.width * dch
			for x := 0; x < src.width; x++ {
				for c := 0; c < sch; c++ {
					sv[c] = Norm(src.data[si+c])
				}
				ConvertChannels(src.model, to, sv[:sch], dv[:dch])
				for c := 0; c < dch; c++ {
					dst.data[di+c] = Denorm[D](dv[c])
				}
				si += sch
				di += dch
			}
		}
	})
	return dst
}
