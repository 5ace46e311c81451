package pix

import "fmt"

// Pixel is one coordinate's full channel vector under a color model. A
// Pixel owns its values; it is created per access from an image's backing
// storage and written back explicitly.
type Pixel[T Value] struct {
	model Model
	data  []T
}

// NewPixel returns a zero-valued pixel of the given model.
func NewPixel[T Value](model Model) Pixel[T] {
	return Pixel[T]{model: model, data: make([]T, model.Channels())}
}

// PixelOf builds a pixel from explicit channel values. The value count must
// equal the model's channel count.
func PixelOf[T Value](model Model, values ...T) (Pixel[T], error) {
	if len(values) != model.Channels() {
		return Pixel[T]{}, fmt.Errorf("%w: %d values for %s (%d channels)",
			ErrShapeMismatch, len(values), model, model.Channels())
	}
	data := make([]T, len(values))
	copy(data, values)
	return Pixel[T]{model: model, data: data}, nil
}

// Model returns the pixel's color model.
func (p Pixel[T]) Model() Model { return p.model }

// Channels returns the number of channels.
func (p Pixel[T]) Channels() int { return len(p.data) }

// Data returns the channel values in model order.
func (p Pixel[T]) Data() []T { return p.data }

// binary applies op channel-wise in raw float space and converts back with
// rounding and saturation, so integer pixels never wrap.
func (p Pixel[T]) binary(q Pixel[T], op func(a, b float64) float64) (Pixel[T], error) {
	if p.model != q.model {
		return Pixel[T]{}, fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, p.model, q.model)
	}
	out := NewPixel[T](p.model)
	for i := range p.data {
		out.data[i] = fromFloat[T](op(toFloat(p.data[i]), toFloat(q.data[i])))
	}
	return out, nil
}

// Add returns the channel-wise sum of two pixels of the same model.
func (p Pixel[T]) Add(q Pixel[T]) (Pixel[T], error) {
	return p.binary(q, func(a, b float64) float64 { return a + b })
}

// Sub returns the channel-wise difference of two pixels of the same model.
func (p Pixel[T]) Sub(q Pixel[T]) (Pixel[T], error) {
	return p.binary(q, func(a, b float64) float64 { return a - b })
}

// Mul returns the channel-wise product of two pixels of the same model.
func (p Pixel[T]) Mul(q Pixel[T]) (Pixel[T], error) {
	return p.binary(q, func(a, b float64) float64 { return a * b })
}

// Div returns the channel-wise quotient of two pixels of the same model.
// Division by a zero channel saturates integer results.
func (p Pixel[T]) Div(q Pixel[T]) (Pixel[T], error) {
	return p.binary(q, func(a, b float64) float64 { return a / b })
}

// Clamp returns a copy with every channel constrained to [lo, hi].
func (p Pixel[T]) Clamp(lo, hi T) Pixel[T] {
	out := NewPixel[T](p.model)
	flo, fhi := toFloat(lo), toFloat(hi)
	for i, v := range p.data {
		f := toFloat(v)
		if f < flo {
			f = flo
		}
		if f > fhi {
			f = fhi
		}
		out.data[i] = fromFloat[T](f)
	}
	return out
}

// Convert returns a new pixel of the target color model and the same
// numeric type. The conversion pivots through RGB and is total.
func (p Pixel[T]) Convert(to Model) Pixel[T] {
	if to == p.model {
		out := NewPixel[T](p.model)
		copy(out.data, p.data)
		return out
	}
	var src, dst [4]float64
	for i, v := range p.data {
		src[i] = Norm(v)
	}
	ConvertChannels(p.model, to, src[:p.Channels()], dst[:to.Channels()])
	out := NewPixel[T](to)
	for i := range out.data {
		out.data[i] = Denorm[T](dst[i])
	}
	return out
}

// ConvertPixel returns a new pixel with each channel mapped onto the
// destination numeric type through the normalized pivot.
func ConvertPixel[D, S Value](p Pixel[S]) Pixel[D] {
	out := NewPixel[D](p.model)
	for i, v := range p.data {
		out.data[i] = ConvertValue[D](v)
	}
	return out
}
