package filter

import (
	"fmt"
	"math"

	"github.com/ironsheep/imgcore/pix"
)

// coordMap samples the first input at a remapped coordinate. The map
// receives the input's dimensions and the output coordinate.
type coordMap struct {
	name string
	fn   func(sw, sh, x, y int) (int, int)
}

func (m coordMap) At(x, y, c int, src []Source) float64 {
	sx, sy := m.fn(src[0].Width(), src[0].Height(), x, y)
	return src[0].NormAt(sx, sy, c)
}

func (m coordMap) Validate(_ Target, src []Source) error {
	return requireInputs(m.name, src, 1)
}

// FlipH mirrors the input horizontally.
func FlipH() Filter {
	return coordMap{"flip", func(sw, _, x, y int) (int, int) { return sw - 1 - x, y }}
}

// FlipV mirrors the input vertically.
func FlipV() Filter {
	return coordMap{"flip", func(_, sh, x, y int) (int, int) { return x, sh - 1 - y }}
}

// Rotate90 rotates the input a quarter turn clockwise. The output's width
// must equal the input's height and vice versa.
func Rotate90() Filter {
	return coordMap{"rotate", func(_, sh, x, y int) (int, int) { return y, sh - 1 - x }}
}

// Rotate180 rotates the input half a turn.
func Rotate180() Filter {
	return coordMap{"rotate", func(sw, sh, x, y int) (int, int) { return sw - 1 - x, sh - 1 - y }}
}

// Rotate270 rotates the input a quarter turn counterclockwise. The output's
// width must equal the input's height and vice versa.
func Rotate270() Filter {
	return coordMap{"rotate", func(sw, _, x, y int) (int, int) { return sw - 1 - y, x }}
}

// resize holds the output dimensions captured at construction; At cannot
// see the output image, so the scale factors are bound up front.
type resize struct {
	dstW, dstH int
}

// NewResize returns a filter that scales its input onto a width x height
// output using bilinear interpolation. The output image passed to Apply
// must have exactly those dimensions.
func NewResize(width, height int) Filter {
	return resize{dstW: width, dstH: height}
}

func (r resize) At(x, y, c int, src []Source) float64 {
	in := src[0]
	// Pixel-center mapping keeps the sample grid aligned at any scale.
	fx := (float64(x)+0.5)*float64(in.Width())/float64(r.dstW) - 0.5
	fy := (float64(y)+0.5)*float64(in.Height())/float64(r.dstH) - 0.5
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := fx-float64(x0), fy-float64(y0)

	v00 := in.NormAt(x0, y0, c)
	v10 := in.NormAt(x0+1, y0, c)
	v01 := in.NormAt(x0, y0+1, c)
	v11 := in.NormAt(x0+1, y0+1, c)
	top := v00 + (v10-v00)*tx
	bot := v01 + (v11-v01)*tx
	return top + (bot-top)*ty
}

func (r resize) Validate(dst Target, src []Source) error {
	if err := requireInputs("resize", src, 1); err != nil {
		return err
	}
	if dst.Width() != r.dstW || dst.Height() != r.dstH {
		return fmt.Errorf("%w: resize targets %dx%d but output is %dx%d",
			pix.ErrShapeMismatch, r.dstW, r.dstH, dst.Width(), dst.Height())
	}
	return nil
}

// Crop samples the input offset by (X, Y); evaluating it over a smaller
// output extracts the region starting at that corner.
type Crop struct {
	X, Y int
}

// At implements Filter.
func (cr Crop) At(x, y, c int, src []Source) float64 {
	return src[0].NormAt(x+cr.X, y+cr.Y, c)
}

// Validate implements Validator. The region must lie fully inside the
// input: corner in bounds and extent not past the far edge.
func (cr Crop) Validate(dst Target, src []Source) error {
	if err := requireInputs("crop", src, 1); err != nil {
		return err
	}
	in := src[0]
	if cr.X < 0 || cr.Y < 0 ||
		cr.X+dst.Width() > in.Width() || cr.Y+dst.Height() > in.Height() {
		return fmt.Errorf("%w: crop region (%d,%d)+%dx%d outside %dx%d input",
			pix.ErrOutOfBounds, cr.X, cr.Y, dst.Width(), dst.Height(), in.Width(), in.Height())
	}
	return nil
}
