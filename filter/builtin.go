package filter

import (
	"fmt"
	"math"

	"github.com/ironsheep/imgcore/pix"
)

// Convert maps the first input's pixels onto the To color model. The output
// image must already use the target model.
type Convert struct {
	To pix.Model
}

// At implements Filter.
func (cv Convert) At(x, y, c int, src []Source) float64 {
	in := src[0]
	var sv, dv [4]float64
	for i := 0; i < in.Channels(); i++ {
		sv[i] = in.NormAt(x, y, i)
	}
	pix.ConvertChannels(in.Model(), cv.To, sv[:in.Channels()], dv[:cv.To.Channels()])
	return dv[c]
}

// Validate implements Validator.
func (cv Convert) Validate(dst Target, src []Source) error {
	if err := requireInputs("convert", src, 1); err != nil {
		return err
	}
	if dst.Model() != cv.To {
		return fmt.Errorf("%w: convert targets %s but output is %s",
			pix.ErrShapeMismatch, cv.To, dst.Model())
	}
	return nil
}

// Grayscale converts the input to single-channel luminance using the
// ITU-R BT.601 weights.
func Grayscale() Convert { return Convert{To: pix.Gray} }

// Invert inverts every channel of the first input, leaving an alpha
// channel untouched.
type Invert struct{}

// At implements Filter.
func (Invert) At(x, y, c int, src []Source) float64 {
	in := src[0]
	if c == in.Model().AlphaIndex() {
		return in.NormAt(x, y, c)
	}
	return 1 - in.NormAt(x, y, c)
}

// Validate implements Validator.
func (Invert) Validate(_ Target, src []Source) error {
	return requireInputs("invert", src, 1)
}

// Blend averages the first two inputs channel-wise.
type Blend struct{}

// At implements Filter.
func (Blend) At(x, y, c int, src []Source) float64 {
	return (src[0].NormAt(x, y, c) + src[1].NormAt(x, y, c)) / 2
}

// Validate implements Validator.
func (Blend) Validate(_ Target, src []Source) error {
	return requireInputs("blend", src, 2)
}

// GammaLog applies the inverse power curve v^(1/Gamma).
type GammaLog struct {
	Gamma float64
}

// At implements Filter.
func (g GammaLog) At(x, y, c int, src []Source) float64 {
	return math.Pow(src[0].NormAt(x, y, c), 1/g.Gamma)
}

// Validate implements Validator.
func (g GammaLog) Validate(_ Target, src []Source) error {
	return requireInputs("gamma", src, 1)
}

// GammaLin applies the power curve v^Gamma.
type GammaLin struct {
	Gamma float64
}

// At implements Filter.
func (g GammaLin) At(x, y, c int, src []Source) float64 {
	return math.Pow(src[0].NormAt(x, y, c), g.Gamma)
}

// Validate implements Validator.
func (g GammaLin) Validate(_ Target, src []Source) error {
	return requireInputs("gamma", src, 1)
}

// Threshold maps channels to 1 when they meet Level and 0 otherwise. Level
// is captured at construction and never mutated.
type Threshold struct {
	Level float64
}

// At implements Filter.
func (t Threshold) At(x, y, c int, src []Source) float64 {
	if src[0].NormAt(x, y, c) >= t.Level {
		return 1
	}
	return 0
}

// Validate implements Validator.
func (t Threshold) Validate(_ Target, src []Source) error {
	return requireInputs("threshold", src, 1)
}
