package pix

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Model identifies the semantic interpretation and channel count of a
// pixel's channel vector. The set is closed; conversion between any ordered
// pair of models pivots through RGB in normalized space.
type Model int

const (
	// Gray is single-channel luminance.
	Gray Model = iota
	// RGB is red, green, blue.
	RGB
	// RGBA is red, green, blue plus an alpha channel.
	RGBA
	// HSV is hue (stored normalized to [0, 1)), saturation, value.
	HSV
	// CMYK is cyan, magenta, yellow, key.
	CMYK
	// XYZ is CIE 1931 XYZ with a D65 white point.
	XYZ
)

// Channels returns the fixed channel count of the model.
func (m Model) Channels() int {
	switch m {
	case Gray:
		return 1
	case RGB, HSV, XYZ:
		return 3
	case RGBA, CMYK:
		return 4
	}
	return 0
}

// AlphaIndex returns the index of the model's alpha channel, or -1 if the
// model has none.
func (m Model) AlphaIndex() int {
	if m == RGBA {
		return 3
	}
	return -1
}

func (m Model) String() string {
	switch m {
	case Gray:
		return "gray"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	case HSV:
		return "hsv"
	case CMYK:
		return "cmyk"
	case XYZ:
		return "xyz"
	}
	return "unknown"
}

// lumaR, lumaG, lumaB are the ITU-R BT.601 grayscale weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// wrapHue normalizes a hue value into [0, 1). Hue is periodic, so values
// outside the range wrap rather than clamp.
func wrapHue(h float64) float64 {
	h -= math.Floor(h)
	if h == 1 {
		return 0
	}
	return h
}

// toRGB converts one pixel's normalized channels from model m to RGB.
func toRGB(m Model, px []float64) (r, g, b float64) {
	switch m {
	case Gray:
		return px[0], px[0], px[0]
	case RGB:
		return px[0], px[1], px[2]
	case RGBA:
		// Premultiply; alpha itself is dropped by the pivot.
		a := px[3]
		return px[0] * a, px[1] * a, px[2] * a
	case HSV:
		c := colorful.Hsv(wrapHue(px[0])*360, px[1], px[2])
		return c.R, c.G, c.B
	case CMYK:
		k := px[3]
		r = 1 - math.Min(1, px[0]*(1-k)+k)
		g = 1 - math.Min(1, px[1]*(1-k)+k)
		b = 1 - math.Min(1, px[2]*(1-k)+k)
		return r, g, b
	case XYZ:
		c := colorful.Xyz(px[0], px[1], px[2])
		return c.R, c.G, c.B
	}
	return 0, 0, 0
}

// fromRGB converts a normalized RGB triple into model m, writing the
// resulting channels to dst. dst must have m.Channels() elements.
func fromRGB(m Model, r, g, b float64, dst []float64) {
	switch m {
	case Gray:
		dst[0] = lumaR*r + lumaG*g + lumaB*b
	case RGB:
		dst[0], dst[1], dst[2] = r, g, b
	case RGBA:
		dst[0], dst[1], dst[2], dst[3] = r, g, b, 1
	case HSV:
		h, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
		dst[0], dst[1], dst[2] = wrapHue(h/360), s, v
	case CMYK:
		c, mg, y := 1-r, 1-g, 1-b
		k := math.Min(c, math.Min(mg, y))
		if k == 1 {
			dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 1
			return
		}
		dst[0] = (c - k) / (1 - k)
		dst[1] = (mg - k) / (1 - k)
		dst[2] = (y - k) / (1 - k)
		dst[3] = k
	case XYZ:
		dst[0], dst[1], dst[2] = colorful.Color{R: r, G: g, B: b}.Xyz()
	}
}

// ConvertChannels converts the normalized channel vector src under model
// from into the channel vector dst under model to. src must have
// from.Channels() elements and dst to.Channels(). The conversion is total;
// from == to copies the channels through unchanged.
func ConvertChannels(from, to Model, src, dst []float64) {
	if from == to {
		copy(dst, src)
		return
	}
	r, g, b := toRGB(from, src)
	fromRGB(to, r, g, b, dst)
}
