// Package pix provides the in-memory image data model: a generic image
// representation parameterized over the numeric storage type, tagged with a
// color model, plus pixel-level access and safe, checked conversion between
// numeric types and between color models.
//
// # Storage
//
// An Image owns a flat, row-major, channel-interleaved buffer of length
// width * height * channels. The index of channel c of the pixel at (x, y)
// is (y*width + x)*channels + c. A View wraps caller-owned memory with the
// same layout without copying it.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. At and SetPixel enforce
// bounds strictly (valid X range is 0 to width-1); NormAt clamps coordinates
// instead, which is the sampling behavior convolution filters rely on.
//
// # Numeric Types
//
// The Value constraint enumerates the closed set of supported scalar types:
// 8/16/32/64-bit signed and unsigned integers, half precision (hwy.Float16)
// and 32/64-bit floats. Conversion between any two goes through a normalized
// float64 pivot: fixed-point types map [min, max] onto [0, 1], float types
// pass through unclamped. Integer destinations round to nearest and
// saturate, never wrap.
//
// # Color Models
//
// Model enumerates the supported color layouts (Gray, RGB, RGBA, HSV, CMYK,
// XYZ) with fixed channel counts. Conversion between any ordered pair pivots
// through RGB in normalized space. HSV hue is stored normalized to [0, 1)
// and wraps modulo 1; grayscale reduction uses the ITU-R BT.601 luma
// weights. HSV and CMYK round trips are lossy at gamut boundaries, which is
// accepted.
//
// # Error Handling
//
// Operations that can fail return a wrapped sentinel error from the small
// taxonomy in errors.go; callers test with errors.Is. Conversions are total
// and never fail.
package pix
