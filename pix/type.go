package pix

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Value is the closed set of scalar types an image can store. Fixed-point
// types map their full representable range onto [0, 1]; float types use a
// nominal [0, 1] range and pass through unclamped.
type Value interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 |
		hwy.Float16 | float32 | float64
}

// Range returns the representable [min, max] of T used by the normalized
// mapping. Float types report the nominal [0, 1] range.
func Range[T Value]() (min, max float64) {
	var z T
	switch any(z).(type) {
	case uint8:
		return 0, math.MaxUint8
	case int8:
		return math.MinInt8, math.MaxInt8
	case uint16:
		return 0, math.MaxUint16
	case int16:
		return math.MinInt16, math.MaxInt16
	case uint32:
		return 0, math.MaxUint32
	case int32:
		return math.MinInt32, math.MaxInt32
	case uint64:
		return 0, math.MaxUint64
	case int64:
		return math.MinInt64, math.MaxInt64
	default:
		return 0, 1
	}
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Value]() bool {
	var z T
	switch any(z).(type) {
	case hwy.Float16, float32, float64:
		return true
	}
	return false
}

// TypeName returns a short name for T ("uint8", "half", "float32", ...).
func TypeName[T Value]() string {
	var z T
	switch any(z).(type) {
	case uint8:
		return "uint8"
	case int8:
		return "int8"
	case uint16:
		return "uint16"
	case int16:
		return "int16"
	case uint32:
		return "uint32"
	case int32:
		return "int32"
	case uint64:
		return "uint64"
	case int64:
		return "int64"
	case hwy.Float16:
		return "half"
	case float32:
		return "float32"
	case float64:
		return "float64"
	}
	return "unknown"
}

// toFloat converts a stored value to its raw float64 representation.
func toFloat[T Value](v T) float64 {
	switch x := any(v).(type) {
	case uint8:
		return float64(x)
	case int8:
		return float64(x)
	case uint16:
		return float64(x)
	case int16:
		return float64(x)
	case uint32:
		return float64(x)
	case int32:
		return float64(x)
	case uint64:
		return float64(x)
	case int64:
		return float64(x)
	case hwy.Float16:
		return float64(hwy.Float16ToFloat32(x))
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

// fromFloat converts a raw float64 value to T. Float targets pass through
// unclamped; integer targets round to nearest and saturate, never wrap.
func fromFloat[T Value](f float64) T {
	var z T
	switch any(z).(type) {
	case hwy.Float16:
		return any(hwy.Float32ToFloat16(float32(f))).(T)
	case float32:
		return any(float32(f)).(T)
	case float64:
		return any(f).(T)
	}

	if math.IsNaN(f) {
		return z
	}
	min, max := Range[T]()
	f = math.Round(f)
	if f < min {
		f = min
	}
	if f > max {
		f = max
	}

	switch any(z).(type) {
	case uint8:
		return any(uint8(f)).(T)
	case int8:
		return any(int8(f)).(T)
	case uint16:
		return any(uint16(f)).(T)
	case int16:
		return any(int16(f)).(T)
	case uint32:
		return any(uint32(f)).(T)
	case int32:
		return any(int32(f)).(T)
	case uint64:
		// MaxUint64 is not exactly representable as float64, so the clamp
		// above can leave f one ulp past the integer range.
		if f >= math.MaxUint64 {
			return any(uint64(math.MaxUint64)).(T)
		}
		return any(uint64(f)).(T)
	case int64:
		if f >= math.MaxInt64 {
			return any(int64(math.MaxInt64)).(T)
		}
		return any(int64(f)).(T)
	}
	return z
}

// Norm maps a stored value onto the normalized [0, 1] scale for T. Float
// values pass through unchanged.
func Norm[T Value](v T) float64 {
	min, max := Range[T]()
	return (toFloat(v) - min) / (max - min)
}

// Denorm maps a normalized value back onto T's scale, rounding and
// saturating for integer types.
func Denorm[T Value](f float64) T {
	min, max := Range[T]()
	return fromFloat[T](f*(max-min) + min)
}

// ConvertValue maps a value of one scalar type onto another through the
// normalized pivot. The conversion is total: identity for S == D, monotonic
// otherwise.
func ConvertValue[D, S Value](v S) D {
	return Denorm[D](Norm(v))
}
