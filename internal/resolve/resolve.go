// Package resolve turns raw user input into domain-valid numbers.
//
// Every function here is total: any raw value, including garbage text,
// maps to a usable default or is clamped to the nearest bound. Nothing
// returns an error.
package resolve

import (
	"math"
	"strconv"
	"strings"
)

// Raw is a user-edited value as it arrives from an input field or flag:
// a number of any Go numeric kind, a string, or nil.
type Raw = any

// ToNumber returns v as a finite float64, or 0 when v is not a finite number.
// Strings are trimmed before parsing and the empty string reads as 0.
func ToNumber(v Raw) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = p
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToNonNegative returns |ToNumber(v)|.
func ToNonNegative(v Raw) float64 {
	return math.Abs(ToNumber(v))
}

// ToNatural returns floor(ToNonNegative(v)).
func ToNatural(v Raw) int {
	f := math.Floor(ToNonNegative(v))
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// ToSafeNatural returns ToNatural(v) capped at limit. A negative limit
// caps at 0.
func ToSafeNatural(v Raw, limit int) int {
	return min(ToNatural(v), max(limit, 0))
}

// Base resolves the base of the exponential family. 0 and 1 make the family
// degenerate and are replaced by e.
func Base(v Raw) float64 {
	b := ToNonNegative(v)
	if b == 0 || b == 1 {
		return math.E
	}
	return b
}

// Exponent resolves the monomial exponent, which must be at least 1.
func Exponent(v Raw) float64 {
	return math.Max(1, ToNonNegative(v))
}

// UnitX resolves a Bezier control x coordinate into [0, 1].
func UnitX(v Raw) float64 {
	return math.Min(1, ToNonNegative(v))
}

// Y resolves a Bezier control y coordinate; any finite value is valid.
func Y(v Raw) float64 {
	return ToNumber(v)
}
