package visualizer

import (
	"github.com/guptarohit/asciigraph"
)

// ErrorMarker replaces a plot whose data has no finite solution.
const ErrorMarker = "error"

// Curve renders values as an ASCII line chart of the given size. Data with
// any non-finite value cannot be drawn and yields ErrorMarker. Fewer than
// two values draw nothing.
func Curve(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	for _, v := range values {
		if !finite(v) {
			return ErrorMarker
		}
	}
	opts := []asciigraph.Option{
		asciigraph.Height(max(height, 2)),
		asciigraph.Width(max(width, 10)),
		asciigraph.Precision(2),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(values, opts...)
}

// Normalize maps values linearly onto [0,1] for canvas plotting, using the
// finite extremes. Non-finite values stay non-finite and are dropped by
// Canvas.Set. A constant series maps to 0.5.
func Normalize(values []float64) []float64 {
	lo, hi := 0.0, 0.0
	seen := false
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if !seen {
			lo, hi, seen = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case !finite(v):
			out[i] = v
		case hi == lo:
			out[i] = 0.5
		default:
			out[i] = (v - lo) / (hi - lo)
		}
	}
	return out
}
