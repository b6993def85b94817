// Package sampler discretizes explicit functions into sample ranges and
// memoizes them so that a range is recomputed only when an input relevant
// to the active function family changes.
package sampler

// Range is an immutable sequence of n+1 samples of a function at
// t = i/n, i = 0..n, tagged with the Key it was produced from.
type Range struct {
	key    Key
	values []float64
}

// Key returns the inputs r was sampled from.
func (r Range) Key() Key { return r.key }

// Len returns the number of samples, n+1 for a sampled range and 0 for the
// zero Range.
func (r Range) Len() int { return len(r.values) }

// At returns the i-th sample.
func (r Range) At(i int) float64 { return r.values[i] }

// Values returns a copy of the samples.
func (r Range) Values() []float64 {
	return append([]float64(nil), r.values...)
}

// Sample evaluates v at n+1 evenly spaced points of [0,1]. A negative n is
// treated as 0, which yields the single sample f(0).
func Sample(n int, v Variant) Range {
	if n < 0 {
		n = 0
	}
	f := v.Func()
	values := make([]float64, n+1)
	for i := range values {
		var t float64
		if n > 0 {
			t = float64(i) / float64(n)
		}
		values[i] = f(t)
	}
	return Range{key: KeyFor(n, v), values: values}
}

// Counter samples the linear counter over n+1 points. It depends on n only.
func Counter(n int) Range {
	return Sample(n, Variant{Kind: Linear})
}
