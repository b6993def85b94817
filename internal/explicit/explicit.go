// Package explicit provides explicit functions of the unit interval used as
// animation curves. Each maps t in [0,1] to a value; all but the harmonic
// oscillator satisfy f(0)=0 and f(1)=1.
package explicit

import (
	"math"

	"github.com/olivier-w/frameplay/internal/oscillator"
)

// Func is an explicit function of the unit interval.
type Func func(t float64) float64

// Linear is f(t) = t.
func Linear(t float64) float64 { return t }

// Monomial returns f(t) = t^e.
func Monomial(e float64) Func {
	return func(t float64) float64 { return math.Pow(t, e) }
}

// Exponential returns f(t) = (b^t − 1) / (b − 1), a monotone map of [0,1]
// onto itself for any positive base other than 1.
func Exponential(b float64) Func {
	d := b - 1
	return func(t float64) float64 { return (math.Pow(b, t) - 1) / d }
}

// Harmonic returns the damped oscillator displacement spread over
// p.HalfPeriods half periods of the unit interval.
func Harmonic(p oscillator.Params) Func {
	return oscillator.ForUnit(p)
}
