package oscillator

import "math"

// Damped returns the displacement at time t of the damped system, choosing
// the under-, critically or over-damped closed form from the damping ratio.
// A zero damping coefficient reduces to Evaluate.
func Damped(p Params, t float64) float64 {
	if !p.Physical() {
		return math.NaN()
	}
	w0 := AngularFrequency(p)
	z := DampingRatio(p)
	x0, v0 := p.InitPosition, p.InitSpeed

	switch {
	case z == 0:
		return Evaluate(p, t)
	case z < 1:
		wd := w0 * math.Sqrt(1-z*z)
		decay := math.Exp(-z * w0 * t)
		return decay * (x0*math.Cos(wd*t) + (v0+z*w0*x0)/wd*math.Sin(wd*t))
	case z == 1:
		return (x0 + (v0+w0*x0)*t) * math.Exp(-w0*t)
	default:
		s := math.Sqrt(z*z - 1)
		r1 := -w0 * (z - s)
		r2 := -w0 * (z + s)
		c1 := (v0 - r2*x0) / (r1 - r2)
		c2 := x0 - c1
		return c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
}

// HalfPeriod is the time between successive zero crossings of the damped
// system. Critically and over-damped systems never oscillate; the undamped
// half period π/w0 is used as their time scale instead.
func HalfPeriod(p Params) float64 {
	if !p.Physical() {
		return math.NaN()
	}
	w0 := AngularFrequency(p)
	z := DampingRatio(p)
	if z < 1 {
		return math.Pi / (w0 * math.Sqrt(1-z*z))
	}
	return math.Pi / w0
}

// ForUnit maps the unit domain [0,1] onto p.HalfPeriods half periods of the
// damped system, so that f(0) is the initial position.
func ForUnit(p Params) func(float64) float64 {
	span := HalfPeriod(p) * p.HalfPeriods
	return func(t float64) float64 {
		return Damped(p, t*span)
	}
}
