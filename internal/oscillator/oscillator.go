// Package oscillator evaluates harmonic oscillator displacement in closed form.
//
// Evaluate is the exact undamped solution and serves as a reference oracle
// for the damped engine and for numerically stepped springs. Non-physical
// parameters (stiffness or mass not strictly positive) yield NaN so callers
// can tell "no solution" apart from a zero displacement.
package oscillator

import "math"

// Params describes a mass-spring-damper system and its initial state.
// HalfPeriods is only used when the oscillator is mapped onto the unit domain.
type Params struct {
	Damping      float64
	Stiffness    float64
	Mass         float64
	InitPosition float64
	InitSpeed    float64
	HalfPeriods  float64
}

// Physical reports whether p has a defined angular frequency and a
// non-negative damping coefficient.
func (p Params) Physical() bool {
	return p.Stiffness > 0 && p.Mass > 0 && p.Damping >= 0
}

// AngularFrequency returns sqrt(stiffness/mass), or NaN when undefined.
func AngularFrequency(p Params) float64 {
	if p.Stiffness <= 0 || p.Mass <= 0 {
		return math.NaN()
	}
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio returns c / (2·sqrt(k·m)), or NaN when undefined.
func DampingRatio(p Params) float64 {
	if !p.Physical() {
		return math.NaN()
	}
	return p.Damping / 2 / math.Sqrt(p.Mass*p.Stiffness)
}

// Evaluate returns the undamped displacement A·cos(w·t − phase) at time t.
// Damping is ignored.
func Evaluate(p Params, t float64) float64 {
	w := AngularFrequency(p)
	if math.IsNaN(w) {
		return math.NaN()
	}
	a, phase := amplitudePhase(p.InitPosition, p.InitSpeed, w)
	return a * math.Cos(w*t-phase)
}

func amplitudePhase(x0, v0, w float64) (float64, float64) {
	r := v0 / w
	return math.Sqrt(x0*x0 + r*r), math.Atan2(r, x0)
}

// Sample evaluates the undamped solution at every point of domain.
func Sample(p Params, domain []float64) []float64 {
	out := make([]float64, len(domain))
	for i, t := range domain {
		out[i] = Evaluate(p, t)
	}
	return out
}

// IsPlottable reports whether v can be drawn as a point.
func IsPlottable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
