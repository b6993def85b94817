package sampler

import "github.com/olivier-w/frameplay/internal/oscillator"

// Key identifies the inputs a Range was sampled from. Fields that do not
// belong to Kind hold their zero value regardless of the Variant, so edits
// to parameters of inactive families never change the key.
type Key struct {
	N        int
	Kind     Kind
	Exponent float64
	Base     float64
	X1, Y1   float64
	X2, Y2   float64
	Harmonic oscillator.Params
}

// KeyFor builds the dependency key of sampling v at n+1 points.
func KeyFor(n int, v Variant) Key {
	k := Key{N: n, Kind: v.Kind}
	switch v.Kind {
	case Linear:
	case Monomial:
		k.Exponent = v.Exponent
	case Exponential:
		k.Base = v.Base
	case QuadraticBezier:
		k.X1, k.Y1 = v.X1, v.Y1
	case CubicBezier:
		k.X1, k.Y1 = v.X1, v.Y1
		k.X2, k.Y2 = v.X2, v.Y2
	case HarmonicOscillator:
		k.Harmonic = v.Harmonic
	}
	return k
}
