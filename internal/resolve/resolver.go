package resolve

import (
	"math"

	"github.com/olivier-w/frameplay/internal/oscillator"
)

// Limits are the named fallbacks and caps a Resolver applies.
type Limits struct {
	// MaxSafeFrames caps every sample count and playback bound.
	MaxSafeFrames int
	// Oscillator supplies the value used for any invalid oscillator field.
	Oscillator oscillator.Params
}

// DefaultLimits returns the limits used when no configuration overrides them.
func DefaultLimits() Limits {
	return Limits{
		MaxSafeFrames: 1000,
		Oscillator: oscillator.Params{
			Damping:      80,
			Stiffness:    10000,
			Mass:         15,
			InitPosition: 1,
			InitSpeed:    0,
			HalfPeriods:  6,
		},
	}
}

// Inputs holds the raw value of every field of the explicit functions screen.
// Fields of inactive function families are still tracked here.
type Inputs struct {
	N, From, To             Raw
	X1, Y1, X2, Y2          Raw
	Base, Exponent          Raw
	Damping, Stiffness      Raw
	Mass                    Raw
	InitPosition, InitSpeed Raw
	HalfPeriods             Raw
}

// Resolved is Inputs after sanitization. It is recomputed on every pass.
type Resolved struct {
	N, From, To    int
	X1, Y1, X2, Y2 float64
	Base, Exponent float64
	Harmonic       oscillator.Params
}

// Resolver applies Limits to raw input.
type Resolver struct {
	limits Limits
}

// New creates a Resolver. Zero or invalid limits fall back to DefaultLimits.
func New(l Limits) *Resolver {
	def := DefaultLimits()
	if l.MaxSafeFrames <= 0 {
		l.MaxSafeFrames = def.MaxSafeFrames
	}
	l.Oscillator = Oscillator(l.Oscillator, def.Oscillator)
	return &Resolver{limits: l}
}

// Limits returns the limits r was built with.
func (r *Resolver) Limits() Limits { return r.limits }

// SafeNatural is ToSafeNatural capped at the configured MaxSafeFrames.
func (r *Resolver) SafeNatural(v Raw) int {
	return ToSafeNatural(v, r.limits.MaxSafeFrames)
}

// Resolve sanitizes every field of in.
func (r *Resolver) Resolve(in Inputs) Resolved {
	return Resolved{
		N:        r.SafeNatural(in.N),
		From:     r.SafeNatural(in.From),
		To:       r.SafeNatural(in.To),
		X1:       UnitX(in.X1),
		Y1:       Y(in.Y1),
		X2:       UnitX(in.X2),
		Y2:       Y(in.Y2),
		Base:     Base(in.Base),
		Exponent: Exponent(in.Exponent),
		Harmonic: Oscillator(oscillator.Params{
			Damping:      ToNumber(in.Damping),
			Stiffness:    ToNumber(in.Stiffness),
			Mass:         ToNumber(in.Mass),
			InitPosition: ToNumber(in.InitPosition),
			InitSpeed:    ToNumber(in.InitSpeed),
			HalfPeriods:  ToNumber(in.HalfPeriods),
		}, r.limits.Oscillator),
	}
}

// Oscillator replaces every non-physical field of p with the matching field
// of def: stiffness and mass must be positive, damping non-negative.
// HalfPeriods is made non-negative; initial conditions are left alone.
func Oscillator(p, def oscillator.Params) oscillator.Params {
	if !(p.Stiffness > 0) {
		p.Stiffness = def.Stiffness
	}
	if !(p.Mass > 0) {
		p.Mass = def.Mass
	}
	if !(p.Damping >= 0) {
		p.Damping = def.Damping
	}
	p.HalfPeriods = math.Abs(p.HalfPeriods)
	return p
}
