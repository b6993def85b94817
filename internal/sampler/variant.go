package sampler

import (
	"fmt"
	"strings"

	"github.com/olivier-w/frameplay/internal/explicit"
	"github.com/olivier-w/frameplay/internal/oscillator"
	"github.com/olivier-w/frameplay/internal/resolve"
)

// Kind tags a function family.
type Kind uint8

const (
	Linear Kind = iota
	Monomial
	Exponential
	QuadraticBezier
	CubicBezier
	HarmonicOscillator
)

var kindNames = [...]string{
	Linear:             "Linear",
	Monomial:           "Monomial",
	Exponential:        "Exponential",
	QuadraticBezier:    "Quadratic-Bezier",
	CubicBezier:        "Cubic-Bezier",
	HarmonicOscillator: "Harmonic Oscillator",
}

// Kinds returns every function family in selector order.
func Kinds() []Kind {
	return []Kind{Linear, Monomial, Exponential, QuadraticBezier, CubicBezier, HarmonicOscillator}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind matches s case-insensitively against kind names, ignoring
// spaces, dashes and underscores ("cubic-bezier", "CubicBezier", "harmonic").
func ParseKind(s string) (Kind, error) {
	want := normalizeKindName(s)
	if want == "harmonic" {
		return HarmonicOscillator, nil
	}
	for _, k := range Kinds() {
		if normalizeKindName(k.String()) == want {
			return k, nil
		}
	}
	return Linear, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

func normalizeKindName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Variant is the active function family together with its parameters.
// Only the fields belonging to Kind are meaningful; the others are carried
// along so that switching families keeps their values.
type Variant struct {
	Kind     Kind
	Exponent float64
	Base     float64
	X1, Y1   float64
	X2, Y2   float64
	Harmonic oscillator.Params
}

// FromResolved builds the Variant of kind k from resolved parameters.
func FromResolved(k Kind, r resolve.Resolved) Variant {
	return Variant{
		Kind:     k,
		Exponent: r.Exponent,
		Base:     r.Base,
		X1:       r.X1,
		Y1:       r.Y1,
		X2:       r.X2,
		Y2:       r.Y2,
		Harmonic: r.Harmonic,
	}
}

// Func returns the explicit function the variant denotes.
func (v Variant) Func() explicit.Func {
	switch v.Kind {
	case Linear:
		return explicit.Linear
	case Monomial:
		return explicit.Monomial(v.Exponent)
	case Exponential:
		return explicit.Exponential(v.Base)
	case QuadraticBezier:
		return explicit.QuadraticBezier(v.X1, v.Y1)
	case CubicBezier:
		return explicit.CubicBezier(v.X1, v.Y1, v.X2, v.Y2)
	case HarmonicOscillator:
		return explicit.Harmonic(v.Harmonic)
	default:
		panic(fmt.Sprintf("sampler: unhandled %v", v.Kind))
	}
}
