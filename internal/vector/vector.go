// Package vector implements the dot product, scalar multiplication and
// orthogonal projection used as a reference oracle on the vectors screen,
// plus two equivalent polar decompositions of a direction.
package vector

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Dot returns the dot product of a and b.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dot %d×%d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s, nil
}

// MustDot is Dot for callers that guarantee equal lengths; a mismatch is a
// programming error and panics.
func MustDot(a, b []float64) float64 {
	s, err := Dot(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Scalar returns k·a as a new slice.
func Scalar(k float64, a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = k * v
	}
	return out
}

// Project returns the orthogonal projection of a onto b.
func Project(a, b []float64) ([]float64, error) {
	ab, err := Dot(a, b)
	if err != nil {
		return nil, err
	}
	bb := MustDot(b, b)
	if bb == 0 {
		return nil, ErrZeroVector
	}
	return Scalar(ab/bb, b), nil
}

// Project2 is Project for plane vectors.
func Project2(a, b mgl64.Vec2) (mgl64.Vec2, error) {
	bb := b.Dot(b)
	if bb == 0 {
		return mgl64.Vec2{math.NaN(), math.NaN()}, ErrZeroVector
	}
	return b.Mul(a.Dot(b) / bb), nil
}

// ByAngle returns the vector of length r pointing along (a, b), computed
// from the angle atan2(b, a).
func ByAngle(r, a, b float64) mgl64.Vec2 {
	theta := math.Atan2(b, a)
	return mgl64.Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// ByRatio returns the same vector as ByAngle by scaling (a, b) with
// r/|(a,b)|. The direction of (0, 0) is undefined and yields NaN components.
func ByRatio(r, a, b float64) mgl64.Vec2 {
	norm := math.Sqrt(a*a + b*b)
	if norm == 0 {
		return mgl64.Vec2{math.NaN(), math.NaN()}
	}
	k := r / norm
	return mgl64.Vec2{k * a, k * b}
}
