package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotDimensionMismatch(t *testing.T) {
	_, err := Dot([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	_, err = Project([]float64{1}, []float64{1, 2})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch from Project, got %v", err)
	}
}

func TestMustDotPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { MustDot([]float64{1}, nil) })
	assert.Equal(t, 11.0, MustDot([]float64{1, 2}, []float64{3, 4}))
}

func TestScalarDoesNotAlias(t *testing.T) {
	a := []float64{1, -2, 3}
	got := Scalar(2, a)
	require.Equal(t, []float64{2, -4, 6}, got)
	require.Equal(t, []float64{1, -2, 3}, a)
}

func TestProjectOntoZeroVector(t *testing.T) {
	_, err := Project([]float64{1, 2}, []float64{0, 0})
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
	p, err := Project2(mgl64.Vec2{1, 2}, mgl64.Vec2{})
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
	if !math.IsNaN(p[0]) || !math.IsNaN(p[1]) {
		t.Fatalf("expected NaN result, got %v", p)
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	cases := [][2][]float64{
		{{100, 200}, {200, 100}},
		{{-3, 4}, {1, 0}},
		{{1, 2, 3}, {-4, 0.5, 2}},
		{{0, 0}, {7, -1}},
	}
	for _, c := range cases {
		once, err := Project(c[0], c[1])
		require.NoError(t, err)
		twice, err := Project(once, c[1])
		require.NoError(t, err)
		assert.InDeltaSlice(t, once, twice, 1e-9)
	}
}

func TestProjectResidualIsOrthogonal(t *testing.T) {
	a := mgl64.Vec2{100, 200}
	b := mgl64.Vec2{200, 100}
	p, err := Project2(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0, a.Sub(p).Dot(b), 1e-9)
	assert.InDelta(t, 160, p.X(), 1e-9)
	assert.InDelta(t, 80, p.Y(), 1e-9)
}

func TestByAngleAgreesWithByRatio(t *testing.T) {
	for _, r := range []float64{-2, 0, 1, 37.5} {
		for _, ab := range [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {3, -4}, {-1e-6, 2e-6}, {1e6, -3}} {
			x := ByAngle(r, ab[0], ab[1])
			y := ByRatio(r, ab[0], ab[1])
			assert.InDelta(t, x.X(), y.X(), 1e-9, "r=%v a,b=%v", r, ab)
			assert.InDelta(t, x.Y(), y.Y(), 1e-9, "r=%v a,b=%v", r, ab)
		}
	}
}

func TestByRatioOriginIsNaN(t *testing.T) {
	v := ByRatio(1, 0, 0)
	if !math.IsNaN(v.X()) || !math.IsNaN(v.Y()) {
		t.Fatalf("expected NaN components, got %v", v)
	}
}
