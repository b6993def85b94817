package spring

import (
	"math"
	"testing"

	"github.com/olivier-w/frameplay/internal/oscillator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSubstitutesInvalidFields(t *testing.T) {
	def := DefaultParams()
	got := Params{Stiffness: 0, Damping: -1, Mass: -2}.Sanitize(def)
	require.Equal(t, def, got)

	got = Params{Stiffness: 50, Damping: 0, Mass: 2}.Sanitize(def)
	require.Equal(t, Params{Stiffness: 50, Damping: 0, Mass: 2}, got)
}

func TestCascadeConvergesToTarget(t *testing.T) {
	c := NewCascade(60, 3, Params{Stiffness: 100, Damping: 20, Mass: 1})
	target := Point3{X: 120, Y: -40, Z: 2}
	var out []Point3
	for range 600 {
		out = c.Step(target)
	}
	require.Len(t, out, 3)
	for i, p := range out {
		assert.InDelta(t, target.X, p.X, 1e-3, "stage %d", i)
		assert.InDelta(t, target.Y, p.Y, 1e-3, "stage %d", i)
		assert.InDelta(t, target.Z, p.Z, 1e-3, "stage %d", i)
	}
}

func TestCascadeLaterStagesLag(t *testing.T) {
	c := NewCascade(60, 3, Params{Stiffness: 100, Damping: 20, Mass: 1})
	out := c.Step(Point3{X: 1})
	for range 5 {
		out = c.Step(Point3{X: 1})
	}
	if !(out[0].X > out[1].X && out[1].X > out[2].X) {
		t.Fatalf("expected each stage to trail the previous one, got %+v", out)
	}
}

func TestCascadeSetFallsBackToDefaults(t *testing.T) {
	c := NewCascade(60, 0, Params{Stiffness: 100, Damping: 20, Mass: 1})
	require.Equal(t, DefaultStages, c.Stages())

	c.Set(Params{Stiffness: -1, Damping: 4, Mass: 0})
	require.Equal(t, Params{Stiffness: 100, Damping: 4, Mass: 1}, c.Params())
	assert.InDelta(t, 10, c.Params().AngularFrequency(), 1e-12)
	assert.InDelta(t, 0.2, c.Params().DampingRatio(), 1e-12)
}

func TestCascadeClearedFieldRestoresDefault(t *testing.T) {
	def := DefaultParams()
	c := NewCascade(60, 3, def)

	c.Set(Params{Stiffness: 2, Damping: def.Damping, Mass: def.Mass})
	require.Equal(t, 2.0, c.Params().Stiffness)

	c.Set(Params{Stiffness: 0, Damping: def.Damping, Mass: def.Mass})
	assert.Equal(t, def.Stiffness, c.Params().Stiffness)
}

func TestCascadeReset(t *testing.T) {
	c := NewCascade(60, 2, DefaultParams())
	c.Reset(Point3{X: 5, Y: 5, Z: 5})
	out := c.Step(Point3{X: 5, Y: 5, Z: 5})
	for _, p := range out {
		if math.Abs(p.X-5) > 1e-12 || math.Abs(p.Z-5) > 1e-12 {
			t.Fatalf("expected stage at rest on target, got %+v", p)
		}
	}
}

func TestTrajectoryMatchesClosedForm(t *testing.T) {
	for _, p := range []Params{
		{Stiffness: 100, Damping: 0, Mass: 1},
		{Stiffness: 100, Damping: 4, Mass: 1},
		{Stiffness: 100, Damping: 60, Mass: 1},
	} {
		got := Trajectory(p, 1, 2, 0.01, 100)
		require.Len(t, got, 101)
		osc := oscillator.Params{
			Stiffness:    p.Stiffness,
			Damping:      p.Damping,
			Mass:         p.Mass,
			InitPosition: 1,
			InitSpeed:    2,
		}
		for i, v := range got {
			want := oscillator.Damped(osc, float64(i)*0.01)
			assert.InDelta(t, want, v, 1e-6, "params %+v frame %d", p, i)
		}
	}
}

func TestTrajectoryNonPhysical(t *testing.T) {
	for _, p := range []Params{
		{Stiffness: 0, Mass: 1},
		{Stiffness: 1, Mass: -1},
		{Stiffness: 1, Mass: 1, Damping: -1},
	} {
		for _, v := range Trajectory(p, 1, 0, 0.01, 3) {
			assert.True(t, math.IsNaN(v))
		}
	}
	assert.Len(t, Trajectory(Params{Stiffness: 1, Mass: 1}, 1, 0, 0.01, -5), 1)
}
