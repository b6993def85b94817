package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Trajectory steps a single spring released at x0 with velocity v0 toward
// rest at 0 and returns n+1 positions spaced dt apart. Parameters are used
// as given: a spring without a defined frequency yields NaN everywhere.
func Trajectory(p Params, x0, v0, dt float64, n int) []float64 {
	n = max(n, 0)
	out := make([]float64, n+1)
	if !(p.Stiffness > 0) || !(p.Mass > 0) || !(p.Damping >= 0) || !(dt > 0) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	s := harmonica.NewSpring(dt, p.AngularFrequency(), p.DampingRatio())
	pos, vel := x0, v0
	out[0] = pos
	for i := 1; i <= n; i++ {
		pos, vel = s.Update(pos, vel, 0)
		out[i] = pos
	}
	return out
}
