// Package spring runs a cascade of second-order spring filters over a 3D
// target. Each stage follows the output of the one before it, so later
// stages lag and smooth the motion more.
package spring

import (
	"math"

	"github.com/olivier-w/frameplay/internal/oscillator"
	"github.com/olivier-w/frameplay/internal/resolve"
)

// Params are the physical spring parameters exposed to the user.
type Params struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultParams matches the default oscillator of the explicit functions screen.
func DefaultParams() Params {
	d := resolve.DefaultLimits().Oscillator
	return Params{Stiffness: d.Stiffness, Damping: d.Damping, Mass: d.Mass}
}

// Sanitize replaces invalid fields with def: stiffness and mass must be
// positive and damping non-negative.
func (p Params) Sanitize(def Params) Params {
	o := resolve.Oscillator(
		oscParams(p),
		oscParams(def),
	)
	return Params{Stiffness: o.Stiffness, Damping: o.Damping, Mass: o.Mass}
}

// AngularFrequency returns sqrt(k/m).
func (p Params) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio returns c / (2·sqrt(k·m)).
func (p Params) DampingRatio() float64 {
	return p.Damping / 2 / math.Sqrt(p.Stiffness*p.Mass)
}

// Point3 is a position in the simulator space.
type Point3 struct {
	X, Y, Z float64
}

// Cascade is a chain of spring stages stepped at a fixed frame rate.
type Cascade struct {
	fps    int
	def    Params
	params Params
	stages []field
}

// DefaultStages is the number of stages the simulator screen uses.
const DefaultStages = 3

// NewCascade creates a cascade of n stages at rest at the origin. The
// sanitized p is also the fallback for invalid fields passed to Set.
func NewCascade(fps, n int, p Params) *Cascade {
	if fps <= 0 {
		fps = 60
	}
	if n <= 0 {
		n = DefaultStages
	}
	p = p.Sanitize(DefaultParams())
	c := &Cascade{fps: fps, def: p, params: p, stages: make([]field, n)}
	for i := range c.stages {
		c.stages[i] = newField(fps, p.AngularFrequency(), p.DampingRatio(), 3)
	}
	return c
}

// Params returns the sanitized parameters in effect.
func (c *Cascade) Params() Params { return c.params }

// Stages returns the number of stages.
func (c *Cascade) Stages() int { return len(c.stages) }

// Set retunes every stage. Invalid fields fall back to the parameters the
// cascade was created with.
func (c *Cascade) Set(p Params) {
	p = p.Sanitize(c.def)
	if p == c.params {
		return
	}
	c.params = p
	for i := range c.stages {
		c.stages[i].retune(c.fps, p.AngularFrequency(), p.DampingRatio())
	}
}

// Reset places every stage at p with zero velocity.
func (c *Cascade) Reset(p Point3) {
	for i := range c.stages {
		c.stages[i].reset(0, p.X)
		c.stages[i].reset(1, p.Y)
		c.stages[i].reset(2, p.Z)
	}
}

// Step advances one frame toward target and returns every stage's position.
func (c *Cascade) Step(target Point3) []Point3 {
	out := make([]Point3, len(c.stages))
	for i := range c.stages {
		s := &c.stages[i]
		target = Point3{
			X: s.step(0, target.X),
			Y: s.step(1, target.Y),
			Z: s.step(2, target.Z),
		}
		out[i] = target
	}
	return out
}

func oscParams(p Params) oscillator.Params {
	return oscillator.Params{Stiffness: p.Stiffness, Damping: p.Damping, Mass: p.Mass}
}
