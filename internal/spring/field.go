package spring

import "github.com/charmbracelet/harmonica"

// field is a set of independent damped springs sharing one configuration,
// one per tracked coordinate.
type field struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newField(fps int, frequency, damping float64, n int) field {
	return field{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    make([]float64, n),
		vel:    make([]float64, n),
	}
}

func (f *field) retune(fps int, frequency, damping float64) {
	f.spring = harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
}

func (f *field) step(i int, target float64) float64 {
	p, v := f.spring.Update(f.pos[i], f.vel[i], target)
	f.pos[i] = p
	f.vel[i] = v
	return p
}

func (f *field) reset(i int, p float64) {
	f.pos[i] = p
	f.vel[i] = 0
}
