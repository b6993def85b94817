package explicit

// Bezier curves here run from (0,0) to (1,1). With control x coordinates in
// [0,1] the x component is non-decreasing in the curve parameter, so y can
// be read as a function of x by inverting x(s).

const bisectSteps = 52

// QuadraticBezier returns y(x) for the curve with control point (x1, y1).
func QuadraticBezier(x1, y1 float64) Func {
	bx := func(s float64) float64 { return 2*s*(1-s)*x1 + s*s }
	by := func(s float64) float64 { return 2*s*(1-s)*y1 + s*s }
	return func(x float64) float64 { return by(invert(bx, x)) }
}

// CubicBezier returns y(x) for the curve with control points (x1, y1) and
// (x2, y2), as in CSS timing functions.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	bx := func(s float64) float64 { return cubic(s, x1, x2) }
	by := func(s float64) float64 { return cubic(s, y1, y2) }
	return func(x float64) float64 { return by(invert(bx, x)) }
}

func cubic(s, p1, p2 float64) float64 {
	r := 1 - s
	return 3*r*r*s*p1 + 3*r*s*s*p2 + s*s*s
}

// invert finds s in [0,1] with f(s) = x for a non-decreasing f with
// f(0)=0 and f(1)=1. x outside [0,1] is clamped.
func invert(f func(float64) float64, x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	lo, hi := 0.0, 1.0
	for range bisectSteps {
		mid := (lo + hi) / 2
		if f(mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
