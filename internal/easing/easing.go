// Package easing provides progress curves for tweens: f(0)=0, f(1)=1, and
// anything in between, including values above 1 for overshooting curves.
package easing

import "math"

// Func maps linear progress t in [0,1] to eased progress.
type Func func(t float64) float64

const (
	newtonIterations = 8
	bisectIterations = 64
	epsilon          = 1e-7
)

var (
	// Overshoot runs past the target before settling back ("bounce" ease).
	Overshoot = CubicBezier(0.34, 1.56, 0.64, 1)
	// EaseOut starts fast and decelerates.
	EaseOut = CubicBezier(0, 0, 0.58, 1)
)

// Linear is the identity curve.
func Linear(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// CubicBezier returns the curve through (0,0), (x1,y1), (x2,y2), (1,1), evaluated
// the CSS way: find the parameter s where x(s)=t, then return y(s).
// x1 and x2 must lie in [0,1] so that x(s) is monotonic.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(t float64) float64 {
		s := t
		for i := 0; i < newtonIterations; i++ {
			dx := sampleX(s) - t
			if math.Abs(dx) < epsilon {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < bisectIterations; i++ {
			x := sampleX(s)
			if math.Abs(x-t) < epsilon {
				break
			}
			if t > x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}
