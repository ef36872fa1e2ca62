// internal/component/visual.go
package component

import (
	"entropy-reduction/internal/easing"
	"entropy-reduction/internal/utils"
	"math"
	"time"
)

// Transform — визуальное состояние элемента относительно точки вспышки.
// X, Y are pixel offsets from the burst origin.
type Transform struct {
	X, Y    float64
	Scale   float64
	Opacity float64
}

// Tween describes one declarative animation: From at elapsed <= Delay, To at
// elapsed >= Delay+Duration, eased interpolation in between.
type Tween struct {
	From, To Transform
	Duration time.Duration
	Delay    time.Duration
	Ease     easing.Func // nil means linear
}

// Sample returns the interpolated state at elapsed time since the tween was
// started. It holds no state, so sampling the same instant twice gives the same result.
func (tw Tween) Sample(elapsed time.Duration) Transform {
	if elapsed <= tw.Delay {
		return tw.From
	}
	local := elapsed - tw.Delay
	if tw.Duration <= 0 || local >= tw.Duration {
		return tw.To
	}

	p := float64(local) / float64(tw.Duration)
	if tw.Ease != nil {
		p = tw.Ease(p)
	}

	// Overshooting curves may push scale/opacity past their targets.
	return Transform{
		X:       utils.Lerp(tw.From.X, tw.To.X, p),
		Y:       utils.Lerp(tw.From.Y, tw.To.Y, p),
		Scale:   math.Max(0, utils.Lerp(tw.From.Scale, tw.To.Scale, p)),
		Opacity: utils.Clamp01(utils.Lerp(tw.From.Opacity, tw.To.Opacity, p)),
	}
}

// End is the elapsed time at which the tween reaches To.
func (tw Tween) End() time.Duration {
	return tw.Delay + tw.Duration
}

// Finished reports whether the tween has settled at elapsed.
func (tw Tween) Finished(elapsed time.Duration) bool {
	return elapsed >= tw.End()
}
