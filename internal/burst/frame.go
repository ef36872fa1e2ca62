package burst

import (
	"entropy-reduction/internal/component"
	"image/color"
	"time"
)

// ParticleState is the render state of one particle at a point in time.
type ParticleState struct {
	ID   int
	Size float64 // diameter before scaling
	component.Transform
}

// FlashState is the render state of the central flash.
type FlashState struct {
	Diameter float64 // before scaling
	component.Transform
}

// Frame is everything a renderer needs to draw one burst: count particles plus the flash.
type Frame struct {
	OriginX, OriginY float64
	Color            color.RGBA
	Elapsed          time.Duration
	Particles        []ParticleState
	Flash            FlashState
}

// Frame samples every animation track at now. It is a pure function of now:
// the particle set is the one generated at Start.
func (in *Instance) Frame(now time.Time) Frame {
	elapsed := now.Sub(in.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	f := Frame{
		OriginX:   in.x,
		OriginY:   in.y,
		Color:     in.color,
		Elapsed:   elapsed,
		Particles: make([]ParticleState, len(in.particles)),
		Flash: FlashState{
			Diameter:  in.flashDiameter,
			Transform: in.flash.Sample(elapsed),
		},
	}
	for i, p := range in.particles {
		f.Particles[i] = ParticleState{
			ID:        p.ID,
			Size:      p.Size,
			Transform: in.tweens[i].Sample(elapsed),
		}
	}
	return f
}

// Settled reports whether every track has reached its terminal state at now.
func (in *Instance) Settled(now time.Time) bool {
	elapsed := now.Sub(in.startedAt)
	if !in.flash.Finished(elapsed) {
		return false
	}
	for _, tw := range in.tweens {
		if !tw.Finished(elapsed) {
			return false
		}
	}
	return true
}
