// Package particle generates the radial particle field of a burst.
package particle

import (
	"entropy-reduction/internal/config"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidCount     = errors.New("particle count must be positive")
	ErrTooManyParticles = errors.New("particle count exceeds limit")
	ErrInvalidBounds    = errors.New("invalid particle bounds")
)

// MaxCount caps a single field.
const MaxCount = config.BurstMaxParticles

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// Bounds are the sampling ranges for the randomised parameters.
type Bounds struct {
	DistanceMin, DistanceMax float64 // px
	SizeMin, SizeMax         float64 // px
	DelayMax                 time.Duration
}

// DefaultBounds returns the tuned ranges: distance [100,200], size [8,20], delay [0,100ms].
func DefaultBounds() Bounds {
	return Bounds{
		DistanceMin: config.BurstDistanceMin,
		DistanceMax: config.BurstDistanceMax,
		SizeMin:     config.BurstSizeMin,
		SizeMax:     config.BurstSizeMax,
		DelayMax:    config.BurstDelayMax,
	}
}

// Validate rejects negative or inverted ranges.
func (b Bounds) Validate() error {
	switch {
	case b.DistanceMin < 0 || b.DistanceMax < b.DistanceMin:
		return fmt.Errorf("%w: distance [%v, %v]", ErrInvalidBounds, b.DistanceMin, b.DistanceMax)
	case b.SizeMin < 0 || b.SizeMax < b.SizeMin:
		return fmt.Errorf("%w: size [%v, %v]", ErrInvalidBounds, b.SizeMin, b.SizeMax)
	case b.DelayMax < 0:
		return fmt.Errorf("%w: delay max %v", ErrInvalidBounds, b.DelayMax)
	}
	return nil
}

// Descriptor is the frozen geometry of one particle.
type Descriptor struct {
	ID         int
	Angle      float64 // radians
	Distance   float64 // px
	Size       float64 // px, rendered diameter
	EndX, EndY float64 // terminal offset from the origin
	StartDelay time.Duration
}

// Generator samples particle fields.
type Generator struct {
	bounds Bounds
	src    Source
}

func NewGenerator(bounds Bounds, src Source) *Generator {
	return &Generator{bounds: bounds, src: src}
}

// Generate returns count descriptors with evenly spaced angles and independently
// sampled distance, size and start delay. The returned slice is owned by the caller.
func (g *Generator) Generate(count int) ([]Descriptor, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count > MaxCount {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyParticles, count, MaxCount)
	}

	out := make([]Descriptor, count)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(count)
		distance := g.uniform(g.bounds.DistanceMin, g.bounds.DistanceMax)
		size := g.uniform(g.bounds.SizeMin, g.bounds.SizeMax)
		delay := time.Duration(g.src.Float64() * float64(g.bounds.DelayMax))

		out[i] = Descriptor{
			ID:         i,
			Angle:      angle,
			Distance:   distance,
			Size:       size,
			EndX:       math.Cos(angle) * distance,
			EndY:       math.Sin(angle) * distance,
			StartDelay: delay,
		}
	}
	return out, nil
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.src.Float64()*(max-min)
}
