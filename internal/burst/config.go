package burst

import (
	"entropy-reduction/internal/config"
	"entropy-reduction/internal/particle"
	"entropy-reduction/internal/utils"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid burst config")

// Config holds the tuned constants of a burst.
type Config struct {
	Count            int
	Bounds           particle.Bounds
	Lifetime         time.Duration // start to OnComplete
	ParticleDuration time.Duration
	FlashDuration    time.Duration
	FlashScale       float64
	FlashDiameter    float64 // px
	DefaultColor     string
}

// DefaultConfig returns 20 particles, a 1200ms lifetime, 0.8s particle and 0.6s flash animations.
func DefaultConfig() Config {
	return Config{
		Count:            config.BurstParticleCount,
		Bounds:           particle.DefaultBounds(),
		Lifetime:         config.BurstLifetime,
		ParticleDuration: config.BurstParticleTime,
		FlashDuration:    config.BurstFlashTime,
		FlashScale:       config.BurstFlashScale,
		FlashDiameter:    config.BurstFlashDiameter,
		DefaultColor:     config.BurstDefaultColor,
	}
}

// ConfigFromTuning applies environment overrides on top of DefaultConfig.
// Tuning carries its own defaults, so every field is taken as set: an explicit
// zero count or lifetime reaches Validate and is rejected there.
func ConfigFromTuning(t config.Tuning) Config {
	cfg := DefaultConfig()
	cfg.Count = t.ParticleCount
	cfg.Lifetime = t.Lifetime
	cfg.DefaultColor = t.DefaultColor
	return cfg
}

// Validate checks the config. The lifetime must cover the slowest particle
// (ParticleDuration + Bounds.DelayMax) so completion never precedes the last frame.
func (c Config) Validate() error {
	if c.Count <= 0 || c.Count > particle.MaxCount {
		return fmt.Errorf("%w: count %d not in [1, %d]", ErrInvalidConfig, c.Count, particle.MaxCount)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ParticleDuration <= 0 || c.FlashDuration <= 0 {
		return fmt.Errorf("%w: animation durations must be positive", ErrInvalidConfig)
	}
	if slowest := c.ParticleDuration + c.Bounds.DelayMax; c.Lifetime < slowest {
		return fmt.Errorf("%w: lifetime %v shorter than slowest particle %v", ErrInvalidConfig, c.Lifetime, slowest)
	}
	if c.FlashScale < 0 || c.FlashDiameter < 0 {
		return fmt.Errorf("%w: negative flash geometry", ErrInvalidConfig)
	}
	if _, err := utils.ParseHexColor(c.DefaultColor); err != nil {
		return fmt.Errorf("%w: default color: %w", ErrInvalidConfig, err)
	}
	return nil
}
