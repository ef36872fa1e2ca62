package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Tuning holds the runtime overrides for the burst constants. Every field has a
// default equal to the compiled-in constant, so an empty environment yields the
// stock game.
type Tuning struct {
	ParticleCount int           `env:"BURST_PARTICLE_COUNT" envDefault:"20"`
	Lifetime      time.Duration `env:"BURST_LIFETIME" envDefault:"1200ms"`
	DefaultColor  string        `env:"BURST_DEFAULT_COLOR" envDefault:"#a855f7"`
	Seed          int64         `env:"BURST_SEED" envDefault:"0"`
	PalettePath   string        `env:"BURST_PALETTE_PATH"`
	Sound         bool          `env:"BURST_SOUND" envDefault:"true"`
	PprofAddr     string        `env:"BURST_PPROF_ADDR"`
}

// Load reads Tuning from the process environment.
func Load() (Tuning, error) {
	var t Tuning
	if err := env.Parse(&t); err != nil {
		return Tuning{}, fmt.Errorf("parse env: %w", err)
	}
	return t, nil
}
