// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth       = 1200
	ScreenHeight      = 900
	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100 // ms

	// Critical-clear burst tuning. Visual tuning only, nothing downstream depends on the numbers.
	BurstParticleCount  = 20
	BurstMaxParticles   = 1024
	BurstDistanceMin    = 100.0 // px
	BurstDistanceMax    = 200.0 // px
	BurstSizeMin        = 8.0   // px
	BurstSizeMax        = 20.0  // px
	BurstDelayMax       = 100 * time.Millisecond
	BurstLifetime       = 1200 * time.Millisecond
	BurstParticleTime   = 800 * time.Millisecond
	BurstFlashTime      = 600 * time.Millisecond
	BurstFlashScale     = 3.0
	BurstFlashDiameter  = 60.0 // px
	BurstGlowFactor     = 2.0  // радиус свечения относительно размера частицы
	BurstDefaultColor   = "#a855f7"
	BurstCueFrequency   = 880.0 // Hz
	BurstCueDuration    = 180 * time.Millisecond
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	PauseButtonX    = 30
	PauseButtonY    = 30
	PauseButtonSize = 12.0
	SpeedButtonX    = 75
	SpeedButtonY    = 30
	SpeedButtonSize = 10.0

	HUDTextX = 100
	HUDTextY = 36

	// Terminal sandbox: how many screen pixels one character cell covers.
	SandboxCellWidth  = 10.0
	SandboxCellHeight = 20.0
	SandboxTick       = 16 * time.Millisecond
)

var (
	BackgroundColor = color.RGBA{10, 10, 18, 255}
	GridColor       = color.RGBA{30, 32, 48, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	PauseColor      = color.RGBA{70, 130, 180, 220}
	PlayColor       = color.RGBA{220, 60, 60, 220}
	StrokeColor     = color.RGBA{240, 240, 240, 255}

	// Масштабы времени вспышек и цвета кнопки скорости для каждого
	TimeScales       = []float64{1, 0.5, 0.25}
	SpeedStateColors = []color.Color{
		color.RGBA{70, 180, 90, 220},
		color.RGBA{220, 180, 60, 220},
		color.RGBA{220, 110, 60, 220},
	}
)
