package render

import (
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BurstRenderer draws the board backdrop and burst frames.
type BurstRenderer struct {
	screenWidth  int
	screenHeight int
	gridStep     float32
	background   *ebiten.Image // предрендеренный фон
}

func NewBurstRenderer(screenWidth, screenHeight int) *BurstRenderer {
	return &BurstRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		gridStep:     40,
	}
}

// RenderBackground pre-renders the static backdrop once.
func (r *BurstRenderer) RenderBackground() {
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	img.Fill(config.BackgroundColor)
	for x := float32(0); x < float32(r.screenWidth); x += r.gridStep {
		vector.StrokeLine(img, x, 0, x, float32(r.screenHeight), 1, config.GridColor, false)
	}
	for y := float32(0); y < float32(r.screenHeight); y += r.gridStep {
		vector.StrokeLine(img, 0, y, float32(r.screenWidth), y, 1, config.GridColor, false)
	}
	r.background = img
}

// DrawBackground draws the pre-rendered backdrop, rendering it on first use.
func (r *BurstRenderer) DrawBackground(screen *ebiten.Image) {
	if r.background == nil {
		r.RenderBackground()
	}
	screen.DrawImage(r.background, nil)
}

// DrawBursts draws frames in order. Call it last so bursts sit above everything else.
func (r *BurstRenderer) DrawBursts(screen *ebiten.Image, frames []burst.Frame) {
	for _, f := range frames {
		r.drawFrame(screen, f)
	}
}

func (r *BurstRenderer) drawFrame(screen *ebiten.Image, f burst.Frame) {
	ox, oy := float32(f.OriginX), float32(f.OriginY)

	// Центральная вспышка под частицами
	if f.Flash.Opacity > 0 && f.Flash.Scale > 0 {
		radius := float32(f.Flash.Diameter * f.Flash.Scale / 2)
		vector.DrawFilledCircle(screen, ox, oy, radius, WithOpacity(f.Color, f.Flash.Opacity), true)
	}

	for _, p := range f.Particles {
		if p.Opacity <= 0 || p.Scale <= 0 {
			continue
		}
		x := ox + float32(p.X)
		y := oy + float32(p.Y)
		radius := float32(p.Size * p.Scale / 2)

		// glow: a faint halo twice the particle's size
		glow := WithOpacity(f.Color, p.Opacity*0.25)
		vector.DrawFilledCircle(screen, x, y, radius*float32(config.BurstGlowFactor), glow, true)
		vector.DrawFilledCircle(screen, x, y, radius, WithOpacity(f.Color, p.Opacity), true)
	}
}

// TextColor picks the HUD color for the last burst color.
func TextColor(last color.RGBA, paused bool) color.RGBA {
	if paused {
		return DarkenColor(last)
	}
	return last
}
