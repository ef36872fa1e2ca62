// pkg/render/color.go
package render

import (
	"entropy-reduction/internal/utils"
	"image/color"
)

// WithOpacity scales the alpha of c by o in [0,1].
// Returns a premultiplied color, as ebiten expects.
func WithOpacity(c color.RGBA, o float64) color.RGBA {
	o = utils.Clamp01(o) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * o),
		G: uint8(float64(c.G) * o),
		B: uint8(float64(c.B) * o),
		A: uint8(255 * o),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
