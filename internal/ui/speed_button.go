// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает масштаб времени вспышек (1x → 0.5x → 0.25x)
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Scales        []float64
	StateColors   []color.Color
	StrokeColor   color.Color
	CurrentState  int
}

// NewSpeedButton expects one colour per scale.
func NewSpeedButton(x, y, size float32, scales []float64, stateColors []color.Color, strokeColor color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Scales:      scales,
		StateColors: stateColors,
		StrokeColor: strokeColor,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
		strokePath(screen, &path, 1, b.StrokeColor)
	}
}

// IsClicked использует круг для определения попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.Scales)
	b.LastClickTime = time.Now()
}

// TimeScale is the multiplier for the current state.
func (b *SpeedButton) TimeScale() float64 {
	return b.Scales[b.CurrentState]
}
