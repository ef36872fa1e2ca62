// internal/state/pause_state.go
package state

import (
	"entropy-reduction/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замороженную игру поверх затемнения.
// Bursts hold still because GameState.Exit pauses their clock.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		game:         game,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.game.pauseButton.IsClicked(x, y)
	}

	if unpause {
		s.game.pauseButton.TogglePause()
		s.stateMachine.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	const pauseText = "PAUSED"
	bounds := text.BoundString(s.game.fontFace, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, pauseText, s.game.fontFace, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Dispose передаёт освобождение ресурсов игре под паузой
func (s *PauseState) Dispose() {
	s.game.Dispose()
}
