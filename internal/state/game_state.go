// internal/state/game_state.go
package state

import (
	"entropy-reduction/internal/audio"
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/clock"
	"entropy-reduction/internal/config"
	"entropy-reduction/internal/defs"
	"entropy-reduction/internal/entity"
	"entropy-reduction/internal/event"
	"entropy-reduction/internal/system"
	"entropy-reduction/internal/ui"
	"entropy-reduction/internal/utils"
	"entropy-reduction/pkg/render"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// GameState — игровое состояние: клик по полю фиксирует критическую очистку.
// The real board logic lives elsewhere; this state stands in as the caller of
// the burst system.
type GameState struct {
	sm            *StateMachine
	clock         *clock.Loop
	ecs           *entity.ECS
	dispatcher    *event.Dispatcher
	bursts        *system.BurstSystem
	renderer      *render.BurstRenderer
	pauseButton   *ui.PauseButton
	speedButton   *ui.SpeedButton
	rng           *utils.PRNGService
	palette       []defs.PaletteEntry
	fontFace      font.Face
	lastColor     color.RGBA
	lastClickTime time.Time
	cleared       int
}

// NewGameState wires the burst pipeline: clock → controller → system → renderer.
// cues may be nil.
func NewGameState(sm *StateMachine, tuning config.Tuning, palette []defs.PaletteEntry, cues *audio.CuePlayer) (*GameState, error) {
	loop := clock.NewLoop(time.Now())
	rng := utils.NewPRNGService(tuning.Seed)

	controller, err := burst.NewController(burst.ConfigFromTuning(tuning), loop, rng)
	if err != nil {
		return nil, fmt.Errorf("burst controller: %w", err)
	}

	face, err := newHUDFace()
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bursts := system.NewBurstSystem(ecs, controller, dispatcher)
	if cues != nil {
		dispatcher.Subscribe(event.CriticalClear, cues)
	}

	renderer := render.NewBurstRenderer(config.ScreenWidth, config.ScreenHeight)
	renderer.RenderBackground()

	lastColor, _ := utils.ParseHexColor(controller.Config().DefaultColor)

	return &GameState{
		sm:         sm,
		clock:      loop,
		ecs:        ecs,
		dispatcher: dispatcher,
		bursts:     bursts,
		renderer:   renderer,
		pauseButton: ui.NewPauseButton(
			config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize,
			config.PauseColor, config.PlayColor, config.StrokeColor,
		),
		speedButton: ui.NewSpeedButton(
			config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize,
			config.TimeScales, config.SpeedStateColors, config.StrokeColor,
		),
		rng:       rng,
		palette:   palette,
		fontFace:  face,
		lastColor: lastColor,
	}, nil
}

func newHUDFace() (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse HUD font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("HUD font face: %w", err)
	}
	return face, nil
}

// Enter возобновляет часы вспышек (в том числе после паузы)
func (g *GameState) Enter() {
	g.clock.Resume()
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.IsClicked(x, y) {
			g.pause()
			return
		}
		if g.speedButton.IsClicked(x, y) {
			g.speedButton.ToggleState()
			return
		}
		if time.Since(g.lastClickTime) >= config.ClickDebounceTime*time.Millisecond {
			g.lastClickTime = time.Now()
			g.criticalClear(float64(x), float64(y))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.speedButton.ToggleState()
	}

	// Замедление влияет только на часы вспышек
	scaled := deltaTime * g.speedButton.TimeScale()
	g.ecs.GameTime += scaled
	g.clock.Advance(time.Duration(scaled * float64(time.Second)))
}

// criticalClear stands in for the board: it announces a clear at (x, y).
func (g *GameState) criticalClear(x, y float64) {
	c := g.rng.ChooseWeighted(g.palette)
	if rgba, err := utils.ParseHexColor(c); err == nil {
		g.lastColor = rgba
	}
	g.cleared++
	g.dispatcher.Dispatch(event.Event{
		Type: event.CriticalClear,
		Data: event.CriticalClearData{X: x, Y: y, Color: c},
	})
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackground(screen)
	g.drawHUD(screen)
	// Вспышки рисуются последними — поверх всего остального
	g.renderer.DrawBursts(screen, g.bursts.Frames(g.clock.Now()))
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	g.pauseButton.Draw(screen)
	g.speedButton.Draw(screen)
	hud := fmt.Sprintf("critical clears: %d   live bursts: %d   speed: %gx",
		g.cleared, g.bursts.Active(), g.speedButton.TimeScale())
	text.Draw(screen, hud, g.fontFace, config.HUDTextX, config.HUDTextY,
		render.TextColor(g.lastColor, g.clock.IsPaused()))
}

// Exit замораживает часы: вспышки ждут возвращения в игру
func (g *GameState) Exit() {
	g.clock.Pause()
}

// Dispose cancels every live burst. Call once when the game shuts down.
func (g *GameState) Dispose() {
	g.bursts.Teardown()
}
