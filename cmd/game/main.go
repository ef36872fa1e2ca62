// cmd/game/main.go
package main

import (
	"entropy-reduction/internal/audio"
	"entropy-reduction/internal/config"
	"entropy-reduction/internal/defs"
	"entropy-reduction/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuning, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if tuning.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(tuning.PprofAddr, nil))
		}()
	}

	palette := defs.DefaultPalette()
	if tuning.PalettePath != "" {
		loaded, err := defs.LoadPalette(tuning.PalettePath)
		if err != nil {
			log.Printf("palette: %v, falling back to defaults", err)
		} else {
			palette = loaded
		}
	}

	var cues *audio.CuePlayer
	if tuning.Sound {
		cues = audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			cues = nil
		} else {
			defer cues.Cleanup()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	game, err := state.NewGameState(sm, tuning, palette, cues)
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	sm.SetState(game)
	defer sm.Shutdown()

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Entropy Reduction")
	if err := ebiten.RunGame(app); err != nil {
		log.Printf("run: %v", err)
	}
}
