// Terminal harness for the burst pipeline: space bursts at the centre, a mouse
// click bursts at the clicked cell, q or Esc quits.
package main

import (
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/clock"
	"entropy-reduction/internal/config"
	"entropy-reduction/internal/defs"
	"entropy-reduction/internal/entity"
	"entropy-reduction/internal/event"
	"entropy-reduction/internal/system"
	"entropy-reduction/internal/utils"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

type sandbox struct {
	screen        tcell.Screen
	width, height int

	clock   *clock.Loop
	bursts  *system.BurstSystem
	rng     *utils.PRNGService
	palette []defs.PaletteEntry

	completed int
	lastTick  time.Time
	button1   bool // Button1 was down on the previous mouse event
}

// OnEvent считает завершённые вспышки для строки статуса
func (s *sandbox) OnEvent(e event.Event) {
	if e.Type == event.BurstCompleted {
		s.completed++
	}
}

func newSandbox(tuning config.Tuning) (*sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	loop := clock.NewLoop(time.Now())
	rng := utils.NewPRNGService(tuning.Seed)
	controller, err := burst.NewController(burst.ConfigFromTuning(tuning), loop, rng)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	dispatcher := event.NewDispatcher()
	s := &sandbox{
		screen:   screen,
		clock:    loop,
		bursts:   system.NewBurstSystem(entity.NewECS(), controller, dispatcher),
		rng:      rng,
		palette:  defs.DefaultPalette(),
		lastTick: time.Now(),
	}
	dispatcher.Subscribe(event.BurstCompleted, s)
	s.width, s.height = screen.Size()
	return s, nil
}

// trigger bursts at a terminal cell; burst coordinates stay in pixels.
func (s *sandbox) trigger(col, row int) {
	x := float64(col) * config.SandboxCellWidth
	y := float64(row) * config.SandboxCellHeight
	if _, err := s.bursts.Trigger(x, y, s.rng.ChooseWeighted(s.palette)); err != nil {
		log.Printf("sandbox: %v", err)
	}
}

func (s *sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			s.trigger(s.width/2, s.height/2)
		}
	case *tcell.EventMouse:
		if s.pressed(ev.Buttons() & tcell.Button1) {
			s.trigger(ev.Position())
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	}
	return true
}

// pressed reports the Button1 down edge; motion with the button held is ignored.
func (s *sandbox) pressed(button1 tcell.ButtonMask) bool {
	down := button1 != 0
	edge := down && !s.button1
	s.button1 = down
	return edge
}

func (s *sandbox) tick() {
	now := time.Now()
	s.clock.Advance(now.Sub(s.lastTick))
	s.lastTick = now
}

func (s *sandbox) draw() {
	s.screen.Clear()

	for _, f := range s.bursts.Frames(s.clock.Now()) {
		if f.Flash.Opacity > 0 {
			s.plot(f.OriginX, f.OriginY, '@', f.Color, f.Flash.Opacity)
		}
		for _, p := range f.Particles {
			if p.Opacity <= 0 || p.Scale <= 0 {
				continue
			}
			glyph := '*'
			if p.Size*p.Scale < config.BurstSizeMin {
				glyph = '.'
			}
			s.plot(f.OriginX+p.X, f.OriginY+p.Y, glyph, f.Color, p.Opacity)
		}
	}

	status := fmt.Sprintf(" live %d  completed %d  [space] burst  [click] burst here  [q] quit ",
		s.bursts.Active(), s.completed)
	for i, r := range status {
		s.screen.SetContent(i, s.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	s.screen.Show()
}

func (s *sandbox) plot(px, py float64, glyph rune, c color.RGBA, opacity float64) {
	col := int(math.Round(px / config.SandboxCellWidth))
	row := int(math.Round(py / config.SandboxCellHeight))
	if col < 0 || col >= s.width || row < 0 || row >= s.height-1 {
		return
	}
	fg := tcell.NewRGBColor(
		int32(float64(c.R)*opacity),
		int32(float64(c.G)*opacity),
		int32(float64(c.B)*opacity),
	)
	s.screen.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg))
}

func (s *sandbox) run() {
	ticker := time.NewTicker(config.SandboxTick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
			s.draw()
		}
	}
}

func main() {
	debug := flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	tuning, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	s, err := newSandbox(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandbox: %v\n", err)
		os.Exit(1)
	}

	s.run()
	s.screen.Fini()
	s.bursts.Teardown()
}
