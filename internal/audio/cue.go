// Package audio plays the short sound cues that accompany bursts.
package audio

import (
	"entropy-reduction/internal/config"
	"entropy-reduction/internal/event"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(config.AudioSampleRate)

// CuePlayer mixes one-shot cues into a single speaker stream.
// Without a successful Initialize every Play call is a no-op.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(config.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all cues and closes the device.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PlayCriticalClear plays the burst chirp.
func (p *CuePlayer) PlayCriticalClear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	chirp, err := NewChirp(sampleRate, config.BurstCueFrequency, config.BurstCueDuration)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(chirp)
	speaker.Unlock()
}

// OnEvent plays the chirp for every critical clear.
func (p *CuePlayer) OnEvent(e event.Event) {
	if e.Type == event.CriticalClear {
		p.PlayCriticalClear()
	}
}

// NewChirp returns a sine tone of length d whose amplitude decays exponentially.
func NewChirp(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("chirp at %.0fHz: %w", freq, err)
	}
	total := rate.N(d)
	return beep.Take(total, &decay{src: sine, total: total, gain: 0.25}), nil
}

// decay applies gain·e^(-5·t/total) to its source.
type decay struct {
	src   beep.Streamer
	pos   int
	total int
	gain  float64
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.src.Stream(samples)
	for i := 0; i < n; i++ {
		env := d.gain * math.Exp(-5*float64(d.pos)/float64(d.total))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.src.Err() }
