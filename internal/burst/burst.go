// Package burst runs critical-clear particle bursts: a frozen particle field,
// one flash element and a single completion timer per burst.
package burst

import (
	"entropy-reduction/internal/clock"
	"entropy-reduction/internal/component"
	"entropy-reduction/internal/easing"
	"entropy-reduction/internal/particle"
	"entropy-reduction/internal/utils"
	"fmt"
	"image/color"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Status is the lifecycle state of an Instance.
type Status int32

const (
	Pending Status = iota
	Completed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Status(%d)", int32(s))
}

// Request starts one burst. OnComplete is optional.
type Request struct {
	X, Y       float64 // screen px
	Color      string  // hex; empty means the configured default
	OnComplete func()
}

// Controller starts bursts against a scheduler and a random source.
type Controller struct {
	cfg          Config
	sched        clock.Scheduler
	gen          *particle.Generator
	defaultColor color.RGBA
	active       atomic.Int64
}

// NewController validates cfg and binds it to sched and src.
func NewController(cfg Config, sched clock.Scheduler, src particle.Source) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	def, _ := utils.ParseHexColor(cfg.DefaultColor) // checked by Validate

	return &Controller{
		cfg:          cfg,
		sched:        sched,
		gen:          particle.NewGenerator(cfg.Bounds, src),
		defaultColor: def,
	}, nil
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Active is the number of bursts whose timer is still pending.
func (c *Controller) Active() int {
	return int(c.active.Load())
}

// Start generates the particle field once, builds the animation tracks and
// arms the completion timer. The returned Instance must be cancelled by its
// owner if it is torn down before completion. A scheduler that fires
// synchronously may run OnComplete before Start returns; check Status.
func (c *Controller) Start(req Request) (*Instance, error) {
	field, err := c.gen.Generate(c.cfg.Count)
	if err != nil {
		return nil, fmt.Errorf("generate particle field: %w", err)
	}

	inst := &Instance{
		ctrl:          c,
		x:             req.X,
		y:             req.Y,
		color:         c.resolveColor(req.Color),
		startedAt:     c.sched.Now(),
		particles:     field,
		tweens:        make([]component.Tween, len(field)),
		flashDiameter: c.cfg.FlashDiameter,
		onComplete:    req.OnComplete,
		done:          make(chan struct{}),
	}

	for i, p := range field {
		inst.tweens[i] = component.Tween{
			From:     component.Transform{X: 0, Y: 0, Scale: 1, Opacity: 1},
			To:       component.Transform{X: p.EndX, Y: p.EndY, Scale: 0, Opacity: 0},
			Duration: c.cfg.ParticleDuration,
			Delay:    p.StartDelay,
			Ease:     easing.Overshoot,
		}
	}
	inst.flash = component.Tween{
		From:     component.Transform{Scale: 0, Opacity: 1},
		To:       component.Transform{Scale: c.cfg.FlashScale, Opacity: 0},
		Duration: c.cfg.FlashDuration,
		Ease:     easing.EaseOut,
	}

	c.active.Add(1)
	inst.mu.Lock()
	inst.timer = c.sched.AfterFunc(c.cfg.Lifetime, inst.fire)
	inst.mu.Unlock()

	return inst, nil
}

func (c *Controller) resolveColor(s string) color.RGBA {
	if s == "" {
		return c.defaultColor
	}
	rgba, err := utils.ParseHexColor(s)
	if err != nil {
		log.Printf("burst: %v, using %s", err, c.cfg.DefaultColor)
		return c.defaultColor
	}
	return rgba
}

// Instance is one live burst.
type Instance struct {
	ctrl          *Controller
	x, y          float64
	color         color.RGBA
	startedAt     time.Time
	particles     []particle.Descriptor
	tweens        []component.Tween
	flash         component.Tween
	flashDiameter float64
	onComplete    func()

	status atomic.Int32
	done   chan struct{}

	mu    sync.Mutex
	timer clock.Timer // nil once cancelled
}

// Origin returns the anchor point in screen pixels.
func (in *Instance) Origin() (x, y float64) {
	return in.x, in.y
}

func (in *Instance) Color() color.RGBA {
	return in.color
}

// Particles returns a copy of the frozen particle field.
func (in *Instance) Particles() []particle.Descriptor {
	out := make([]particle.Descriptor, len(in.particles))
	copy(out, in.particles)
	return out
}

func (in *Instance) Status() Status {
	return Status(in.status.Load())
}

// Done is closed once the burst completes or is cancelled.
func (in *Instance) Done() <-chan struct{} {
	return in.done
}

// Cancel stops the pending timer and suppresses OnComplete. Safe to call any
// number of times, before or after completion.
func (in *Instance) Cancel() {
	if !in.finish(Cancelled) {
		return
	}
	in.mu.Lock()
	t := in.timer
	in.timer = nil
	in.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

// fire does not touch mu: Start holds it while arming the timer.
func (in *Instance) fire() {
	if in.finish(Completed) && in.onComplete != nil {
		in.onComplete()
	}
}

// finish moves Pending to s. Only the first caller wins.
func (in *Instance) finish(s Status) bool {
	if !in.status.CompareAndSwap(int32(Pending), int32(s)) {
		return false
	}
	close(in.done)
	in.ctrl.active.Add(-1)
	return true
}
