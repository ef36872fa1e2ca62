package system

import (
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/clock"
	"entropy-reduction/internal/entity"
	"entropy-reduction/internal/event"
	"entropy-reduction/internal/types"
	"entropy-reduction/internal/utils"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) ids(t event.EventType) []types.EntityID {
	var out []types.EntityID
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e.Data.(types.EntityID))
		}
	}
	return out
}

type fixture struct {
	loop       *clock.Loop
	dispatcher *event.Dispatcher
	system     *BurstSystem
	controller *burst.Controller
	log        *eventLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loop := clock.NewLoop(epoch)
	ctrl, err := burst.NewController(burst.DefaultConfig(), loop, utils.NewPRNGService(9))
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(event.BurstCompleted, log)
	d.Subscribe(event.BurstCancelled, log)

	return &fixture{
		loop:       loop,
		dispatcher: d,
		system:     NewBurstSystem(entity.NewECS(), ctrl, d),
		controller: ctrl,
		log:        log,
	}
}

func TestCriticalClearStartsBurstAndCompletionRemovesIt(t *testing.T) {
	f := newFixture(t)

	f.dispatcher.Dispatch(event.Event{
		Type: event.CriticalClear,
		Data: event.CriticalClearData{X: 100, Y: 200, Color: "#a855f7"},
	})
	if f.system.Active() != 1 {
		t.Fatalf("Expected 1 active burst, got %d", f.system.Active())
	}

	frames := f.system.Frames(f.loop.Now())
	if len(frames) != 1 || frames[0].OriginX != 100 || frames[0].OriginY != 200 {
		t.Fatalf("Unexpected frames: %+v", frames)
	}

	f.loop.Advance(1199 * time.Millisecond)
	if f.system.Active() != 1 {
		t.Fatal("Burst removed before its timer fired")
	}
	f.loop.Advance(time.Millisecond)
	if f.system.Active() != 0 {
		t.Fatalf("Expected burst removed on completion, %d left", f.system.Active())
	}
	if got := f.log.ids(event.BurstCompleted); len(got) != 1 {
		t.Errorf("Expected one BurstCompleted, got %v", got)
	}
	if f.controller.Active() != 0 || f.loop.Pending() != 0 {
		t.Errorf("Leaked timers: controller=%d loop=%d", f.controller.Active(), f.loop.Pending())
	}
}

func TestRapidSuccessiveClears(t *testing.T) {
	f := newFixture(t)

	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		id, err := f.system.Trigger(float64(i*100), 50, "")
		if err != nil {
			t.Fatalf("Trigger() error = %v", err)
		}
		ids = append(ids, id)
		f.loop.Advance(100 * time.Millisecond)
	}
	if f.system.Active() != 5 {
		t.Fatalf("Expected 5 concurrent bursts, got %d", f.system.Active())
	}

	frames := f.system.Frames(f.loop.Now())
	for i := 1; i < len(frames); i++ {
		if frames[i].OriginX <= frames[i-1].OriginX {
			t.Fatalf("Frames not in trigger order: %v then %v", frames[i-1].OriginX, frames[i].OriginX)
		}
	}

	f.loop.Advance(700 * time.Millisecond) // first burst due at 1200ms
	if got := f.log.ids(event.BurstCompleted); len(got) != 1 || got[0] != ids[0] {
		t.Fatalf("Expected only the first burst complete, got %v", got)
	}

	f.loop.Advance(time.Second)
	if f.system.Active() != 0 {
		t.Errorf("Expected all bursts complete, %d left", f.system.Active())
	}
	if got := f.log.ids(event.BurstCompleted); len(got) != 5 {
		t.Errorf("Expected 5 completions, got %d", len(got))
	}
}

func TestCancelOneLeavesOthers(t *testing.T) {
	f := newFixture(t)

	a, _ := f.system.Trigger(10, 10, "#a855f7")
	b, _ := f.system.Trigger(20, 20, "#00f0ff")

	f.loop.Advance(500 * time.Millisecond)
	if !f.system.Cancel(a) {
		t.Fatal("Cancel(a) reported unknown id")
	}
	if f.system.Cancel(a) {
		t.Error("Second Cancel(a) should report false")
	}

	f.loop.Advance(time.Second)

	if got := f.log.ids(event.BurstCompleted); len(got) != 1 || got[0] != b {
		t.Errorf("Expected only b to complete, got %v", got)
	}
	if got := f.log.ids(event.BurstCancelled); len(got) != 1 || got[0] != a {
		t.Errorf("Expected a cancelled, got %v", got)
	}
}

func TestTeardownCancelsEverything(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		if _, err := f.system.Trigger(0, 0, ""); err != nil {
			t.Fatal(err)
		}
	}

	f.system.Teardown()
	f.loop.Advance(5 * time.Second)

	if f.system.Active() != 0 {
		t.Errorf("Expected no bursts after teardown, got %d", f.system.Active())
	}
	if got := f.log.ids(event.BurstCompleted); len(got) != 0 {
		t.Errorf("Torn-down bursts completed: %v", got)
	}
	if f.loop.Pending() != 0 || f.controller.Active() != 0 {
		t.Errorf("Teardown leaked timers: loop=%d controller=%d", f.loop.Pending(), f.controller.Active())
	}
}

func TestUnexpectedPayloadIgnored(t *testing.T) {
	f := newFixture(t)
	f.dispatcher.Dispatch(event.Event{Type: event.CriticalClear, Data: "nope"})
	if f.system.Active() != 0 {
		t.Errorf("Malformed event started a burst")
	}
}

// immediateScheduler fires every timer inside AfterFunc, before Start returns.
type immediateScheduler struct{}

func (immediateScheduler) Now() time.Time { return epoch }

func (immediateScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	f()
	return firedTimer{}
}

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }

func TestTimerFiringInsideStartIsNotRegistered(t *testing.T) {
	ctrl, err := burst.NewController(burst.DefaultConfig(), immediateScheduler{}, utils.NewPRNGService(9))
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(event.BurstCompleted, log)
	s := NewBurstSystem(entity.NewECS(), ctrl, d)

	id, err := s.Trigger(10, 10, "")
	if err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}
	if s.Active() != 0 {
		t.Errorf("Expected already-completed burst to stay unregistered, got %d active", s.Active())
	}
	if got := log.ids(event.BurstCompleted); len(got) != 1 || got[0] != id {
		t.Errorf("Expected one BurstCompleted for %d, got %v", id, got)
	}
	if ctrl.Active() != 0 {
		t.Errorf("Expected controller to have no pending bursts, got %d", ctrl.Active())
	}
	if s.Cancel(id) {
		t.Error("Cancel of a completed burst should report false")
	}
}
