package clock

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestLoopFiresAtDeadline(t *testing.T) {
	l := NewLoop(epoch)
	calls := 0
	l.AfterFunc(1200*time.Millisecond, func() { calls++ })

	l.Advance(1199 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("Expected no call at 1199ms, got %d", calls)
	}
	if n := l.Advance(time.Millisecond); n != 1 {
		t.Errorf("Expected Advance to report 1 fired timer, got %d", n)
	}
	if calls != 1 {
		t.Fatalf("Expected one call at 1200ms, got %d", calls)
	}
	l.Advance(10 * time.Second)
	if calls != 1 {
		t.Errorf("Expected timer to fire once, got %d calls", calls)
	}
	if got := l.Now(); !got.Equal(epoch.Add(11200 * time.Millisecond)) {
		t.Errorf("Now() = %v, want %v", got, epoch.Add(11200*time.Millisecond))
	}
}

func TestLoopOrdering(t *testing.T) {
	l := NewLoop(epoch)
	var order []string
	l.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	l.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b1") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })

	l.Advance(time.Second)

	want := []string{"a", "b1", "b2", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Fire order = %v, want %v", order, want)
	}
}

func TestLoopNowDuringCallback(t *testing.T) {
	l := NewLoop(epoch)
	var seen time.Time
	l.AfterFunc(250*time.Millisecond, func() { seen = l.Now() })

	l.Advance(time.Second)

	if !seen.Equal(epoch.Add(250 * time.Millisecond)) {
		t.Errorf("Callback saw Now() = %v, want deadline %v", seen, epoch.Add(250*time.Millisecond))
	}
}

func TestLoopStop(t *testing.T) {
	l := NewLoop(epoch)
	calls := 0
	timer := l.AfterFunc(100*time.Millisecond, func() { calls++ })

	if !timer.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}
	if l.Pending() != 0 {
		t.Errorf("Expected empty queue after Stop, got %d", l.Pending())
	}

	l.Advance(time.Second)
	if calls != 0 {
		t.Errorf("Stopped timer fired %d times", calls)
	}
}

func TestLoopStopAfterFire(t *testing.T) {
	l := NewLoop(epoch)
	timer := l.AfterFunc(time.Millisecond, func() {})
	l.Advance(time.Millisecond)

	if timer.Stop() {
		t.Error("Expected Stop after fire to report false")
	}
}

func TestLoopTimerArmedInsideCallback(t *testing.T) {
	l := NewLoop(epoch)
	calls := 0
	l.AfterFunc(10*time.Millisecond, func() {
		l.AfterFunc(10*time.Millisecond, func() { calls++ })
	})

	l.Advance(15 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("Nested timer fired early")
	}
	l.Advance(5 * time.Millisecond)
	if calls != 1 {
		t.Errorf("Expected nested timer to fire at 20ms, got %d calls", calls)
	}
}

func TestLoopPause(t *testing.T) {
	l := NewLoop(epoch)
	calls := 0
	l.AfterFunc(100*time.Millisecond, func() { calls++ })

	l.Pause()
	if !l.IsPaused() {
		t.Fatal("Expected paused clock")
	}
	l.Advance(time.Second)
	if calls != 0 || !l.Now().Equal(epoch) {
		t.Fatalf("Paused clock moved: calls=%d now=%v", calls, l.Now())
	}

	l.Resume()
	l.Advance(100 * time.Millisecond)
	if calls != 1 {
		t.Errorf("Expected timer to fire after resume, got %d calls", calls)
	}
}

func TestLoopNegativeDelay(t *testing.T) {
	l := NewLoop(epoch)
	calls := 0
	l.AfterFunc(-time.Second, func() { calls++ })

	l.Advance(0)
	if calls != 1 {
		t.Errorf("Expected overdue timer to fire on next Advance, got %d", calls)
	}
}

func TestWallSchedulerFiresAndStops(t *testing.T) {
	var w Scheduler = Wall{}

	var fired atomic.Int32
	done := make(chan struct{})
	w.AfterFunc(5*time.Millisecond, func() {
		fired.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wall timer did not fire")
	}

	stopped := w.AfterFunc(time.Hour, func() { fired.Add(1) })
	if !stopped.Stop() {
		t.Error("Expected Stop to prevent the pending wall timer")
	}
	if fired.Load() != 1 {
		t.Errorf("Expected 1 fire, got %d", fired.Load())
	}
}
