// Package clock schedules one-shot timers for the game loop.
//
// Loop is the production scheduler for frame-driven hosts and doubles as the
// virtual clock in tests: time only moves when Advance is called, and due
// callbacks run synchronously on the caller's goroutine. Wall wraps the
// runtime timers for hosts without a frame loop.
package clock

import "time"

// Timer is a pending callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// Scheduler hands out timers and tells the time those timers are measured against.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Wall schedules on real time.
type Wall struct{}

func (Wall) Now() time.Time {
	return time.Now()
}

func (Wall) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
