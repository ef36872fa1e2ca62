// internal/system/burst.go
package system

import (
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/entity"
	"entropy-reduction/internal/event"
	"entropy-reduction/internal/types"
	"fmt"
	"log"
	"slices"
	"time"
)

// BurstSystem владеет активными вспышками: создаёт их по событию CriticalClear
// и удаляет, когда вспышка сообщает о завершении. Must be driven from the
// game-loop goroutine, the same one that advances the burst clock.
type BurstSystem struct {
	ecs        *entity.ECS
	controller *burst.Controller
	dispatcher *event.Dispatcher
}

// NewBurstSystem создает систему вспышек и подписывает её на CriticalClear.
func NewBurstSystem(ecs *entity.ECS, controller *burst.Controller, dispatcher *event.Dispatcher) *BurstSystem {
	s := &BurstSystem{
		ecs:        ecs,
		controller: controller,
		dispatcher: dispatcher,
	}
	dispatcher.Subscribe(event.CriticalClear, s)
	return s
}

// OnEvent запускает вспышку в точке критической очистки.
func (s *BurstSystem) OnEvent(e event.Event) {
	if e.Type != event.CriticalClear {
		return
	}
	data, ok := e.Data.(event.CriticalClearData)
	if !ok {
		log.Printf("burst system: unexpected %s payload %T", e.Type, e.Data)
		return
	}
	if _, err := s.Trigger(data.X, data.Y, data.Color); err != nil {
		log.Printf("burst system: %v", err)
	}
}

// Trigger starts a burst at (x, y) and registers it until it completes.
func (s *BurstSystem) Trigger(x, y float64, color string) (types.EntityID, error) {
	id := s.ecs.NewEntity()
	inst, err := s.controller.Start(burst.Request{
		X:          x,
		Y:          y,
		Color:      color,
		OnComplete: func() { s.complete(id) },
	})
	if err != nil {
		return 0, fmt.Errorf("trigger burst at (%.0f, %.0f): %w", x, y, err)
	}
	// Планировщик мог уже отработать таймер внутри Start
	if inst.Status() != burst.Pending {
		s.dispatcher.Dispatch(event.Event{Type: event.BurstCompleted, Data: id})
		return id, nil
	}
	s.ecs.Bursts[id] = inst
	return id, nil
}

func (s *BurstSystem) complete(id types.EntityID) {
	if _, ok := s.ecs.Bursts[id]; !ok {
		return
	}
	delete(s.ecs.Bursts, id)
	s.dispatcher.Dispatch(event.Event{Type: event.BurstCompleted, Data: id})
}

// Cancel снимает одну вспышку до завершения. Returns false for unknown ids.
func (s *BurstSystem) Cancel(id types.EntityID) bool {
	inst, ok := s.ecs.Bursts[id]
	if !ok {
		return false
	}
	inst.Cancel()
	delete(s.ecs.Bursts, id)
	s.dispatcher.Dispatch(event.Event{Type: event.BurstCancelled, Data: id})
	return true
}

// Teardown cancels every live burst. Used when the owner goes away.
func (s *BurstSystem) Teardown() {
	n := len(s.ecs.Bursts)
	for _, id := range s.ids() {
		s.Cancel(id)
	}
	if n > 0 {
		log.Printf("burst system: tore down %d live bursts", n)
	}
}

// Active returns the number of registered bursts.
func (s *BurstSystem) Active() int {
	return len(s.ecs.Bursts)
}

// Frames samples every live burst at now, oldest first.
func (s *BurstSystem) Frames(now time.Time) []burst.Frame {
	ids := s.ids()
	frames := make([]burst.Frame, 0, len(ids))
	for _, id := range ids {
		frames = append(frames, s.ecs.Bursts[id].Frame(now))
	}
	return frames
}

func (s *BurstSystem) ids() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.ecs.Bursts))
	for id := range s.ecs.Bursts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
