// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Disposer is implemented by states that own resources outliving Exit,
// such as live bursts. Dispose runs once, on Shutdown.
type Disposer interface {
	Dispose()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current  State
	shutdown bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает активное состояние (или nil)
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние. Ignored after Shutdown.
func (sm *StateMachine) SetState(newState State) {
	if sm.shutdown {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil && !sm.shutdown {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Shutdown exits the current state and disposes it. Safe to call twice.
func (sm *StateMachine) Shutdown() {
	if sm.shutdown {
		return
	}
	sm.shutdown = true
	if sm.current == nil {
		return
	}
	sm.current.Exit()
	if d, ok := sm.current.(Disposer); ok {
		d.Dispose()
	}
}
