// internal/event/types.go
package event

const (
	CriticalClear  EventType = "CriticalClear"  // Доска зафиксировала критическую очистку
	BurstCompleted EventType = "BurstCompleted" // Вспышка отыграла и удалена
	BurstCancelled EventType = "BurstCancelled" // Вспышка снята владельцем до завершения
)

// CriticalClearData — данные события CriticalClear
type CriticalClearData struct {
	X, Y  float64
	Color string // пустая строка — цвет по умолчанию
}
