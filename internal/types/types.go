// internal/types/types.go
package types

// EntityID — идентификатор сущности в реестре
type EntityID uint64
