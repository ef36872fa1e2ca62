// internal/entity/ecs.go
package entity

import (
	"entropy-reduction/internal/burst"
	"entropy-reduction/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Bursts   map[types.EntityID]*burst.Instance // активные вспышки
}

func NewECS() *ECS {
	return &ECS{
		NextID: 1,
		Bursts: make(map[types.EntityID]*burst.Instance),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
