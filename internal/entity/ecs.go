// internal/entity/ecs.go
package entity

import (
	"go-lone-tower/internal/component"
	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/types"
)

// World — хранилище компонентов. Сущность — это только ID, ее данные лежат
// в картах компонентов.
type World struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Effects       map[types.EntityID]*effect.Manager
	DamageFlashes map[types.EntityID]*component.DamageFlash

	TowerID types.EntityID
	Tower   *component.Tower
	Phase   component.GamePhase
}

func NewWorld() *World {
	return &World{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Effects:       make(map[types.EntityID]*effect.Manager),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Phase:         component.PhasePlaying,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех карт. Эффекты снимаются синхронно,
// чтобы ни один таймер не ссылался на удаленную сущность.
func (w *World) RemoveEntity(id types.EntityID) {
	if m, ok := w.Effects[id]; ok {
		delete(w.Effects, id)
		m.Clear()
	}
	delete(w.Positions, id)
	delete(w.Velocities, id)
	delete(w.Healths, id)
	delete(w.Renderables, id)
	delete(w.Enemies, id)
	delete(w.Projectiles, id)
	delete(w.DamageFlashes, id)
	if w.Tower != nil && w.Tower.TargetID == id {
		w.Tower.TargetID = 0
	}
}

// IsEnemy reports whether id is a live enemy.
func (w *World) IsEnemy(id types.EntityID) bool {
	_, ok := w.Enemies[id]
	return ok
}

// TowerPosition returns the tower position, or the origin when no tower exists.
func (w *World) TowerPosition() component.Position {
	if pos, ok := w.Positions[w.TowerID]; ok {
		return *pos
	}
	return component.Position{}
}
