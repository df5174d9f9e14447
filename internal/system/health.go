// internal/system/health.go
package system

import (
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
)

// HealthSystem — единственная точка изменения здоровья. Смерть врага удаляет
// его из мира, смерть башни переводит партию в поражение.
type HealthSystem struct {
	ctx *Context
}

func NewHealthSystem(ctx *Context) *HealthSystem {
	return &HealthSystem{ctx: ctx}
}

// TakeDamage наносит урон сущности. Отрицательный урон игнорируется.
func (s *HealthSystem) TakeDamage(id types.EntityID, amount int) {
	w := s.ctx.World
	health, ok := w.Healths[id]
	if !ok || amount <= 0 || !health.Alive() {
		return
	}

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	w.DamageFlashes[id] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}

	if id == w.TowerID {
		s.ctx.Events.Emit(event.TowerDamaged, event.DamageData{EntityID: id, Amount: amount, Remaining: health.Value})
		if !health.Alive() {
			log.Printf("HealthSystem: tower destroyed")
			s.ctx.Events.Emit(event.TowerDestroyed, event.DamageData{EntityID: id, Amount: amount})
		}
		return
	}

	s.ctx.Events.Emit(event.DamageApplied, event.DamageData{EntityID: id, Amount: amount, Remaining: health.Value})
	if health.Alive() {
		return
	}
	enemy, isEnemy := w.Enemies[id]
	if !isEnemy {
		return
	}
	data := event.EnemyData{EntityID: id, DefID: enemy.DefID, Reward: enemy.Reward}
	s.removeEnemy(id)
	s.ctx.Events.Emit(event.EnemyKilled, data)
}

// Heal восстанавливает здоровье, не выше максимума. Мертвых не лечит.
func (s *HealthSystem) Heal(id types.EntityID, amount int) {
	health, ok := s.ctx.World.Healths[id]
	if !ok || amount <= 0 || !health.Alive() {
		return
	}
	health.Value += amount
	if health.Max > 0 && health.Value > health.Max {
		health.Value = health.Max
	}
}

// Despawn убирает врага из мира без смерти и без награды.
func (s *HealthSystem) Despawn(id types.EntityID) {
	w := s.ctx.World
	enemy, ok := w.Enemies[id]
	if !ok {
		return
	}
	data := event.EnemyData{EntityID: id, DefID: enemy.DefID}
	s.removeEnemy(id)
	s.ctx.Events.Emit(event.EnemyRemoved, data)
}

// removeEnemy удаляет врага; если башня держала его целью, цель теряется с событием.
func (s *HealthSystem) removeEnemy(id types.EntityID) {
	w := s.ctx.World
	wasTarget := w.Tower != nil && w.Tower.TargetID == id
	w.RemoveEntity(id)
	if wasTarget {
		s.ctx.Events.Emit(event.TargetLost, event.TargetData{TargetID: id})
	}
}

// effectHost связывает менеджер эффектов с компонентами врага.
type effectHost struct {
	health *HealthSystem
	id     types.EntityID
}

func (h effectHost) MoveSpeed() float64 {
	if v, ok := h.health.ctx.World.Velocities[h.id]; ok {
		return v.Speed
	}
	return 0
}

func (h effectHost) SetMoveSpeed(speed float64) {
	if v, ok := h.health.ctx.World.Velocities[h.id]; ok {
		v.Speed = speed
	}
}

func (h effectHost) TakeDamage(amount int) {
	h.health.TakeDamage(h.id, amount)
}
