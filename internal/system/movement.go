// internal/system/movement.go
package system

import (
	"go-lone-tower/internal/component"
	"go-lone-tower/internal/effect"
)

// MovementSystem ведет врагов к башне. Дойдя на дистанцию удара, враг
// останавливается и бьет башню раз в AttackCooldown.
type MovementSystem struct {
	ctx    *Context
	health *HealthSystem
}

func NewMovementSystem(ctx *Context, health *HealthSystem) *MovementSystem {
	return &MovementSystem{ctx: ctx, health: health}
}

func (s *MovementSystem) Update(deltaTime float64) {
	w := s.ctx.World
	if w.Tower == nil || w.Phase != component.PhasePlaying {
		return
	}
	towerPos := w.TowerPosition().Flat()
	towerRadius := 0.0
	if r, ok := w.Renderables[w.TowerID]; ok {
		towerRadius = float64(r.Radius)
	}

	for _, id := range w.EnemyIDs() {
		enemy, ok := w.Enemies[id]
		if !ok {
			continue // погиб от удара другого врага по цепочке событий
		}
		pos := w.Positions[id]
		vel := w.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		to := towerPos.Sub(pos.Flat())
		gap := to.Len() - towerRadius - enemy.Radius
		if gap > enemy.AttackRange {
			step := vel.Speed * deltaTime
			if step > gap-enemy.AttackRange {
				step = gap - enemy.AttackRange
			}
			if step > 0 {
				pos.Vec3 = pos.Add(to.Normalize().Scale(step))
			}
			continue
		}

		if m, ok := w.Effects[id]; ok && m.Has(effect.Shock) {
			continue // оглушенный не бьет
		}
		enemy.AttackTimer -= deltaTime
		if enemy.AttackTimer > 0 {
			continue
		}
		enemy.AttackTimer = enemy.AttackCooldown
		s.health.TakeDamage(w.TowerID, enemy.AttackDamage)
		if w.Phase != component.PhasePlaying {
			return
		}
	}
}
