// internal/system/status_effect.go
package system

import (
	"log"

	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/types"
)

// StatusEffectSystem продвигает менеджеры эффектов всех врагов.
type StatusEffectSystem struct {
	ctx *Context
}

func NewStatusEffectSystem(ctx *Context) *StatusEffectSystem {
	return &StatusEffectSystem{ctx: ctx}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	w := s.ctx.World
	// Горение может убить врага посреди обхода, поэтому идем по снимку ID.
	for _, id := range w.EnemyIDs() {
		if m, ok := w.Effects[id]; ok {
			m.Update(deltaTime)
		}
	}
}

// ApplyPayload накладывает эффект из данных снаряда или зоны.
func ApplyPayload(ctx *Context, id types.EntityID, payload *defs.EffectPayload) {
	if payload == nil {
		return
	}
	m, ok := ctx.World.Effects[id]
	if !ok {
		return
	}
	kind, ok := effect.ParseKind(payload.Kind)
	if !ok {
		log.Printf("StatusEffectSystem: unknown effect kind %q", payload.Kind)
		return
	}
	m.Apply(kind, payload.Duration, payload.Strength)
}
