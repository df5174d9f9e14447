// internal/system/visual_effect.go
package system

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ctx *Context
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ctx *Context) *VisualEffectSystem {
	return &VisualEffectSystem{ctx: ctx}
}

// Update обновляет таймеры вспышек урона.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ctx.World.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ctx.World.DamageFlashes, id)
		}
	}
}
