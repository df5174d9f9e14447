package component

import (
	"go-lone-tower/internal/defs"
	"go-lone-tower/pkg/geom"
)

// CannonConfig — неизменяемый набор настроек пушки. Способности подменяют его
// целиком и возвращают снимок обратно.
type CannonConfig struct {
	FireOrder  int
	FireDelay  float64
	Cooldown   float64
	Offset     geom.Vec3
	Mode       defs.FireMode
	Projectile defs.ProjectileData
}

// Cannon — пушка башни. Никогда не уничтожается, только перенастраивается.
type Cannon struct {
	Config            CannonConfig
	CooldownRemaining float64
	Pending           bool // выстрел запланирован и ждет FireDelay
}

// Ready reports whether TryFire would schedule a shot.
func (c *Cannon) Ready() bool {
	return c.Config.Mode != defs.FireContinuous && c.CooldownRemaining <= 0 && !c.Pending
}
