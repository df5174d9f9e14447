// internal/component/projectile.go
package component

import (
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

// Projectile представляет летящий снаряд. Снаряд никому не принадлежит и
// живет до первого попадания или до истечения Lifetime.
type Projectile struct {
	Data        defs.ProjectileData
	TargetID    types.EntityID
	CannonIndex int
	Heading     geom.Vec3 // единичное направление полета
	Elapsed     float64

	// Ballistic: базовая линия от Start к цели, длительность дуги фиксируется при выстреле.
	Start       geom.Vec3
	LastTarget  geom.Vec3
	ArcDuration float64
}
