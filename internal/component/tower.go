// component/tower.go
package component

import (
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

// TowerStats — характеристики башни, которые способности могут подменять.
type TowerStats struct {
	FireCooldown     float64
	DetectionRadius  float64
	MinShootingRange float64
	MaxShootingRange float64
	AimLockAngle     float64
	YawOnlyLock      bool
}

// TowerConfig — снимок всей перенастраиваемой части башни.
type TowerConfig struct {
	DefID      string
	Visual     string
	Stats      TowerStats
	Base       defs.RotatorDef
	Pitch      defs.RotatorDef
	Cannons    []CannonConfig
	Continuous *defs.ContinuousDef // зона урона для режима CONTINUOUS
}

// Tower — единственная башня на сцене.
type Tower struct {
	DefID  string
	Visual string
	Stats  TowerStats

	// InitialStats захватываются при инициализации; RestoreStats возвращает их.
	InitialStats TowerStats

	Base    Rotator
	Pitch   Rotator
	Cannons []*Cannon // отсортированы по FireOrder

	// Continuous — активная зона урона, если пушки в режиме CONTINUOUS.
	Continuous *defs.ContinuousDef

	TargetID                types.EntityID // слабая ссылка, проверяется каждый тик
	IsTargetLocked          bool
	IsTargetInShootingRange bool

	Manual       bool
	ManualAim    geom.Vec3
	ManualFiring bool
}

// MuzzleOffset — смещение огневой точки пушки от центра башни с учетом
// поворота основания. Для несуществующей пушки возвращает ноль.
func (t *Tower) MuzzleOffset(index int) geom.Vec3 {
	if index < 0 || index >= len(t.Cannons) {
		return geom.Vec3{}
	}
	return geom.RotateY(t.Cannons[index].Config.Offset, geom.DegToRad(t.Base.Angle))
}

// Forward returns the current aim direction of the cannons.
func (t *Tower) Forward() geom.Vec3 {
	return geom.FromYawPitch(t.Base.Angle, t.Pitch.Angle)
}
