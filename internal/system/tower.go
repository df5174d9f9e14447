// internal/system/tower.go
package system

import (
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

// TowerSystem управляет прицеливанием и стрельбой единственной башни.
type TowerSystem struct {
	ctx         *Context
	projectiles *ProjectileSystem
}

func NewTowerSystem(ctx *Context, projectiles *ProjectileSystem) *TowerSystem {
	return &TowerSystem{ctx: ctx, projectiles: projectiles}
}

// BuildTower создает башню в мире. Снимок InitialStats берется из cfg.
func (s *TowerSystem) BuildTower(def defs.TowerData, cfg component.TowerConfig, pos geom.Vec3, health int) types.EntityID {
	w := s.ctx.World
	id := w.NewEntity()
	w.Positions[id] = &component.Position{Vec3: pos}
	w.Healths[id] = &component.Health{Value: health, Max: health}
	w.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Visuals.Radius),
	}

	tower := &component.Tower{}
	w.TowerID = id
	w.Tower = tower
	s.ApplyConfig(cfg)
	tower.Stats = cfg.Stats
	tower.InitialStats = cfg.Stats
	return id
}

// Update — один тик автомата прицеливания.
func (s *TowerSystem) Update(deltaTime float64) {
	w := s.ctx.World
	tower := w.Tower
	if tower == nil || w.Phase != component.PhasePlaying {
		return
	}

	for _, c := range tower.Cannons {
		if c.CooldownRemaining > 0 {
			c.CooldownRemaining -= deltaTime
			if c.CooldownRemaining < 0 {
				c.CooldownRemaining = 0
			}
		}
	}

	if tower.Manual {
		s.updateManual(deltaTime)
		return
	}

	s.updateTarget()
	if tower.TargetID == 0 {
		tower.IsTargetLocked = false
		tower.IsTargetInShootingRange = false
		return
	}

	aim := w.Positions[tower.TargetID].Add(geom.V(0, config.EnemyAimHeight, 0))
	s.aimAt(aim, deltaTime)
	if tower.IsTargetLocked && tower.IsTargetInShootingRange {
		for i := range tower.Cannons {
			s.TryFire(i, tower.TargetID)
		}
	}
}

// updateTarget сбрасывает исчезнувшую или ушедшую цель и ищет ближайшую новую.
func (s *TowerSystem) updateTarget() {
	w := s.ctx.World
	tower := w.Tower
	origin := w.TowerPosition().Vec3

	if tower.TargetID != 0 {
		pos, alive := w.Positions[tower.TargetID]
		if !alive || !w.IsEnemy(tower.TargetID) || pos.Dist(origin) > tower.Stats.DetectionRadius {
			lost := tower.TargetID
			tower.TargetID = 0
			s.ctx.Events.Emit(event.TargetLost, event.TargetData{TargetID: lost})
		}
	}
	if tower.TargetID != 0 {
		return
	}
	if id, ok := w.NearestEnemy(origin, tower.Stats.DetectionRadius); ok {
		tower.TargetID = id
		s.ctx.Events.Emit(event.TargetAcquired, event.TargetData{TargetID: id})
	}
}

// aimAt поворачивает оси к точке и пересчитывает захват и дальность.
func (s *TowerSystem) aimAt(point geom.Vec3, deltaTime float64) {
	tower := s.ctx.World.Tower
	to := point.Sub(s.pivot())
	yaw := geom.YawOf(to)
	pitch := geom.PitchOf(to)

	tower.Base.RotateTowards(yaw, deltaTime)
	tower.Pitch.RotateTowards(pitch, deltaTime)

	stats := tower.Stats
	if stats.YawOnlyLock {
		d := geom.DeltaAngle(tower.Base.Angle, yaw)
		if d < 0 {
			d = -d
		}
		tower.IsTargetLocked = d <= stats.AimLockAngle
	} else {
		tower.IsTargetLocked = geom.AngleBetween(tower.Forward(), to) <= stats.AimLockAngle
	}

	dist := to.Len()
	tower.IsTargetInShootingRange = dist >= stats.MinShootingRange &&
		dist <= stats.MaxShootingRange &&
		tower.Base.Allows(yaw) &&
		tower.Pitch.Allows(pitch)
}

// updateManual — ручное управление: прицел на точку земли, огонь по удержанию.
func (s *TowerSystem) updateManual(deltaTime float64) {
	tower := s.ctx.World.Tower
	if tower.TargetID != 0 {
		lost := tower.TargetID
		tower.TargetID = 0
		s.ctx.Events.Emit(event.TargetLost, event.TargetData{TargetID: lost})
	}
	aim := tower.ManualAim
	aim.Y = config.EnemyAimHeight
	s.aimAt(aim, deltaTime)
	if !tower.ManualFiring {
		return
	}
	for i := range tower.Cannons {
		s.TryFire(i, 0)
	}
}

// TryFire просит пушку выстрелить. Кулдаун и ожидание FireDelay молча гасят запрос.
func (s *TowerSystem) TryFire(index int, target types.EntityID) bool {
	tower := s.ctx.World.Tower
	if tower == nil || index < 0 || index >= len(tower.Cannons) {
		return false
	}
	c := tower.Cannons[index]
	if !c.Ready() {
		return false
	}
	if c.Config.FireDelay <= 0 {
		s.Shoot(index, target)
		c.CooldownRemaining = c.Config.Cooldown
		return true
	}

	c.Pending = true
	s.ctx.Scheduler.After(c.Config.FireDelay, func() {
		c.Pending = false
		current := s.ctx.World.Tower
		if current != tower || index >= len(current.Cannons) || current.Cannons[index] != c {
			return // пушка снята
		}
		s.Shoot(index, target)
		c.CooldownRemaining = c.Config.Cooldown
	})
	return true
}

// Shoot выпускает один снаряд текущей конфигурации пушки.
func (s *TowerSystem) Shoot(index int, target types.EntityID) types.EntityID {
	w := s.ctx.World
	tower := w.Tower
	if tower == nil || index < 0 || index >= len(tower.Cannons) {
		return 0
	}
	c := tower.Cannons[index]
	if c.Config.Mode == defs.FireContinuous {
		return 0
	}
	if c.Config.Projectile.ID == "" {
		log.Printf("TowerSystem: cannon %d has no projectile bundle", index)
		return 0
	}

	origin := s.FirePoint(index)
	heading := tower.Forward()
	if pos, ok := w.Positions[target]; ok && w.IsEnemy(target) {
		to := pos.Add(geom.V(0, config.EnemyAimHeight, 0)).Sub(origin)
		if !to.IsZero() {
			heading = to.Normalize()
		}
	} else {
		target = 0
	}

	id := s.projectiles.Spawn(c.Config.Projectile, origin, heading, target, index)
	s.ctx.Events.Emit(event.ProjectileFired, event.ShotData{
		ProjectileID: id,
		TargetID:     target,
		CannonIndex:  index,
		Damage:       c.Config.Projectile.Damage,
		X:            origin.X,
		Y:            origin.Y,
		Z:            origin.Z,
	})
	return id
}

// FirePoint returns the world position of a cannon's muzzle.
func (s *TowerSystem) FirePoint(index int) geom.Vec3 {
	w := s.ctx.World
	origin := w.TowerPosition().Vec3
	if w.Tower == nil || index < 0 || index >= len(w.Tower.Cannons) {
		return origin.Add(geom.V(0, config.TowerPivotHeight, 0))
	}
	return origin.Add(w.Tower.MuzzleOffset(index))
}

func (s *TowerSystem) pivot() geom.Vec3 {
	return s.ctx.World.TowerPosition().Add(geom.V(0, config.TowerPivotHeight, 0))
}

// OverrideStats подменяет характеристики башни на время способности.
func (s *TowerSystem) OverrideStats(stats component.TowerStats) {
	if tower := s.ctx.World.Tower; tower != nil {
		tower.Stats = stats
	}
}

// RestoreStats возвращает характеристики, захваченные при создании башни.
func (s *TowerSystem) RestoreStats() {
	if tower := s.ctx.World.Tower; tower != nil {
		tower.Stats = tower.InitialStats
	}
}

// Snapshot копирует перенастраиваемую часть башни.
func (s *TowerSystem) Snapshot() component.TowerConfig {
	tower := s.ctx.World.Tower
	if tower == nil {
		return component.TowerConfig{}
	}
	cfg := component.TowerConfig{
		DefID:   tower.DefID,
		Visual:  tower.Visual,
		Stats:   tower.Stats,
		Base:    tower.Base.Def(),
		Pitch:   tower.Pitch.Def(),
		Cannons: make([]component.CannonConfig, len(tower.Cannons)),
	}
	for i, c := range tower.Cannons {
		cfg.Cannons[i] = c.Config
	}
	if tower.Continuous != nil {
		zone := *tower.Continuous
		cfg.Continuous = &zone
	}
	return cfg
}

// ApplyConfig перенастраивает оси, пушки и внешний вид. Существующие пушки
// переиспользуются; характеристики башни меняет только OverrideStats.
func (s *TowerSystem) ApplyConfig(cfg component.TowerConfig) {
	tower := s.ctx.World.Tower
	if tower == nil {
		return
	}
	tower.DefID = cfg.DefID
	tower.Visual = cfg.Visual
	tower.Base.Configure(cfg.Base)
	tower.Pitch.Configure(cfg.Pitch)
	tower.Continuous = nil
	if cfg.Continuous != nil {
		zone := *cfg.Continuous
		tower.Continuous = &zone
	}

	cannons := make([]*component.Cannon, 0, len(cfg.Cannons))
	for i, cc := range cfg.Cannons {
		if i < len(tower.Cannons) {
			c := tower.Cannons[i]
			c.Config = cc
			cannons = append(cannons, c)
			continue
		}
		cannons = append(cannons, &component.Cannon{Config: cc})
	}
	tower.Cannons = cannons
}
