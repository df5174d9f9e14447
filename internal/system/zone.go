package system

import (
	"math"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
	"go-lone-tower/pkg/geom"
)

// timerEpsilon поглощает ошибку суммирования кадровых deltaTime в таймерах.
const timerEpsilon = 1e-9

// zone — тикер непрерывного урона, привязанный к огневой точке башни.
type zone struct {
	def     defs.ContinuousDef
	elapsed float64
	vfxOn   bool
	ability string
}

// ZoneSystem управляет зоной непрерывного урона (огнемет и подобные режимы).
// Одновременно живет не больше одной зоны: ее запускает активная способность.
type ZoneSystem struct {
	ctx    *Context
	health *HealthSystem
	active *zone
}

func NewZoneSystem(ctx *Context, health *HealthSystem) *ZoneSystem {
	return &ZoneSystem{ctx: ctx, health: health}
}

// Start запускает зону. Первый тик происходит в ближайшем Update.
func (s *ZoneSystem) Start(def defs.ContinuousDef, abilityID string) {
	s.Stop()
	if def.TickInterval <= 0 {
		def.TickInterval = config.DefaultZoneTickInterval
	}
	s.active = &zone{def: def, elapsed: def.TickInterval, ability: abilityID}
}

// Stop останавливает зону и гасит ее эффект, если он был включен.
func (s *ZoneSystem) Stop() {
	if s.active == nil {
		return
	}
	s.setVFX(false)
	s.active = nil
}

// Active reports whether a zone is running.
func (s *ZoneSystem) Active() bool { return s.active != nil }

// Firing reports whether the zone's visual effect is currently on.
func (s *ZoneSystem) Firing() bool { return s.active != nil && s.active.vfxOn }

func (s *ZoneSystem) Update(deltaTime float64) {
	z := s.active
	if z == nil {
		return
	}
	z.elapsed += deltaTime
	for z.elapsed+timerEpsilon >= z.def.TickInterval {
		z.elapsed -= z.def.TickInterval
		s.tick()
		if s.active != z {
			return
		}
	}
}

func (s *ZoneSystem) tick() {
	w := s.ctx.World
	tower := w.Tower
	z := s.active
	if tower == nil || w.Phase != component.PhasePlaying {
		s.setVFX(false)
		return
	}
	hasTarget := tower.TargetID != 0 && w.IsEnemy(tower.TargetID)
	if z.def.TargetAware && !hasTarget {
		s.setVFX(false)
		return
	}
	s.setVFX(true)

	// Конус горизонтальный: от проекции огневой точки на землю вдоль курса ствола.
	origin := w.TowerPosition().Add(tower.MuzzleOffset(0).Flat())
	forward := geom.FromYawPitch(tower.Base.Angle, 0)
	damage := int(math.Ceil(z.def.DamagePerSecond * z.def.TickInterval))
	if damage < 1 {
		damage = 1
	}
	for _, id := range w.EnemiesInCone(origin, forward, z.def.Range, z.def.ConeAngle) {
		s.health.TakeDamage(id, damage)
		if w.IsEnemy(id) {
			ApplyPayload(s.ctx, id, z.def.Effect)
		}
	}
}

// setVFX переключает визуальный эффект только по фронту.
func (s *ZoneSystem) setVFX(on bool) {
	z := s.active
	if z == nil || z.vfxOn == on {
		return
	}
	z.vfxOn = on
	data := event.AbilityData{AbilityID: z.ability}
	if on {
		s.ctx.Events.Emit(event.ZoneVFXStarted, data)
	} else {
		s.ctx.Events.Emit(event.ZoneVFXStopped, data)
	}
}
