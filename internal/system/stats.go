package system

import (
	"log"
	"sort"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/progression"
	"go-lone-tower/pkg/geom"
)

// StatPipeline превращает определение башни в готовую конфигурацию с учетом
// постоянных бонусов навыков.
type StatPipeline struct {
	db      *defs.Database
	bonuses progression.Bonuses
}

func NewStatPipeline(db *defs.Database, bonuses progression.Bonuses) *StatPipeline {
	if bonuses == nil {
		bonuses = progression.Bonuses{}
	}
	return &StatPipeline{db: db, bonuses: bonuses}
}

// TowerConfig builds the full cannon/stat configuration for a tower definition.
// ok is false when a referenced bundle is missing.
func (p *StatPipeline) TowerConfig(def defs.TowerData) (component.TowerConfig, bool) {
	b := p.bonuses
	stats := component.TowerStats{
		FireCooldown:     b.Apply(defs.StatFireCooldown, def.FireCooldown),
		DetectionRadius:  b.Apply(defs.StatRange, def.DetectionRadius),
		MinShootingRange: def.MinShootingRange,
		MaxShootingRange: b.Apply(defs.StatRange, def.MaxShootingRange),
		AimLockAngle:     def.AimLockAngle,
		YawOnlyLock:      def.YawOnlyLock,
	}
	cfg := component.TowerConfig{
		DefID:  def.ID,
		Visual: def.Visual,
		Stats:  stats,
		Base:   def.Base,
		Pitch:  def.Pitch,
	}

	var projectile defs.ProjectileData
	switch def.FireMode {
	case defs.FireContinuous:
		if def.Continuous == nil {
			log.Printf("StatPipeline: tower %s has no continuous block", def.ID)
			return component.TowerConfig{}, false
		}
		zone := *def.Continuous
		zone.Range = b.Apply(defs.StatRange, zone.Range)
		zone.DamagePerSecond = b.Apply(defs.StatDamagePerSecond, zone.DamagePerSecond)
		zone.Effect = p.effect(zone.Effect)
		cfg.Continuous = &zone
	default:
		data, ok := p.db.Projectile(def.Projectile)
		if !ok {
			log.Printf("StatPipeline: tower %s references unknown projectile %q", def.ID, def.Projectile)
			return component.TowerConfig{}, false
		}
		data.Damage = b.ApplyInt(defs.StatDamage, data.Damage)
		data.Speed = b.Apply(defs.StatProjectileSpeed, data.Speed)
		data.Effect = p.effect(data.Effect)
		projectile = data
	}

	mode := def.FireMode
	if mode == "" {
		mode = defs.FireProjectile
	}
	for _, c := range def.Cannons {
		cfg.Cannons = append(cfg.Cannons, component.CannonConfig{
			FireOrder:  c.FireOrder,
			FireDelay:  c.FireDelay,
			Cooldown:   stats.FireCooldown,
			Offset:     geom.V(c.Offset[0], c.Offset[1], c.Offset[2]),
			Mode:       mode,
			Projectile: projectile,
		})
	}
	if len(cfg.Cannons) == 0 {
		log.Printf("StatPipeline: tower %s has no cannons", def.ID)
		return component.TowerConfig{}, false
	}
	sort.SliceStable(cfg.Cannons, func(i, j int) bool {
		return cfg.Cannons[i].FireOrder < cfg.Cannons[j].FireOrder
	})
	return cfg, true
}

// AbilityTiming returns duration and cooldown of an ability after bonuses.
func (p *StatPipeline) AbilityTiming(def defs.AbilityDef) (duration, cooldown float64) {
	duration = p.bonuses.Apply(defs.StatAbilityDuration, def.Duration)
	cooldown = p.bonuses.Apply(defs.StatAbilityCooldown, def.Cooldown)
	if duration < 0 {
		duration = 0
	}
	if cooldown < 0 {
		cooldown = 0
	}
	return duration, cooldown
}

// TowerHealth returns the tower's maximum health after bonuses.
func (p *StatPipeline) TowerHealth(base int) int {
	return p.bonuses.ApplyInt(defs.StatTowerHealth, base)
}

func (p *StatPipeline) effect(payload *defs.EffectPayload) *defs.EffectPayload {
	if payload == nil {
		return nil
	}
	out := *payload
	out.Duration = p.bonuses.Apply(defs.StatEffectDuration, out.Duration)
	out.Strength = p.bonuses.Apply(defs.StatEffectStrength, out.Strength)
	return &out
}
