// internal/defs/skills.go
package defs

// Stat names a tower statistic that skills can modify.
type Stat string

const (
	StatDamage          Stat = "DAMAGE"
	StatFireCooldown    Stat = "FIRE_COOLDOWN"
	StatRange           Stat = "RANGE"
	StatProjectileSpeed Stat = "PROJECTILE_SPEED"
	StatEffectDuration  Stat = "EFFECT_DURATION"
	StatEffectStrength  Stat = "EFFECT_STRENGTH"
	StatAbilityDuration Stat = "ABILITY_DURATION"
	StatAbilityCooldown Stat = "ABILITY_COOLDOWN"
	StatDamagePerSecond Stat = "DAMAGE_PER_SECOND"
	StatTowerHealth     Stat = "TOWER_HEALTH"
)

// BonusKind defines how a skill bonus composes with a base value.
type BonusKind string

const (
	BonusPercent   BonusKind = "PERCENT"   // base * (1 + v/100)
	BonusReduction BonusKind = "REDUCTION" // base * (1 - clamp(v)/100)
	BonusAdditive  BonusKind = "ADDITIVE"  // base + v
)

// SkillDefinition — узел дерева навыков.
type SkillDefinition struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Stat          Stat      `json:"stat"`
	Kind          BonusKind `json:"kind"`
	ValuePerLevel float64   `json:"value_per_level"`
	MaxLevel      int       `json:"max_level"`
	Costs         []int     `json:"costs"` // стоимость уровня 1..MaxLevel
	Requires      string    `json:"requires,omitempty"`
}

// CostForLevel returns the price of reaching level (1-based), or -1 when out of range.
func (s SkillDefinition) CostForLevel(level int) int {
	if level < 1 || level > s.MaxLevel {
		return -1
	}
	if level-1 < len(s.Costs) {
		return s.Costs[level-1]
	}
	if len(s.Costs) == 0 {
		return 0
	}
	return s.Costs[len(s.Costs)-1]
}
