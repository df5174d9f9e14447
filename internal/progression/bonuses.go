package progression

import (
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
)

// Bonus — суммарные бонусы навыков к одной характеристике.
type Bonus struct {
	Percent   float64
	Reduction float64
	Additive  float64
}

// Bonuses maps a stat to its accumulated bonus.
type Bonuses map[defs.Stat]Bonus

// AggregateBonuses — чистая функция: складывает бонусы всех навыков с учетом уровней.
func AggregateBonuses(skills []defs.SkillDefinition, level func(id string) int) Bonuses {
	out := make(Bonuses)
	for _, skill := range skills {
		lvl := level(skill.ID)
		if lvl <= 0 {
			continue
		}
		if lvl > skill.MaxLevel {
			lvl = skill.MaxLevel
		}
		value := skill.ValuePerLevel * float64(lvl)
		b := out[skill.Stat]
		switch skill.Kind {
		case defs.BonusPercent:
			b.Percent += value
		case defs.BonusReduction:
			b.Reduction += value
		case defs.BonusAdditive:
			b.Additive += value
		default:
			continue
		}
		out[skill.Stat] = b
	}
	return out
}

// Apply применяет бонусы к базовому значению: сначала процент умножает базу,
// затем снижение вычитает ограниченный процент, затем прибавляется добавка.
func (b Bonuses) Apply(stat defs.Stat, base float64) float64 {
	bonus, ok := b[stat]
	if !ok {
		return base
	}
	v := base * (1 + bonus.Percent/100)
	reduction := bonus.Reduction
	if reduction < 0 {
		reduction = 0
	} else if reduction > config.MaxReductionPercent {
		reduction = config.MaxReductionPercent
	}
	v *= 1 - reduction/100
	return v + bonus.Additive
}

// ApplyInt is Apply for integer stats, rounded to the nearest value.
func (b Bonuses) ApplyInt(stat defs.Stat, base int) int {
	v := b.Apply(stat, float64(base))
	if v < 0 {
		return 0
	}
	return int(v + 0.5)
}
