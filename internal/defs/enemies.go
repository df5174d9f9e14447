// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Health         int     `json:"health"`
	Speed          float64 `json:"speed"`
	AttackDamage   int     `json:"attack_damage"`
	AttackRange    float64 `json:"attack_range"`
	AttackCooldown float64 `json:"attack_cooldown"`
	Reward         int     `json:"reward"`
	Visuals        Visuals `json:"visuals"`
}
