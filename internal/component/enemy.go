package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID          string // ID из enemies.json
	AttackDamage   int
	AttackRange    float64
	AttackCooldown float64
	AttackTimer    float64 // Оставшееся время до следующего удара по башне
	Reward         int
	Radius         float64
}
