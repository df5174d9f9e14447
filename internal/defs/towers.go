// internal/defs/towers.go
package defs

// AngleLimit — окно допустимых углов оси в локальном пространстве родителя, в градусах.
type AngleLimit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RotatorDef describes one rotation axis of the tower.
type RotatorDef struct {
	TurnSpeed float64     `json:"turn_speed"` // градусов в секунду
	Limit     *AngleLimit `json:"limit,omitempty"`
}

// CannonDef places a cannon on the tower and orders its shots.
type CannonDef struct {
	FireOrder int        `json:"fire_order"`
	FireDelay float64    `json:"fire_delay"`
	Offset    [3]float64 `json:"offset"` // смещение точки выстрела от центра башни
}

// ContinuousDef configures the damage zone used by continuous fire modes.
type ContinuousDef struct {
	Range           float64        `json:"range"`
	ConeAngle       float64        `json:"cone_angle"` // половина угла конуса, в градусах
	DamagePerSecond float64        `json:"damage_per_second"`
	TickInterval    float64        `json:"tick_interval"`
	TargetAware     bool           `json:"target_aware"`
	Effect          *EffectPayload `json:"effect,omitempty"`
}

// AbilityDef makes a tower type usable as a temporary tower ability.
type AbilityDef struct {
	Hotkey       string  `json:"hotkey"`
	Duration     float64 `json:"duration"`
	Cooldown     float64 `json:"cooldown"`
	UnlockCost   int     `json:"unlock_cost"`
	Prerequisite string  `json:"prerequisite,omitempty"` // ID башни, которую надо открыть раньше
}

// TowerData holds all the static data for a tower configuration.
type TowerData struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Visual           string         `json:"visual"`
	FireMode         FireMode       `json:"fire_mode"`
	Projectile       string         `json:"projectile,omitempty"`
	FireCooldown     float64        `json:"fire_cooldown"`
	DetectionRadius  float64        `json:"detection_radius"`
	MinShootingRange float64        `json:"min_shooting_range"`
	MaxShootingRange float64        `json:"max_shooting_range"`
	AimLockAngle     float64        `json:"aim_lock_angle"`
	YawOnlyLock      bool           `json:"yaw_only_lock"`
	Health           int            `json:"health"`
	Base             RotatorDef     `json:"base"`
	Pitch            RotatorDef     `json:"pitch"`
	Cannons          []CannonDef    `json:"cannons"`
	Continuous       *ContinuousDef `json:"continuous,omitempty"`
	Ability          *AbilityDef    `json:"ability,omitempty"`
	Visuals          Visuals        `json:"visuals"`
}

// ProjectileData — набор характеристик одного снаряда.
type ProjectileData struct {
	ID             string         `json:"id"`
	Motion         MotionModel    `json:"motion"`
	Speed          float64        `json:"speed"`
	Damage         int            `json:"damage"`
	HitRadius      float64        `json:"hit_radius"`
	Lifetime       float64        `json:"lifetime"`
	HomingDelay    float64        `json:"homing_delay,omitempty"`
	HomingStrength float64        `json:"homing_strength,omitempty"`
	ArcHeight      float64        `json:"arc_height,omitempty"`
	Effect         *EffectPayload `json:"effect,omitempty"`
	ImpactVFX      string         `json:"impact_vfx,omitempty"`
	Visuals        Visuals        `json:"visuals"`
}
