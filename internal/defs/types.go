// internal/defs/types.go
package defs

import "image/color"

// FireMode defines how a cannon delivers damage.
type FireMode string

const (
	FireProjectile FireMode = "PROJECTILE"
	FireContinuous FireMode = "CONTINUOUS"
)

// MotionModel defines how a projectile moves.
type MotionModel string

const (
	MotionStraight  MotionModel = "STRAIGHT"
	MotionHoming    MotionModel = "HOMING"
	MotionBallistic MotionModel = "BALLISTIC"
)

// EffectPayload — статус-эффект, который снаряд или зона накладывает на цель.
type EffectPayload struct {
	Kind     string  `json:"kind"` // BURN, SLOW, SHOCK
	Duration float64 `json:"duration"`
	Strength float64 `json:"strength"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}
