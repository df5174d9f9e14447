package component

import (
	"go-lone-tower/internal/defs"
	"go-lone-tower/pkg/geom"
)

// Rotator отвечает за вращение одной оси башни (основание — рыскание,
// ствол — тангаж). Углы в градусах в локальном пространстве родителя.
type Rotator struct {
	Angle     float64
	TurnSpeed float64 // градусов в секунду
	Limit     *defs.AngleLimit
}

// NewRotator builds a rotator from its definition.
func NewRotator(def defs.RotatorDef) Rotator {
	var r Rotator
	r.Configure(def)
	return r
}

// Configure меняет скорость и лимит оси, сохраняя текущий угол.
func (r *Rotator) Configure(def defs.RotatorDef) {
	r.TurnSpeed = def.TurnSpeed
	r.Limit = nil
	if def.Limit != nil {
		limit := *def.Limit
		r.Limit = &limit
	}
}

// Def returns the rotator settings without the current angle.
func (r Rotator) Def() defs.RotatorDef {
	def := defs.RotatorDef{TurnSpeed: r.TurnSpeed}
	if r.Limit != nil {
		limit := *r.Limit
		def.Limit = &limit
	}
	return def
}

// Allows reports whether angle lies inside the limit window. No limit allows everything.
func (r *Rotator) Allows(angle float64) bool {
	if r.Limit == nil {
		return true
	}
	return angle >= r.Limit.Min && angle <= r.Limit.Max
}

// RotateTowards поворачивает ось к target не быстрее TurnSpeed, не выходя за лимит.
func (r *Rotator) RotateTowards(target, dt float64) {
	if r.Limit != nil {
		if target < r.Limit.Min {
			target = r.Limit.Min
		} else if target > r.Limit.Max {
			target = r.Limit.Max
		}
	}
	r.Angle = geom.MoveTowardsAngle(r.Angle, target, r.TurnSpeed*dt)
	if r.Limit == nil {
		r.Angle = geom.DeltaAngle(0, r.Angle)
	}
}
