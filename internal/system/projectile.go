// internal/system/projectile.go
package system

import (
	"math"
	"sort"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

const minArcDuration = 1e-3

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ctx    *Context
	health *HealthSystem
}

func NewProjectileSystem(ctx *Context, health *HealthSystem) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx, health: health}
}

// Spawn создает снаряд. Для баллистики длительность дуги фиксируется здесь,
// по положению цели в момент выстрела.
func (s *ProjectileSystem) Spawn(data defs.ProjectileData, origin, heading geom.Vec3, target types.EntityID, cannonIndex int) types.EntityID {
	w := s.ctx.World
	id := w.NewEntity()
	proj := &component.Projectile{
		Data:        data,
		TargetID:    target,
		CannonIndex: cannonIndex,
		Heading:     heading.Normalize(),
		Start:       origin,
	}
	if proj.Heading.IsZero() {
		proj.Heading = geom.V(0, 0, 1)
	}

	if data.Motion == defs.MotionBallistic {
		if pos, ok := w.Positions[target]; ok && w.IsEnemy(target) {
			proj.LastTarget = pos.Vec3
		} else {
			// Без цели снаряд падает на дальности полета по направлению ствола.
			flat := proj.Heading.Flat().Normalize()
			proj.LastTarget = origin.Flat().Add(flat.Scale(data.Speed * data.Lifetime / 2))
		}
		proj.ArcDuration = minArcDuration
		if data.Speed > 0 {
			proj.ArcDuration = math.Max(minArcDuration, origin.Dist(proj.LastTarget)/data.Speed)
		}
	}

	w.Projectiles[id] = proj
	w.Positions[id] = &component.Position{Vec3: origin}
	w.Renderables[id] = &component.Renderable{
		Color:  data.Visuals.Color,
		Radius: float32(data.Visuals.Radius),
	}
	return id
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.ctx.World
	ids := make([]types.EntityID, 0, len(w.Projectiles))
	for id := range w.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		proj, ok := w.Projectiles[id]
		if !ok {
			continue
		}
		pos := w.Positions[id]
		if pos == nil {
			w.RemoveEntity(id)
			continue
		}

		proj.Elapsed += deltaTime
		landed := s.move(proj, pos, deltaTime)

		if s.checkHit(id, proj, pos.Vec3) {
			continue
		}
		if landed || proj.Elapsed >= proj.Data.Lifetime {
			s.expire(id, proj, pos.Vec3)
		}
	}
}

// move продвигает снаряд по его модели движения. Возвращает true, когда
// баллистический снаряд завершил дугу.
func (s *ProjectileSystem) move(proj *component.Projectile, pos *component.Position, deltaTime float64) bool {
	switch proj.Data.Motion {
	case defs.MotionHoming:
		if proj.Elapsed >= proj.Data.HomingDelay {
			if aim, ok := s.targetAim(proj.TargetID); ok {
				to := aim.Sub(pos.Vec3)
				if !to.IsZero() {
					proj.Heading = geom.Slerp(proj.Heading, to.Normalize(), proj.Data.HomingStrength*deltaTime)
				}
			}
		}
		pos.Vec3 = pos.Add(proj.Heading.Scale(proj.Data.Speed * deltaTime))
	case defs.MotionBallistic:
		if tpos, ok := s.ctx.World.Positions[proj.TargetID]; ok && s.ctx.World.IsEnemy(proj.TargetID) {
			proj.LastTarget = tpos.Vec3
		}
		progress := proj.Elapsed / proj.ArcDuration
		if progress > 1 {
			progress = 1
		}
		next := geom.Lerp(proj.Start, proj.LastTarget, progress)
		next.Y += proj.Data.ArcHeight * math.Sin(progress*math.Pi)
		if d := next.Sub(pos.Vec3); !d.IsZero() {
			proj.Heading = d.Normalize()
		}
		pos.Vec3 = next
		return progress >= 1
	default:
		pos.Vec3 = pos.Add(proj.Heading.Scale(proj.Data.Speed * deltaTime))
	}
	return false
}

func (s *ProjectileSystem) targetAim(id types.EntityID) (geom.Vec3, bool) {
	w := s.ctx.World
	pos, ok := w.Positions[id]
	if !ok || !w.IsEnemy(id) {
		return geom.Vec3{}, false
	}
	return pos.Add(geom.V(0, config.EnemyAimHeight, 0)), true
}

// checkHit ищет первого врага (по возрастанию ID), в "цилиндр" которого попал снаряд.
func (s *ProjectileSystem) checkHit(id types.EntityID, proj *component.Projectile, pos geom.Vec3) bool {
	w := s.ctx.World
	if pos.Y < -proj.Data.HitRadius || pos.Y > config.EnemyHeight+proj.Data.HitRadius {
		return false
	}
	for _, enemyID := range w.EnemyIDs() {
		epos, ok := w.Positions[enemyID]
		if !ok {
			continue
		}
		reach := proj.Data.HitRadius + w.Enemies[enemyID].Radius
		if pos.Flat().Dist(epos.Flat()) > reach {
			continue
		}
		s.hit(id, proj, enemyID, pos)
		return true
	}
	return false
}

func (s *ProjectileSystem) hit(id types.EntityID, proj *component.Projectile, enemyID types.EntityID, pos geom.Vec3) {
	s.health.TakeDamage(enemyID, proj.Data.Damage)
	if s.ctx.World.IsEnemy(enemyID) {
		ApplyPayload(s.ctx, enemyID, proj.Data.Effect)
	}
	s.ctx.Events.Emit(event.ProjectileHit, s.shotData(id, proj, enemyID, pos))
	s.ctx.World.RemoveEntity(id)
}

func (s *ProjectileSystem) expire(id types.EntityID, proj *component.Projectile, pos geom.Vec3) {
	s.ctx.Events.Emit(event.ProjectileExpired, s.shotData(id, proj, proj.TargetID, pos))
	s.ctx.World.RemoveEntity(id)
}

func (s *ProjectileSystem) shotData(id types.EntityID, proj *component.Projectile, target types.EntityID, pos geom.Vec3) event.ShotData {
	return event.ShotData{
		ProjectileID: id,
		TargetID:     target,
		CannonIndex:  proj.CannonIndex,
		Damage:       proj.Data.Damage,
		X:            pos.X,
		Y:            pos.Y,
		Z:            pos.Z,
	}
}
