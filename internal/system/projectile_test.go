package system

import (
	"math"
	"testing"

	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/event"
	"go-lone-tower/pkg/geom"
)

func TestStraightProjectileHitsAndDespawns(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 5)
	data, _ := env.ctx.Defs.Projectile("P_FAST")
	data.Speed = 10
	pid := env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)

	for i := 0; i < 10 && env.count(event.ProjectileHit) == 0; i++ {
		env.projectiles.Update(0.1)
	}

	if got := env.count(event.ProjectileHit); got != 1 {
		t.Fatalf("ProjectileHit = %d, want 1", got)
	}
	if got := env.hp(enemy); got != 90 {
		t.Errorf("enemy hp = %d, want 90", got)
	}
	if _, alive := env.ctx.World.Projectiles[pid]; alive {
		t.Error("projectile should despawn on hit")
	}
	if _, ok := env.ctx.World.Positions[pid]; ok {
		t.Error("projectile position left behind")
	}
}

func TestProjectileExpiresAfterLifetime(t *testing.T) {
	env := newTestEnv(t, nil)
	data, _ := env.ctx.Defs.Projectile("P_FAST")
	pid := env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), 0, 0)

	for i := 0; i < 7; i++ {
		env.projectiles.Update(0.25)
	}
	if _, alive := env.ctx.World.Projectiles[pid]; !alive {
		t.Fatal("projectile expired early")
	}
	env.projectiles.Update(0.25) // 2.0s
	if _, alive := env.ctx.World.Projectiles[pid]; alive {
		t.Fatal("projectile should expire after its lifetime")
	}
	if got := env.count(event.ProjectileExpired); got != 1 {
		t.Errorf("ProjectileExpired = %d, want 1", got)
	}
}

func TestHomingDoesNotSteerBeforeDelay(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 8, 8)
	data, _ := env.ctx.Defs.Projectile("P_SLOW")
	data.HomingDelay = 0.5
	data.HomingStrength = 4
	data.Speed = 1
	pid := env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)
	proj := env.ctx.World.Projectiles[pid]

	env.projectiles.Update(0.25)
	if proj.Heading != geom.V(0, 0, 1) {
		t.Fatalf("heading changed before homing delay: %+v", proj.Heading)
	}
	env.projectiles.Update(0.25)
	env.projectiles.Update(0.25)
	if proj.Heading.X <= 0 {
		t.Errorf("heading should turn toward the target after the delay: %+v", proj.Heading)
	}
}

func TestHomingFollowsMovingTarget(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 6)
	data, _ := env.ctx.Defs.Projectile("P_SLOW")
	data.HomingDelay = 0
	data.HomingStrength = 20
	data.Speed = 8
	env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)

	env.projectiles.Update(0.1)
	env.ctx.World.Positions[enemy].Vec3 = geom.V(3, 0, 5)
	for i := 0; i < 30 && env.count(event.ProjectileHit) == 0; i++ {
		env.projectiles.Update(0.05)
	}
	if env.count(event.ProjectileHit) != 1 {
		t.Fatal("homing projectile should catch a target that moved sideways")
	}
}

func TestBallisticArcDurationFixedAtSpawn(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 10)
	data, _ := env.ctx.Defs.Projectile("P_SHELL")
	origin := geom.V(0, 1, 0)
	pid := env.projectiles.Spawn(data, origin, geom.V(0, 0, 1), enemy, 0)
	proj := env.ctx.World.Projectiles[pid]

	want := origin.Dist(geom.V(0, 0, 10)) / data.Speed
	if math.Abs(proj.ArcDuration-want) > 1e-9 {
		t.Fatalf("arc duration = %v, want %v", proj.ArcDuration, want)
	}

	env.projectiles.Update(want / 2)
	pos := env.ctx.World.Positions[pid]
	if pos.Y < data.ArcHeight {
		t.Errorf("shell at mid-arc should be above arc height, y = %v", pos.Y)
	}

	// Цель сместилась: дуга перенацеливается, но длительность прежняя.
	env.ctx.World.Positions[enemy].Vec3 = geom.V(0, 0, 12)
	env.projectiles.Update(0.01)
	if proj.ArcDuration != want {
		t.Errorf("arc duration recomputed: %v", proj.ArcDuration)
	}
	if proj.LastTarget != geom.V(0, 0, 12) {
		t.Errorf("last target = %+v, want re-sampled position", proj.LastTarget)
	}
}

func TestBallisticShellLandsOnTarget(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 10)
	data, _ := env.ctx.Defs.Projectile("P_SHELL")
	env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)

	for i := 0; i < 200 && len(env.ctx.World.Projectiles) > 0; i++ {
		env.projectiles.Update(0.02)
	}
	if got := env.count(event.ProjectileHit); got != 1 {
		t.Fatalf("ProjectileHit = %d, want 1", got)
	}
	if got := env.hp(enemy); got != 75 {
		t.Errorf("enemy hp = %d, want 75", got)
	}
}

func TestBallisticShellWithoutHitLands(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 10)
	data, _ := env.ctx.Defs.Projectile("P_SHELL")
	pid := env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)
	// Цель ушла из мира: снаряд падает в последнюю известную точку.
	env.health.Despawn(enemy)

	for i := 0; i < 200; i++ {
		env.projectiles.Update(0.02)
	}
	if _, alive := env.ctx.World.Projectiles[pid]; alive {
		t.Fatal("shell should land and despawn")
	}
	if got := env.count(event.ProjectileExpired); got != 1 {
		t.Errorf("ProjectileExpired = %d, want 1", got)
	}
}

func TestProjectileAppliesEffectOnHit(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 0.5)
	data, _ := env.ctx.Defs.Projectile("P_SLOW")
	env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)

	env.projectiles.Update(frame)

	m := env.ctx.World.Effects[enemy]
	if m == nil || !m.Has(effect.Slow) {
		t.Fatal("slow effect not applied")
	}
	if got := env.ctx.World.Velocities[enemy].Speed; got != 1 {
		t.Errorf("speed = %v, want 1 (half of 2)", got)
	}
}

func TestProjectileHitsLowestIDFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	a := env.addEnemy(t, 0.2, 1)
	b := env.addEnemy(t, -0.2, 1)
	data, _ := env.ctx.Defs.Projectile("P_FAST")
	env.projectiles.Spawn(data, geom.V(0, 1, 1), geom.V(0, 0, 1), 0, 0)

	env.projectiles.Update(0.001)

	if env.hp(a) != 90 || env.hp(b) != 100 {
		t.Errorf("hp a=%d b=%d, want only the lower id hit", env.hp(a), env.hp(b))
	}
}

func TestProjectileKillRemovesEnemy(t *testing.T) {
	env := newTestEnv(t, nil)
	enemy := env.addEnemy(t, 0, 0.5)
	env.ctx.World.Healths[enemy].Value = 4
	data, _ := env.ctx.Defs.Projectile("P_SLOW")
	env.projectiles.Spawn(data, geom.V(0, 1, 0), geom.V(0, 0, 1), enemy, 0)

	env.projectiles.Update(frame)

	if env.ctx.World.IsEnemy(enemy) {
		t.Fatal("enemy should be removed on death")
	}
	if _, ok := env.ctx.World.Effects[enemy]; ok {
		t.Error("effect manager must be cleared with the enemy")
	}
	ev, ok := env.last(event.EnemyKilled)
	if !ok || ev.Data.(event.EnemyData).Reward != 3 {
		t.Errorf("EnemyKilled = %+v", ev)
	}
}
