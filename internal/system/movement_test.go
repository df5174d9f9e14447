package system

import (
	"math"
	"testing"

	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/event"
)

func TestEnemyWalksToTowerAndStops(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.addEnemy(t, 0, 10)

	env.movement.Update(1)
	if z := env.ctx.World.Positions[id].Z; math.Abs(z-8) > 1e-9 {
		t.Fatalf("z = %v, want 8", z)
	}
	for i := 0; i < 10; i++ {
		env.movement.Update(1)
	}
	// Радиус башни 1 + радиус врага 0.5 + дистанция удара 1.
	if z := env.ctx.World.Positions[id].Z; math.Abs(z-2.5) > 1e-9 {
		t.Errorf("stopped at z = %v, want 2.5", z)
	}
}

func TestEnemyAttacksTowerOnCooldown(t *testing.T) {
	env := newTestEnv(t, nil)
	env.addEnemy(t, 0, 2.5)

	env.movement.Update(0.5)
	if got := env.count(event.TowerDamaged); got != 1 {
		t.Fatalf("TowerDamaged = %d, want 1", got)
	}
	env.movement.Update(0.5)
	if got := env.count(event.TowerDamaged); got != 1 {
		t.Fatalf("attacked during cooldown: %d", got)
	}
	env.movement.Update(0.5)
	if got := env.count(event.TowerDamaged); got != 2 {
		t.Errorf("TowerDamaged = %d, want 2", got)
	}
	if got := env.hp(env.ctx.World.TowerID); got != 90 {
		t.Errorf("tower hp = %d, want 90", got)
	}
}

func TestShockedEnemyNeitherMovesNorAttacks(t *testing.T) {
	env := newTestEnv(t, nil)
	walker := env.addEnemy(t, 0, 10)
	biter := env.addEnemy(t, 2.5, 0)
	env.ctx.World.Effects[walker].Apply(effect.Shock, 2, 0)
	env.ctx.World.Effects[biter].Apply(effect.Shock, 2, 0)

	env.movement.Update(1)
	if z := env.ctx.World.Positions[walker].Z; z != 10 {
		t.Errorf("stunned enemy moved to z = %v", z)
	}
	if env.count(event.TowerDamaged) != 0 {
		t.Error("stunned enemy attacked")
	}
}
