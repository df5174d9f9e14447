package entity

import (
	"testing"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

func addEnemy(w *World, x, z float64) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{Vec3: geom.V(x, 0, z)}
	w.Enemies[id] = &component.Enemy{}
	return id
}

func TestNearestEnemyTieBreaksOnLowestID(t *testing.T) {
	w := NewWorld()
	addEnemy(w, 0, 9)
	a := addEnemy(w, 3, 0)
	addEnemy(w, -3, 0)

	got, ok := w.NearestEnemy(geom.Vec3{}, 10)
	if !ok || got != a {
		t.Fatalf("NearestEnemy = %d, %v; want %d", got, ok, a)
	}
	if _, ok := w.NearestEnemy(geom.Vec3{}, 2); ok {
		t.Error("no enemy should be within radius 2")
	}
}

func TestEnemiesInCone(t *testing.T) {
	w := NewWorld()
	ahead := addEnemy(w, 0, 5)
	addEnemy(w, 5, 0) // 90 degrees off
	edge := addEnemy(w, 5, 5)

	got := w.EnemiesInCone(geom.Vec3{}, geom.V(0, 0, 1), 10, 46)
	if len(got) != 2 || got[0] != ahead || got[1] != edge {
		t.Errorf("EnemiesInCone = %v, want [%d %d]", got, ahead, edge)
	}
}

func TestRemoveEntityClearsTarget(t *testing.T) {
	w := NewWorld()
	id := addEnemy(w, 1, 1)
	w.Tower = &component.Tower{TargetID: id}
	w.RemoveEntity(id)
	if w.IsEnemy(id) || w.Tower.TargetID != 0 {
		t.Error("entity not fully removed")
	}
}
