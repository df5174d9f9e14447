package entity

import (
	"sort"

	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

// Пространственные запросы. Результаты всегда отсортированы по ID, так что
// порядок перебора детерминирован.

// EnemyIDs returns all live enemy ids in ascending order.
func (w *World) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(w.Enemies))
	for id := range w.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemiesInRadius returns enemies whose position lies within radius of center.
func (w *World) EnemiesInRadius(center geom.Vec3, radius float64) []types.EntityID {
	var out []types.EntityID
	for _, id := range w.EnemyIDs() {
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}
		if pos.Dist(center) <= radius {
			out = append(out, id)
		}
	}
	return out
}

// EnemiesInCone returns enemies within radius whose direction from origin
// deviates from forward by at most angle degrees.
func (w *World) EnemiesInCone(origin, forward geom.Vec3, radius, angle float64) []types.EntityID {
	var out []types.EntityID
	for _, id := range w.EnemiesInRadius(origin, radius) {
		to := w.Positions[id].Sub(origin)
		if to.IsZero() || geom.AngleBetween(forward, to) <= angle {
			out = append(out, id)
		}
	}
	return out
}

// NearestEnemy находит ближайшего врага в радиусе. При равных расстояниях
// побеждает меньший ID.
func (w *World) NearestEnemy(center geom.Vec3, radius float64) (types.EntityID, bool) {
	var best types.EntityID
	bestDist := 0.0
	found := false
	for _, id := range w.EnemiesInRadius(center, radius) {
		d := w.Positions[id].Dist(center)
		if !found || d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, found
}
