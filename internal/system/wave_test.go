package system

import (
	"testing"

	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

func (env *testEnv) killAll() {
	for _, id := range env.ctx.World.EnemyIDs() {
		env.health.TakeDamage(id, 1_000_000)
	}
}

func spawnedAt(env *testEnv) []geom.Vec3 {
	var out []geom.Vec3
	for _, e := range env.events {
		if e.Type != event.EnemySpawned {
			continue
		}
		id := e.Data.(event.EnemyData).EntityID
		if pos, ok := env.ctx.World.Positions[id]; ok {
			out = append(out, pos.Vec3)
		}
	}
	return out
}

func TestWaveTimeline(t *testing.T) {
	env := newTestEnv(t, nil)
	env.waves.Start()
	if env.count(event.WaveStarted) != 1 || env.waves.Phase() != WaveStartDelay {
		t.Fatalf("start: events=%d phase=%s", env.count(event.WaveStarted), env.waves.Phase())
	}

	env.waves.Update(0.75)
	if env.count(event.EnemySpawned) != 0 {
		t.Fatal("spawned before start delay")
	}
	env.waves.Update(0.25) // 1.0: первый враг
	if got := env.count(event.EnemySpawned); got != 1 {
		t.Fatalf("spawned %d at t=1.0, want 1", got)
	}
	env.waves.Update(0.25)
	if got := env.count(event.EnemySpawned); got != 1 {
		t.Fatalf("spawned %d at t=1.25, want 1", got)
	}
	env.waves.Update(0.25) // 1.5: второй
	if got := env.count(event.EnemySpawned); got != 2 {
		t.Fatalf("spawned %d at t=1.5, want 2", got)
	}
	if env.waves.Phase() != WaveAwaitClear || env.waves.ActiveEnemies() != 2 {
		t.Errorf("phase=%s alive=%d", env.waves.Phase(), env.waves.ActiveEnemies())
	}

	points := spawnedAt(env)
	if len(points) != 2 || points[0] != geom.V(10, 0, 0) || points[1] != geom.V(-10, 0, 0) {
		t.Errorf("sequential spawn points = %+v", points)
	}
}

func TestWaveTimelineOnFrameSteps(t *testing.T) {
	tests := []struct {
		name       string
		step       float64
		toFirst    int
		toInterval int
	}{
		{"tenths", 0.1, 10, 5},
		{"60 fps", frame, 60, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.waves.Start()

			for i := 0; i < tt.toFirst-1; i++ {
				env.waves.Update(tt.step)
			}
			if got := env.count(event.EnemySpawned); got != 0 {
				t.Fatalf("spawned %d one step before the start delay", got)
			}
			env.waves.Update(tt.step)
			if got := env.count(event.EnemySpawned); got != 1 {
				t.Fatalf("spawned %d when the start delay elapsed, want 1", got)
			}

			for i := 0; i < tt.toInterval-1; i++ {
				env.waves.Update(tt.step)
			}
			if got := env.count(event.EnemySpawned); got != 1 {
				t.Fatalf("spawned %d one step before the interval, want 1", got)
			}
			env.waves.Update(tt.step)
			if got := env.count(event.EnemySpawned); got != 2 {
				t.Fatalf("spawned %d when the interval elapsed, want 2", got)
			}
		})
	}
}

func TestWaveRewardsOnceAndAllWavesOnce(t *testing.T) {
	env := newTestEnv(t, nil)
	env.waves.Start()
	env.waves.Update(2)
	if env.count(event.WaveCompleted) != 0 {
		t.Fatal("wave completed with enemies alive")
	}

	env.killAll()
	for i := 0; i < 10; i++ {
		env.waves.Update(0.5)
	}
	if got := env.count(event.WaveCompleted); got != 1 {
		t.Fatalf("WaveCompleted = %d, want 1", got)
	}
	ev, _ := env.last(event.WaveCompleted)
	if ev.Data.(event.WaveData).Reward != 10 {
		t.Errorf("reward = %+v, want 10", ev.Data)
	}
	if got := env.count(event.WaveStarted); got != 2 {
		t.Fatalf("WaveStarted = %d, want 2", got)
	}

	env.killAll()
	for i := 0; i < 20; i++ {
		env.waves.Update(0.5)
	}
	if got := env.count(event.WaveCompleted); got != 2 {
		t.Errorf("WaveCompleted = %d, want 2", got)
	}
	if got := env.count(event.AllWavesCompleted); got != 1 {
		t.Errorf("AllWavesCompleted = %d, want 1", got)
	}
	if env.waves.Phase() != WaveCompleted {
		t.Errorf("phase = %s", env.waves.Phase())
	}
	for i := 0; i < 10; i++ {
		env.waves.Update(1)
	}
	if env.count(event.WaveCompleted) != 2 || env.count(event.AllWavesCompleted) != 1 {
		t.Error("completion events repeated after the scenario ended")
	}
}

func TestWaveBetweenDelay(t *testing.T) {
	env := newTestEnv(t, nil)
	env.waves.Start()
	env.waves.Update(1.5)
	env.killAll()
	env.waves.Update(0.5) // опрос: волна 1 завершена, пауза 2с
	if env.count(event.WaveCompleted) != 1 || env.waves.Phase() != WaveBetween {
		t.Fatalf("completed=%d phase=%s", env.count(event.WaveCompleted), env.waves.Phase())
	}
	env.waves.Update(1.5)
	if env.count(event.WaveStarted) != 1 {
		t.Fatal("next wave started before time between waves")
	}
	env.waves.Update(0.5)
	if env.count(event.WaveStarted) != 2 {
		t.Fatal("next wave did not start")
	}
}

func TestAliveCounterClampsAtZero(t *testing.T) {
	env := newTestEnv(t, nil)
	env.ctx.Events.Emit(event.EnemyKilled, event.EnemyData{EntityID: 99})
	env.ctx.Events.Emit(event.EnemyRemoved, event.EnemyData{EntityID: 98})
	if got := env.waves.ActiveEnemies(); got != 0 {
		t.Errorf("alive = %d, want 0", got)
	}
}

func TestWaveCountsDespawnedEnemies(t *testing.T) {
	env := newTestEnv(t, nil)
	env.waves.Start()
	env.waves.Update(1.5)
	for _, id := range env.ctx.World.EnemyIDs() {
		env.health.Despawn(id)
	}
	env.waves.Update(0.5)
	if env.count(event.WaveCompleted) != 1 {
		t.Error("removed enemies should count toward wave completion")
	}
}

func newWaveOnly(t *testing.T, set defs.WaveSet) *testEnv {
	t.Helper()
	env := newTestEnv(t, nil)
	env.waves = NewWaveSystem(env.ctx, env.health, set)
	return env
}

func TestSpawnSkippedForUnknownEnemyOrNoPoints(t *testing.T) {
	wave := defs.WaveDefinition{
		Groups: []defs.SpawnGroup{{EnemyID: "E_NOPE", Count: 2}},
		Reward: 5,
	}
	env := newWaveOnly(t, defs.WaveSet{
		Policy:      defs.SpawnFirstOnly,
		SpawnPoints: []defs.SpawnPoint{{X: 1}},
		Waves:       []defs.WaveDefinition{wave},
	})
	env.waves.Start()
	env.waves.Update(0.1)
	if env.count(event.EnemySpawned) != 0 {
		t.Fatal("unknown enemy spawned")
	}
	if env.count(event.WaveCompleted) != 1 || env.count(event.AllWavesCompleted) != 1 {
		t.Error("wave without spawns should complete")
	}

	wave.Groups[0].EnemyID = "E_DUMMY"
	env = newWaveOnly(t, defs.WaveSet{Waves: []defs.WaveDefinition{wave}})
	env.waves.Start()
	env.waves.Update(0.1)
	if env.count(event.EnemySpawned) != 0 {
		t.Error("spawned without spawn points")
	}
}

func TestSpawnPolicies(t *testing.T) {
	points := []defs.SpawnPoint{{X: 1}, {X: 2}, {X: 3}}
	wave := defs.WaveDefinition{Groups: []defs.SpawnGroup{{EnemyID: "E_DUMMY", Count: 4}}}

	tests := []struct {
		policy defs.SpawnPolicy
		check  func(xs []float64) bool
	}{
		{defs.SpawnFirstOnly, func(xs []float64) bool {
			for _, x := range xs {
				if x != 1 {
					return false
				}
			}
			return true
		}},
		{defs.SpawnSequential, func(xs []float64) bool {
			return xs[0] == 1 && xs[1] == 2 && xs[2] == 3 && xs[3] == 1
		}},
		{defs.SpawnRandom, func(xs []float64) bool {
			for _, x := range xs {
				if x != 1 && x != 2 && x != 3 {
					return false
				}
			}
			return true
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			env := newWaveOnly(t, defs.WaveSet{Policy: tt.policy, SpawnPoints: points, Waves: []defs.WaveDefinition{wave}})
			env.waves.Start()
			env.waves.Update(0.1)
			var xs []float64
			for _, p := range spawnedAt(env) {
				xs = append(xs, p.X)
			}
			if len(xs) != 4 || !tt.check(xs) {
				t.Errorf("spawn xs = %v", xs)
			}
		})
	}
}

func TestEmptyScenarioCompletesImmediately(t *testing.T) {
	env := newWaveOnly(t, defs.WaveSet{})
	env.waves.Start()
	if env.count(event.AllWavesCompleted) != 1 {
		t.Error("empty scenario should complete at once")
	}
}

func TestSpawnedEnemyHasEffectsManager(t *testing.T) {
	env := newTestEnv(t, nil)
	env.waves.Start()
	env.waves.Update(1)
	var id types.EntityID
	if ev, ok := env.last(event.EnemySpawned); ok {
		id = ev.Data.(event.EnemyData).EntityID
	}
	if _, ok := env.ctx.World.Effects[id]; !ok {
		t.Error("spawned enemy must own an effect manager")
	}
}
