package system

import (
	"testing"
	"testing/fstest"

	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/entity"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/progression"
	"go-lone-tower/internal/timer"
	"go-lone-tower/internal/types"
	"go-lone-tower/internal/utils"
	"go-lone-tower/pkg/geom"
)

const testTowers = `{
  "base": "T_BASE",
  "towers": [
    {
      "id": "T_BASE", "name": "Base", "visual": "base", "fire_mode": "PROJECTILE", "projectile": "P_FAST",
      "fire_cooldown": 1.0, "detection_radius": 20, "min_shooting_range": 1, "max_shooting_range": 10,
      "aim_lock_angle": 5, "health": 100,
      "base": { "turn_speed": 100000 },
      "pitch": { "turn_speed": 100000, "limit": { "min": -30, "max": 60 } },
      "cannons": [ { "fire_order": 0, "fire_delay": 0, "offset": [0, 1, 0] } ],
      "visuals": { "color": { "r": 200, "g": 200, "b": 200, "a": 255 }, "radius": 1.0 }
    },
    {
      "id": "T_ZONE", "name": "Zone", "visual": "zone", "fire_mode": "CONTINUOUS",
      "fire_cooldown": 1.0, "detection_radius": 12, "min_shooting_range": 0, "max_shooting_range": 8,
      "aim_lock_angle": 20, "yaw_only_lock": true,
      "base": { "turn_speed": 100000 }, "pitch": { "turn_speed": 100000 },
      "cannons": [ { "fire_order": 0, "fire_delay": 0, "offset": [0, 1, 0] } ],
      "continuous": { "range": 8, "cone_angle": 30, "damage_per_second": 10, "tick_interval": 0.25,
        "target_aware": true, "effect": { "kind": "BURN", "duration": 3, "strength": 4 } },
      "ability": { "hotkey": "1", "duration": 5, "cooldown": 10, "unlock_cost": 10 },
      "visuals": { "color": { "r": 255, "g": 100, "b": 0, "a": 255 }, "radius": 1.0 }
    },
    {
      "id": "T_SLOW", "name": "Slow", "visual": "slow", "fire_mode": "PROJECTILE", "projectile": "P_SLOW",
      "fire_cooldown": 0.5, "detection_radius": 16, "min_shooting_range": 0, "max_shooting_range": 14,
      "aim_lock_angle": 10,
      "base": { "turn_speed": 50000 }, "pitch": { "turn_speed": 100000 },
      "cannons": [
        { "fire_order": 1, "fire_delay": 0.1, "offset": [0.3, 1, 0] },
        { "fire_order": 0, "fire_delay": 0, "offset": [-0.3, 1, 0] }
      ],
      "ability": { "hotkey": "2", "duration": 4, "cooldown": 6, "unlock_cost": 20 },
      "visuals": { "color": { "r": 100, "g": 200, "b": 255, "a": 255 }, "radius": 1.0 }
    },
    {
      "id": "T_BROKEN", "name": "Broken", "visual": "broken", "fire_mode": "PROJECTILE", "projectile": "P_NONE",
      "fire_cooldown": 1, "detection_radius": 10, "max_shooting_range": 10, "aim_lock_angle": 5,
      "base": { "turn_speed": 10 }, "pitch": { "turn_speed": 10 },
      "cannons": [ { "fire_order": 0 } ],
      "ability": { "hotkey": "9", "duration": 1, "cooldown": 1 },
      "visuals": { "radius": 1.0 }
    }
  ]
}`

const testProjectiles = `[
  { "id": "P_FAST", "motion": "STRAIGHT", "speed": 100, "damage": 10, "hit_radius": 0.5, "lifetime": 2,
    "visuals": { "radius": 0.2 } },
  { "id": "P_SLOW", "motion": "HOMING", "speed": 20, "damage": 4, "hit_radius": 0.5, "lifetime": 3,
    "homing_delay": 0.1, "homing_strength": 8, "effect": { "kind": "SLOW", "duration": 2, "strength": 0.5 },
    "visuals": { "radius": 0.2 } },
  { "id": "P_SHELL", "motion": "BALLISTIC", "speed": 10, "damage": 25, "hit_radius": 0.8, "lifetime": 5,
    "arc_height": 3, "visuals": { "radius": 0.3 } }
]`

const testEnemies = `[
  { "id": "E_DUMMY", "name": "Dummy", "health": 100, "speed": 2, "attack_damage": 5, "attack_range": 1,
    "attack_cooldown": 1, "reward": 3, "visuals": { "radius": 0.5 } }
]`

const testWaves = `{
  "policy": "SEQUENTIAL",
  "time_between_waves": 2,
  "poll_interval": 0.5,
  "spawn_points": [ { "x": 10, "z": 0 }, { "x": -10, "z": 0 } ],
  "waves": [
    { "name": "W1", "start_delay": 1, "groups": [ { "enemy_id": "E_DUMMY", "count": 2, "spawn_interval": 0.5 } ], "reward": 10 },
    { "name": "W2", "start_delay": 0, "groups": [ { "enemy_id": "E_DUMMY", "count": 1, "group_delay": 1 } ], "reward": 20 }
  ]
}`

func loadTestDefs(t *testing.T) *defs.Database {
	t.Helper()
	db, err := defs.Load(fstest.MapFS{
		"towers.json":      {Data: []byte(testTowers)},
		"projectiles.json": {Data: []byte(testProjectiles)},
		"enemies.json":     {Data: []byte(testEnemies)},
		"waves.json":       {Data: []byte(testWaves)},
		"skills.json":      {Data: []byte(`[]`)},
	})
	if err != nil {
		t.Fatalf("load test defs: %v", err)
	}
	return db
}

// testEnv — собранная симуляция с башней в начале координат.
type testEnv struct {
	ctx         *Context
	health      *HealthSystem
	effects     *StatusEffectSystem
	projectiles *ProjectileSystem
	towers      *TowerSystem
	zones       *ZoneSystem
	pipeline    *StatPipeline
	abilities   *AbilitySystem
	waves       *WaveSystem
	movement    *MovementSystem
	state       *StateSystem

	events []event.Event
}

func newTestEnv(t *testing.T, bonuses progression.Bonuses, unlocked ...string) *testEnv {
	t.Helper()
	db := loadTestDefs(t)
	ctx := &Context{
		World:     entity.NewWorld(),
		Events:    event.NewDispatcher(),
		Scheduler: timer.NewScheduler(),
		Defs:      db,
		Rand:      utils.NewPRNGService(1),
	}
	env := &testEnv{ctx: ctx}
	ctx.Events.SubscribeFunc(event.Any, func(e event.Event) {
		env.events = append(env.events, e)
	})

	env.health = NewHealthSystem(ctx)
	env.effects = NewStatusEffectSystem(ctx)
	env.projectiles = NewProjectileSystem(ctx, env.health)
	env.towers = NewTowerSystem(ctx, env.projectiles)
	env.zones = NewZoneSystem(ctx, env.health)
	env.pipeline = NewStatPipeline(db, bonuses)
	env.state = NewStateSystem(ctx)
	env.movement = NewMovementSystem(ctx, env.health)
	env.waves = NewWaveSystem(ctx, env.health, db.Waves)

	def, _ := db.Tower(db.BaseTowerID)
	cfg, ok := env.pipeline.TowerConfig(def)
	if !ok {
		t.Fatal("base tower config")
	}
	env.towers.BuildTower(def, cfg, geom.Vec3{}, env.pipeline.TowerHealth(def.Health))

	open := make(map[string]bool)
	for _, id := range unlocked {
		open[id] = true
	}
	env.abilities = NewAbilitySystem(ctx, env.towers, env.zones, env.pipeline, func(id string) bool { return open[id] })
	return env
}

// addEnemy ставит манекен E_DUMMY в точку на земле.
func (env *testEnv) addEnemy(t *testing.T, x, z float64) types.EntityID {
	t.Helper()
	def, ok := env.ctx.Defs.Enemy("E_DUMMY")
	if !ok {
		t.Fatal("E_DUMMY missing")
	}
	return env.waves.spawnEnemy(def, geom.V(x, 0, z))
}

func (env *testEnv) count(t event.EventType) int {
	n := 0
	for _, e := range env.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (env *testEnv) last(t event.EventType) (event.Event, bool) {
	for i := len(env.events) - 1; i >= 0; i-- {
		if env.events[i].Type == t {
			return env.events[i], true
		}
	}
	return event.Event{}, false
}

func (env *testEnv) hp(id types.EntityID) int {
	if h, ok := env.ctx.World.Healths[id]; ok {
		return h.Value
	}
	return 0
}
