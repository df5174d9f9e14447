// internal/system/wave.go
package system

import (
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"
)

// WavePhase — шаг сценария волн.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveStartDelay
	WaveGroupDelay
	WaveSpawning
	WaveAwaitClear
	WaveBetween
	WaveCompleted
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "IDLE"
	case WaveStartDelay:
		return "START_DELAY"
	case WaveGroupDelay:
		return "GROUP_DELAY"
	case WaveSpawning:
		return "SPAWNING"
	case WaveAwaitClear:
		return "AWAIT_CLEAR"
	case WaveBetween:
		return "BETWEEN_WAVES"
	case WaveCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// WaveSystem — последовательный автомат волн. Все ожидания — это фаза плюс
// оставшееся время, которое продвигает Update.
type WaveSystem struct {
	ctx    *Context
	health *HealthSystem
	set    defs.WaveSet

	phase     WavePhase
	remaining float64
	wave      int
	group     int
	spawned   int
	nextPoint int

	activeEnemies int
}

func NewWaveSystem(ctx *Context, health *HealthSystem, set defs.WaveSet) *WaveSystem {
	if set.PollInterval <= 0 {
		set.PollInterval = config.DefaultWavePollInterval
	}
	ws := &WaveSystem{
		ctx:    ctx,
		health: health,
		set:    set,
	}
	ctx.Events.Subscribe(event.EnemyKilled, ws)
	ctx.Events.Subscribe(event.EnemyRemoved, ws)
	return ws
}

// OnEvent уменьшает счетчик живых врагов, не опуская его ниже нуля.
func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyRemoved:
		s.activeEnemies--
		if s.activeEnemies < 0 {
			s.activeEnemies = 0
		}
	}
}

// Start запускает первую волну.
func (s *WaveSystem) Start() {
	if s.phase != WaveIdle {
		return
	}
	if len(s.set.Waves) == 0 {
		log.Printf("WaveSystem: no waves defined")
		s.finish()
		return
	}
	s.remaining = 0
	s.beginWave()
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.phase == WaveIdle || s.phase == WaveCompleted {
		return
	}
	s.remaining -= deltaTime
	for s.remaining <= timerEpsilon && s.phase != WaveCompleted {
		if s.remaining > 0 {
			s.remaining = 0
		}
		s.advance()
	}
}

// advance выполняет переход из текущей фазы. Перерасход времени переносится
// в следующую фазу, так что крупный deltaTime не сдвигает расписание.
func (s *WaveSystem) advance() {
	switch s.phase {
	case WaveStartDelay:
		s.group = -1
		s.nextGroup()
	case WaveGroupDelay:
		s.phase = WaveSpawning
		s.spawned = 0
		s.spawnNext()
	case WaveSpawning:
		s.spawnNext()
	case WaveAwaitClear:
		if s.activeEnemies > 0 {
			s.remaining += s.set.PollInterval
			return
		}
		s.completeWave()
	case WaveBetween:
		s.beginWave()
	}
}

func (s *WaveSystem) beginWave() {
	wave := s.set.Waves[s.wave]
	s.phase = WaveStartDelay
	s.remaining += wave.StartDelay
	log.Printf("WaveSystem: wave %d/%d started", s.wave+1, len(s.set.Waves))
	s.ctx.Events.Emit(event.WaveStarted, event.WaveData{Index: s.wave, Total: len(s.set.Waves), Reward: wave.Reward})
}

func (s *WaveSystem) nextGroup() {
	s.group++
	groups := s.set.Waves[s.wave].Groups
	if s.group >= len(groups) {
		s.phase = WaveAwaitClear
		return
	}
	s.phase = WaveGroupDelay
	s.remaining += groups[s.group].GroupDelay
}

// spawnNext выпускает очередного врага группы или переходит к следующей группе.
func (s *WaveSystem) spawnNext() {
	g := s.set.Waves[s.wave].Groups[s.group]
	if s.spawned >= g.Count {
		s.nextGroup()
		return
	}
	s.spawn(g.EnemyID)
	s.spawned++
	if s.spawned >= g.Count {
		s.nextGroup()
		return
	}
	s.remaining += g.SpawnInterval
}

func (s *WaveSystem) completeWave() {
	wave := s.set.Waves[s.wave]
	log.Printf("WaveSystem: wave %d/%d completed, reward %d", s.wave+1, len(s.set.Waves), wave.Reward)
	s.ctx.Events.Emit(event.WaveCompleted, event.WaveData{Index: s.wave, Total: len(s.set.Waves), Reward: wave.Reward})
	s.wave++
	if s.wave >= len(s.set.Waves) {
		s.finish()
		return
	}
	s.phase = WaveBetween
	s.remaining += s.set.TimeBetweenWaves
}

func (s *WaveSystem) finish() {
	s.phase = WaveCompleted
	s.remaining = 0
	log.Printf("WaveSystem: all waves completed")
	s.ctx.Events.Emit(event.AllWavesCompleted, event.WaveData{Index: s.wave, Total: len(s.set.Waves)})
}

func (s *WaveSystem) spawn(enemyID string) {
	def, ok := s.ctx.Defs.Enemy(enemyID)
	if !ok {
		log.Printf("WaveSystem: enemy definition not found for ID: %s, spawn skipped", enemyID)
		return
	}
	point, ok := s.pickSpawnPoint()
	if !ok {
		log.Printf("WaveSystem: no spawn points, spawn skipped")
		return
	}
	id := s.spawnEnemy(def, geom.V(point.X, 0, point.Z))
	s.ctx.Events.Emit(event.EnemySpawned, event.EnemyData{EntityID: id, DefID: def.ID, Reward: def.Reward})
}

func (s *WaveSystem) pickSpawnPoint() (defs.SpawnPoint, bool) {
	points := s.set.SpawnPoints
	if len(points) == 0 {
		return defs.SpawnPoint{}, false
	}
	switch s.set.Policy {
	case defs.SpawnFirstOnly:
		return points[0], true
	case defs.SpawnSequential:
		p := points[s.nextPoint%len(points)]
		s.nextPoint = (s.nextPoint + 1) % len(points)
		return p, true
	default:
		weights := make([]int, len(points))
		for i, p := range points {
			weights[i] = p.Weight
			if weights[i] <= 0 {
				weights[i] = 1
			}
		}
		return points[s.ctx.Rand.ChooseWeighted(weights)], true
	}
}

func (s *WaveSystem) spawnEnemy(def defs.EnemyDefinition, pos geom.Vec3) types.EntityID {
	w := s.ctx.World
	id := w.NewEntity()
	w.Positions[id] = &component.Position{Vec3: pos}
	w.Velocities[id] = &component.Velocity{Speed: def.Speed, BaseSpeed: def.Speed}
	w.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	w.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.Color,
		Radius: float32(def.Visuals.Radius),
	}
	w.Enemies[id] = &component.Enemy{
		DefID:          def.ID,
		AttackDamage:   def.AttackDamage,
		AttackRange:    def.AttackRange,
		AttackCooldown: def.AttackCooldown,
		Reward:         def.Reward,
		Radius:         def.Visuals.Radius,
	}
	w.Effects[id] = effect.NewManager(id, effectHost{health: s.health, id: id}, s.ctx.Events)
	s.activeEnemies++
	return id
}

// Phase returns the current sequencer phase.
func (s *WaveSystem) Phase() WavePhase { return s.phase }

// WaveIndex returns the zero-based index of the current wave.
func (s *WaveSystem) WaveIndex() int { return s.wave }

// TotalWaves returns the number of waves in the scenario.
func (s *WaveSystem) TotalWaves() int { return len(s.set.Waves) }

// ActiveEnemies returns the live-enemy counter.
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

// TimeRemaining returns the time left in the current timed phase.
func (s *WaveSystem) TimeRemaining() float64 {
	if s.remaining < 0 {
		return 0
	}
	return s.remaining
}
