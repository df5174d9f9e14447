// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/entity"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/progression"
	"go-lone-tower/internal/system"
	"go-lone-tower/internal/timer"
	"go-lone-tower/internal/types"
	"go-lone-tower/internal/utils"
	"go-lone-tower/pkg/geom"

	"github.com/google/uuid"
)

// speedSteps — множители скорости, которые перебирает HandleSpeedClick.
var speedSteps = []float64{1, 2, 4}

// Options — все, что нужно для сборки одной партии.
type Options struct {
	Seed  int64
	Defs  *defs.Database
	Store progression.Store
	// Feed получает все события партии. Может быть nil.
	Feed RunListener
}

// RunListener — внешний подписчик на события, которому сообщают ID забега.
type RunListener interface {
	event.Listener
	SetRun(runID string)
}

// Game holds one run of the simulation and wires every system together.
type Game struct {
	Context *system.Context
	RunID   string

	Progress           *progression.Service
	Pipeline           *system.StatPipeline
	HealthSystem       *system.HealthSystem
	StatusEffectSystem *system.StatusEffectSystem
	AbilitySystem      *system.AbilitySystem
	ZoneSystem         *system.ZoneSystem
	TowerSystem        *system.TowerSystem
	ProjectileSystem   *system.ProjectileSystem
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	Stats RunStats

	opts       Options
	gameTime   float64
	speedIndex int
}

// RunStats — счетчики партии для итоговой сводки.
type RunStats struct {
	Kills        int
	ShotsFired   int
	WavesCleared int
	Earned       int
}

// NewGame собирает новую партию: мир, системы, башню и запускает волны.
func NewGame(opts Options) (*Game, error) {
	if opts.Defs == nil {
		return nil, fmt.Errorf("new game: definitions are required")
	}
	if opts.Store == nil {
		opts.Store = progression.NewMemoryStore(0)
	}

	ctx := &system.Context{
		World:     entity.NewWorld(),
		Events:    event.NewDispatcher(),
		Scheduler: timer.NewScheduler(),
		Defs:      opts.Defs,
		Rand:      utils.NewPRNGService(opts.Seed),
	}
	g := &Game{
		Context: ctx,
		RunID:   uuid.NewString(),
		opts:    opts,
	}
	if opts.Feed != nil {
		opts.Feed.SetRun(g.RunID)
		ctx.Events.Subscribe(event.Any, opts.Feed)
	}

	g.Progress = progression.NewService(opts.Store, opts.Defs, ctx.Events)
	g.Pipeline = system.NewStatPipeline(opts.Defs, g.Progress.Bonuses())

	g.HealthSystem = system.NewHealthSystem(ctx)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ctx)
	g.ProjectileSystem = system.NewProjectileSystem(ctx, g.HealthSystem)
	g.TowerSystem = system.NewTowerSystem(ctx, g.ProjectileSystem)
	g.ZoneSystem = system.NewZoneSystem(ctx, g.HealthSystem)
	g.MovementSystem = system.NewMovementSystem(ctx, g.HealthSystem)
	g.WaveSystem = system.NewWaveSystem(ctx, g.HealthSystem, opts.Defs.Waves)
	g.StateSystem = system.NewStateSystem(ctx)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ctx)

	if err := g.buildTower(); err != nil {
		return nil, err
	}
	g.AbilitySystem = system.NewAbilitySystem(ctx, g.TowerSystem, g.ZoneSystem, g.Pipeline, g.Progress.IsUnlocked)

	listener := &GameEventListener{game: g}
	ctx.Events.Subscribe(event.EnemyKilled, listener)
	ctx.Events.Subscribe(event.ProjectileFired, listener)
	ctx.Events.Subscribe(event.WaveCompleted, listener)

	g.WaveSystem.Start()
	log.Printf("Game: run %s started (seed %d, %d waves)", g.RunID, ctx.Rand.Seed(), g.WaveSystem.TotalWaves())
	return g, nil
}

func (g *Game) buildTower() error {
	db := g.opts.Defs
	def, ok := db.Tower(db.BaseTowerID)
	if !ok {
		return fmt.Errorf("new game: base tower %q not found", db.BaseTowerID)
	}
	cfg, ok := g.Pipeline.TowerConfig(def)
	if !ok {
		return fmt.Errorf("new game: base tower %q is misconfigured", def.ID)
	}
	g.TowerSystem.BuildTower(def, cfg, geom.Vec3{}, g.Pipeline.TowerHealth(def.Health))
	return nil
}

// Update продвигает симуляцию на один кадр. Порядок систем фиксирован.
func (g *Game) Update(deltaTime float64, in Input) {
	if deltaTime <= 0 {
		return
	}
	g.VisualEffectSystem.Update(deltaTime)
	if g.Phase() != component.PhasePlaying {
		return
	}
	deltaTime *= g.SpeedMultiplier()
	g.gameTime += deltaTime

	g.Context.Scheduler.Update(deltaTime)
	g.StatusEffectSystem.Update(deltaTime)
	g.AbilitySystem.Update(deltaTime)
	g.ZoneSystem.Update(deltaTime)
	g.handleInput(in)
	g.TowerSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
}

func (g *Game) handleInput(in Input) {
	g.AbilitySystem.HandleHotkeys(in.Pressed)

	tower := g.Context.World.Tower
	if tower == nil {
		return
	}
	if in.ToggleManual {
		tower.Manual = !tower.Manual
		tower.ManualFiring = false
		log.Printf("Game: manual control %v", tower.Manual)
	}
	if tower.Manual {
		if in.HasAim {
			tower.ManualAim = in.Aim
		}
		tower.ManualFiring = in.Firing
	}
	if in.ClearEnemies {
		g.ClearEnemies()
	}
}

// ClearEnemies убирает всех врагов без награды (отладка).
func (g *Game) ClearEnemies() int {
	ids := g.Context.World.EnemyIDs()
	for _, id := range ids {
		g.HealthSystem.Despawn(id)
	}
	if len(ids) > 0 {
		log.Printf("Game: cleared %d enemies", len(ids))
	}
	return len(ids)
}

// Reload перезапускает сцену: новая партия с тем же хранилищем прогресса.
func (g *Game) Reload() (*Game, error) {
	g.Context.Events.Emit(event.SceneReloadRequested, nil)
	g.Context.Scheduler.Clear()
	g.ZoneSystem.Stop()
	opts := g.opts
	opts.Seed = g.Context.Rand.Seed()
	return NewGame(opts)
}

// HandleSpeedClick переключает множитель скорости по кругу.
func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(speedSteps)
	log.Printf("Game: speed x%.0f", g.SpeedMultiplier())
}

func (g *Game) SpeedMultiplier() float64 {
	return speedSteps[g.speedIndex]
}

// TryUnlock покупает башню; способность открывается по событию TowerUnlocked.
func (g *Game) TryUnlock(towerID string) progression.UnlockFailReason {
	return g.Progress.TryUnlock(towerID)
}

// TryUpgrade покупает уровень навыка. Бонус начнет действовать в следующей партии.
func (g *Game) TryUpgrade(skillID string) progression.UpgradeFailReason {
	return g.Progress.TryUpgrade(skillID)
}

func (g *Game) Phase() component.GamePhase {
	return g.Context.World.Phase
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) Over() bool {
	return g.Phase() != component.PhasePlaying
}

// TowerHealth returns current and maximum tower health.
func (g *Game) TowerHealth() (int, int) {
	w := g.Context.World
	if h, ok := w.Healths[w.TowerID]; ok {
		return h.Value, h.Max
	}
	return 0, 0
}

// TowerID returns the tower entity.
func (g *Game) TowerID() types.EntityID {
	return g.Context.World.TowerID
}

// GameEventListener обрабатывает события, важные для сводки партии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	stats := &l.game.Stats
	switch e.Type {
	case event.EnemyKilled:
		stats.Kills++
		if data, ok := e.Data.(event.EnemyData); ok {
			stats.Earned += data.Reward
		}
	case event.ProjectileFired:
		stats.ShotsFired++
	case event.WaveCompleted:
		stats.WavesCleared++
		if data, ok := e.Data.(event.WaveData); ok {
			stats.Earned += data.Reward
		}
	}
}
