// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"go-lone-tower/internal/app"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/render"
	"go-lone-tower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.Renderer
	rings    *ui.AbilityRings
	wave     *ui.WaveIndicator
	health   *ui.HealthIndicator
	speed    *ui.SpeedButton
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	view := render.NewView()
	speedColors := []color.RGBA{
		{70, 200, 90, 255},
		{255, 200, 40, 255},
		{255, 80, 80, 255},
	}
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: render.NewRenderer(view, g.Context.Defs.Waves.SpawnPoints),
		rings:    ui.NewAbilityRings(config.ScreenWidth/2-96, config.ScreenHeight-50, ui.DefaultFace),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2-80, 30, ui.DefaultFace),
		health:   ui.NewHealthIndicator(20, 40, ui.DefaultFace),
		speed:    ui.NewSpeedButton(config.ScreenWidth-50, 40, 14, speedColors),
	}
}

// Game returns the running simulation.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) || g.speedClicked() {
		g.game.HandleSpeedClick()
		g.speed.ToggleState(g.game.GameTime())
	}

	g.game.Update(deltaTime, readInput(g.game, g.renderer.View))

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) speedClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return g.speed.IsClicked(ebiten.CursorPosition())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	gm := g.game
	g.renderer.Draw(screen, gm.Context.World, gm.ZoneSystem.Firing(), gm.GameTime())

	hp, max := gm.TowerHealth()
	g.health.Draw(screen, hp, max)

	ws := gm.WaveSystem
	g.wave.Draw(screen, ui.WaveLabel(ws.WaveIndex(), ws.TotalWaves(), ws.Phase().String(), ws.TimeRemaining()))
	g.rings.Draw(screen, gm.AbilitySystem.Abilities(), gm.GameTime())
	g.speed.Draw(screen, gm.GameTime())

	mode := "auto"
	if t := gm.Context.World.Tower; t != nil && t.Manual {
		mode = "manual"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Currency: %d  Kills: %d  Enemies: %d  Aim: %s  [M] aim mode  [P] pause",
		gm.Progress.Currency(), gm.Stats.Kills, ws.ActiveEnemies(), mode), 20, config.ScreenHeight-20)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
