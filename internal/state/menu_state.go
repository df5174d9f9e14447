// internal/state/menu_state.go
package state

import (
	"go-lone-tower/internal/app"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — заставка перед партией. Симуляция ждет нажатия Space.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
}

func NewMenuState(sm *StateMachine, g *app.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "LONE TOWER", ui.DefaultFace, config.ScreenWidth/2-35, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "press Space to start", ui.DefaultFace, config.ScreenWidth/2-70, config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
