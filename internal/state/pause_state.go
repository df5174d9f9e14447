// internal/state/pause_state.go
package state

import (
	"go-lone-tower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию и открывает магазин башен и навыков.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	shop          *ui.ShopPanel
	entries       []ui.ShopEntry
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		shop:          ui.NewShopPanel(ui.DefaultFace),
	}
}

func (s *PauseState) Enter() {
	s.refresh()
}

func (s *PauseState) refresh() {
	g := s.previousState.Game()
	s.entries = ui.BuildShop(g.Context.Defs, g.Progress)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.shop.Move(1, len(s.entries))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.shop.Move(-1, len(s.entries))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && s.shop.Cursor < len(s.entries) {
		s.buy(s.entries[s.shop.Cursor])
	}
}

func (s *PauseState) buy(e ui.ShopEntry) {
	g := s.previousState.Game()
	switch e.Kind {
	case ui.ShopTower:
		s.shop.Message = e.Label + ": " + g.TryUnlock(e.ID).String()
	case ui.ShopSkill:
		s.shop.Message = e.Label + ": " + g.TryUpgrade(e.ID).String() + " (applies next run)"
	}
	s.refresh()
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.shop.Draw(screen, s.entries, s.previousState.Game().Progress.Currency())
}

func (s *PauseState) Exit() {}
