package state

import (
	"fmt"
	"image/color"
	"log"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState показывает итог партии. R перезапускает сцену.
type GameOverState struct {
	sm   *StateMachine
	last *GameState
}

func NewGameOverState(sm *StateMachine, last *GameState) *GameOverState {
	return &GameOverState{sm: sm, last: last}
}

func (s *GameOverState) Enter() {
	g := s.last.Game()
	log.Printf("GameOver: run %s ended with %s after %.1fs, %d kills, %d waves",
		g.RunID, g.Phase(), g.GameTime(), g.Stats.Kills, g.Stats.WavesCleared)
}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s.last))
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return
	}
	next, err := s.last.Game().Reload()
	if err != nil {
		log.Printf("GameOver: reload failed: %v", err)
		return
	}
	s.sm.SetState(NewGameState(s.sm, next))
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.last.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 200}, false)

	g := s.last.Game()
	title := "DEFEAT"
	if g.Phase() == component.PhaseVictory {
		title = "VICTORY"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Waves cleared: %d / %d", g.Stats.WavesCleared, g.WaveSystem.TotalWaves()),
		fmt.Sprintf("Enemies killed: %d", g.Stats.Kills),
		fmt.Sprintf("Shots fired: %d", g.Stats.ShotsFired),
		fmt.Sprintf("Currency earned: %d (balance %d)", g.Stats.Earned, g.Progress.Currency()),
		"",
		"[R] play again   [P] shop",
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		text.Draw(screen, line, ui.DefaultFace, config.ScreenWidth/2-120, y, config.TextLightColor)
		y += 20
	}
}

func (s *GameOverState) Exit() {}
