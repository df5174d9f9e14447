package state

import (
	"go-lone-tower/internal/app"
	"go-lone-tower/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyForHotkey переводит хоткей из определений ("1", "Q") в клавишу ebiten.
func keyForHotkey(hotkey string) (ebiten.Key, bool) {
	if len(hotkey) != 1 {
		return 0, false
	}
	c := hotkey[0]
	switch {
	case c >= '0' && c <= '9':
		return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
	case c >= 'a' && c <= 'z':
		return ebiten.KeyA + ebiten.Key(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return ebiten.KeyA + ebiten.Key(c-'A'), true
	}
	return 0, false
}

// readInput собирает снимок ввода за кадр.
func readInput(g *app.Game, view render.View) app.Input {
	in := app.Input{Hotkeys: make(map[string]bool)}
	for _, a := range g.AbilitySystem.Abilities() {
		if key, ok := keyForHotkey(a.Hotkey); ok && inpututil.IsKeyJustPressed(key) {
			in.Hotkeys[a.Hotkey] = true
		}
	}
	in.ToggleManual = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.ClearEnemies = inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyShift)

	x, y := ebiten.CursorPosition()
	in.Aim, in.HasAim = view.CursorToGround(x, y)
	in.Firing = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}
