package app

import "go-lone-tower/pkg/geom"

// Input — снимок ввода за кадр. Хост (ebiten или headless) заполняет его
// сам, поэтому симуляция не зависит от движка.
type Input struct {
	Hotkeys map[string]bool

	ToggleManual bool
	Aim          geom.Vec3 // точка на земле под курсором
	HasAim       bool
	Firing       bool

	ClearEnemies bool
}

// Pressed reports whether the hotkey was pressed this frame.
func (in Input) Pressed(hotkey string) bool {
	return in.Hotkeys[hotkey]
}
