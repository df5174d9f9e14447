package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка ускорения в виде двойного треугольника.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	StateColors   []color.RGBA
	CurrentState  int
	lastClickTime float64
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, gameTime float64) {
	scale := 1.0 + 0.3*math.Exp(-(gameTime-b.lastClickTime)*8)
	size := b.Size * float32(scale)
	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, c)
	}
}

// IsClicked проверяет попадание по описанному кругу: форма сложная.
func (b *SpeedButton) IsClicked(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState(gameTime float64) {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.lastClickTime = gameTime
}

func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(screen, vs, is, c)
}
