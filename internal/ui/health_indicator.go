package ui

import (
	"fmt"
	"image/color"

	"go-lone-tower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCells         = 20
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 3.0
)

// HealthIndicator отображает здоровье башни сеткой кружков.
type HealthIndicator struct {
	X, Y float32
	face font.Face
}

// NewHealthIndicator создает новый индикатор здоровья.
func NewHealthIndicator(x, y float32, face font.Face) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y, face: face}
}

// FilledCells — сколько кружков из HealthCells закрашено. Живая башня
// всегда показывает хотя бы один.
func FilledCells(health, maxHealth int) int {
	if health <= 0 || maxHealth <= 0 {
		return 0
	}
	n := health * HealthCells / maxHealth
	if n == 0 {
		n = 1
	}
	if n > HealthCells {
		n = HealthCells
	}
	return n
}

// Draw рисует сетку и подпись над ней.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	filled := FilledCells(health, maxHealth)
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < HealthCells; j++ {
		x := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float32(j/HealthCols)*step + HealthCircleRadius

		var c color.RGBA
		switch {
		case j >= filled:
			c = config.HealthBackColor
		case filled <= HealthCells/4:
			c = color.RGBA{220, 40, 40, 255} // критическое здоровье
		default:
			c = config.HealthBarColor
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, config.TowerStrokeColor, true)
	}

	label := fmt.Sprintf("Tower %d/%d", health, maxHealth)
	text.Draw(screen, label, i.face, int(i.X), int(i.Y)-6, config.TextLightColor)
}
