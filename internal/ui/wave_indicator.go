package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-lone-tower/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.RGBA
	OutlineColor color.RGBA
	face         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: config.TextDarkColor,
		face:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel формирует подпись: "Wave III / X" и статус фазы.
func WaveLabel(index, total int, phase string, remaining float64) string {
	if total == 0 {
		return "No waves"
	}
	label := fmt.Sprintf("Wave %s / %s", toRoman(index+1), toRoman(total))
	switch phase {
	case "START_DELAY", "BETWEEN_WAVES":
		label += fmt.Sprintf("  next in %.1fs", remaining)
	case "COMPLETED":
		label = "All waves cleared"
	}
	return label
}

// Draw отрисовывает индикатор с однопиксельной обводкой.
func (i *WaveIndicator) Draw(screen *ebiten.Image, label string) {
	if label == "" {
		return
	}
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, i.face, i.X+d[0], i.Y+d[1], i.OutlineColor)
	}
	text.Draw(screen, label, i.face, i.X, i.Y, i.Color)
}
