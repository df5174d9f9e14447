package ui

import (
	"image/color"
	"math"

	"go-lone-tower/internal/config"
	"go-lone-tower/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ringRadius  = 22
	ringSpacing = 64
	ringWidth   = 4
)

// AbilityRings — ряд колец способностей внизу экрана. Дуга показывает
// остаток действия или перезарядки.
type AbilityRings struct {
	X, Y float32
	face font.Face

	// pulse — время последней смены состояния, для короткой анимации.
	pulse map[string]float64
	last  map[string]system.AbilityState
}

func NewAbilityRings(x, y float32, face font.Face) *AbilityRings {
	return &AbilityRings{
		X:     x,
		Y:     y,
		face:  face,
		pulse: make(map[string]float64),
		last:  make(map[string]system.AbilityState),
	}
}

// RingFraction returns the share of the ring to fill for an ability.
func RingFraction(a system.Ability) float64 {
	switch a.State {
	case system.AbilityActive:
		if a.Duration <= 0 {
			return 0
		}
		return clamp01(a.DurationRemaining / a.Duration)
	case system.AbilityCooldown:
		if a.Cooldown <= 0 {
			return 1
		}
		return clamp01(1 - a.CooldownRemaining/a.Cooldown)
	case system.AbilityReady:
		return 1
	default:
		return 0
	}
}

// Draw рисует кольца. gameTime нужен только для анимации.
func (r *AbilityRings) Draw(screen *ebiten.Image, abilities []system.Ability, gameTime float64) {
	for i, a := range abilities {
		if prev, ok := r.last[a.ID]; !ok || prev != a.State {
			r.last[a.ID] = a.State
			r.pulse[a.ID] = gameTime
		}
		scale := 1.0 + 0.3*math.Exp(-(gameTime-r.pulse[a.ID])*8)
		radius := ringRadius * float32(scale)

		x := r.X + float32(i)*ringSpacing
		y := r.Y
		c := config.AbilityStateColors[a.State.String()]

		vector.DrawFilledCircle(screen, x, y, radius, config.BackgroundColor, true)
		vector.StrokeCircle(screen, x, y, radius, 1, color.RGBA{90, 90, 90, 255}, true)
		drawArc(screen, x, y, radius-ringWidth/2, RingFraction(a), c)

		label := a.Hotkey
		bounds := text.BoundString(r.face, label)
		text.Draw(screen, label, r.face, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, config.TextLightColor)
	}
}

// drawArc рисует дугу по часовой стрелке от верхней точки.
func drawArc(screen *ebiten.Image, x, y, radius float32, frac float64, c color.RGBA) {
	if frac <= 0 {
		return
	}
	start := float32(-math.Pi / 2)
	var path vector.Path
	path.Arc(x, y, radius, start, start+float32(2*math.Pi*frac), vector.Clockwise)

	op := &vector.StrokeOptions{Width: ringWidth, LineCap: vector.LineCapRound}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(screen, vs, is, c)
}

// drawVertices заливает треугольники одним цветом.
func drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		pixel = img
	}
	return pixel
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
