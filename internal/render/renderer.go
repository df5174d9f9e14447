package render

import (
	"image/color"
	"math"
	"sort"

	"go-lone-tower/internal/component"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/effect"
	"go-lone-tower/internal/entity"
	"go-lone-tower/internal/types"
	"go-lone-tower/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer рисует мир симуляции. Он только читает компоненты.
type Renderer struct {
	View   View
	spawns []defs.SpawnPoint
	ground *ebiten.Image
}

func NewRenderer(view View, spawns []defs.SpawnPoint) *Renderer {
	return &Renderer{View: view, spawns: spawns}
}

// Draw рисует землю, башню, врагов и снаряды. zoneFiring включает отрисовку
// конуса непрерывной зоны.
func (r *Renderer) Draw(screen *ebiten.Image, w *entity.World, zoneFiring bool, gameTime float64) {
	screen.Fill(config.BackgroundColor)
	r.drawGround(screen)

	if w.Tower != nil {
		r.drawTowerOverlay(screen, w, zoneFiring, gameTime)
	}

	// Сначала враги и снаряды, башня поверх.
	ids := make([]types.EntityID, 0, len(w.Renderables))
	for id := range w.Renderables {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	for _, id := range ids {
		pos, ok := w.Positions[id]
		if !ok {
			continue
		}
		rend := w.Renderables[id]
		x, y := r.View.ToScreen(pos.Vec3)
		radius := r.View.Length(float64(rend.Radius))
		if radius < 2 {
			radius = 2
		}
		c := rend.Color
		if m, ok := w.Effects[id]; ok && (m.Has(effect.Slow) || m.Has(effect.Shock)) {
			c = darken(c)
		}
		if flash, ok := w.DamageFlashes[id]; ok && flash.Duration > 0 {
			c = mix(c, config.DamageFlashColor, flash.Timer/flash.Duration)
		}
		if id == w.TowerID {
			vector.DrawFilledCircle(screen, x, y, radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, radius, c, true)
		if _, isEnemy := w.Enemies[id]; isEnemy {
			r.drawHealthBar(screen, w.Healths[id], x, y-radius-6, radius*2)
		}
	}
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	if r.ground == nil {
		r.ground = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
		step := r.View.Length(5)
		for x := float32(r.View.CenterX); x < config.ScreenWidth; x += step {
			vector.StrokeLine(r.ground, x, 0, x, config.ScreenHeight, 1, config.GroundGridColor, false)
			mirror := 2*float32(r.View.CenterX) - x
			vector.StrokeLine(r.ground, mirror, 0, mirror, config.ScreenHeight, 1, config.GroundGridColor, false)
		}
		for y := float32(r.View.CenterY); y < config.ScreenHeight; y += step {
			vector.StrokeLine(r.ground, 0, y, config.ScreenWidth, y, 1, config.GroundGridColor, false)
			mirror := 2*float32(r.View.CenterY) - y
			vector.StrokeLine(r.ground, 0, mirror, config.ScreenWidth, mirror, 1, config.GroundGridColor, false)
		}
		for _, sp := range r.spawns {
			x, y := r.View.ToScreen(geom.V(sp.X, 0, sp.Z))
			vector.StrokeCircle(r.ground, x, y, 8, 2, config.SpawnPointColor, true)
		}
	}
	screen.DrawImage(r.ground, nil)
}

func (r *Renderer) drawTowerOverlay(screen *ebiten.Image, w *entity.World, zoneFiring bool, gameTime float64) {
	tower := w.Tower
	origin := w.TowerPosition().Vec3
	cx, cy := r.View.ToScreen(origin)

	vector.StrokeCircle(screen, cx, cy, r.View.Length(tower.Stats.MaxShootingRange), 1, config.RangeColor, true)
	if tower.Stats.MinShootingRange > 0 {
		vector.StrokeCircle(screen, cx, cy, r.View.Length(tower.Stats.MinShootingRange), 1, config.RangeColor, true)
	}

	if zoneFiring && tower.Continuous != nil {
		r.drawCone(screen, origin.Add(tower.MuzzleOffset(0).Flat()), tower.Base.Angle, tower.Continuous.Range, tower.Continuous.ConeAngle, gameTime)
	}

	// Ствол показывает текущий курс башни.
	fx, fy := r.View.ToScreen(origin.Add(tower.Forward().Flat().Normalize().Scale(2)))
	vector.StrokeLine(screen, cx, cy, fx, fy, 3, config.TowerStrokeColor, true)

	if tower.Manual {
		ax, ay := r.View.ToScreen(tower.ManualAim)
		vector.StrokeCircle(screen, ax, ay, 6, 2, config.TargetLineColor, true)
		return
	}
	if pos, ok := w.Positions[tower.TargetID]; ok && tower.TargetID != 0 {
		tx, ty := r.View.ToScreen(pos.Vec3)
		width := float32(1)
		if tower.IsTargetLocked && tower.IsTargetInShootingRange {
			width = 2
		}
		vector.StrokeLine(screen, cx, cy, tx, ty, width, config.TargetLineColor, true)
	}
}

// drawCone рисует сектор зоны с легкой пульсацией прозрачности.
func (r *Renderer) drawCone(screen *ebiten.Image, origin geom.Vec3, yaw, rng, cone, gameTime float64) {
	cx, cy := r.View.ToScreen(origin)
	radius := r.View.Length(rng)
	// Экранный угол: yaw 0 смотрит на +Z, то есть вверх экрана.
	mid := geom.DegToRad(yaw) - math.Pi/2
	half := geom.DegToRad(cone)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, radius, float32(mid-half), float32(mid+half), vector.Clockwise)
	path.Close()

	c := config.ZoneColor
	c.A = uint8(float64(c.A) * (0.8 + 0.2*math.Sin(gameTime*8)))
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, h *component.Health, x, y, width float32) {
	if h == nil || h.Max <= 0 {
		return
	}
	frac := float32(h.Value) / float32(h.Max)
	vector.DrawFilledRect(screen, x-width/2, y, width, 3, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*frac, 3, config.HealthBarColor, false)
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
