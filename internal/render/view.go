// Package render рисует отладочный вид сверху: башня в центре экрана,
// ось X мира направо, ось Z мира вверх.
package render

import (
	"go-lone-tower/internal/config"
	"go-lone-tower/pkg/geom"
)

// cameraHeight — высота, с которой луч курсора опускается на землю.
const cameraHeight = 50.0

// View переводит координаты мира в экранные и обратно.
type View struct {
	CenterX, CenterY float64
	Scale            float64 // пикселей на единицу мира
}

func NewView() View {
	return View{
		CenterX: config.ScreenWidth / 2,
		CenterY: config.ScreenHeight / 2,
		Scale:   config.WorldScale,
	}
}

// ToScreen projects a world point onto the screen, ignoring height.
func (v View) ToScreen(p geom.Vec3) (float32, float32) {
	return float32(v.CenterX + p.X*v.Scale), float32(v.CenterY - p.Z*v.Scale)
}

// Length converts a world distance to pixels.
func (v View) Length(d float64) float32 {
	return float32(d * v.Scale)
}

// CursorToGround возвращает точку на земле (Y = 0) под курсором.
func (v View) CursorToGround(x, y int) (geom.Vec3, bool) {
	origin := geom.V((float64(x)-v.CenterX)/v.Scale, cameraHeight, (v.CenterY-float64(y))/v.Scale)
	return geom.RayPlaneY(origin, geom.V(0, -1, 0), 0)
}
