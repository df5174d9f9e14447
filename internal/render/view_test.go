package render

import (
	"image/color"
	"math"
	"testing"

	"go-lone-tower/pkg/geom"
)

func TestViewRoundTrip(t *testing.T) {
	v := View{CenterX: 600, CenterY: 450, Scale: 10}
	x, y := v.ToScreen(geom.V(3, 7, -2))
	if x != 630 || y != 470 {
		t.Fatalf("screen = %v,%v", x, y)
	}
	p, ok := v.CursorToGround(int(x), int(y))
	if !ok {
		t.Fatal("cursor ray missed the ground")
	}
	if math.Abs(p.X-3) > 1e-9 || math.Abs(p.Z+2) > 1e-9 || p.Y != 0 {
		t.Errorf("ground = %+v", p)
	}
}

func TestViewLength(t *testing.T) {
	v := View{Scale: 18}
	if got := v.Length(2.5); got != 45 {
		t.Errorf("length = %v", got)
	}
}

func TestColorHelpers(t *testing.T) {
	base := color.RGBA{200, 100, 50, 255}
	if got := darken(base); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("darken = %v", got)
	}
	white := color.RGBA{255, 255, 255, 255}
	if got := mix(base, white, 1); got != white {
		t.Errorf("mix(1) = %v", got)
	}
	if got := mix(base, white, -3); got != base {
		t.Errorf("mix clamps below zero: %v", got)
	}
}
