package render

import "image/color"

// darken уменьшает яркость цвета вдвое: так рисуются замедленные враги.
func darken(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// mix смешивает базовый цвет с цветом вспышки; t = 1 дает чистую вспышку.
func mix(base, flash color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{lerp(base.R, flash.R), lerp(base.G, flash.G), lerp(base.B, flash.B), lerp(base.A, flash.A)}
}
