package render

import "github.com/hajimehoshi/ebiten/v2"

// Viewport maps the virtual coordinate space onto a physical surface with a
// uniform scale, centered, preserving aspect ratio.
type Viewport struct {
	VirtualW, VirtualH float64
	Scale              float64
	OffsetX, OffsetY   float64
}

// Fit computes the viewport for a virtual space of vw x vh on a surface of
// sw x sh.
func Fit(vw, vh, sw, sh float64) Viewport {
	scale := min(sw/vw, sh/vh)
	return Viewport{
		VirtualW: vw,
		VirtualH: vh,
		Scale:    scale,
		OffsetX:  (sw - vw*scale) / 2,
		OffsetY:  (sh - vh*scale) / 2,
	}
}

// ToVirtual converts a surface point, such as a cursor position, to
// virtual coordinates.
func (v Viewport) ToVirtual(x, y float64) (float64, float64) {
	if v.Scale == 0 {
		return 0, 0
	}
	return (x - v.OffsetX) / v.Scale, (y - v.OffsetY) / v.Scale
}

// GeoM returns the transform from virtual to surface coordinates.
func (v Viewport) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(v.Scale, v.Scale)
	m.Translate(v.OffsetX, v.OffsetY)
	return m
}
