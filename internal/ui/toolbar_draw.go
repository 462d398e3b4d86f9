//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints the visible buttons. Hovered buttons are brightened and the
// active tool gets a white frame.
func (tb *Toolbar) Draw(dst *ebiten.Image) {
	for _, b := range tb.Buttons {
		if b.Hidden {
			continue
		}
		bg := b.Color
		if b.Hovered {
			bg = lighten(bg, 30)
		}
		x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
		w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
		vector.DrawFilledRect(dst, x, y, w, h, bg, false)
		if b.Icon && b.Active {
			vector.StrokeRect(dst, x, y, w, h, 2, color.White, false)
		}
		drawCentered(dst, b.Label, b.Rect, color.White)
	}
}

func lighten(c color.RGBA, by uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(by) > 255 {
			return 255
		}
		return v + by
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}
