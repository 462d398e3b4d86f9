//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

type parameterSource interface {
	Parameters() core.ParameterSnapshot
}

// HUD is the panel to the right of the grid: adjustable knobs on top, then
// every parameter group the source reports.
type HUD struct {
	source  parameterSource
	setter  core.IntParameterSetter
	width   int
	knobs   []knob
	snap    core.ParameterSnapshot
	panel   *ebiten.Image
	offsetX int
}

// NewHUD builds a panel of the given width. Knobs appear when source also
// implements core.ParameterControlsProvider and core.IntParameterSetter.
func NewHUD(source parameterSource, width int) *HUD {
	h := &HUD{source: source, width: max(width, 0)}
	if p, ok := source.(core.ParameterControlsProvider); ok {
		h.knobs = layoutKnobs(p.ParameterControls(), h.width)
	}
	h.setter, _ = source.(core.IntParameterSetter)
	return h
}

// Update polls the source and applies a click on a knob button.
func (h *HUD) Update(offsetX int) {
	h.offsetX = offsetX
	h.snap = h.source.Parameters()
	for i := range h.knobs {
		h.knobs[i].sync(h.snap)
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	i, dir, ok := hitKnob(h.knobs, image.Pt(x-offsetX, y))
	if !ok || !h.knobs[i].canStep(dir) {
		return
	}
	k := &h.knobs[i]
	if v := k.target(dir); h.setter.SetIntParameter(k.Key, v) {
		k.value = v
	}
}

// Draw renders the panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, "Life", face, panelPadding, titleBase, titleColor)

	for i := range h.knobs {
		k := &h.knobs[i]
		base := k.top + knobRow/2 + 5
		text.Draw(h.panel, k.Label, face, panelPadding, base, valueColor)
		fg := valueColor
		if !k.known {
			fg = dimColor
		}
		v := k.text()
		text.Draw(h.panel, v, face, k.minus.Min.X-knobGap-text.BoundString(face, v).Dx(), base, fg)
		h.drawKnobButton(k.minus, "-", k.canStep(-1))
		h.drawKnobButton(k.plus, "+", k.canStep(1))
	}

	y := knobsTop + len(h.knobs)*knobRow
	for _, g := range h.snap.Groups {
		y += groupGap
		text.Draw(h.panel, g.Name, face, panelPadding, y, titleColor)
		for _, p := range g.Params {
			y += paramRow
			text.Draw(h.panel, p.Label, face, panelPadding, y, dimColor)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-text.BoundString(face, p.Value).Dx(), y, valueColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawKnobButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, valueColor
	if !enabled {
		bg, fg = disabledColor, dimColor
	}
	vector.DrawFilledRect(h.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	drawCentered(h.panel, label, r, fg)
}

// DrawStatus writes a single line of text with its baseline at (x, y).
func DrawStatus(screen *ebiten.Image, line string, x, y int) {
	text.Draw(screen, line, basicfont.Face7x13, x, y, color.White)
}

// drawCentered centers label inside r.
func drawCentered(dst *ebiten.Image, label string, r image.Rectangle, fg color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(dst, label, face, x, y, fg)
}
