package ui

import (
	"image"
	"strconv"

	"conway/internal/core"
)

// HUD panel geometry in pixels, relative to the panel's top-left corner.
const (
	panelPadding = 12
	titleBase    = 30
	knobsTop     = 44
	knobRow      = 36
	knobButton   = 24
	knobGap      = 6
	groupGap     = 24
	paramRow     = 16
)

// knob is the HUD state of one adjustable parameter: its last known value and
// the screen rectangles of its -/+ buttons.
type knob struct {
	core.ParameterControl
	value int
	known bool
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// layoutKnobs gives each control a row, with the buttons right-aligned in a
// panel of the given width.
func layoutKnobs(controls []core.ParameterControl, width int) []knob {
	out := make([]knob, len(controls))
	for i, c := range controls {
		top := knobsTop + i*knobRow
		y := top + (knobRow-knobButton)/2
		plus := image.Rect(width-panelPadding-knobButton, y, width-panelPadding, y+knobButton)
		out[i] = knob{
			ParameterControl: c,
			top:              top,
			minus:            plus.Sub(image.Pt(knobButton+knobGap, 0)),
			plus:             plus,
		}
	}
	return out
}

// sync reads the knob's value from snap. A missing or non-integer parameter
// leaves the knob disabled.
func (k *knob) sync(snap core.ParameterSnapshot) {
	k.known = false
	p, ok := snap.Lookup(k.Key)
	if !ok || p.Type != core.ParamInt {
		return
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return
	}
	k.value, k.known = v, true
}

// target is the value one step in direction dir, clamped to the range.
func (k *knob) target(dir int) int {
	return k.Clamp(k.value + dir*max(k.Step, 1))
}

func (k *knob) canStep(dir int) bool {
	return k.known && dir != 0 && k.target(dir) != k.value
}

func (k *knob) text() string {
	if !k.known {
		return "--"
	}
	return strconv.Itoa(k.value)
}

// hitKnob returns the knob and step direction whose button contains p.
func hitKnob(knobs []knob, p image.Point) (idx, dir int, ok bool) {
	for i := range knobs {
		switch {
		case p.In(knobs[i].minus):
			return i, -1, true
		case p.In(knobs[i].plus):
			return i, 1, true
		}
	}
	return 0, 0, false
}
