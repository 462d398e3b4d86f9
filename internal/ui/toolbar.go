package ui

import (
	"image"
	"image/color"

	"conway/internal/life"
)

// Tool is the active pointer mode.
type Tool uint8

const (
	ToolHand Tool = iota
	ToolPencil
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolHand:
		return "Hand"
	case ToolPencil:
		return "Pencil"
	case ToolEraser:
		return "Eraser"
	}
	return "Unknown"
}

// Action is a user command coming from a button or a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionStart
	ActionPauseResume
	ActionAbort
	ActionAbortSave
	ActionClear
	ActionStep
	ActionToolPencil
	ActionToolEraser
	ActionToolHand
)

var (
	ColorGreen  = color.RGBA{R: 87, G: 171, B: 90, A: 255}
	ColorYellow = color.RGBA{R: 218, G: 170, B: 63, A: 255}
	ColorRed    = color.RGBA{R: 229, G: 83, B: 75, A: 255}
	ColorBlue   = color.RGBA{R: 82, G: 155, B: 245, A: 255}
	ColorIcon   = color.RGBA{R: 60, G: 62, B: 70, A: 255}
)

// Button is a clickable toolbar entry. Icon buttons show a short glyph and
// can be marked active.
type Button struct {
	Action  Action
	Label   string
	Rect    image.Rectangle
	Color   color.RGBA
	Icon    bool
	Hidden  bool
	Active  bool
	Hovered bool
}

// Contains reports whether (x, y) lies on a visible button.
func (b *Button) Contains(x, y int) bool {
	return !b.Hidden && image.Pt(x, y).In(b.Rect)
}

// Toolbar holds the run and tool buttons laid out below the grid view.
type Toolbar struct {
	Buttons []*Button
}

const (
	ToolbarHeight = 30
	toolbarGap    = 5
)

// NewToolbar lays buttons out along a row starting at (x, y) and spanning
// width pixels.
func NewToolbar(x, y, width int) *Toolbar {
	rect := func(left, w int) image.Rectangle {
		return image.Rect(left, y, left+w, y+ToolbarHeight)
	}
	right := x + width
	tb := &Toolbar{Buttons: []*Button{
		{Action: ActionStart, Label: "Start", Rect: rect(x, 70), Color: ColorGreen},
		{Action: ActionPauseResume, Label: "Pause", Rect: rect(x, 70), Color: ColorYellow},
		{Action: ActionAbort, Label: "Abort", Rect: rect(x+80, 70), Color: ColorRed},
		{Action: ActionAbortSave, Label: "Abort and save state", Rect: rect(x+160, 190), Color: ColorRed},
		{Action: ActionClear, Label: "Clear population", Rect: rect(right-150, 150), Color: ColorBlue},
		{Action: ActionToolPencil, Label: "P", Rect: rect(right-190-70, 30), Color: ColorIcon, Icon: true},
		{Action: ActionToolEraser, Label: "E", Rect: rect(right-190-35, 30), Color: ColorIcon, Icon: true},
		{Action: ActionToolHand, Label: "H", Rect: rect(right-190, 30), Color: ColorIcon, Icon: true},
	}}
	return tb
}

// Button returns the button bound to a, or nil.
func (tb *Toolbar) Button(a Action) *Button {
	for _, b := range tb.Buttons {
		if b.Action == a {
			return b
		}
	}
	return nil
}

// Hit returns the action of the visible button under (x, y).
func (tb *Toolbar) Hit(x, y int) Action {
	for _, b := range tb.Buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// Hover updates the hover flag of every button.
func (tb *Toolbar) Hover(x, y int) {
	for _, b := range tb.Buttons {
		b.Hovered = b.Contains(x, y)
	}
}

// Sync shows the buttons that make sense for the run state and highlights
// the active tool. Editing controls are hidden while running.
func (tb *Toolbar) Sync(state life.RunState, tool Tool) {
	running := state == life.Running
	idle := state == life.Idle

	tb.Button(ActionStart).Hidden = !idle
	pause := tb.Button(ActionPauseResume)
	pause.Hidden = idle
	pause.Label = "Pause"
	if state == life.Paused {
		pause.Label = "Resume"
	}
	tb.Button(ActionAbort).Hidden = idle
	tb.Button(ActionAbortSave).Hidden = idle
	tb.Button(ActionClear).Hidden = running
	tb.Button(ActionToolPencil).Hidden = running
	tb.Button(ActionToolEraser).Hidden = running

	tb.Button(ActionToolPencil).Active = tool == ToolPencil
	tb.Button(ActionToolEraser).Active = tool == ToolEraser
	tb.Button(ActionToolHand).Active = tool == ToolHand
}
