// Package term draws a life session on a character terminal using tcell.
// Every grid cell takes two terminal columns so cells look roughly square.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"conway/internal/life"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "enter start  space pause  n step  a abort  s save  c clear  p/e/h tool  d chunks  i invert  q quit"

// Viewer renders a session to a tcell screen and maps key and mouse events
// onto the shared ui.Controls.
type Viewer struct {
	screen   tcell.Screen
	session  *life.Session
	controls *ui.Controls
	view     *ui.Viewport

	invert     bool
	showChunks bool
	cells      []bool
}

// NewViewer wraps an initialised screen. The view fills the screen apart from
// the status line at the top and the help line at the bottom.
func NewViewer(screen tcell.Screen, s *life.Session, invert bool) *Viewer {
	v := &Viewer{
		screen:   screen,
		session:  s,
		controls: ui.NewControls(s),
		invert:   invert,
	}
	v.resize()
	return v
}

// Controls exposes the action mapper, mainly for tests.
func (v *Viewer) Controls() *ui.Controls { return v.controls }

// Viewport returns the current window onto the grid.
func (v *Viewer) Viewport() *ui.Viewport { return v.view }

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	rows, cols := max(h-2, 1), max(w/2, 1)
	next := ui.NewViewport(v.session.Size(), rows, cols, 1, 0, 1)
	if v.view != nil {
		next.TopRow, next.TopCol = v.view.TopRow, v.view.TopCol
		next.Pan(0, 0)
	}
	v.view = next
}

var keyActions = map[rune]ui.Action{
	' ': ui.ActionPauseResume,
	'a': ui.ActionAbort,
	's': ui.ActionAbortSave,
	'c': ui.ActionClear,
	'n': ui.ActionStep,
	'p': ui.ActionToolPencil,
	'e': ui.ActionToolEraser,
	'h': ui.ActionToolHand,
}

// HandleEvent applies a single event and reports whether the viewer should
// quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		_ = v.controls.Do(ui.ActionStart)
	case tcell.KeyUp:
		v.view.Pan(-1, 0)
	case tcell.KeyDown:
		v.view.Pan(1, 0)
	case tcell.KeyLeft:
		v.view.Pan(0, -1)
	case tcell.KeyRight:
		v.view.Pan(0, 1)
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'q':
			return true
		case 'd':
			v.showChunks = !v.showChunks
		case 'i':
			v.invert = !v.invert
		default:
			if action, ok := keyActions[r]; ok {
				_ = v.controls.Do(action)
			}
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	x /= 2
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button3 != 0:
		// Middle button always drags.
		_ = v.controls.Do(ui.ActionToolHand)
		v.drag(x, y)
	case buttons&tcell.Button1 != 0:
		if v.controls.Tool == ui.ToolHand {
			v.drag(x, y)
			return
		}
		if row, col, ok := v.view.CellAt(x, y); ok {
			v.controls.Paint(row, col)
		}
	default:
		v.view.EndDrag()
	}
}

func (v *Viewer) drag(x, y int) {
	if v.view.Dragging() {
		v.view.DragTo(x, y)
		return
	}
	v.view.BeginDrag(x, y)
}

// Draw renders the status line, the visible cells and the help line, then
// shows the screen.
func (v *Viewer) Draw() {
	s := v.screen
	s.Clear()
	w, h := s.Size()

	status := fmt.Sprintf("%s [%s]", v.controls.Status(v.view), v.session.State())
	drawText(s, 0, 0, w, status, tcell.StyleDefault.Bold(true))

	view := v.view
	v.cells = v.session.Region(v.cells, view.TopRow, view.TopCol, view.Rows, view.Cols)
	st := render.EditStyle()
	if v.session.State() == life.Running {
		st = render.RunStyle()
	}
	var dirty []bool
	if v.showChunks {
		dirty = v.dirtyMask()
	}
	for i, alive := range v.cells {
		r, c := i/view.Cols, i%view.Cols
		bg := st.CellColor(alive, view.TopRow+r, view.TopCol+c)
		if dirty != nil && dirty[i] && !alive {
			bg = color.RGBA{R: 96, G: 80, A: 255}
		}
		style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcell.ColorBlack)
		if v.invert {
			style = style.Reverse(true)
		}
		s.SetContent(c*2, view.OriginY+r, ' ', nil, style)
		s.SetContent(c*2+1, view.OriginY+r, ' ', nil, style)
	}

	drawText(s, 0, h-1, w, helpLine, tcell.StyleDefault.Dim(true))
	s.Show()
}

// dirtyMask flags view cells that fall inside a dirty chunk.
func (v *Viewer) dirtyMask() []bool {
	view := v.view
	rects := render.ChunkRects(v.session.ChunkGrid(), view.TopRow, view.TopCol, view.Rows, view.Cols)
	if len(rects) == 0 {
		return nil
	}
	mask := make([]bool, view.Rows*view.Cols)
	for _, r := range rects {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				mask[y*view.Cols+x] = true
			}
		}
	}
	return mask
}

// Run polls events on a separate goroutine and redraws every frame until the
// user quits or ctx is cancelled. The session advances at most once per frame,
// gated by its cooldown.
func (v *Viewer) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = 50 * time.Millisecond
	}
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			v.session.Tick()
			v.Draw()
		}
	}
}

func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
