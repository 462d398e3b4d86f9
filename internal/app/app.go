//go:build ebiten

package app

import (
	"image/color"

	"conway/internal/life"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	session  *life.Session
	controls *ui.Controls
	toolbar  *ui.Toolbar
	view     *ui.Viewport
	painter  *render.GridPainter
	overlay  *ui.Overlay
	hud      *ui.HUD

	cells         []bool
	width, height int
}

// New constructs a Game for the provided session.
func New(cfg *Config, s *life.Session) *Game {
	view := ui.NewViewport(s.Size(), cfg.ViewRows, cfg.ViewCols, cfg.CellSize, HMargin, VMargin)
	bounds := view.Bounds()
	painter := render.NewGridPainter(view.Rows, view.Cols)
	w, h := cfg.WindowSize()
	g := &Game{
		session:  s,
		controls: ui.NewControls(s),
		toolbar:  ui.NewToolbar(bounds.Min.X, bounds.Max.Y+5, bounds.Dx()),
		view:     view,
		painter:  painter,
		overlay:  ui.NewOverlay(s, painter, view),
		hud:      ui.NewHUD(s, cfg.HUDWidth),
		width:    w,
		height:   h,
	}
	g.toolbar.Sync(s.State(), g.controls.Tool)
	return g
}

var keyActions = map[ebiten.Key]ui.Action{
	ebiten.KeyEnter: ui.ActionStart,
	ebiten.KeySpace: ui.ActionPauseResume,
	ebiten.KeyA:     ui.ActionAbort,
	ebiten.KeyS:     ui.ActionAbortSave,
	ebiten.KeyC:     ui.ActionClear,
	ebiten.KeyN:     ui.ActionStep,
	ebiten.KeyP:     ui.ActionToolPencil,
	ebiten.KeyE:     ui.ActionToolEraser,
	ebiten.KeyH:     ui.ActionToolHand,
}

// Update handles per-frame input and advances the session when its cooldown
// has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			_ = g.controls.Do(action)
		}
	}
	g.handleArrows()
	g.handleMouse()

	g.overlay.Update()
	g.hud.Update(g.view.Bounds().Max.X + HMargin)

	g.session.Tick()
	g.toolbar.Sync(g.session.State(), g.controls.Tool)
	return nil
}

func (g *Game) handleArrows() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.view.Pan(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.view.Pan(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.view.Pan(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.view.Pan(0, 1)
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	g.toolbar.Hover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		_ = g.controls.Do(ui.ActionToolHand)
		g.view.BeginDrag(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if action := g.toolbar.Hit(x, y); action != ui.ActionNone {
			_ = g.controls.Do(action)
			return
		}
		if g.controls.Tool == ui.ToolHand {
			g.view.BeginDrag(x, y)
		}
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if !left && !middle {
		g.view.EndDrag()
		return
	}
	if g.view.Dragging() {
		g.view.DragTo(x, y)
		return
	}
	if left {
		if row, col, ok := g.view.CellAt(x, y); ok {
			g.controls.Paint(row, col)
		}
	}
}

// Draw renders the status line, the grid view, overlays, toolbar and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	ui.DrawStatus(screen, g.controls.Status(g.view), HMargin, VMargin-10)

	v := g.view
	g.cells = g.session.Region(g.cells, v.TopRow, v.TopCol, v.Rows, v.Cols)
	style := render.EditStyle()
	if g.session.State() == life.Running {
		style = render.RunStyle()
	}
	g.painter.Blit(screen, g.cells, v.TopRow, v.TopCol, style, v.OriginX, v.OriginY, v.CellSize)
	g.overlay.Draw(screen)
	g.toolbar.Draw(screen)
	g.hud.Draw(screen, v.Bounds().Max.X+HMargin, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
