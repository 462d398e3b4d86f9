//go:build ebiten

package ui

import (
	"conway/internal/life"
	"conway/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the grid view.
type Overlay struct {
	session    *life.Session
	painter    *render.GridPainter
	view       *Viewport
	showChunks bool
	showLines  bool
}

// NewOverlay constructs an overlay with grid lines on and chunk tint off.
func NewOverlay(s *life.Session, painter *render.GridPainter, view *Viewport) *Overlay {
	return &Overlay{session: s, painter: painter, view: view, showLines: true}
}

// Update toggles layers: D for dirty chunks, G for grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	v := o.view
	if o.showChunks {
		o.painter.DrawChunks(screen, o.session.ChunkGrid(), v.TopRow, v.TopCol, v.OriginX, v.OriginY, v.CellSize)
	}
	if o.showLines {
		o.painter.DrawLines(screen, v.OriginX, v.OriginY, v.CellSize)
	}
}
