//go:build ebiten

package render

import (
	"image"
	"image/color"

	"conway/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	lineColor    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	outlineColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	chunkColor   = color.NRGBA{R: 255, G: 200, B: 0, A: 48}
)

// GridPainter uploads a window of cells into a single RGBA image.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows×cols window.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the window cells (top-left at grid position topRow/topCol)
// and draws them at (x, y) scaled by cellSize.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, topRow, topCol int, st Style, x, y, cellSize int) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillViewRGBA(gp.buf, cells, gp.cols, topRow, topCol, st)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}

// DrawLines draws the cell separators and the outer frame of the window.
func (gp *GridPainter) DrawLines(dst *ebiten.Image, x, y, cellSize int) {
	w := float32(gp.cols * cellSize)
	h := float32(gp.rows * cellSize)
	fx, fy := float32(x), float32(y)
	if cellSize >= 4 {
		for i := 1; i < gp.cols; i++ {
			lx := fx + float32(i*cellSize)
			vector.StrokeLine(dst, lx, fy, lx, fy+h, 1, lineColor, false)
		}
		for i := 1; i < gp.rows; i++ {
			ly := fy + float32(i*cellSize)
			vector.StrokeLine(dst, fx, ly, fx+w, ly, 1, lineColor, false)
		}
	}
	vector.StrokeRect(dst, fx, fy, w, h, 1, outlineColor, false)
}

// DrawChunks tints the dirty chunks visible in the window.
func (gp *GridPainter) DrawChunks(dst *ebiten.Image, idx *life.ChunkGrid, topRow, topCol, x, y, cellSize int) {
	for _, r := range ChunkRects(idx, topRow, topCol, gp.rows, gp.cols) {
		drawCellRect(dst, r, x, y, cellSize)
	}
}

func drawCellRect(dst *ebiten.Image, r image.Rectangle, x, y, cellSize int) {
	vector.DrawFilledRect(dst,
		float32(x+r.Min.X*cellSize), float32(y+r.Min.Y*cellSize),
		float32(r.Dx()*cellSize), float32(r.Dy()*cellSize),
		chunkColor, false)
}

// Size returns the window dimensions in cells.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
