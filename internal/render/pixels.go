package render

import (
	"image"
	"image/color"

	"conway/internal/life"
)

// Style selects the colors used to draw a view.
type Style struct {
	Live    color.RGBA
	Dead    color.RGBA
	Checker color.RGBA
	// CheckerSize is the side of the alternating background blocks in
	// cells. Zero disables the checkerboard.
	CheckerSize int
}

// EditStyle draws live cells red, used while the grid can be edited.
func EditStyle() Style {
	return Style{
		Live:        color.RGBA{R: 255, A: 255},
		Dead:        color.RGBA{A: 255},
		Checker:     color.RGBA{R: 20, G: 20, B: 20, A: 255},
		CheckerSize: 5,
	}
}

// RunStyle draws live cells green, used while a run is in progress.
func RunStyle() Style {
	s := EditStyle()
	s.Live = color.RGBA{G: 255, A: 255}
	return s
}

// CellColor returns the color of the cell at grid position (row, col). The
// checkerboard is anchored to grid coordinates so it stays put while panning.
func (st Style) CellColor(alive bool, row, col int) color.RGBA {
	switch {
	case alive:
		return st.Live
	case st.CheckerSize > 0 && (row/st.CheckerSize)%2 == (col/st.CheckerSize)%2:
		return st.Checker
	}
	return st.Dead
}

// fillViewRGBA converts a rows×cols window of cells into RGBA pixels, one
// pixel per cell. topRow/topCol locate the window on the grid.
func fillViewRGBA(buf []byte, cells []bool, cols, topRow, topCol int, st Style) {
	for i, alive := range cells {
		base := i * 4
		col := st.CellColor(alive, topRow+i/cols, topCol+i%cols)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ChunkRects returns the dirty chunks overlapping a rows×cols window at
// (topRow, topCol), as rectangles in window cell coordinates (X is the
// column, Y the row), clipped to the window.
func ChunkRects(idx *life.ChunkGrid, topRow, topCol, rows, cols int) []image.Rectangle {
	if idx == nil || rows <= 0 || cols <= 0 {
		return nil
	}
	view := image.Rect(topCol, topRow, topCol+cols, topRow+rows)
	cr0, cc0 := idx.ChunkOf(topRow, topCol)
	cr1, cc1 := idx.ChunkOf(topRow+rows-1, topCol+cols-1)
	var out []image.Rectangle
	for cr := cr0; cr <= cr1; cr++ {
		for cc := cc0; cc <= cc1; cc++ {
			if !idx.Dirty(cr, cc) {
				continue
			}
			r0, c0, r1, c1 := idx.Bounds(cr, cc)
			rect := image.Rect(c0, r0, c1, r1).Intersect(view)
			if rect.Empty() {
				continue
			}
			out = append(out, rect.Sub(view.Min))
		}
	}
	return out
}
