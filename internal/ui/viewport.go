package ui

import "image"

// Viewport is a Rows×Cols window over an N×N grid drawn at (OriginX, OriginY)
// with square cells of CellSize pixels.
type Viewport struct {
	GridSize int
	Rows     int
	Cols     int
	CellSize int
	OriginX  int
	OriginY  int

	TopRow int
	TopCol int

	dragging  bool
	dragStart image.Point
}

// NewViewport returns a viewport centered on the grid. The view is shrunk if
// the grid is smaller than requested.
func NewViewport(gridSize, rows, cols, cellSize, originX, originY int) *Viewport {
	if cellSize <= 0 {
		cellSize = 1
	}
	v := &Viewport{
		GridSize: gridSize,
		Rows:     min(rows, gridSize),
		Cols:     min(cols, gridSize),
		CellSize: cellSize,
		OriginX:  originX,
		OriginY:  originY,
	}
	v.TopRow = (gridSize - v.Rows) / 2
	v.TopCol = (gridSize - v.Cols) / 2
	return v
}

// Bounds returns the screen rectangle covered by the view.
func (v *Viewport) Bounds() image.Rectangle {
	return image.Rect(v.OriginX, v.OriginY, v.OriginX+v.Cols*v.CellSize, v.OriginY+v.Rows*v.CellSize)
}

// CellAt maps a screen position to grid coordinates. ok is false outside the
// view.
func (v *Viewport) CellAt(x, y int) (row, col int, ok bool) {
	if x < v.OriginX || y < v.OriginY {
		return -1, -1, false
	}
	i := (y - v.OriginY) / v.CellSize
	j := (x - v.OriginX) / v.CellSize
	if i >= v.Rows || j >= v.Cols {
		return -1, -1, false
	}
	return v.TopRow + i, v.TopCol + j, true
}

// Pan moves the view by whole cells, clamped to the grid.
func (v *Viewport) Pan(dRows, dCols int) {
	v.TopRow = clamp(v.TopRow+dRows, 0, v.GridSize-v.Rows)
	v.TopCol = clamp(v.TopCol+dCols, 0, v.GridSize-v.Cols)
}

// BeginDrag starts a hand-tool drag if (x, y) lies inside the view.
func (v *Viewport) BeginDrag(x, y int) bool {
	if _, _, ok := v.CellAt(x, y); !ok {
		return false
	}
	v.dragging = true
	v.dragStart = image.Pt(x, y)
	return true
}

// EndDrag stops any drag in progress.
func (v *Viewport) EndDrag() { v.dragging = false }

// Dragging reports whether a drag is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

// DragTo pans one cell per axis once the pointer has moved more than a cell
// away from the drag anchor. Content follows the pointer.
func (v *Viewport) DragTo(x, y int) {
	if !v.dragging {
		return
	}
	if _, _, ok := v.CellAt(x, y); !ok {
		return
	}
	dx := -(x - v.dragStart.X)
	dy := -(y - v.dragStart.Y)
	next := v.dragStart
	if abs(dy) > v.CellSize {
		v.Pan(sign(dy), 0)
		next.Y = y
	}
	if abs(dx) > v.CellSize {
		v.Pan(0, sign(dx))
		next.X = x
	}
	v.dragStart = next
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
