package core

// Grid stores a square matrix of alive/dead cells in row-major order.
type Grid struct {
	N    int
	data []bool
}

// NewGrid allocates an all-dead grid with n rows and n columns.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{N: n, data: make([]bool, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.N + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// Alive reports the state of the cell at (row, col). Out of range positions
// are reported dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.In(row, col) {
		return false
	}
	return g.data[row*g.N+col]
}

// Set writes the state of the cell at (row, col) and reports whether the
// value changed. Out of range positions are ignored.
func (g *Grid) Set(row, col int, alive bool) bool {
	if !g.In(row, col) {
		return false
	}
	idx := row*g.N + col
	if g.data[idx] == alive {
		return false
	}
	g.data[idx] = alive
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{N: g.N, data: append([]bool(nil), g.data...)}
}

// CopyFrom overwrites g with the contents of src. Both grids must share N.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.N != o.N {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
