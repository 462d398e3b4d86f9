package life

import "conway/internal/core"

// CountNeighbors returns the number of live cells in the Moore neighborhood of
// (row, col). The search window is clamped to the grid, so edge cells have
// fewer than eight neighbors; nothing wraps.
func CountNeighbors(g *core.Grid, row, col int) int {
	n := g.N
	cells := g.Cells()
	r0, r1 := max(row-1, 0), min(row+2, n)
	c0, c1 := max(col-1, 0), min(col+2, n)
	count := 0
	for r := r0; r < r1; r++ {
		base := r * n
		for c := c0; c < c1; c++ {
			if (r != row || c != col) && cells[base+c] {
				count++
			}
		}
	}
	return count
}

// Rule applies Conway's B3/S23 rule.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
