package life

import "conway/internal/core"

// Bootstrap builds a chunk index from scratch by flagging every chunk that
// holds at least one live cell. All-dead chunks stay clean: they can only come
// alive through a border shared with a flagged chunk, which the planner
// covers with a border scan. Chunks are scanned in parallel.
func Bootstrap(g *core.Grid, chunk, workers int) *ChunkGrid {
	idx := NewChunkGrid(g.N, chunk)
	if workers <= 0 {
		workers = NewStepper(0).Workers()
	}
	cells := g.Cells()
	forEachChunk(idx.N, workers, func(cr, cc int) {
		r0, c0, r1, c1 := idx.Bounds(cr, cc)
		for r := r0; r < r1; r++ {
			row := cells[r*g.N+c0 : r*g.N+c1]
			for _, alive := range row {
				if alive {
					idx.dirty[cr*idx.N+cc] = true
					return
				}
			}
		}
	})
	return idx
}

// NaiveStep applies the rule to every cell of g without any change tracking.
// It is the reference the chunked stepper must match bit for bit.
func NaiveStep(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.N)
	out := next.Cells()
	cells := g.Cells()
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			idx := r*g.N + c
			out[idx] = Rule(cells[idx], CountNeighbors(g, r, c))
		}
	}
	return next
}
