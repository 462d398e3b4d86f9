package life

// ChunkGrid holds one change flag per chunk of C×C cells. A true entry means
// at least one cell inside that chunk changed during the last completed
// generation.
type ChunkGrid struct {
	// Chunk is the side length C of a chunk in cells.
	Chunk int
	// N is the number of chunks per side (grid size / C).
	N     int
	dirty []bool
}

// NewChunkGrid allocates an all-clean index for a gridSize×gridSize grid cut
// into chunk×chunk blocks. gridSize must be a multiple of chunk.
func NewChunkGrid(gridSize, chunk int) *ChunkGrid {
	n := gridSize / chunk
	return &ChunkGrid{Chunk: chunk, N: n, dirty: make([]bool, n*n)}
}

// Dirty reports the flag for chunk (cr, cc). Out of range chunks are clean.
func (c *ChunkGrid) Dirty(cr, cc int) bool {
	if cr < 0 || cr >= c.N || cc < 0 || cc >= c.N {
		return false
	}
	return c.dirty[cr*c.N+cc]
}

// Mark sets the flag for chunk (cr, cc).
func (c *ChunkGrid) Mark(cr, cc int, dirty bool) {
	c.dirty[cr*c.N+cc] = dirty
}

// NeighborDirty reports whether any of the up to eight chunks around
// (cr, cc) is dirty. The chunk itself is not considered.
func (c *ChunkGrid) NeighborDirty(cr, cc int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if c.Dirty(cr+dr, cc+dc) {
				return true
			}
		}
	}
	return false
}

// Bounds returns the half-open cell rectangle [r0, r1) × [c0, c1) covered by
// chunk (cr, cc).
func (c *ChunkGrid) Bounds(cr, cc int) (r0, c0, r1, c1 int) {
	r0, c0 = cr*c.Chunk, cc*c.Chunk
	return r0, c0, r0 + c.Chunk, c0 + c.Chunk
}

// ChunkOf returns the chunk containing cell (row, col).
func (c *ChunkGrid) ChunkOf(row, col int) (cr, cc int) {
	return row / c.Chunk, col / c.Chunk
}

// Count returns the number of dirty chunks.
func (c *ChunkGrid) Count() int {
	n := 0
	for _, d := range c.dirty {
		if d {
			n++
		}
	}
	return n
}

// Flags exposes the row-major flag slice.
func (c *ChunkGrid) Flags() []bool { return c.dirty }

// Clone returns an independent copy.
func (c *ChunkGrid) Clone() *ChunkGrid {
	return &ChunkGrid{Chunk: c.Chunk, N: c.N, dirty: append([]bool(nil), c.dirty...)}
}

// Equal reports whether both indexes have the same shape and flags.
func (c *ChunkGrid) Equal(o *ChunkGrid) bool {
	if o == nil || c.Chunk != o.Chunk || c.N != o.N {
		return false
	}
	for i, d := range c.dirty {
		if o.dirty[i] != d {
			return false
		}
	}
	return true
}
