package life

import (
	"runtime"

	"conway/internal/core"

	"golang.org/x/sync/errgroup"
)

// StepStats summarizes the work done for one generation.
type StepStats struct {
	Skipped int
	Border  int
	Full    int
	// Changed counts chunks flagged dirty for the next generation.
	Changed int
	Births  int
	Deaths  int
}

type chunkResult struct {
	action ScanAction
	births int
	deaths int
}

func (r chunkResult) changed() bool { return r.births+r.deaths > 0 }

// Stepper advances a grid by one generation, evaluating only the chunks the
// planner selects. Chunks are spread over a fixed number of workers.
type Stepper struct {
	workers int
}

// NewStepper returns a stepper using the given number of workers. A
// non-positive count uses one worker per CPU.
func NewStepper(workers int) *Stepper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stepper{workers: workers}
}

// Workers returns the size of the worker pool.
func (s *Stepper) Workers() int { return s.workers }

// Step computes the generation after cur. idx must hold the flags produced by
// the previous generation (or by Bootstrap). The returned grid and index are
// fresh allocations; cur and idx are only read.
func (s *Stepper) Step(cur *core.Grid, idx *ChunkGrid) (*core.Grid, *ChunkGrid, StepStats) {
	next := cur.Clone()
	nextIdx := NewChunkGrid(cur.N, idx.Chunk)
	results := make([]chunkResult, idx.N*idx.N)

	forEachChunk(idx.N, s.workers, func(cr, cc int) {
		action := Plan(idx, cr, cc)
		res := chunkResult{action: action}
		switch action {
		case ScanFull:
			res.births, res.deaths = scanFull(cur, next, idx, cr, cc)
		case ScanBorder:
			res.births, res.deaths = scanBorder(cur, next, idx, cr, cc)
		}
		results[cr*idx.N+cc] = res
	})

	var stats StepStats
	for i, res := range results {
		switch res.action {
		case ScanSkip:
			stats.Skipped++
		case ScanBorder:
			stats.Border++
		case ScanFull:
			stats.Full++
		}
		if res.changed() {
			nextIdx.dirty[i] = true
			stats.Changed++
		}
		stats.Births += res.births
		stats.Deaths += res.deaths
	}
	return next, nextIdx, stats
}

// forEachChunk calls fn for every chunk of an n×n chunk grid, striding the
// chunks over workers goroutines and returning once all have finished.
func forEachChunk(n, workers int, fn func(cr, cc int)) {
	total := n * n
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		for id := 0; id < total; id++ {
			fn(id/n, id%n)
		}
		return
	}
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for id := w; id < total; id += workers {
				fn(id/n, id%n)
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// evalCell applies the rule to one cell, writing into next. It returns +1 for
// a birth, -1 for a death and 0 when the cell keeps its state.
func evalCell(cur, next *core.Grid, row, col int) int {
	idx := cur.Index(row, col)
	alive := cur.Cells()[idx]
	nv := Rule(alive, CountNeighbors(cur, row, col))
	if nv == alive {
		return 0
	}
	next.Cells()[idx] = nv
	if nv {
		return 1
	}
	return -1
}

func tally(births, deaths *int, delta int) {
	switch delta {
	case 1:
		*births++
	case -1:
		*deaths++
	}
}

func scanFull(cur, next *core.Grid, idx *ChunkGrid, cr, cc int) (births, deaths int) {
	r0, c0, r1, c1 := idx.Bounds(cr, cc)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			tally(&births, &deaths, evalCell(cur, next, r, c))
		}
	}
	return births, deaths
}

func scanBorder(cur, next *core.Grid, idx *ChunkGrid, cr, cc int) (births, deaths int) {
	r0, c0, r1, c1 := idx.Bounds(cr, cc)
	for c := c0; c < c1; c++ {
		tally(&births, &deaths, evalCell(cur, next, r0, c))
		if r1-1 != r0 {
			tally(&births, &deaths, evalCell(cur, next, r1-1, c))
		}
	}
	for r := r0 + 1; r < r1-1; r++ {
		tally(&births, &deaths, evalCell(cur, next, r, c0))
		if c1-1 != c0 {
			tally(&births, &deaths, evalCell(cur, next, r, c1-1))
		}
	}
	return births, deaths
}
