package life

import (
	"fmt"
	"testing"

	"conway/internal/core"
)

func gridWith(n int, cells ...core.Cell) *core.Grid {
	g := core.NewGrid(n)
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
	return g
}

func liveCells(g *core.Grid) map[core.Cell]bool {
	out := map[core.Cell]bool{}
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if g.Alive(r, c) {
				out[core.Cell{Row: r, Col: c}] = true
			}
		}
	}
	return out
}

func run(s *Stepper, g *core.Grid, chunk, gens int) (*core.Grid, *ChunkGrid) {
	idx := Bootstrap(g, chunk, s.Workers())
	for i := 0; i < gens; i++ {
		g, idx, _ = s.Step(g, idx)
	}
	return g, idx
}

func TestBlinkerOscillation(t *testing.T) {
	start := gridWith(8, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 1, Col: 2}, core.Cell{Row: 1, Col: 3})
	s := NewStepper(2)

	one, idx := run(s, start, 4, 1)
	want := map[core.Cell]bool{{Row: 0, Col: 2}: true, {Row: 1, Col: 2}: true, {Row: 2, Col: 2}: true}
	got := liveCells(one)
	if len(got) != len(want) {
		t.Fatalf("after one generation got %v, want %v", got, want)
	}
	for c := range want {
		if !got[c] {
			t.Fatalf("after one generation cell %v should be alive", c)
		}
	}

	// Only the chunk holding the blinker changed.
	for cr := 0; cr < idx.N; cr++ {
		for cc := 0; cc < idx.N; cc++ {
			if idx.Dirty(cr, cc) != (cr == 0 && cc == 0) {
				t.Fatalf("chunk (%d,%d) dirty=%v after one generation", cr, cc, idx.Dirty(cr, cc))
			}
		}
	}
	boot := Bootstrap(start, 4, 1)
	if !boot.Dirty(0, 0) || boot.Count() != 1 {
		t.Fatalf("bootstrap flagged %d chunks, want only (0,0)", boot.Count())
	}

	two, _ := run(s, start, 4, 2)
	if !two.Equal(start) {
		t.Fatal("blinker must return to its original phase after two generations")
	}
}

func TestGliderTranslates(t *testing.T) {
	glider, err := PatternByName("glider", 0)
	if err != nil {
		t.Fatal(err)
	}
	start := core.NewGrid(32)
	for _, c := range glider.Cells {
		start.Set(c.Row+5, c.Col+5, true)
	}
	s := NewStepper(4)
	g := start
	for k := 1; k <= 4; k++ {
		g, _ = run(s, g, 8, 4)
		for _, c := range glider.Cells {
			if !g.Alive(c.Row+5+k, c.Col+5+k) {
				t.Fatalf("after %d periods glider cell %v missing", k, c)
			}
		}
		if got := g.Population(); got != 5 {
			t.Fatalf("after %d periods population = %d, want 5", k, got)
		}
	}
}

func TestChunkedMatchesNaive(t *testing.T) {
	const n = 32
	for _, chunk := range []int{1, 2, 4, 8, 16, 32} {
		for _, workers := range []int{1, 4} {
			for seed := int64(1); seed <= 3; seed++ {
				t.Run(fmt.Sprintf("chunk=%d/workers=%d/seed=%d", chunk, workers, seed), func(t *testing.T) {
					g := core.NewGrid(n)
					core.FillGrid(core.NewRNG(seed), g, 0.3)
					ref := g.Clone()
					s := NewStepper(workers)
					idx := Bootstrap(g, chunk, workers)
					for gen := 1; gen <= 40; gen++ {
						var stats StepStats
						before := g.Population()
						g, idx, stats = s.Step(g, idx)
						ref = NaiveStep(ref)
						if !g.Equal(ref) {
							t.Fatalf("generation %d differs from naive rule", gen)
						}
						if got := before + stats.Births - stats.Deaths; got != g.Population() {
							t.Fatalf("generation %d: births/deaths give %d, population is %d", gen, got, g.Population())
						}
						if stats.Skipped+stats.Border+stats.Full != idx.N*idx.N {
							t.Fatalf("generation %d: plan does not cover every chunk", gen)
						}
					}
				})
			}
		}
	}
}

func TestSkippedChunkIsUntouched(t *testing.T) {
	// A blinker whose chunk is flagged clean, with clean neighbors, must not
	// be advanced.
	g := gridWith(16, core.Cell{Row: 13, Col: 12}, core.Cell{Row: 13, Col: 13}, core.Cell{Row: 13, Col: 14})
	idx := NewChunkGrid(16, 4)
	next, nextIdx, stats := NewStepper(2).Step(g, idx)
	if !next.Equal(g) {
		t.Fatal("skipped chunk changed")
	}
	if stats.Skipped != 16 || nextIdx.Count() != 0 {
		t.Fatalf("stats = %+v, dirty = %d", stats, nextIdx.Count())
	}
}

func TestBorderScanLeavesInterior(t *testing.T) {
	// Interior cells of a chunk that only gets a border scan keep their value
	// even if the rule would flip them.
	g := gridWith(16, core.Cell{Row: 4, Col: 3}, core.Cell{Row: 4, Col: 4}, core.Cell{Row: 4, Col: 5})
	idx := NewChunkGrid(16, 8)
	idx.Mark(0, 1, true)
	next, nextIdx, stats := NewStepper(1).Step(g, idx)
	if !next.Equal(g) {
		t.Fatal("border scan touched interior cells")
	}
	if stats.Border != 3 || stats.Full != 1 || nextIdx.Count() != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestStepDoesNotAliasInput(t *testing.T) {
	g := gridWith(8, core.Cell{Row: 1, Col: 1}, core.Cell{Row: 1, Col: 2}, core.Cell{Row: 1, Col: 3})
	before := g.Clone()
	idx := Bootstrap(g, 4, 1)
	idxBefore := idx.Clone()
	next, nextIdx, _ := NewStepper(1).Step(g, idx)
	if !g.Equal(before) || !idx.Equal(idxBefore) {
		t.Fatal("Step mutated its inputs")
	}
	next.Set(7, 7, true)
	nextIdx.Mark(1, 1, true)
	if g.Alive(7, 7) || idx.Dirty(1, 1) {
		t.Fatal("Step output aliases its inputs")
	}
}

func TestBootstrapFlagsLiveChunks(t *testing.T) {
	g := core.NewGrid(64)
	core.FillGrid(core.NewRNG(11), g, 0.002)
	for _, workers := range []int{1, 3, 8} {
		idx := Bootstrap(g, 8, workers)
		for cr := 0; cr < idx.N; cr++ {
			for cc := 0; cc < idx.N; cc++ {
				r0, c0, r1, c1 := idx.Bounds(cr, cc)
				live := false
				for r := r0; r < r1; r++ {
					for c := c0; c < c1; c++ {
						live = live || g.Alive(r, c)
					}
				}
				if idx.Dirty(cr, cc) != live {
					t.Fatalf("workers=%d chunk (%d,%d) dirty=%v live=%v", workers, cr, cc, idx.Dirty(cr, cc), live)
				}
			}
		}
	}
}

func BenchmarkStepChunked(b *testing.B) {
	g := core.NewGrid(1024)
	gun, _ := PatternByName("gosper-gun", 0)
	for _, c := range gun.Cells {
		g.Set(c.Row+100, c.Col+100, true)
	}
	s := NewStepper(0)
	idx := Bootstrap(g, 64, s.Workers())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, idx, _ = s.Step(g, idx)
	}
}

func BenchmarkNaiveStep(b *testing.B) {
	g := core.NewGrid(1024)
	gun, _ := PatternByName("gosper-gun", 0)
	for _, c := range gun.Cells {
		g.Set(c.Row+100, c.Col+100, true)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = NaiveStep(g)
	}
}
