package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"conway/internal/core"
	"conway/internal/life"
)

type benchConfig struct {
	size    int
	chunk   int
	workers int
}

func (c benchConfig) String() string {
	return fmt.Sprintf("n=%d chunk=%d workers=%d", c.size, c.chunk, c.workers)
}

type benchResult struct {
	cfg      benchConfig
	chunked  time.Duration
	naive    time.Duration
	stats    life.StepStats
	mismatch int
}

func (r benchResult) speedup() float64 {
	if r.chunked <= 0 {
		return 0
	}
	return float64(r.naive) / float64(r.chunked)
}

func main() {
	var (
		sizeFlag    = flag.String("sizes", "256,1024", "Comma separated grid sides.")
		chunkFlag   = flag.String("chunks", "16,32,64,128", "Comma separated chunk sides; sizes they do not divide are skipped.")
		workerFlag  = flag.String("workers", "1,4,0", "Comma separated worker counts (0 = one per CPU).")
		gensFlag    = flag.Int("gens", 100, "Generations per run.")
		patternFlag = flag.String("pattern", "demo", "Pattern placed at the grid center when -density is 0.")
		densityFlag = flag.Float64("density", 0, "Random fill density; overrides -pattern when positive.")
		seedFlag    = flag.Int64("seed", 42, "Seed for random fills and randomized patterns.")
		verifyFlag  = flag.Bool("verify", true, "Compare every chunked generation against the naive step.")
	)
	flag.Parse()

	sizes, err := parseInts(*sizeFlag)
	if err != nil {
		log.Fatalf("failed to parse sizes: %v", err)
	}
	chunks, err := parseInts(*chunkFlag)
	if err != nil {
		log.Fatalf("failed to parse chunks: %v", err)
	}
	workers, err := parseInts(*workerFlag)
	if err != nil {
		log.Fatalf("failed to parse workers: %v", err)
	}
	if *gensFlag <= 0 {
		log.Fatalf("gens must be positive")
	}

	var results []benchResult
	for _, n := range sizes {
		seed, err := seedGrid(n, *patternFlag, *densityFlag, *seedFlag)
		if err != nil {
			log.Fatal(err)
		}
		naive := timeNaive(seed, *gensFlag)
		fmt.Printf("n=%d naive: %s/gen (population %d)\n", n, naive.Round(time.Microsecond), seed.Population())

		for _, c := range chunks {
			cfg := life.Config{Size: n, ChunkSize: c}
			if err := cfg.Validate(); err != nil {
				fmt.Printf("skipping n=%d chunk=%d: %v\n", n, c, err)
				continue
			}
			for _, w := range workers {
				bc := benchConfig{size: n, chunk: c, workers: w}
				res := runChunked(bc, seed, *gensFlag, *verifyFlag)
				res.naive = naive
				results = append(results, res)
				fmt.Printf("%s: %s/gen speedup %.2fx skipped=%d border=%d full=%d",
					bc, res.chunked.Round(time.Microsecond), res.speedup(), res.stats.Skipped, res.stats.Border, res.stats.Full)
				if *verifyFlag {
					fmt.Printf(" mismatches=%d", res.mismatch)
				}
				fmt.Println()
			}
		}
	}

	if len(results) == 0 {
		return
	}
	sort.Slice(results, func(i, j int) bool { return results[i].speedup() > results[j].speedup() })
	best := results[0]
	fmt.Printf("\nBest: %s speedup %.2fx\n", best.cfg, best.speedup())

	for _, r := range results {
		if r.mismatch > 0 {
			log.Fatalf("%s diverged from the naive step in %d generations", r.cfg, r.mismatch)
		}
	}
}

func seedGrid(n int, pattern string, density float64, seed int64) (*core.Grid, error) {
	g := core.NewGrid(n)
	if density > 0 {
		core.FillGrid(core.NewRNG(seed), g, density)
		return g, nil
	}
	p, err := life.PatternByName(pattern, seed)
	if err != nil {
		return nil, err
	}
	r0, c0 := (n-p.Size.H)/2, (n-p.Size.W)/2
	for _, c := range p.Cells {
		g.Set(r0+c.Row, c0+c.Col, true)
	}
	return g, nil
}

func timeNaive(seed *core.Grid, gens int) time.Duration {
	g := seed.Clone()
	start := time.Now()
	for i := 0; i < gens; i++ {
		g = life.NaiveStep(g)
	}
	return time.Since(start) / time.Duration(gens)
}

// runChunked times the chunked stepper and accumulates its scan statistics.
// With verify set, a naive reference runs alongside outside the timed region.
func runChunked(bc benchConfig, seed *core.Grid, gens int, verify bool) benchResult {
	res := benchResult{cfg: bc}
	stepper := life.NewStepper(bc.workers)
	g := seed.Clone()
	idx := life.Bootstrap(g, bc.chunk, stepper.Workers())
	ref := seed.Clone()

	var elapsed time.Duration
	for i := 0; i < gens; i++ {
		start := time.Now()
		var stats life.StepStats
		g, idx, stats = stepper.Step(g, idx)
		elapsed += time.Since(start)

		res.stats.Skipped += stats.Skipped
		res.stats.Border += stats.Border
		res.stats.Full += stats.Full

		if verify {
			ref = life.NaiveStep(ref)
			if !ref.Equal(g) {
				res.mismatch++
			}
		}
	}
	res.chunked = elapsed / time.Duration(gens)
	return res
}

func parseInts(value string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", part, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("value %d must not be negative", v)
		}
		out = append(out, v)
	}
	return out, nil
}
