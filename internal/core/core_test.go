package core

import (
	"testing"
	"time"
)

func TestGridSetReportsChange(t *testing.T) {
	g := NewGrid(4)
	if !g.Set(1, 2, true) {
		t.Fatal("first Set should report a change")
	}
	if g.Set(1, 2, true) {
		t.Fatal("repeated Set should not report a change")
	}
	if g.Set(4, 0, true) || g.Set(-1, 0, true) {
		t.Fatal("out of range Set must be ignored")
	}
	if !g.Alive(1, 2) || g.Alive(2, 1) {
		t.Fatal("unexpected cell state")
	}
	if got := g.Population(); got != 1 {
		t.Fatalf("population = %d, want 1", got)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(0, 0, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal source")
	}
	c.Set(2, 2, true)
	if g.Alive(2, 2) {
		t.Fatal("clone aliases source data")
	}
	g.CopyFrom(c)
	if !g.Equal(c) {
		t.Fatal("CopyFrom must make grids equal")
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestCooldownReady(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewCooldown(200 * time.Millisecond)
	c.SetClock(func() time.Time { return now })

	now = now.Add(200 * time.Millisecond)
	if c.Ready() {
		t.Fatal("cooldown must strictly elapse")
	}
	now = now.Add(time.Millisecond)
	if !c.Ready() {
		t.Fatal("expected ready after interval")
	}
	if c.Ready() {
		t.Fatal("ready must restart the interval")
	}
	if NewCooldown(0).Interval() != 200*time.Millisecond {
		t.Fatal("non-positive interval should fall back to default")
	}
}

func TestPatternRegistry(t *testing.T) {
	RegisterPattern("", func(int64) Pattern { return Pattern{} })
	RegisterPattern("dot", func(int64) Pattern {
		return Pattern{Name: "dot", Size: Size{W: 1, H: 1}, Cells: []Cell{{0, 0}}}
	})
	f, ok := LookupPattern("dot")
	if !ok {
		t.Fatal("registered pattern not found")
	}
	if p := f(0); len(p.Cells) != 1 {
		t.Fatalf("pattern cells = %d, want 1", len(p.Cells))
	}
	for _, name := range PatternNames() {
		if name == "" {
			t.Fatal("empty names must not be registered")
		}
	}
}

func TestFillGridDeterministic(t *testing.T) {
	a, b := NewGrid(16), NewGrid(16)
	FillGrid(NewRNG(7), a, 0.3)
	FillGrid(NewRNG(7), b, 0.3)
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same grid")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Run", Params: []Parameter{{Key: "generation", Value: "3"}}},
	}}
	p, ok := s.Lookup("generation")
	if !ok || p.Value != "3" {
		t.Fatalf("lookup = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Key: "cooldown_ms", Step: 50, Min: 50, Max: 5000}
	cases := []struct{ in, want int }{
		{10, 50},
		{200, 200},
		{9000, 5000},
	}
	for _, tc := range cases {
		if got := c.Clamp(tc.in); got != tc.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := (ParameterControl{}).Clamp(-7); got != -7 {
		t.Fatalf("unbounded Clamp(-7) = %d", got)
	}
}
