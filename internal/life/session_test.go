package life

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"conway/internal/core"
)

func newTestSession(t *testing.T, size, chunk int) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.ChunkSize = chunk
	cfg.Workers = 2
	s, err := NewSession(cfg, log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsUnevenChunks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10
	cfg.ChunkSize = 4
	if _, err := NewSession(cfg, nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
	cfg.ChunkSize = 0
	if _, err := NewSession(cfg, nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestSessionTransitions(t *testing.T) {
	s := newTestSession(t, 8, 4)
	for name, op := range map[string]func() error{
		"pause":  s.Pause,
		"resume": s.Resume,
		"step":   s.Step,
		"abort":  func() error { return s.Abort(false) },
	} {
		if err := op(); !errors.Is(err, ErrTransition) {
			t.Fatalf("%s from idle: err = %v", name, err)
		}
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); !errors.Is(err, ErrTransition) {
		t.Fatalf("start while running: err = %v", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrTransition) {
		t.Fatalf("resume while running: err = %v", err)
	}
	if err := s.Pause(); err != nil || s.State() != Paused {
		t.Fatalf("pause: err = %v state = %s", err, s.State())
	}
	if err := s.Resume(); err != nil || s.State() != Running {
		t.Fatalf("resume: err = %v state = %s", err, s.State())
	}
	if err := s.Abort(true); err != nil || s.State() != Idle {
		t.Fatalf("abort: err = %v state = %s", err, s.State())
	}
}

func TestTickHonorsCooldown(t *testing.T) {
	s := newTestSession(t, 8, 4)
	now := time.Unix(100, 0)
	s.SetClock(func() time.Time { return now })
	s.SeedCentered(core.Pattern{Cells: []core.Cell{{0, 0}, {0, 1}, {0, 2}}, Size: core.Size{W: 3, H: 1}})

	if s.Tick() {
		t.Fatal("idle session must not tick")
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.Tick() {
		t.Fatal("tick before cooldown elapsed")
	}
	now = now.Add(s.Cooldown() + time.Millisecond)
	if !s.Tick() || s.Generation() != 1 {
		t.Fatalf("expected one generation, got %d", s.Generation())
	}
	if s.Tick() {
		t.Fatal("second tick within the same frame")
	}
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	now = now.Add(time.Hour)
	if s.Tick() {
		t.Fatal("paused session must not tick")
	}
}

func TestEditsIgnoredWhileRunning(t *testing.T) {
	s := newTestSession(t, 8, 4)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.SetCell(2, 2, true) || s.Alive(2, 2) {
		t.Fatal("edit applied while running")
	}
	if s.Clear() {
		t.Fatal("clear applied while running")
	}
}

func TestAbortRestoresSnapshot(t *testing.T) {
	s := newTestSession(t, 32, 8)
	gun, err := PatternByName("r-pentomino", 0)
	if err != nil {
		t.Fatal(err)
	}
	s.SeedCentered(gun)
	before := s.Grid()
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if err := s.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if s.Grid().Equal(before) {
		t.Fatal("r-pentomino should have evolved")
	}
	if err := s.Abort(false); err != nil {
		t.Fatal(err)
	}
	if !s.Grid().Equal(before) {
		t.Fatal("abort did not restore the pre-run grid")
	}
	if s.Generation() != 0 || s.ChunkGrid() != nil {
		t.Fatal("abort must reset generation and drop the chunk index")
	}
	if s.Population() != before.Population() {
		t.Fatalf("population = %d, want %d", s.Population(), before.Population())
	}
}

func TestAbortAndSaveKeepsGrid(t *testing.T) {
	s := newTestSession(t, 32, 8)
	p, _ := PatternByName("r-pentomino", 0)
	s.SeedCentered(p)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		_ = s.Step()
	}
	after := s.Grid()
	if err := s.Abort(true); err != nil {
		t.Fatal(err)
	}
	if !s.Grid().Equal(after) || s.Generation() != 0 {
		t.Fatal("abort and save must keep the current grid and reset generation")
	}
	if s.SetCell(0, 0, true) == false {
		t.Fatal("edits should be allowed again once idle")
	}
}

func TestPausedEditsRebuildIndex(t *testing.T) {
	s := newTestSession(t, 32, 8)
	s.Seed(core.Pattern{Cells: []core.Cell{{1, 1}, {1, 2}, {1, 3}}}, core.Cell{})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	_ = s.Step()
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	// A glider far from the blinker lands in chunks the index thinks are clean.
	glider, _ := PatternByName("glider", 0)
	s.Seed(glider, core.Cell{Row: 20, Col: 20})
	ref := s.Grid()
	if err := s.Resume(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 12; i++ {
		if err := s.Step(); err != nil {
			t.Fatal(err)
		}
		ref = NaiveStep(ref)
		if !s.Grid().Equal(ref) {
			t.Fatalf("step %d after paused edit diverged from naive rule", i+1)
		}
	}
	if s.Population() != ref.Population() {
		t.Fatalf("population = %d, want %d", s.Population(), ref.Population())
	}
}

func TestSlowTickWarning(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Size = 64
	cfg.ChunkSize = 8
	cfg.SlowTick = time.Nanosecond
	s, err := NewSession(cfg, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	s.SeedCentered(core.Pattern{Cells: []core.Cell{{0, 0}, {0, 1}, {0, 2}}, Size: core.Size{W: 3, H: 1}})
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "warning: generation 1") {
		t.Fatalf("log = %q", buf.String())
	}
	if s.State() != Running {
		t.Fatal("a slow generation must not stop the run")
	}
}

func TestRegionReadsOutsideAsDead(t *testing.T) {
	s := newTestSession(t, 8, 4)
	s.SetCell(0, 0, true)
	s.SetCell(7, 7, true)
	region := s.Region(nil, -1, -1, 3, 3)
	if len(region) != 9 {
		t.Fatalf("len = %d", len(region))
	}
	for i, alive := range region {
		if alive != (i == 4) {
			t.Fatalf("region[%d] = %v", i, alive)
		}
	}
	if got := s.Region(region, 6, 6, 2, 2); !got[3] || got[0] {
		t.Fatalf("region = %v", got)
	}
}

func TestParametersAndCooldownControl(t *testing.T) {
	s := newTestSession(t, 16, 4)
	if !s.SetIntParameter("cooldown_ms", 350) || s.Cooldown() != 350*time.Millisecond {
		t.Fatalf("cooldown = %s", s.Cooldown())
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown parameter accepted")
	}
	s.SetCell(1, 1, true)
	p, ok := s.Parameters().Lookup("population")
	if !ok || p.Value != "1" {
		t.Fatalf("population parameter = %+v", p)
	}
	if p, _ := s.Parameters().Lookup("chunks"); p.Value != "16" {
		t.Fatalf("chunks parameter = %+v", p)
	}
	if len(s.ParameterControls()) == 0 {
		t.Fatal("expected adjustable controls")
	}
}

func TestSeedConfigured(t *testing.T) {
	s := newTestSession(t, 128, 16)
	if err := s.SeedConfigured(); err != nil {
		t.Fatal(err)
	}
	if s.Population() != 36+9 {
		t.Fatalf("demo population = %d, want 45", s.Population())
	}
	cfg := s.Config()
	cfg.Pattern = "nope"
	bad, _ := NewSession(cfg, nil)
	if err := bad.SeedConfigured(); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v", err)
	}
}
