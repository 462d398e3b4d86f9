package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"conway/internal/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-n", "256", "-chunk", "32", "-cooldown", "50ms", "-pattern", "glider", "-rows", "20"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Life.Size != 256 || cfg.Life.ChunkSize != 32 || cfg.Life.Cooldown != 50*time.Millisecond {
		t.Fatalf("life config = %+v", cfg.Life)
	}
	if cfg.ViewRows != 20 || cfg.Life.Pattern != "glider" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestNewSessionSeedsPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Life.Size = 64
	cfg.Life.ChunkSize = 16
	cfg.Life.Pattern = "glider"
	s, err := cfg.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	if s.Population() != 5 {
		t.Fatalf("population = %d", s.Population())
	}

	cfg.Life.Pattern = "none"
	if s, err := cfg.NewSession(); err != nil || s.Population() != 0 {
		t.Fatalf("none pattern: err=%v", err)
	}

	cfg.Life.ChunkSize = 48
	if _, err := cfg.NewSession(); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestWindowSize(t *testing.T) {
	cfg := NewConfig()
	w, h := cfg.WindowSize()
	if w != 80*10+40+220 || h != 60*10+80+30 {
		t.Fatalf("window = %dx%d", w, h)
	}
}
