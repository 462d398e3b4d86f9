package app

import (
	"flag"

	"conway/internal/life"
	"conway/internal/ui"
)

// Config represents the command-line parameters for the GUI.
type Config struct {
	Life life.Config

	ViewRows int
	ViewCols int
	CellSize int
	HUDWidth int
	TPS      int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Life:     life.DefaultConfig(),
		ViewRows: 60,
		ViewCols: 80,
		CellSize: 10,
		HUDWidth: 220,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Size, "n", c.Life.Size, "grid side in cells")
	fs.IntVar(&c.Life.ChunkSize, "chunk", c.Life.ChunkSize, "chunk side in cells (must divide -n)")
	fs.DurationVar(&c.Life.Cooldown, "cooldown", c.Life.Cooldown, "minimum time between generations")
	fs.DurationVar(&c.Life.SlowTick, "slow-tick", c.Life.SlowTick, "log a warning when a generation takes longer")
	fs.IntVar(&c.Life.Workers, "workers", c.Life.Workers, "stepping goroutines (0 = one per CPU)")
	fs.StringVar(&c.Life.Pattern, "pattern", c.Life.Pattern, "seed pattern placed at the grid center")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for randomized patterns")
	fs.IntVar(&c.ViewRows, "rows", c.ViewRows, "visible rows")
	fs.IntVar(&c.ViewCols, "cols", c.ViewCols, "visible columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
}

// Layout constants around the grid view.
const (
	HMargin = 20
	VMargin = 40
)

// WindowSize returns the window dimensions for the configured view.
func (c *Config) WindowSize() (int, int) {
	rows, cols := min(c.ViewRows, c.Life.Size), min(c.ViewCols, c.Life.Size)
	w := cols*c.CellSize + HMargin*2 + c.HUDWidth
	h := rows*c.CellSize + VMargin*2 + ui.ToolbarHeight
	return w, h
}

// NewSession builds and seeds the session described by the config.
func (c *Config) NewSession() (*life.Session, error) {
	s, err := life.NewSession(c.Life, nil)
	if err != nil {
		return nil, err
	}
	if c.Life.Pattern != "" && c.Life.Pattern != "none" {
		if err := s.SeedConfigured(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
