package life

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrConfig reports an unusable grid or chunk size.
var ErrConfig = errors.New("invalid life config")

// Config controls the dimensions and pacing of a Session.
type Config struct {
	// Size is the grid side N in cells.
	Size int
	// ChunkSize is the chunk side C in cells. Size must be a multiple of it.
	ChunkSize int
	// Cooldown is the minimum wall-clock time between generations.
	Cooldown time.Duration
	// SlowTick is the generation duration above which a warning is logged.
	SlowTick time.Duration
	// Workers bounds the parallelism of stepping and bootstrapping; zero
	// means one per CPU.
	Workers int

	Pattern string
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:      4096,
		ChunkSize: 128,
		Cooldown:  200 * time.Millisecond,
		SlowTick:  time.Second,
		Pattern:   "demo",
		Seed:      42,
	}
}

// Validate checks that the chunks tile the grid exactly.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrConfig, c.Size)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d must be positive", ErrConfig, c.ChunkSize)
	}
	if c.Size%c.ChunkSize != 0 {
		return fmt.Errorf("%w: grid size %d is not a multiple of chunk size %d", ErrConfig, c.Size, c.ChunkSize)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["chunk"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ChunkSize = parsed
		}
	}
	if v, ok := cfg["cooldown_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cooldown = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["slow_tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SlowTick = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
