package life

import (
	"errors"
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"n":            "512",
		"chunk":        "32",
		"cooldown_ms":  "50",
		"slow_tick_ms": "bogus",
		"workers":      "3",
		"pattern":      "glider",
		"seed":         "-4",
	})
	if c.Size != 512 || c.ChunkSize != 32 || c.Workers != 3 || c.Pattern != "glider" || c.Seed != -4 {
		t.Fatalf("config = %+v", c)
	}
	if c.Cooldown != 50*time.Millisecond {
		t.Fatalf("cooldown = %s", c.Cooldown)
	}
	if c.SlowTick != DefaultConfig().SlowTick {
		t.Fatal("invalid values must keep defaults")
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must return defaults")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		size, chunk int
		ok          bool
	}{
		{4096, 128, true},
		{8192, 128, true},
		{8, 4, true},
		{8, 3, false},
		{0, 4, false},
		{8, -1, false},
	}
	for _, tc := range cases {
		c := DefaultConfig()
		c.Size, c.ChunkSize = tc.size, tc.chunk
		err := c.Validate()
		if tc.ok != (err == nil) {
			t.Fatalf("Validate(%d,%d) = %v", tc.size, tc.chunk, err)
		}
		if err != nil && !errors.Is(err, ErrConfig) {
			t.Fatalf("error %v does not wrap ErrConfig", err)
		}
	}
}
