//go:build !ebiten

package app

import (
	"errors"

	"conway/internal/life"
)

// ErrHeadless is returned by the headless Game, which cannot open a window.
var ErrHeadless = errors.New("app: GUI requires building with -tags ebiten")

// Game keeps the GUI API available in builds without ebiten so callers still
// compile. It never draws.
type Game struct {
	session *life.Session
}

// New returns a headless Game for s.
func New(cfg *Config, s *life.Session) *Game { return &Game{session: s} }

// Update reports ErrHeadless.
func (g *Game) Update() error { return ErrHeadless }

// Draw does nothing.
func (g *Game) Draw(any) {}

// Layout echoes the outside size.
func (g *Game) Layout(w, h int) (int, int) { return w, h }
