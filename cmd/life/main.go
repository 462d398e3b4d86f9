//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"conway/internal/app"
	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("patterns", false, "list the built-in patterns and exit")
	flag.Parse()

	if *list {
		for _, name := range core.PatternNames() {
			fmt.Println(name)
		}
		return
	}

	session, err := cfg.NewSession()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("grid %dx%d, chunk %d, pattern %q", cfg.Life.Size, cfg.Life.Size, cfg.Life.ChunkSize, cfg.Life.Pattern)

	w, h := cfg.WindowSize()
	ebiten.SetWindowTitle(fmt.Sprintf("Conway's Game of Life (%d×%d)", cfg.Life.Size, cfg.Life.Size))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(app.New(cfg, session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
