package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"conway/internal/core"
	"conway/internal/life"
	"conway/internal/term"

	"github.com/gdamore/tcell/v2"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable): n, chunk, cooldown_ms, slow_tick_ms, workers, pattern, seed")
	invert := flag.Bool("invert", false, "invert foreground/background colors")
	frame := flag.Duration("frame", 50*time.Millisecond, "redraw interval")
	logPath := flag.String("log", "", "append slow-generation warnings to this file")
	list := flag.Bool("patterns", false, "list the built-in patterns and exit")
	flag.Parse()

	if *list {
		for _, name := range core.PatternNames() {
			fmt.Println(name)
		}
		return
	}

	values := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("malformed -set %q, want key=value", kv)
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg := life.FromMap(values)

	// The terminal owns stdout and stderr while the viewer runs.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("opening log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "life-term ", log.LstdFlags)
	}

	session, err := life.NewSession(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Pattern != "none" {
		if err := session.SeedConfigured(); err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = term.NewViewer(screen, session, *invert).Run(ctx, *frame)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
