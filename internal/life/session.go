package life

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"conway/internal/core"
)

// ErrTransition is returned when a run operation is not allowed from the
// current state.
var ErrTransition = errors.New("invalid run state transition")

// RunState tracks whether a session is being edited or simulated.
type RunState uint8

const (
	// Idle allows edits; nothing is stepped.
	Idle RunState = iota
	// Running steps a generation each cooldown; edits are ignored.
	Running
	// Paused halts stepping; edits are allowed and invalidate the chunk index.
	Paused
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session owns the grid, its chunk index and the run state machine. It is
// driven from a single goroutine (the frame loop) and is not safe for
// concurrent use.
type Session struct {
	cfg     Config
	logger  *log.Logger
	stepper *Stepper
	timer   *core.Cooldown

	grid     *core.Grid
	index    *ChunkGrid
	snapshot *core.Grid
	stale    bool

	state      RunState
	generation int
	population int

	lastStats    StepStats
	lastDuration time.Duration
}

// NewSession validates cfg and returns an Idle session over an all-dead grid.
// A nil logger uses the standard logger.
func NewSession(cfg Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.SlowTick <= 0 {
		cfg.SlowTick = time.Second
	}
	s := &Session{
		cfg:     cfg,
		logger:  logger,
		stepper: NewStepper(cfg.Workers),
		timer:   core.NewCooldown(cfg.Cooldown),
		grid:    core.NewGrid(cfg.Size),
	}
	s.cfg.Cooldown = s.timer.Interval()
	return s, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// SetClock replaces the cooldown time source, mainly for tests.
func (s *Session) SetClock(now func() time.Time) { s.timer.SetClock(now) }

// Start snapshots the grid, bootstraps the chunk index and begins running.
func (s *Session) Start() error {
	if s.state != Idle {
		return fmt.Errorf("%w: start from %s", ErrTransition, s.state)
	}
	s.snapshot = s.grid.Clone()
	s.rebuildIndex()
	s.state = Running
	s.timer.Restart()
	return nil
}

// Pause halts stepping.
func (s *Session) Pause() error {
	if s.state != Running {
		return fmt.Errorf("%w: pause from %s", ErrTransition, s.state)
	}
	s.state = Paused
	return nil
}

// Resume continues a paused run. The chunk index is rebuilt if the grid was
// edited while paused.
func (s *Session) Resume() error {
	if s.state != Paused {
		return fmt.Errorf("%w: resume from %s", ErrTransition, s.state)
	}
	s.ensureIndex()
	s.state = Running
	s.timer.Restart()
	return nil
}

// Abort ends the run and returns to Idle. With keepGrid the current grid is
// kept, otherwise the grid captured by Start is restored. The generation
// counter resets either way.
func (s *Session) Abort(keepGrid bool) error {
	if s.state == Idle {
		return fmt.Errorf("%w: abort from %s", ErrTransition, s.state)
	}
	if !keepGrid && s.snapshot != nil {
		s.grid = s.snapshot
		s.population = s.grid.Population()
	}
	s.snapshot = nil
	s.index = nil
	s.stale = false
	s.generation = 0
	s.state = Idle
	return nil
}

// Clear kills every cell. It is ignored while running.
func (s *Session) Clear() bool {
	if s.state == Running {
		return false
	}
	s.grid.Clear()
	s.population = 0
	s.stale = true
	return true
}

// SetCell edits a single cell and reports whether it changed. Edits while
// running and out of range positions are silently ignored.
func (s *Session) SetCell(row, col int, alive bool) bool {
	if s.state == Running {
		return false
	}
	if !s.grid.Set(row, col, alive) {
		return false
	}
	if alive {
		s.population++
	} else {
		s.population--
	}
	s.stale = true
	return true
}

// Seed sets the cells of p alive, shifted by origin, and returns how many
// cells were newly set. Cells falling outside the grid are dropped.
func (s *Session) Seed(p core.Pattern, origin core.Cell) int {
	n := 0
	for _, c := range p.Cells {
		if s.SetCell(origin.Row+c.Row, origin.Col+c.Col, true) {
			n++
		}
	}
	return n
}

// SeedCentered places p in the middle of the grid.
func (s *Session) SeedCentered(p core.Pattern) int {
	origin := core.Cell{
		Row: (s.cfg.Size - p.Size.H) / 2,
		Col: (s.cfg.Size - p.Size.W) / 2,
	}
	return s.Seed(p, origin)
}

// SeedConfigured places the pattern named in the config at the grid center.
func (s *Session) SeedConfigured() error {
	p, err := PatternByName(s.cfg.Pattern, s.cfg.Seed)
	if err != nil {
		return err
	}
	s.SeedCentered(p)
	return nil
}

// Tick advances one generation if the session is running and the cooldown
// has elapsed. It reports whether a generation was computed.
func (s *Session) Tick() bool {
	if s.state != Running || !s.timer.Ready() {
		return false
	}
	s.advance()
	return true
}

// Step advances exactly one generation regardless of the cooldown. It is
// allowed while running or paused.
func (s *Session) Step() error {
	if s.state == Idle {
		return fmt.Errorf("%w: step from %s", ErrTransition, s.state)
	}
	s.ensureIndex()
	s.advance()
	return nil
}

func (s *Session) advance() {
	start := time.Now()
	next, nextIdx, stats := s.stepper.Step(s.grid, s.index)
	s.grid, s.index = next, nextIdx
	s.generation++
	s.population += stats.Births - stats.Deaths
	s.lastStats = stats
	s.lastDuration = time.Since(start)
	if s.lastDuration > s.cfg.SlowTick {
		s.logger.Printf("warning: generation %d took %s (limit %s)", s.generation, s.lastDuration, s.cfg.SlowTick)
	}
}

func (s *Session) ensureIndex() {
	if s.index == nil || s.stale {
		s.rebuildIndex()
	}
}

func (s *Session) rebuildIndex() {
	s.index = Bootstrap(s.grid, s.cfg.ChunkSize, s.stepper.Workers())
	s.stale = false
}

// State returns the current run state.
func (s *Session) State() RunState { return s.state }

// Generation returns the number of generations computed in the current run.
func (s *Session) Generation() int { return s.generation }

// Population returns the number of live cells.
func (s *Session) Population() int { return s.population }

// Size returns the grid side in cells.
func (s *Session) Size() int { return s.cfg.Size }

// ChunkSize returns the chunk side in cells.
func (s *Session) ChunkSize() int { return s.cfg.ChunkSize }

// Alive reports the state of one cell.
func (s *Session) Alive(row, col int) bool { return s.grid.Alive(row, col) }

// Region copies a rows×cols window starting at (row, col) into dst (grown as
// needed) in row-major order. Positions outside the grid read as dead.
func (s *Session) Region(dst []bool, row, col, rows, cols int) []bool {
	if rows <= 0 || cols <= 0 {
		return dst[:0]
	}
	if cap(dst) < rows*cols {
		dst = make([]bool, rows*cols)
	}
	dst = dst[:rows*cols]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[r*cols+c] = s.grid.Alive(row+r, col+c)
		}
	}
	return dst
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *core.Grid { return s.grid.Clone() }

// ChunkGrid returns a copy of the current chunk index, or nil when no run is
// in progress.
func (s *Session) ChunkGrid() *ChunkGrid {
	if s.index == nil {
		return nil
	}
	return s.index.Clone()
}

// LastStats returns the work summary of the most recent generation.
func (s *Session) LastStats() StepStats { return s.lastStats }

// LastDuration returns how long the most recent generation took.
func (s *Session) LastDuration() time.Duration { return s.lastDuration }

// Cooldown returns the interval between generations.
func (s *Session) Cooldown() time.Duration { return s.timer.Interval() }

// SetCooldown changes the interval between generations.
func (s *Session) SetCooldown(d time.Duration) {
	s.timer.SetInterval(d)
	s.cfg.Cooldown = s.timer.Interval()
}

// Parameters reports the configuration and run statistics for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	dirty := 0
	if s.index != nil {
		dirty = s.index.Count()
	}
	chunks := s.cfg.Size / s.cfg.ChunkSize
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("n", "Size", s.cfg.Size),
				intParam("chunk", "Chunk", s.cfg.ChunkSize),
				intParam("workers", "Workers", s.stepper.Workers()),
				intParam("cooldown_ms", "Cooldown ms", int(s.Cooldown()/time.Millisecond)),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				textParam("state", "State", s.state.String()),
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.population),
				intParam("dirty_chunks", "Dirty chunks", dirty),
				intParam("chunks", "Chunks", chunks*chunks),
				textParam("tick", "Last tick", s.lastDuration.Round(time.Microsecond).String()),
			},
		},
		{
			Name: "Last scan",
			Params: []core.Parameter{
				intParam("full", "Full", s.lastStats.Full),
				intParam("border", "Border", s.lastStats.Border),
				intParam("skipped", "Skipped", s.lastStats.Skipped),
				intParam("births", "Births", s.lastStats.Births),
				intParam("deaths", "Deaths", s.lastStats.Deaths),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "cooldown_ms", Label: "Cooldown ms", Step: 50, Min: 50, Max: 5000},
	}
}

// SetIntParameter updates an adjustable integer value.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "cooldown_ms":
		if value <= 0 {
			value = 1
		}
		s.SetCooldown(time.Duration(value) * time.Millisecond)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamText,
		Value: value,
	}
}
