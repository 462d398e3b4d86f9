package life

import (
	"errors"
	"fmt"
	"strings"

	"conway/internal/core"
)

// ErrUnknownPattern is returned when seeding with an unregistered name.
var ErrUnknownPattern = errors.New("unknown pattern")

const (
	gliderText = `
.O.
..O
OOO`

	blinkerText = `OOO`

	lwssText = `
.O..O
O....
O...O
OOOO.`

	rPentominoText = `
.OO
OO.
.O.`

	gosperGunText = `
!Name: Gosper glider gun
........................O
......................O.O
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO
OO........O...O.OO....O.O
..........O.....O.......O
...........O...O
............OO`
)

// ParsePlaintext reads a pattern in the plaintext format: 'O' or '*' marks a
// live cell, '.' a dead one, and lines starting with '!' are comments.
func ParsePlaintext(name, text string) (core.Pattern, error) {
	p := core.Pattern{Name: name}
	row := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Cell{Row: row, Col: col})
			case '.':
			default:
				return core.Pattern{}, fmt.Errorf("pattern %s: unexpected %q at %d:%d", name, ch, row, col)
			}
		}
		p.Size.W = max(p.Size.W, len(line))
		row++
	}
	p.Size.H = row
	return p, nil
}

func mustParse(name, text string) core.Pattern {
	p, err := ParsePlaintext(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

// Combine overlays b onto a with b's origin shifted by offset.
func Combine(name string, a, b core.Pattern, offset core.Cell) core.Pattern {
	out := core.Pattern{Name: name, Cells: append([]core.Cell(nil), a.Cells...)}
	for _, c := range b.Cells {
		out.Cells = append(out.Cells, core.Cell{Row: c.Row + offset.Row, Col: c.Col + offset.Col})
	}
	out.Size.W = max(a.Size.W, b.Size.W+offset.Col)
	out.Size.H = max(a.Size.H, b.Size.H+offset.Row)
	return out
}

// soup scatters live cells over a 16×16 square.
func soup(seed int64) core.Pattern {
	const side = 16
	rng := core.NewRNG(seed)
	p := core.Pattern{Name: "soup", Size: core.Size{W: side, H: side}}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if rng.Chance(0.35) {
				p.Cells = append(p.Cells, core.Cell{Row: r, Col: c})
			}
		}
	}
	return p
}

// PatternByName builds a registered pattern.
func PatternByName(name string, seed int64) (core.Pattern, error) {
	f, ok := core.LookupPattern(name)
	if !ok {
		return core.Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return f(seed), nil
}

func fixed(p core.Pattern) core.PatternFactory {
	return func(int64) core.Pattern { return p }
}

func init() {
	glider := mustParse("glider", gliderText)
	lwss := mustParse("lwss", lwssText)
	gun := mustParse("gosper-gun", gosperGunText)

	core.RegisterPattern("glider", fixed(glider))
	core.RegisterPattern("blinker", fixed(mustParse("blinker", blinkerText)))
	core.RegisterPattern("lwss", fixed(lwss))
	core.RegisterPattern("r-pentomino", fixed(mustParse("r-pentomino", rPentominoText)))
	core.RegisterPattern("gosper-gun", fixed(gun))
	core.RegisterPattern("demo", fixed(Combine("demo", gun, lwss, core.Cell{Row: 20, Col: 30})))
	core.RegisterPattern("soup", soup)
}
