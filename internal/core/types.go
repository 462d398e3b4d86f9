package core

import "sort"

// Size describes the dimensions of a rectangular region in cells.
type Size struct {
	W int
	H int
}

// Cell addresses a single position on a grid.
type Cell struct {
	Row int
	Col int
}

// Pattern is a named seed: a set of live cells relative to an origin.
type Pattern struct {
	Name  string
	Size  Size
	Cells []Cell
}

// PatternFactory builds a pattern. Randomized patterns use the seed; fixed
// ones ignore it.
type PatternFactory func(seed int64) Pattern

var patterns = map[string]PatternFactory{}

// RegisterPattern adds a seed pattern factory under the provided name.
func RegisterPattern(name string, f PatternFactory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// LookupPattern returns the factory registered under name.
func LookupPattern(name string) (PatternFactory, bool) {
	f, ok := patterns[name]
	return f, ok
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
