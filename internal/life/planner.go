package life

// ScanAction is the per-chunk work decision for one generation.
type ScanAction uint8

const (
	// ScanSkip leaves every cell of the chunk untouched.
	ScanSkip ScanAction = iota
	// ScanBorder evaluates only the outer ring of the chunk.
	ScanBorder
	// ScanFull evaluates every cell of the chunk.
	ScanFull
)

func (a ScanAction) String() string {
	switch a {
	case ScanSkip:
		return "skip"
	case ScanBorder:
		return "border"
	case ScanFull:
		return "full"
	default:
		return "unknown"
	}
}

// Plan decides how chunk (cr, cc) must be scanned given the flags of the
// previous generation.
//
// A chunk that changed needs a full scan. A stable chunk next to a changed one
// can only be disturbed through its outer ring, because the rule has range
// one: interior cells keep the same neighborhood as last generation and
// therefore the same outcome. A stable chunk with stable neighbors cannot
// change at all.
func Plan(idx *ChunkGrid, cr, cc int) ScanAction {
	if idx.Dirty(cr, cc) {
		return ScanFull
	}
	if idx.NeighborDirty(cr, cc) {
		return ScanBorder
	}
	return ScanSkip
}
