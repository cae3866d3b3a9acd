package sequence

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for sequence construction and expansion.
var (
	// ErrNoSafeOrdering indicates that both orderings for a pair cross the gap.
	// It cannot occur on the numeric or directional keypads.
	ErrNoSafeOrdering = errors.New("sequence: no gap-free ordering")
	// ErrNegativeDepth is returned by Literal for depth < 0.
	ErrNegativeDepth = errors.New("sequence: depth must be non-negative")
)

// Order names one of the two minimal move orderings.
type Order int

const (
	// HorizontalFirst presses all '<'/'>' before any '^'/'v'.
	HorizontalFirst Order = iota
	// VerticalFirst presses all '^'/'v' before any '<'/'>'.
	VerticalFirst
)

// String returns "horizontal-first" or "vertical-first".
func (o Order) String() string {
	if o == VerticalFirst {
		return "vertical-first"
	}

	return "horizontal-first"
}

// Candidate is one minimal ordering for moving between two buttons.
type Candidate struct {
	Order      Order
	Corner     keypad.Position // cell where the ordering turns
	CrossesGap bool            // path visits the gap cell
	Preference int             // 0 = preferred axis order, 1 otherwise
	Moves      string          // direction presses followed by 'A'
}

// Pair is an ordered (from, to) transition between two symbols.
type Pair struct {
	From, To keypad.Symbol
}

// Table holds one canonical sequence per ordered symbol pair of a topology,
// indexed by the topology's dense symbol indexes. It is immutable once built.
type Table struct {
	topo *keypad.Topology
	n    int
	seqs []string // seqs[i*n+j] for Index(from)=i, Index(to)=j
}
