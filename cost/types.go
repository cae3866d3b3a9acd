package cost

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/sequence"
)

// Sentinel errors for cost propagation.
var (
	// ErrNegativeDepth is returned when a negative depth is requested.
	ErrNegativeDepth = errors.New("cost: depth must be non-negative")
	// ErrOverflow is returned when a propagated cost does not fit in int64.
	ErrOverflow = errors.New("cost: press count overflows int64")
)

// Table is an immutable per-pair press count at one indirection depth.
type Table struct {
	topo  *keypad.Topology
	depth int
	n     int
	vals  []int64 // vals[i*n+j] for dense indexes of (from, to)
}

// Propagator derives cost tables from the canonical sequences of one keypad.
// It holds no mutable state and is safe for concurrent use.
type Propagator struct {
	seqs *sequence.Table
}
