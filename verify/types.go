package verify

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
)

// MaxDepth bounds Check so brute-force sums stay inside int64.
const MaxDepth = 40

// Sentinel errors for verification.
var (
	// ErrSuboptimal is returned by Check when a mismatch is found.
	ErrSuboptimal = errors.New("verify: canonical sequence is not minimal")
	// ErrDepthRange is returned for depths outside [0, MaxDepth].
	ErrDepthRange = errors.New("verify: depth out of range")
)

// Optimum holds brute-force minimal press counts for every ordered pair of
// one keypad at one depth.
type Optimum struct {
	topo  *keypad.Topology
	depth int
	n     int
	vals  []int64
}

// Mismatch records a pair whose canonical cost exceeds the brute-force minimum.
type Mismatch struct {
	Keypad    keypad.Kind
	Depth     int
	From, To  keypad.Symbol
	Canonical int64
	Optimal   int64
	BestPath  string
}

// Report summarises a Check run.
type Report struct {
	MaxDepth   int
	Checked    int // number of (keypad, depth, pair) comparisons
	Mismatches []Mismatch
}
