package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/sequence"
)

var directional = NewPropagator(sequence.Directional())

// NewPropagator returns a Propagator driven by the given canonical sequences.
func NewPropagator(seqs *sequence.Table) *Propagator {
	return &Propagator{seqs: seqs}
}

// Directional returns the shared Propagator for the directional keypad.
func Directional() *Propagator { return directional }

// Unit returns the depth-0 table of the directional keypad.
func Unit() *Table { return directional.Unit() }

// Base returns the depth-1 table of the directional keypad: the length of
// each canonical sequence.
func Base() *Table { return directional.Base() }

// Propagate derives the next-depth directional table from prev.
func Propagate(prev *Table) (*Table, error) { return directional.Next(prev) }

// AtDepth returns the directional table at depth n.
func AtDepth(n int) (*Table, error) { return directional.AtDepth(n) }

// Unit returns the depth-0 table: one press per button for every pair.
func (p *Propagator) Unit() *Table {
	t := p.newTable(0)
	for i := range t.vals {
		t.vals[i] = 1
	}

	return t
}

// Base returns the depth-1 table: cost(from, to) = len(S(from, to)).
func (p *Propagator) Base() *Table {
	t := p.newTable(1)
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			t.vals[i*t.n+j] = int64(len(p.seqs.At(i, j)))
		}
	}

	return t
}

// Next derives the table one layer deeper than prev. prev is not modified.
// Returns ErrOverflow if any sum leaves the int64 range.
// Complexity: O(S²·L) with L the longest canonical sequence.
func (p *Propagator) Next(prev *Table) (*Table, error) {
	t := p.newTable(prev.depth + 1)
	for i := 0; i < t.n; i++ {
		for j := 0; j < t.n; j++ {
			sum, _, err := prev.SumAlong(p.seqs.At(i, j))
			if err != nil {
				return nil, fmt.Errorf("depth %d, %q -> %q: %w",
					t.depth, t.topo.SymbolAt(i), t.topo.SymbolAt(j), err)
			}
			t.vals[i*t.n+j] = sum
		}
	}

	return t, nil
}

// AtDepth applies Next n times starting from Unit.
func (p *Propagator) AtDepth(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, n)
	}
	t := p.Unit()
	for k := 0; k < n; k++ {
		next, err := p.Next(t)
		if err != nil {
			return nil, err
		}
		t = next
	}

	return t, nil
}

func (p *Propagator) newTable(depth int) *Table {
	topo := p.seqs.Topology()
	n := topo.Size()

	return &Table{topo: topo, depth: depth, n: n, vals: make([]int64, n*n)}
}

// Depth returns the indirection depth the table describes.
func (t *Table) Depth() int { return t.depth }

// Topology returns the keypad the costs are indexed by.
func (t *Table) Topology() *keypad.Topology { return t.topo }

// Cost returns the press count for (from, to). A symbol outside the table's
// keypad is an invariant violation and panics with keypad.ErrUnknownSymbol.
func (t *Table) Cost(from, to keypad.Symbol) int64 {
	return t.vals[t.topo.MustIndex(from)*t.n+t.topo.MustIndex(to)]
}

// At returns the press count for dense indexes i (from) and j (to).
func (t *Table) At(i, j int) int64 { return t.vals[i*t.n+j] }

// SumAlong sums the table over the consecutive pairs of Home+seq and
// reports how many lookups it made (always len(seq) on success).
// Returns keypad.ErrUnknownSymbol (wrapped) for foreign symbols and
// ErrOverflow if the sum leaves the int64 range.
func (t *Table) SumAlong(seq string) (total int64, lookups int, err error) {
	prev := t.topo.MustIndex(keypad.Home)
	for k := 0; k < len(seq); k++ {
		cur := t.topo.Index(seq[k])
		if cur < 0 {
			return 0, lookups, fmt.Errorf("%w: %q at offset %d", keypad.ErrUnknownSymbol, seq[k], k)
		}
		v := t.vals[prev*t.n+cur]
		if total > math.MaxInt64-v {
			return 0, lookups, ErrOverflow
		}
		total += v
		lookups++
		prev = cur
	}

	return total, lookups, nil
}

// Equal reports whether both tables hold the same costs at the same depth.
func (t *Table) Equal(o *Table) bool {
	if t.depth != o.depth || t.n != o.n {
		return false
	}
	for i := range t.vals {
		if t.vals[i] != o.vals[i] {
			return false
		}
	}

	return true
}

// Values returns a copy of the costs as a nested map keyed by symbol.
func (t *Table) Values() map[keypad.Symbol]map[keypad.Symbol]int64 {
	out := make(map[keypad.Symbol]map[keypad.Symbol]int64, t.n)
	for i := 0; i < t.n; i++ {
		row := make(map[keypad.Symbol]int64, t.n)
		for j := 0; j < t.n; j++ {
			row[t.topo.SymbolAt(j)] = t.vals[i*t.n+j]
		}
		out[t.topo.SymbolAt(i)] = row
	}

	return out
}
