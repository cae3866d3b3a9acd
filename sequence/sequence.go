package sequence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

var (
	numericTable     = mustBuild(keypad.Numeric())
	directionalTable = mustBuild(keypad.Directional())
)

// Numeric returns the shared canonical table for the door keypad (121 pairs).
func Numeric() *Table { return numericTable }

// Directional returns the shared canonical table for the remote keypad (25 pairs).
func Directional() *Table { return directionalTable }

func mustBuild(t *keypad.Topology) *Table {
	tbl, err := Build(t)
	if err != nil {
		panic(err)
	}

	return tbl
}

// Build computes the canonical sequence for every ordered symbol pair of t.
// For each pair the candidates are ranked with Less and the first is kept.
// Returns ErrNoSafeOrdering when a pair has no gap-free candidate, which
// only a custom topology can trigger.
// Complexity: O(S²·(R+C)) time, O(S²) memory.
func Build(t *keypad.Topology) (*Table, error) {
	n := t.Size()
	tbl := &Table{topo: t, n: n, seqs: make([]string, n*n)}
	for i := 0; i < n; i++ {
		from := t.SymbolAt(i)
		for j := 0; j < n; j++ {
			to := t.SymbolAt(j)
			best := Rank(Candidates(t, from, to))[0]
			if best.CrossesGap {
				return nil, fmt.Errorf("%w: %q -> %q on %s keypad", ErrNoSafeOrdering, from, to, t.Kind())
			}
			tbl.seqs[i*n+j] = best.Moves
		}
	}

	return tbl, nil
}

// Topology returns the keypad the table was built for.
func (tb *Table) Topology() *keypad.Topology { return tb.topo }

// Len returns the number of stored pairs, Size()².
func (tb *Table) Len() int { return len(tb.seqs) }

// At returns the sequence for dense symbol indexes i (from) and j (to).
func (tb *Table) At(i, j int) string { return tb.seqs[i*tb.n+j] }

// Get returns the sequence for (from, to) and whether both symbols exist.
func (tb *Table) Get(from, to keypad.Symbol) (string, bool) {
	i, j := tb.topo.Index(from), tb.topo.Index(to)
	if i < 0 || j < 0 {
		return "", false
	}

	return tb.seqs[i*tb.n+j], true
}

// Lookup returns the sequence for (from, to). A symbol outside the table's
// keypad is an invariant violation and panics with keypad.ErrUnknownSymbol.
func (tb *Table) Lookup(from, to keypad.Symbol) string {
	return tb.seqs[tb.topo.MustIndex(from)*tb.n+tb.topo.MustIndex(to)]
}

// Expand returns the string a controller must type so that an arm parked on
// Home types seq on this keypad. Returns keypad.ErrUnknownSymbol (wrapped)
// if seq contains a symbol that is not a button.
func (tb *Table) Expand(seq string) (string, error) {
	var b strings.Builder
	prev := keypad.Home
	for i := 0; i < len(seq); i++ {
		s, ok := tb.Get(prev, seq[i])
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d on %s keypad", keypad.ErrUnknownSymbol, seq[i], i, tb.topo.Kind())
		}
		b.WriteString(s)
		prev = seq[i]
	}

	return b.String(), nil
}

// Transitions returns the consecutive symbol pairs of Home+seq.
// The result always has exactly len(seq) entries.
func Transitions(seq string) []Pair {
	out := make([]Pair, len(seq))
	prev := keypad.Home
	for i := 0; i < len(seq); i++ {
		out[i] = Pair{From: prev, To: seq[i]}
		prev = seq[i]
	}

	return out
}

// Literal expands code on the numeric keypad and then depth more times on
// the directional keypad, returning the string the human types.
// Depth 0 is the human driving the numeric robot directly.
// Output length grows exponentially; use the cost package beyond small depths.
func Literal(code string, depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	s, err := Numeric().Expand(code)
	if err != nil {
		return "", err
	}
	for k := 0; k < depth; k++ {
		if s, err = Directional().Expand(s); err != nil {
			return "", err
		}
	}

	return s, nil
}
