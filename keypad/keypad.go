// Package keypad provides the immutable grid geometry shared by the
// sequence builder, the cost propagator and the brute-force validator.
package keypad

import (
	"fmt"
)

var (
	numericRows     = []string{"789", "456", "123", " 0A"}
	directionalRows = []string{" ^A", "<v>"}

	numeric     = mustNew(KindNumeric, numericRows)
	directional = mustNew(KindDirectional, directionalRows)
)

// Numeric returns the shared 4×3 door keypad.
func Numeric() *Topology { return numeric }

// Directional returns the shared 2×3 remote keypad.
func Directional() *Topology { return directional }

func mustNew(kind Kind, rows []string) *Topology {
	t, err := New(kind, rows)
	if err != nil {
		panic(err)
	}

	return t
}

// New constructs a Topology from layout rows. Each byte of a row is one cell;
// the Gap byte (' ') marks the single cell without a button.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrGapCount or ErrDuplicateSymbol
// for malformed layouts.
// Complexity: O(R×C) time and memory.
func New(kind Kind, rows []string) (*Topology, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	t := &Topology{
		kind:    kind,
		rows:    h,
		cols:    w,
		cells:   make([]Symbol, 0, h*w),
		symbols: make([]Symbol, 0, h*w-1),
	}
	for i := range t.pos {
		t.pos[i] = -1
		t.index[i] = -1
	}

	gaps := 0
	for r, row := range rows {
		for c := 0; c < w; c++ {
			s := row[c]
			t.cells = append(t.cells, s)
			if s == Gap {
				gaps++
				t.gap = Position{Row: r, Col: c}
				continue
			}
			if t.pos[s] >= 0 {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
			}
			t.pos[s] = r*w + c
			t.index[s] = len(t.symbols)
			t.symbols = append(t.symbols, s)
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}

	return t, nil
}

// Kind reports which keypad this is.
func (t *Topology) Kind() Kind { return t.kind }

// Rows returns the grid height.
func (t *Topology) Rows() int { return t.rows }

// Cols returns the grid width.
func (t *Topology) Cols() int { return t.cols }

// Gap returns the position of the cell without a button.
func (t *Topology) Gap() Position { return t.gap }

// Home returns the symbol an arm rests on.
func (t *Topology) Home() Symbol { return Home }

// Size returns the number of buttons (gap excluded).
func (t *Topology) Size() int { return len(t.symbols) }

// Symbols returns the buttons in row-major order, gap excluded.
// The returned slice is a copy.
func (t *Topology) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// Has reports whether s is a button on this keypad.
func (t *Topology) Has(s Symbol) bool {
	return t.pos[s] >= 0
}

// Locate returns the position of s and whether it exists on the keypad.
// Complexity: O(1).
func (t *Topology) Locate(s Symbol) (Position, bool) {
	i := t.pos[s]
	if i < 0 {
		return Position{}, false
	}

	return Position{Row: i / t.cols, Col: i % t.cols}, true
}

// MustLocate is Locate for symbols known to belong to the keypad.
// It panics with ErrUnknownSymbol otherwise.
func (t *Topology) MustLocate(s Symbol) Position {
	p, ok := t.Locate(s)
	if !ok {
		panic(fmt.Errorf("%w: %q on %s keypad", ErrUnknownSymbol, s, t.kind))
	}

	return p
}

// Index returns the dense index of s in [0, Size()), or -1 if absent.
// Complexity: O(1).
func (t *Topology) Index(s Symbol) int {
	return t.index[s]
}

// MustIndex is Index for symbols known to belong to the keypad.
func (t *Topology) MustIndex(s Symbol) int {
	i := t.index[s]
	if i < 0 {
		panic(fmt.Errorf("%w: %q on %s keypad", ErrUnknownSymbol, s, t.kind))
	}

	return i
}

// SymbolAt returns the symbol with dense index i.
func (t *Topology) SymbolAt(i int) Symbol {
	return t.symbols[i]
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (t *Topology) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < t.rows && p.Col >= 0 && p.Col < t.cols
}

// IsGap reports whether p is the cell without a button.
// Out-of-bounds positions are not the gap.
func (t *Topology) IsGap(p Position) bool {
	return p == t.gap
}

// At returns the symbol at p, or Gap for the hole and out-of-bounds cells.
func (t *Topology) At(p Position) Symbol {
	if !t.InBounds(p) {
		return Gap
	}

	return t.cells[p.Row*t.cols+p.Col]
}

// String renders the layout rows joined by '/', gap shown as '_'.
func (t *Topology) String() string {
	b := make([]byte, 0, t.rows*(t.cols+1))
	for r := 0; r < t.rows; r++ {
		if r > 0 {
			b = append(b, '/')
		}
		for c := 0; c < t.cols; c++ {
			s := t.cells[r*t.cols+c]
			if s == Gap {
				s = '_'
			}
			b = append(b, s)
		}
	}

	return string(b)
}
