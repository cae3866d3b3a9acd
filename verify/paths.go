package verify

import (
	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/sequence"
)

// pathWalker enumerates monotone paths by recursion, one press at a time.
type pathWalker struct {
	topo   *keypad.Topology
	target keypad.Position
	hSym   keypad.Symbol
	vSym   keypad.Symbol
	buf    []byte
	out    []string
}

// Paths returns every gap-free move string from one button to another that
// uses exactly |Δcol| horizontal and |Δrow| vertical presses, each followed by
// the final press. Paths that take a horizontal step earlier come first.
// Both symbols must belong to t.
func Paths(t *keypad.Topology, from, to keypad.Symbol) []string {
	a, b := t.MustLocate(from), t.MustLocate(to)
	w := &pathWalker{
		topo:   t,
		target: b,
		hSym:   keypad.Right,
		vSym:   keypad.Down,
	}
	if b.Col < a.Col {
		w.hSym = keypad.Left
	}
	if b.Row < a.Row {
		w.vSym = keypad.Up
	}
	w.traverse(a)

	return w.out
}

// traverse extends the current prefix from p towards the target.
func (w *pathWalker) traverse(p keypad.Position) {
	if w.topo.IsGap(p) {
		return
	}
	if p == w.target {
		w.out = append(w.out, string(w.buf)+string(keypad.Press))
		return
	}
	if p.Col != w.target.Col {
		w.step(p, w.hSym)
	}
	if p.Row != w.target.Row {
		w.step(p, w.vSym)
	}
}

func (w *pathWalker) step(p keypad.Position, s keypad.Symbol) {
	d, _ := sequence.Delta(s)
	w.buf = append(w.buf, s)
	w.traverse(keypad.Position{Row: p.Row + d.Row, Col: p.Col + d.Col})
	w.buf = w.buf[:len(w.buf)-1]
}
