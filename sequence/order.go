package sequence

import (
	"slices"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Candidates returns the minimal orderings for moving from one button to
// another on t: two when the move has both a horizontal and a vertical
// component, one otherwise. The slice is unranked; see Rank.
// Both symbols must be buttons of t; otherwise MustLocate panics.
func Candidates(t *keypad.Topology, from, to keypad.Symbol) []Candidate {
	a, b := t.MustLocate(from), t.MustLocate(to)
	dr, dc := b.Row-a.Row, b.Col-a.Col

	horiz := strings.Repeat(string(horizontalSymbol(dc)), abs(dc))
	vert := strings.Repeat(string(verticalSymbol(dr)), abs(dr))

	hf := Candidate{
		Order:  HorizontalFirst,
		Corner: keypad.Position{Row: a.Row, Col: b.Col},
		Moves:  horiz + vert + string(keypad.Press),
	}
	vf := Candidate{
		Order:  VerticalFirst,
		Corner: keypad.Position{Row: b.Row, Col: a.Col},
		Moves:  vert + horiz + string(keypad.Press),
	}

	var out []Candidate
	switch {
	case dc == 0 && dr != 0:
		out = []Candidate{vf}
	case dr == 0 || dc == 0:
		out = []Candidate{hf}
	default:
		out = []Candidate{hf, vf}
	}
	for i := range out {
		out[i].CrossesGap = crossesGap(t, a, out[i].Moves)
		out[i].Preference = preference(out[i].Order, dc)
	}

	return out
}

// Less is the total order used to choose between candidates for the same pair.
// Gap-safe candidates precede unsafe ones; then the preferred axis order;
// then Order as a tie-breaker.
func Less(x, y Candidate) bool {
	if x.CrossesGap != y.CrossesGap {
		return !x.CrossesGap
	}
	if x.Preference != y.Preference {
		return x.Preference < y.Preference
	}

	return x.Order < y.Order
}

// Rank sorts candidates in place by Less and returns them.
func Rank(cs []Candidate) []Candidate {
	slices.SortStableFunc(cs, func(x, y Candidate) int {
		switch {
		case Less(x, y):
			return -1
		case Less(y, x):
			return 1
		default:
			return 0
		}
	})

	return cs
}

// preference ranks the axis order: moving left favours horizontal first,
// every other move favours vertical first.
func preference(o Order, dc int) int {
	if dc < 0 {
		if o == HorizontalFirst {
			return 0
		}
		return 1
	}
	if o == VerticalFirst {
		return 0
	}

	return 1
}

// crossesGap walks moves from start and reports whether any visited cell
// is the gap or leaves the grid.
func crossesGap(t *keypad.Topology, start keypad.Position, moves string) bool {
	p := start
	for i := 0; i < len(moves); i++ {
		d, ok := Delta(moves[i])
		if !ok {
			continue
		}
		p.Row += d.Row
		p.Col += d.Col
		if t.IsGap(p) || !t.InBounds(p) {
			return true
		}
	}

	return false
}

// Delta returns the cell offset produced by a direction symbol.
// The press symbol and unknown symbols report false.
func Delta(s keypad.Symbol) (keypad.Position, bool) {
	switch s {
	case keypad.Up:
		return keypad.Position{Row: -1}, true
	case keypad.Down:
		return keypad.Position{Row: 1}, true
	case keypad.Left:
		return keypad.Position{Col: -1}, true
	case keypad.Right:
		return keypad.Position{Col: 1}, true
	default:
		return keypad.Position{}, false
	}
}

func horizontalSymbol(dc int) keypad.Symbol {
	if dc < 0 {
		return keypad.Left
	}

	return keypad.Right
}

func verticalSymbol(dr int) keypad.Symbol {
	if dr < 0 {
		return keypad.Up
	}

	return keypad.Down
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
