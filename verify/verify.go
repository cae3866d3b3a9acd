package verify

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/sequence"
)

// Unit returns the depth-0 directional optimum: one press per button.
func Unit() *Optimum {
	o := newOptimum(keypad.Directional(), 0)
	for i := range o.vals {
		o.vals[i] = 1
	}

	return o
}

// Over computes the brute-force optimum for every pair of t when the arm on
// t is driven through a directional keypad whose pair costs are ctrl.
// The result carries ctrl's depth for t = numeric and ctrl's depth + 1 for
// t = directional (one more robot in the chain).
func Over(t *keypad.Topology, ctrl *Optimum) *Optimum {
	depth := ctrl.depth
	if t.Kind() == keypad.KindDirectional {
		depth++
	}
	o := newOptimum(t, depth)
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			best, _ := ctrl.best(Paths(t, t.SymbolAt(i), t.SymbolAt(j)))
			o.vals[i*o.n+j] = best
		}
	}

	return o
}

// Next returns the directional optimum one layer deeper than prev.
func Next(prev *Optimum) *Optimum { return Over(keypad.Directional(), prev) }

// Depth returns the depth the optimum describes.
func (o *Optimum) Depth() int { return o.depth }

// Cost returns the optimum for (from, to); panics for foreign symbols.
func (o *Optimum) Cost(from, to keypad.Symbol) int64 {
	return o.vals[o.topo.MustIndex(from)*o.n+o.topo.MustIndex(to)]
}

// Check compares canonical costs with the brute-force optimum for every pair
// of both keypads at depths 0..maxDepth. It returns the report and
// ErrSuboptimal if any pair mismatches; ctx is checked between depths.
func Check(ctx context.Context, maxDepth int) (*Report, error) {
	if maxDepth < 0 || maxDepth > MaxDepth {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrDepthRange, maxDepth, MaxDepth)
	}
	rep := &Report{MaxDepth: maxDepth}
	numeric := keypad.Numeric()

	canon := cost.Unit()
	opt := Unit()
	for d := 0; d <= maxDepth; d++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		// Directional pairs at depth 0 are single presses; nothing to choose.
		if d > 0 {
			for i := 0; i < opt.n; i++ {
				for j := 0; j < opt.n; j++ {
					rep.compare(keypad.Directional(), d, i, j, canon.At(i, j), opt.vals[i*opt.n+j], "")
				}
			}
		}

		size := numeric.Size()
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				from, to := numeric.SymbolAt(i), numeric.SymbolAt(j)
				c, _, err := canon.SumAlong(sequence.Numeric().At(i, j))
				if err != nil {
					return rep, err
				}
				best, path := opt.best(Paths(numeric, from, to))
				rep.compare(numeric, d, i, j, c, best, path)
			}
		}

		if d == maxDepth {
			break
		}
		next, err := cost.Propagate(canon)
		if err != nil {
			return rep, err
		}
		canon, opt = next, Next(opt)
	}

	if len(rep.Mismatches) > 0 {
		m := rep.Mismatches[0]
		return rep, fmt.Errorf("%w: %d mismatches, first %s %q->%q at depth %d (%d > %d)",
			ErrSuboptimal, len(rep.Mismatches), m.Keypad, m.From, m.To, m.Depth, m.Canonical, m.Optimal)
	}

	return rep, nil
}

func (r *Report) compare(t *keypad.Topology, depth, i, j int, canonical, optimal int64, path string) {
	r.Checked++
	if canonical == optimal {
		return
	}
	r.Mismatches = append(r.Mismatches, Mismatch{
		Keypad:    t.Kind(),
		Depth:     depth,
		From:      t.SymbolAt(i),
		To:        t.SymbolAt(j),
		Canonical: canonical,
		Optimal:   optimal,
		BestPath:  path,
	})
}

// best returns the cheapest path under o and its cost.
func (o *Optimum) best(paths []string) (int64, string) {
	lo, arg := int64(math.MaxInt64), ""
	for _, p := range paths {
		if c := o.sumAlong(p); c < lo {
			lo, arg = c, p
		}
	}

	return lo, arg
}

// sumAlong sums o over the consecutive pairs of Home+seq.
func (o *Optimum) sumAlong(seq string) int64 {
	var total int64
	prev := o.topo.MustIndex(keypad.Home)
	for k := 0; k < len(seq); k++ {
		cur := o.topo.MustIndex(seq[k])
		total += o.vals[prev*o.n+cur]
		prev = cur
	}

	return total
}

func newOptimum(t *keypad.Topology, depth int) *Optimum {
	n := t.Size()

	return &Optimum{topo: t, depth: depth, n: n, vals: make([]int64, n*n)}
}
