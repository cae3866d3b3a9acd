package complexity

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/sequence"
)

// Evaluator scores codes on the numeric keypad. It is immutable after New
// and safe for concurrent use.
type Evaluator struct {
	opts    Options
	numeric *sequence.Table
}

// New builds an Evaluator from functional options.
// Returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Evaluator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Evaluator{opts: o, numeric: sequence.Numeric()}, nil
}

// Complexity is a convenience wrapper: parse codes and return the batch total
// at depth using a sequential Evaluator.
func Complexity(codes []string, depth int) (int64, error) {
	parsed := make([]Code, 0, len(codes))
	for _, s := range codes {
		c, err := ParseCode(s)
		if err != nil {
			return 0, err
		}
		parsed = append(parsed, c)
	}
	e, err := New()
	if err != nil {
		return 0, err
	}
	res, err := e.Evaluate(parsed, depth)
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}

// Presses returns the minimal human presses needed to type code at depth.
func (e *Evaluator) Presses(code string, depth int) (int64, error) {
	c, err := ParseCode(code)
	if err != nil {
		return 0, err
	}
	tbl, err := e.table(depth)
	if err != nil {
		return 0, err
	}
	r, err := e.evaluate(c, tbl)
	if err != nil {
		return 0, err
	}

	return r.Presses, nil
}

// Evaluate scores every code at depth and returns per-code results in input
// order along with their sum. The depth table is built once and shared
// read-only by all codes.
func (e *Evaluator) Evaluate(codes []Code, depth int) (*Result, error) {
	tbl, err := e.table(depth)
	if err != nil {
		return nil, err
	}
	res := &Result{Depth: depth, Codes: make([]CodeResult, len(codes))}

	if e.opts.Parallelism <= 1 || len(codes) <= 1 {
		for i, c := range codes {
			if err := e.opts.Ctx.Err(); err != nil {
				return nil, err
			}
			if res.Codes[i], err = e.evaluate(c, tbl); err != nil {
				return nil, err
			}
			e.opts.OnCode(res.Codes[i])
		}
	} else {
		g, ctx := errgroup.WithContext(e.opts.Ctx)
		g.SetLimit(e.opts.Parallelism)
		for i, c := range codes {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := e.evaluate(c, tbl)
				if err != nil {
					return err
				}
				res.Codes[i] = r // each goroutine owns index i
				e.opts.OnCode(r)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	for _, r := range res.Codes {
		if res.Total > math.MaxInt64-r.Complexity {
			return nil, ErrOverflow
		}
		res.Total += r.Complexity
	}

	return res, nil
}

// evaluate sums the depth table along Home + the code's numeric sequence.
// Codes are re-parsed so caller-built values get the same validation as
// ParseCode, and Value always matches Raw.
func (e *Evaluator) evaluate(in Code, tbl *cost.Table) (CodeResult, error) {
	c, err := ParseCode(in.Raw)
	if err != nil {
		return CodeResult{}, err
	}
	seq, err := e.numeric.Expand(c.Raw)
	if err != nil {
		return CodeResult{}, err
	}
	presses, _, err := tbl.SumAlong(seq)
	if err != nil {
		return CodeResult{}, err
	}
	if c.Value != 0 && uint64(presses) > uint64(math.MaxInt64)/c.Value {
		return CodeResult{}, ErrOverflow
	}

	return CodeResult{
		Code:       c,
		Sequence:   seq,
		Presses:    presses,
		Complexity: int64(c.Value) * presses,
	}, nil
}

func (e *Evaluator) table(depth int) (*cost.Table, error) {
	if e.opts.Cache != nil {
		return e.opts.Cache.Get(depth)
	}

	return cost.AtDepth(depth)
}
