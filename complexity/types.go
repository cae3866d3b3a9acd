package complexity

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/keypadchain/cost"
)

// Sentinel errors for code evaluation.
var (
	// ErrMalformedCode is returned for codes that cannot be typed on the door keypad.
	ErrMalformedCode = errors.New("complexity: malformed code")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("complexity: invalid option supplied")
	// ErrOverflow is returned when a complexity does not fit in int64.
	ErrOverflow = errors.New("complexity: result overflows int64")
)

// Code is a validated door code.
type Code struct {
	Raw   string // as typed, e.g. "029A"
	Value uint64 // leading digits, e.g. 29
}

// CodeResult is the evaluation of a single code.
type CodeResult struct {
	Code       Code
	Sequence   string // canonical numeric-keypad sequence, e.g. "<A^A^^>AvvvA"
	Presses    int64  // minimal human presses at the evaluated depth
	Complexity int64  // Code.Value × Presses
}

// Result is the evaluation of a batch.
type Result struct {
	Depth int
	Codes []CodeResult
	Total int64
}

// Option configures an Evaluator via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunables of an Evaluator.
type Options struct {
	// Ctx allows cancellation of batch evaluation between codes.
	Ctx context.Context

	// Parallelism is the number of codes evaluated concurrently (≥ 1).
	Parallelism int

	// Cache, if set, supplies depth tables; otherwise one is built per call.
	Cache *cost.Cache

	// OnCode is called once per evaluated code. With Parallelism > 1 it may
	// be called concurrently and out of order.
	OnCode func(r CodeResult)

	err error
}

// DefaultOptions returns sequential evaluation with a background context,
// no cache and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Parallelism: 1,
		OnCode:      func(CodeResult) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism sets how many codes are evaluated at once.
//
//	n ≥ 1: up to n codes in flight
//	n < 1: invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}

// WithCache shares depth tables across Evaluate calls.
func WithCache(c *cost.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithOnCode registers a callback run after each code is evaluated.
func WithOnCode(fn func(r CodeResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCode = fn
		}
	}
}
