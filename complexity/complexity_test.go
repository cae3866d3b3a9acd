package complexity_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/keypadchain/complexity"
	"github.com/katalvlaran/keypadchain/cost"
	"github.com/stretchr/testify/require"
)

var sample = []string{"029A", "980A", "179A", "456A", "379A"}

func mustParse(t *testing.T, codes []string) []complexity.Code {
	t.Helper()
	out := make([]complexity.Code, len(codes))
	for i, s := range codes {
		c, err := complexity.ParseCode(s)
		require.NoError(t, err)
		out[i] = c
	}

	return out
}

// TestComplexity_Reference checks the sample batch at both operating points.
func TestComplexity_Reference(t *testing.T) {
	t.Parallel()
	cases := []struct {
		depth int
		want  int64
	}{
		{2, 126384},
		{25, 154115708116294},
	}
	for _, tc := range cases {
		got, err := complexity.Complexity(sample, tc.depth)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "depth %d", tc.depth)
	}
}

// TestPresses_Reference checks per-code press counts of the sample at depth 2.
func TestPresses_Reference(t *testing.T) {
	t.Parallel()
	e, err := complexity.New()
	require.NoError(t, err)

	want := map[string]int64{"029A": 68, "980A": 60, "179A": 68, "456A": 64, "379A": 64}
	for code, presses := range want {
		got, err := e.Presses(code, 2)
		require.NoError(t, err)
		require.Equal(t, presses, got, code)
	}

	got, err := e.Presses("029A", 0)
	require.NoError(t, err)
	require.EqualValues(t, 12, got)
	got, err = e.Presses("029A", 1)
	require.NoError(t, err)
	require.EqualValues(t, 28, got)
}

// TestEvaluate_Result checks the per-code breakdown and input ordering.
func TestEvaluate_Result(t *testing.T) {
	t.Parallel()
	e, err := complexity.New()
	require.NoError(t, err)
	res, err := e.Evaluate(mustParse(t, sample), 2)
	require.NoError(t, err)

	require.Equal(t, 2, res.Depth)
	require.Len(t, res.Codes, len(sample))
	first := res.Codes[0]
	require.Equal(t, "029A", first.Code.Raw)
	require.EqualValues(t, 29, first.Code.Value)
	require.Equal(t, "<A^A^^>AvvvA", first.Sequence)
	require.EqualValues(t, 68, first.Presses)
	require.EqualValues(t, 68*29, first.Complexity)
	for i, r := range res.Codes {
		require.Equal(t, sample[i], r.Code.Raw)
	}
	require.EqualValues(t, 126384, res.Total)
}

// TestEvaluate_ParallelMatchesSequential runs the same batch with a fan-out.
func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	codes := mustParse(t, append(append([]string{}, sample...), sample...))

	seq, err := complexity.New()
	require.NoError(t, err)
	want, err := seq.Evaluate(codes, 25)
	require.NoError(t, err)

	var calls atomic.Int32
	par, err := complexity.New(
		complexity.WithParallelism(4),
		complexity.WithCache(cost.NewCache(nil)),
		complexity.WithOnCode(func(complexity.CodeResult) { calls.Add(1) }),
	)
	require.NoError(t, err)
	got, err := par.Evaluate(codes, 25)
	require.NoError(t, err)

	require.Equal(t, want, got)
	require.EqualValues(t, len(codes), calls.Load())
}

// TestEvaluate_Empty returns a zero total for an empty batch.
func TestEvaluate_Empty(t *testing.T) {
	t.Parallel()
	e, err := complexity.New()
	require.NoError(t, err)
	res, err := e.Evaluate(nil, 25)
	require.NoError(t, err)
	require.Zero(t, res.Total)
	require.Empty(t, res.Codes)
}

// TestEvaluate_Cancelled checks that a cancelled context stops evaluation.
func TestEvaluate_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	codes := mustParse(t, sample)

	for _, n := range []int{1, 3} {
		e, err := complexity.New(complexity.WithContext(ctx), complexity.WithParallelism(n))
		require.NoError(t, err)
		_, err = e.Evaluate(codes, 2)
		require.ErrorIs(t, err, context.Canceled, "parallelism %d", n)
	}
}

// TestEvaluate_Errors covers invalid options and depths.
func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()
	_, err := complexity.New(complexity.WithParallelism(0))
	require.ErrorIs(t, err, complexity.ErrOptionViolation)

	_, err = complexity.Complexity(sample, -1)
	require.ErrorIs(t, err, cost.ErrNegativeDepth)

	_, err = complexity.Complexity([]string{"029A", "02B9A"}, 2)
	require.ErrorIs(t, err, complexity.ErrMalformedCode)
}

// TestEvaluate_UnparsedCodes checks that hand-built codes are validated the
// same way as ParseCode, sequentially and in parallel.
func TestEvaluate_UnparsedCodes(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2} {
		e, err := complexity.New(complexity.WithParallelism(n))
		require.NoError(t, err)
		for _, raw := range []string{"", "029", "12B"} {
			codes := []complexity.Code{{Raw: "029A", Value: 29}, {Raw: raw, Value: 12}}
			res, err := e.Evaluate(codes, 2)
			require.ErrorIs(t, err, complexity.ErrMalformedCode, "parallelism %d, code %q", n, raw)
			require.Nil(t, res)
		}
	}
}

// TestEvaluate_ValueFollowsRaw checks that a stale Value is recomputed from Raw.
func TestEvaluate_ValueFollowsRaw(t *testing.T) {
	t.Parallel()
	e, err := complexity.New()
	require.NoError(t, err)
	res, err := e.Evaluate([]complexity.Code{{Raw: "029A", Value: 999}}, 2)
	require.NoError(t, err)
	require.EqualValues(t, 29, res.Codes[0].Code.Value)
	require.EqualValues(t, 68*29, res.Total)
}

// TestParseCode covers accepted and rejected codes.
func TestParseCode(t *testing.T) {
	t.Parallel()
	ok := []struct {
		in   string
		want uint64
	}{
		{"029A", 29},
		{"980A", 980},
		{"000A", 0},
		{"A", 0},
		{"12A3A", 12},
	}
	for _, tc := range ok {
		c, err := complexity.ParseCode(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, c.Value, tc.in)
		require.Equal(t, tc.in, c.Raw)
	}

	for _, bad := range []string{"", "029", "02 9A", "029a", "<A", "99999999999999999999999A"} {
		_, err := complexity.ParseCode(bad)
		require.ErrorIs(t, err, complexity.ErrMalformedCode, "%q", bad)
	}
}

// TestNumericValue checks leading-digit parsing.
func TestNumericValue(t *testing.T) {
	t.Parallel()
	v, err := complexity.NumericValue("0042A")
	require.NoError(t, err)
	require.EqualValues(t, 42, v)

	v, err = complexity.NumericValue("A")
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestParseCodes reads a batch with blank lines and stray whitespace.
func TestParseCodes(t *testing.T) {
	t.Parallel()
	codes, err := complexity.ParseCodes(strings.NewReader("029A\n\n  980A \r\n179A\n"))
	require.NoError(t, err)
	require.Len(t, codes, 3)
	require.Equal(t, "980A", codes[1].Raw)

	_, err = complexity.ParseCodes(strings.NewReader("029A\nxyz\n"))
	require.ErrorIs(t, err, complexity.ErrMalformedCode)
	require.Contains(t, err.Error(), "line 2")
}
