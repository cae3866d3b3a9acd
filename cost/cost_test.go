package cost_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/sequence"
	"github.com/stretchr/testify/require"
)

var dirSymbols = keypad.Directional().Symbols()

// TestUnit_AllOnes verifies depth 0 charges one press per button.
func TestUnit_AllOnes(t *testing.T) {
	t.Parallel()
	u := cost.Unit()
	require.Equal(t, 0, u.Depth())
	for _, a := range dirSymbols {
		for _, b := range dirSymbols {
			require.EqualValues(t, 1, u.Cost(a, b))
		}
	}
}

// TestBase_IsSequenceLength verifies depth 1 equals the canonical lengths and
// that one propagation step from Unit produces the same table.
func TestBase_IsSequenceLength(t *testing.T) {
	t.Parallel()
	base := cost.Base()
	for _, a := range dirSymbols {
		for _, b := range dirSymbols {
			require.EqualValues(t, len(sequence.Directional().Lookup(a, b)), base.Cost(a, b))
		}
	}

	next, err := cost.Propagate(cost.Unit())
	require.NoError(t, err)
	require.True(t, base.Equal(next))
}

// TestAtDepth_Monotone checks costs never decrease with depth and stay positive.
func TestAtDepth_Monotone(t *testing.T) {
	t.Parallel()
	prev := cost.Unit()
	for k := 1; k <= 25; k++ {
		cur, err := cost.Propagate(prev)
		require.NoError(t, err)
		require.Equal(t, k, cur.Depth())
		for _, a := range dirSymbols {
			for _, b := range dirSymbols {
				require.Positive(t, cur.Cost(a, b))
				require.GreaterOrEqual(t, cur.Cost(a, b), prev.Cost(a, b), "depth %d %q->%q", k, a, b)
			}
		}
		prev = cur
	}
}

// TestAtDepth_DoesNotMutateInput checks that propagation builds fresh values.
func TestAtDepth_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	u := cost.Unit()
	_, err := cost.Propagate(u)
	require.NoError(t, err)
	require.True(t, u.Equal(cost.Unit()))
}

// TestAtDepth_Asymmetric pins a pair whose reverse costs more once the gap
// forces a detour through '<'.
func TestAtDepth_Asymmetric(t *testing.T) {
	t.Parallel()
	d2, err := cost.AtDepth(2)
	require.NoError(t, err)
	require.EqualValues(t, 7, d2.Cost('^', '>'))
	require.EqualValues(t, 9, d2.Cost('>', '^'))
}

// TestSumAlong_Reference checks "029A" on the numeric keypad at depths 0-2
// and that exactly one lookup is made per symbol.
func TestSumAlong_Reference(t *testing.T) {
	t.Parallel()
	numSeq := sequence.Numeric().Lookup('A', '0') +
		sequence.Numeric().Lookup('0', '2') +
		sequence.Numeric().Lookup('2', '9') +
		sequence.Numeric().Lookup('9', 'A')

	for depth, want := range []int64{12, 28, 68} {
		tbl, err := cost.AtDepth(depth)
		require.NoError(t, err)
		got, lookups, err := tbl.SumAlong(numSeq)
		require.NoError(t, err)
		require.Equal(t, want, got, "depth %d", depth)
		require.Equal(t, len(numSeq), lookups)
	}
}

// TestSumAlong_MatchesLiteral compares the recurrence with literal expansion.
func TestSumAlong_MatchesLiteral(t *testing.T) {
	t.Parallel()
	for _, code := range []string{"029A", "980A", "179A", "456A", "379A"} {
		numSeq, err := sequence.Numeric().Expand(code)
		require.NoError(t, err)
		for depth := 0; depth <= 3; depth++ {
			lit, err := sequence.Literal(code, depth)
			require.NoError(t, err)
			tbl, err := cost.AtDepth(depth)
			require.NoError(t, err)
			got, _, err := tbl.SumAlong(numSeq)
			require.NoError(t, err)
			require.EqualValues(t, len(lit), got, "%s depth %d", code, depth)
		}
	}
}

// TestSumAlong_Errors covers foreign symbols and the empty sequence.
func TestSumAlong_Errors(t *testing.T) {
	t.Parallel()
	got, n, err := cost.Unit().SumAlong("")
	require.NoError(t, err)
	require.Zero(t, got)
	require.Zero(t, n)

	_, _, err = cost.Unit().SumAlong("<7")
	require.ErrorIs(t, err, keypad.ErrUnknownSymbol)
}

// TestAtDepth_Errors covers negative depth and int64 overflow.
func TestAtDepth_Errors(t *testing.T) {
	t.Parallel()
	_, err := cost.AtDepth(-1)
	require.ErrorIs(t, err, cost.ErrNegativeDepth)

	_, err = cost.AtDepth(80)
	require.ErrorIs(t, err, cost.ErrOverflow)
}

// TestAtDepth_Deterministic rebuilds depth 25 from scratch twice.
func TestAtDepth_Deterministic(t *testing.T) {
	t.Parallel()
	a, err := cost.AtDepth(25)
	require.NoError(t, err)
	b, err := cost.AtDepth(25)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	require.Equal(t, a.Values(), b.Values())
}

// TestCache_Concurrent checks the cache hands out the same tables as AtDepth
// under concurrent access.
func TestCache_Concurrent(t *testing.T) {
	t.Parallel()
	c := cost.NewCache(nil)
	want, err := cost.AtDepth(25)
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]*cost.Table, 8)
	errs := make([]error, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = c.Get(25 - i)
		}(i)
	}
	wg.Wait()

	for i := range got {
		require.NoError(t, errs[i])
		require.Equal(t, 25-i, got[i].Depth())
	}
	require.True(t, want.Equal(got[0]))
	require.Equal(t, 26, c.Len())

	_, err = c.Get(-3)
	require.ErrorIs(t, err, cost.ErrNegativeDepth)
}
