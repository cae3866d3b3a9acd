// Package cost propagates keystroke cost through layers of robot-operated
// directional keypads without ever building the literal key sequences.
//
// What:
//
//   - A Table maps every ordered pair (from, to) of directional buttons to the
//     minimal number of human presses needed to make an arm parked on 'from'
//     move to 'to' and press it, at a given depth of indirection.
//   - Depth 0 is direct human operation: every button costs one press.
//   - Depth k: for the canonical sequence S of (from, to),
//     cost_k(from, to) = Σ cost_{k-1}(p, q) over consecutive pairs of "A"+S,
//     because the controlling arm starts each transition parked on 'A'.
//
// Why:
//
//	Literal sequences grow about 2.5× per layer, so 25 layers would need
//	terabytes. The recurrence needs 25 cells per layer: O(depth) total.
//
// Determinism & immutability:
//
//	Every Table is a fresh value; Propagator.Next never mutates its input.
//	Tables may therefore be shared between goroutines and cached per depth
//	(see Cache) without locking.
//
// Errors:
//
//   - ErrNegativeDepth: AtDepth called with depth < 0.
//   - ErrOverflow: a cost exceeded the int64 range (depth ≳ 45).
package cost
