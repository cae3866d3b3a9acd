// Package verify checks the canonical move orderings of the sequence package
// against brute-force enumeration.
//
// The sequence package keeps one ordering per button pair, chosen by a fixed
// gap-and-axis ranking. That ranking is empirical: it is not derived from a
// general optimality proof. Check recomputes every pair cost by trying every
// gap-free monotone path (all interleavings of the horizontal and vertical
// presses), layer by layer, and reports any pair where the canonical choice
// costs more than the true minimum.
//
// Complexity:
//
//   - Paths:  O(C(h+v, h)) strings for a move of h horizontal and v vertical steps.
//   - Check:  O(depth × S² × P × L) with P paths of length L per pair.
//
// Errors:
//
//   - ErrSuboptimal: at least one canonical sequence is not minimal.
//   - ErrDepthRange: depth outside [0, MaxDepth].
package verify
