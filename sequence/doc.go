// Package sequence builds, for a keypad topology, the canonical minimal
// move sequence between every ordered pair of buttons.
//
// What:
//
//   - Moving an arm from one button to another needs |Δcol| horizontal and
//     |Δrow| vertical presses followed by a final 'A'.
//   - Only two orderings keep identical presses together: all horizontal then
//     all vertical (HorizontalFirst), or the reverse (VerticalFirst).
//     Interleaved orderings are never shorter and cost more once replayed by
//     an overlying robot, so they are never produced.
//   - Candidates returns the one or two orderings for a pair; Rank sorts them
//     by an explicit total order; Build keeps the first of every pair.
//
// Ranking (see Less):
//
//  1. Orderings whose path never touches the gap come first.
//  2. Axis preference: when the move goes left, horizontal first;
//     otherwise vertical first. '<' is the button farthest from 'A' on the
//     directional keypad, so reaching it first and returning via the others
//     keeps the overlying arm's travel short.
//  3. Order value, as a final deterministic key.
//
// Expansion:
//
//	Table.Expand turns a string typed on one keypad into the literal string a
//	controller must type one layer up. Literal chains Expand across layers and
//	is only practical for small depths, since lengths grow roughly 2.5× per layer.
//
// Complexity:
//
//   - Build:  O(S²·(R+C)) for S symbols on an R×C grid.
//   - Lookup: O(1).
//   - Expand: O(len(output)).
package sequence
