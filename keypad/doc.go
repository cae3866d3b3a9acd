// Package keypad models the two fixed button grids a robot arm can be
// pointed at: the numeric door keypad and the directional remote keypad.
//
// What:
//
//   - Topology wraps a rectangular grid of button symbols with exactly one gap
//     (a cell with no button that an arm must never hover over).
//   - Locate finds the row/column of a symbol; IsGap classifies a cell.
//   - Index gives every symbol a dense integer so callers can use fixed-size
//     tables instead of maps keyed by symbol pairs.
//
// Layouts:
//
//	Numeric (4×3)        Directional (2×3)
//	+---+---+---+        +---+---+---+
//	| 7 | 8 | 9 |        |   | ^ | A |
//	+---+---+---+        +---+---+---+
//	| 4 | 5 | 6 |        | < | v | > |
//	+---+---+---+        +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	|   | 0 | A |
//	+---+---+---+
//
// Both layouts start every arm parked on 'A' (Home).
//
// Complexity:
//
//   - New:            O(R×C) time and memory.
//   - Locate / Index: O(1) (precomputed lookup arrays).
//   - IsGap / At:     O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGapCount: the grid does not contain exactly one gap.
//   - ErrDuplicateSymbol: a symbol appears in more than one cell.
//   - ErrUnknownSymbol: a symbol is not on the keypad.
package keypad
