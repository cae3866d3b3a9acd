package keypad

import "errors"

var (
	// ErrEmptyGrid indicates the layout has no rows or an empty first row.
	ErrEmptyGrid = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must contain exactly one gap")
	// ErrDuplicateSymbol indicates a symbol occupies more than one cell.
	ErrDuplicateSymbol = errors.New("keypad: duplicate symbol")
	// ErrUnknownSymbol indicates a symbol that is not a button on the keypad.
	ErrUnknownSymbol = errors.New("keypad: unknown symbol")
)
