package keypad

// Symbol is a single button label, e.g. '7', '^' or 'A'.
type Symbol = byte

// Gap is the marker used in layout rows for the cell without a button.
const Gap Symbol = ' '

// Home is the button every arm rests on between transitions.
const Home Symbol = 'A'

// Direction buttons of the directional keypad.
const (
	Up    Symbol = '^'
	Down  Symbol = 'v'
	Left  Symbol = '<'
	Right Symbol = '>'
	Press Symbol = Home
)

// Kind identifies which keypad a Topology describes.
type Kind int

const (
	// KindCustom is a caller-supplied layout built with New.
	KindCustom Kind = iota
	// KindNumeric is the door keypad: digits 0-9 and A.
	KindNumeric
	// KindDirectional is the remote keypad: ^ v < > and A.
	KindDirectional
)

// String returns a lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindDirectional:
		return "directional"
	default:
		return "custom"
	}
}

// Position is a cell coordinate; Row grows downwards, Col grows rightwards.
type Position struct {
	Row, Col int
}

// Topology is an immutable keypad grid. All lookups are O(1).
// The zero value is not usable; obtain one from Numeric, Directional or New.
type Topology struct {
	kind    Kind
	rows    int
	cols    int
	cells   []Symbol // row-major, Gap for the hole
	gap     Position // location of the single gap
	symbols []Symbol // row-major, gap excluded
	pos     [256]int // symbol -> row-major cell index, -1 if absent
	index   [256]int // symbol -> dense symbol index, -1 if absent
}
