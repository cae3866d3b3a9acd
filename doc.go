// Package keypadchain computes the fewest button presses a human needs to
// type door codes when every press is relayed through a chain of robots,
// each holding a directional keypad operated by the robot (or human) above.
//
// Layout:
//
//	keypad/         — numeric and directional grid geometry, gap classification
//	sequence/       — canonical minimal move sequence per ordered button pair
//	cost/           — per-layer cost propagation over the 25 directional pairs
//	complexity/     — code parsing and batch scoring (value × presses)
//	verify/         — brute-force check of the canonical orderings
//	config/         — viper-backed settings for the command line
//	logging/        — charmbracelet/log wrapper used by the command line
//	report/         — text and YAML rendering of batch results
//	cmd/keypadchain — cobra CLI: solve, expand, table, verify
//
// Quick example:
//
//	total, err := complexity.Complexity([]string{"029A", "980A"}, 25)
//
// Depth counts robot-held directional keypads between the human and the
// robot at the door. Depth 0 is the human driving the door robot directly.
package keypadchain
