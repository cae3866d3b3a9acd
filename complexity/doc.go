// Package complexity scores a batch of door codes typed through a chain of
// robot-operated directional keypads.
//
// What:
//
//   - ParseCode validates a code ("029A") and extracts its numeric value (29).
//   - Evaluator.Presses returns the minimal number of human presses needed to
//     type one code with depth robots between the human and the numeric robot.
//   - Evaluator.Evaluate sums value × presses over a batch.
//
// Depth:
//
//	Depth 0 means the human types on the directional keypad that drives the
//	numeric robot. Each extra unit of depth adds one robot-held directional
//	keypad. The two classic operating points are depth 2 and depth 25.
//
// Concurrency:
//
//	The depth table is built once per Evaluate call (or taken from a shared
//	cost.Cache) and only read afterwards. Codes are independent, so
//	WithParallelism(n) fans them out over an errgroup; results keep input order.
//
// Errors:
//
//   - ErrMalformedCode: empty code, a character outside {0-9, A}, or no trailing 'A'.
//   - ErrOptionViolation: invalid functional option (e.g. parallelism < 1).
//   - cost.ErrNegativeDepth / cost.ErrOverflow: propagated from the cost package.
package complexity
