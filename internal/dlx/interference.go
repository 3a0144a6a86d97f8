package dlx

// Interference is the pluggable cross-row consistency hook of spec.md
// §4.5/§4.6. Before a row is pushed onto the partial solution, Accepts is
// consulted; if it returns false the row is skipped entirely (not pushed,
// not covered, not recursed into). If it returns true, Commit is called
// immediately before the row's columns are covered, and Rollback is called
// immediately after they are uncovered, on every path including a failed
// recursion that backtracks. Both methods are keyed on the row's stable
// identity and its payload, so a concrete Interference can dispatch on
// whatever the payload encodes (for nonograms: whether the row describes a
// row-line or a column-line placement — spec.md §4.6).
//
// When no Interference is installed on a Matrix, the engine's gate
// trivially accepts every row (spec.md §4.6).
type Interference[P any] interface {
	Accepts(row RowID, payload P) bool
	Commit(row RowID, payload P)
	Rollback(row RowID, payload P)
}

// NoOp is an Interference that accepts every row and never needs
// Commit/Rollback to do anything — equivalent to installing nothing, but
// useful for callers that want to be explicit about "no cross-row
// constraint" or that want to compose it into a larger Interference.
type NoOp[P any] struct{}

func (NoOp[P]) Accepts(RowID, P) bool { return true }
func (NoOp[P]) Commit(RowID, P)       {}
func (NoOp[P]) Rollback(RowID, P)     {}
