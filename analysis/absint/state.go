// Package absint computes the fixpoint of an abstract state over the CFG of
// a function. States are either environments of a value domain or sets of
// dataflow facts.
package absint

import (
	"github.com/cs-au-dk/absdom/analysis/expr"
)

// State is an abstract program state. All operations are pure.
type State[S any] interface {
	Join(S) S
	Widen(S) S
	Leq(S) bool
	IsBot() bool
	// Bottom is the state of unreached program points.
	Bottom() S
	String() string

	// Assign is the transfer function of `id = e` at pp.
	Assign(id expr.Identifier, e expr.Expr, pp expr.ProgramPoint) S
	// SmallStep is the transfer function of evaluating e at pp.
	SmallStep(e expr.Expr, pp expr.ProgramPoint) S
	// Assume refines the state on the edge where the condition e holds.
	Assume(e expr.Expr, pp expr.ProgramPoint) S
}
