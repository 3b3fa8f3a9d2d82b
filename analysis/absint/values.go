package absint

import (
	"github.com/cs-au-dk/absdom/analysis/cfg"
	"github.com/cs-au-dk/absdom/analysis/dataflow"
	"github.com/cs-au-dk/absdom/analysis/expr"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/nonrel"
)

// ValueState is an environment of a value domain seen as an abstract state.
type ValueState[V L.Value[V]] struct {
	dom nonrel.Domain[V]
	env nonrel.Env[V]
}

// NewValueState creates the state where every variable is unconstrained.
func NewValueState[V L.Value[V]](d nonrel.Domain[V]) ValueState[V] {
	return ValueState[V]{d, nonrel.NewEnv(d)}
}

func (s ValueState[V]) Env() nonrel.Env[V] {
	return s.env
}

func (s ValueState[V]) with(env nonrel.Env[V]) ValueState[V] {
	s.env = env
	return s
}

func (s ValueState[V]) Join(o ValueState[V]) ValueState[V]  { return s.with(s.env.Join(o.env)) }
func (s ValueState[V]) Widen(o ValueState[V]) ValueState[V] { return s.with(s.env.Widen(o.env)) }
func (s ValueState[V]) Leq(o ValueState[V]) bool            { return s.env.Leq(o.env) }
func (s ValueState[V]) IsBot() bool                         { return s.env.IsBot() }
func (s ValueState[V]) Bottom() ValueState[V]               { return s.with(s.env.Bottom()) }
func (s ValueState[V]) String() string                      { return s.env.String() }

func (s ValueState[V]) Assign(id expr.Identifier, e expr.Expr, _ expr.ProgramPoint) ValueState[V] {
	if s.env.IsBot() {
		return s
	}
	return s.with(s.env.Assign(id, nonrel.Eval(s.dom, s.env, e)))
}

// SmallStep leaves the environment unchanged: expressions have no side
// effects on variables.
func (s ValueState[V]) SmallStep(expr.Expr, expr.ProgramPoint) ValueState[V] {
	return s
}

func (s ValueState[V]) Assume(e expr.Expr, _ expr.ProgramPoint) ValueState[V] {
	return s.with(nonrel.Assume(s.dom, s.env, e))
}

// Values runs the value analysis of d over c. Every variable is
// unconstrained on entry.
func Values[V L.Value[V]](d nonrel.Domain[V], c *cfg.Cfg, opts Options) Result[ValueState[V]] {
	return Run(c, NewValueState(d), opts)
}

// AvailableExpressions runs the must-analysis of the expressions computed
// on every path. No expression is available on entry.
func AvailableExpressions(c *cfg.Cfg, opts Options) Result[dataflow.Domain[dataflow.AvailableExpression]] {
	return Run(c, dataflow.AvailableExpressions(), opts)
}

// ReachingDefinitions runs the may-analysis of the assignments that reach
// every program point.
func ReachingDefinitions(c *cfg.Cfg, opts Options) Result[dataflow.Domain[dataflow.ReachingDefinition]] {
	return Run(c, dataflow.ReachingDefinitions(), opts)
}

var (
	_ State[ValueState[L.ExtSign]]                         = ValueState[L.ExtSign]{}
	_ State[dataflow.Domain[dataflow.AvailableExpression]] = dataflow.Domain[dataflow.AvailableExpression]{}
	_ State[dataflow.Domain[dataflow.ReachingDefinition]]  = dataflow.Domain[dataflow.ReachingDefinition]{}
)
