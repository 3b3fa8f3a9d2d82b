package nonrel

import (
	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/analysis/lattice"
)

// Domain gives the semantics of expressions over a value lattice.
type Domain[V lattice.Value[V]] interface {
	// Name is the name by which the domain is selected on the command line.
	Name() string

	Top() V
	Bot() V

	// EvalConstant abstracts a literal. Literals that are not integers are ⊤.
	EvalConstant(expr.Constant) V
	EvalUnary(expr.UnaryOp, V) V
	EvalBinary(expr.BinaryOp, V, V) V

	SatisfiesUnary(expr.UnaryOp, V) lattice.Satisfiability
	SatisfiesBinary(expr.BinaryOp, V, V) lattice.Satisfiability

	// AssumeBinary narrows env under the assumption that `l op r` holds.
	// Operators that are not comparisons leave env unchanged.
	AssumeBinary(env Env[V], op expr.BinaryOp, l, r expr.Expr) Env[V]
}

// Eval computes the abstract value of e in env.
func Eval[V lattice.Value[V]](d Domain[V], env Env[V], e expr.Expr) V {
	if env.IsBot() {
		return d.Bot()
	}

	switch e := e.(type) {
	case expr.Identifier:
		return env.Get(e)
	case expr.Constant:
		return d.EvalConstant(e)
	case expr.Opaque, expr.Skip:
		return d.Top()
	case expr.Unary:
		return d.EvalUnary(e.Op, Eval(d, env, e.X))
	case expr.Binary:
		return d.EvalBinary(e.Op, Eval(d, env, e.X), Eval(d, env, e.Y))
	case expr.Ternary:
		switch Satisfies(d, env, e.Cond) {
		case lattice.Satisfied:
			return Eval(d, Assume(d, env, e.Cond), e.Then)
		case lattice.NotSatisfied:
			return Eval(d, assumeNot(d, env, e.Cond), e.Else)
		}
		return Eval(d, Assume(d, env, e.Cond), e.Then).
			MonoJoin(Eval(d, assumeNot(d, env, e.Cond), e.Else))
	}
	panic(errPatternMatch(e))
}

// Satisfies decides whether the condition e holds in env.
func Satisfies[V lattice.Value[V]](d Domain[V], env Env[V], e expr.Expr) lattice.Satisfiability {
	if env.IsBot() {
		return lattice.NotSatisfied
	}

	switch e := e.(type) {
	case expr.Constant:
		if b, ok := e.Value.(bool); ok {
			return lattice.SatisfiabilityOf(b)
		}
		return lattice.Unknown
	case expr.Identifier, expr.Opaque, expr.Skip:
		if Eval(d, env, e).IsBot() {
			return lattice.NotSatisfied
		}
		return lattice.Unknown
	case expr.Unary:
		if e.Op == expr.Not {
			return Satisfies(d, env, e.X).Negate()
		}
		return d.SatisfiesUnary(e.Op, Eval(d, env, e.X))
	case expr.Binary:
		switch e.Op {
		case expr.And:
			return Satisfies(d, env, e.X).And(Satisfies(d, env, e.Y))
		case expr.Or:
			return Satisfies(d, env, e.X).Or(Satisfies(d, env, e.Y))
		}
		return d.SatisfiesBinary(e.Op, Eval(d, env, e.X), Eval(d, env, e.Y))
	case expr.Ternary:
		switch Satisfies(d, env, e.Cond) {
		case lattice.Satisfied:
			return Satisfies(d, env, e.Then)
		case lattice.NotSatisfied:
			return Satisfies(d, env, e.Else)
		}
		return Satisfies(d, env, e.Then).Join(Satisfies(d, env, e.Else))
	}
	panic(errPatternMatch(e))
}

// Assume narrows env under the assumption that the condition e holds. If e
// cannot hold, the result is the bottom environment.
func Assume[V lattice.Value[V]](d Domain[V], env Env[V], e expr.Expr) Env[V] {
	if env.IsBot() {
		return env
	}
	if Satisfies(d, env, e) == lattice.NotSatisfied {
		return env.Bottom()
	}

	switch e := e.(type) {
	case expr.Unary:
		if e.Op == expr.Not {
			return assumeNot(d, env, e.X)
		}
	case expr.Binary:
		switch e.Op {
		case expr.And:
			return Assume(d, Assume(d, env, e.X), e.Y)
		case expr.Or:
			return Assume(d, env, e.X).Join(Assume(d, env, e.Y))
		}
		return d.AssumeBinary(env, e.Op, e.X, e.Y)
	case expr.Ternary:
		return Assume(d, Assume(d, env, e.Cond), e.Then).
			Join(Assume(d, assumeNot(d, env, e.Cond), e.Else))
	}
	return env
}

// assumeNot narrows env under the assumption that e does not hold.
func assumeNot[V lattice.Value[V]](d Domain[V], env Env[V], e expr.Expr) Env[V] {
	if ne, ok := Negate(e); ok {
		return Assume(d, env, ne)
	}
	if Satisfies(d, env, e) == lattice.Satisfied {
		return env.Bottom()
	}
	return env
}

// Negate pushes a logical negation into a condition, flipping comparisons
// and applying De Morgan's laws. It fails for conditions without a
// negated form in the expression model, such as boolean variables.
func Negate(e expr.Expr) (expr.Expr, bool) {
	switch e := e.(type) {
	case expr.Unary:
		if e.Op == expr.Not {
			return e.X, true
		}
	case expr.Binary:
		switch e.Op {
		case expr.And, expr.Or:
			x, ok := Negate(e.X)
			if !ok {
				x = expr.Unary{Op: expr.Not, X: e.X}
			}
			y, ok := Negate(e.Y)
			if !ok {
				y = expr.Unary{Op: expr.Not, X: e.Y}
			}
			op := expr.Or
			if e.Op == expr.Or {
				op = expr.And
			}
			return expr.Binary{Op: op, X: x, Y: y}, true
		}
		if op, ok := e.Op.Negate(); ok {
			return expr.Binary{Op: op, X: e.X, Y: e.Y}, true
		}
	case expr.Constant:
		if b, ok := e.Value.(bool); ok {
			return expr.Constant{Value: !b}, true
		}
	}
	return nil, false
}
