package nonrel

import (
	"github.com/cs-au-dk/absdom/analysis/expr"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
)

// narrowing refines the value x of a variable under the assumption that
// `x op v` holds for some value abstracted by v. The result is below x.
type narrowing[V L.Value[V]] func(op expr.BinaryOp, x, v V) V

// assumeComparison narrows every variable operand of `l op r` by the
// abstract value of the other operand. For `c op x` the operator is
// flipped so that the variable is on the left.
func assumeComparison[V L.Value[V]](
	d Domain[V],
	env Env[V],
	op expr.BinaryOp,
	l, r expr.Expr,
	narrow narrowing[V],
) Env[V] {
	if !op.IsComparison() || env.IsBot() {
		return env
	}
	if d.SatisfiesBinary(op, Eval(d, env, l), Eval(d, env, r)) == L.NotSatisfied {
		return env.Bottom()
	}

	if x, ok := l.(expr.Identifier); ok {
		env = refine(env, x, narrow(op, env.Get(x), Eval(d, env, r)))
	}
	if x, ok := r.(expr.Identifier); ok {
		env = refine(env, x, narrow(op.Flip(), env.Get(x), Eval(d, env, l)))
	}
	return env
}

// refine binds x to its narrowed value v, unless v is its current value.
// Variables that are merely compared stay unbound.
func refine[V L.Value[V]](env Env[V], x expr.Identifier, v V) Env[V] {
	if env.Get(x).MonoLeq(v) {
		return env
	}
	return env.Assign(x, v)
}

// narrowExtSign meets x with the bound imposed by `x op v`. Inequality only
// excludes a definite zero.
func narrowExtSign(op expr.BinaryOp, x, v L.ExtSign) L.ExtSign {
	if op == expr.Ne {
		return L.ExcludeExtSign(x, v)
	}
	bound, ok := L.ExtSignBound(op, v)
	if !ok {
		return x
	}
	return x.MonoMeet(bound)
}

// narrowParity only refines on equality, where x takes the parity of v.
func narrowParity(op expr.BinaryOp, x, v L.Parity) L.Parity {
	bound, ok := L.ParityBound(op, v)
	if !ok {
		return x
	}
	return x.MonoMeet(bound)
}
