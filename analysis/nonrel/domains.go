package nonrel

import (
	"fmt"

	"github.com/cs-au-dk/absdom/analysis/expr"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
)

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

type (
	// SignDomain interprets integers by their sign.
	SignDomain struct{}
	// ExtSignDomain interprets integers by their extended sign.
	ExtSignDomain struct{}
	// ParityDomain interprets integers by their parity.
	ParityDomain struct{}
	// ExtSignParityDomain interprets integers in the reduced product of
	// extended signs and parities.
	ExtSignParityDomain struct{}
)

var (
	_ Domain[L.Sign]          = SignDomain{}
	_ Domain[L.ExtSign]       = ExtSignDomain{}
	_ Domain[L.Parity]        = ParityDomain{}
	_ Domain[L.ExtSignParity] = ExtSignParityDomain{}
)

func (SignDomain) Name() string { return "sign" }
func (SignDomain) Top() L.Sign  { return L.SignTop }
func (SignDomain) Bot() L.Sign  { return L.SignBot }

func (SignDomain) EvalConstant(c expr.Constant) L.Sign {
	if n, ok := c.IntValue(); ok {
		return L.Elements().Sign(n)
	}
	return L.SignTop
}

func (SignDomain) EvalUnary(op expr.UnaryOp, v L.Sign) L.Sign {
	return L.EvalSignUnary(op, v)
}

func (SignDomain) EvalBinary(op expr.BinaryOp, l, r L.Sign) L.Sign {
	return L.EvalSignBinary(op, l, r)
}

func (SignDomain) SatisfiesUnary(op expr.UnaryOp, v L.Sign) L.Satisfiability {
	return L.SatisfiesSignUnary(op, v)
}

func (SignDomain) SatisfiesBinary(op expr.BinaryOp, l, r L.Sign) L.Satisfiability {
	return L.SatisfiesSignBinary(op, l, r)
}

// AssumeBinary narrows through the extended sign of the variable, which is
// then projected back onto the sign lattice.
func (d SignDomain) AssumeBinary(env Env[L.Sign], op expr.BinaryOp, l, r expr.Expr) Env[L.Sign] {
	return assumeComparison[L.Sign](d, env, op, l, r, func(op expr.BinaryOp, x, v L.Sign) L.Sign {
		return L.SignOf(narrowExtSign(op, x.ExtSign(), v.ExtSign()))
	})
}

func (ExtSignDomain) Name() string   { return "extsign" }
func (ExtSignDomain) Top() L.ExtSign { return L.ExtSignTop }
func (ExtSignDomain) Bot() L.ExtSign { return L.ExtSignBot }

func (ExtSignDomain) EvalConstant(c expr.Constant) L.ExtSign {
	if n, ok := c.IntValue(); ok {
		return L.Elements().ExtSign(n)
	}
	return L.ExtSignTop
}

func (ExtSignDomain) EvalUnary(op expr.UnaryOp, v L.ExtSign) L.ExtSign {
	return L.EvalExtSignUnary(op, v)
}

func (ExtSignDomain) EvalBinary(op expr.BinaryOp, l, r L.ExtSign) L.ExtSign {
	return L.EvalExtSignBinary(op, l, r)
}

func (ExtSignDomain) SatisfiesUnary(op expr.UnaryOp, v L.ExtSign) L.Satisfiability {
	return L.SatisfiesExtSignUnary(op, v)
}

func (ExtSignDomain) SatisfiesBinary(op expr.BinaryOp, l, r L.ExtSign) L.Satisfiability {
	return L.SatisfiesExtSignBinary(op, l, r)
}

func (d ExtSignDomain) AssumeBinary(env Env[L.ExtSign], op expr.BinaryOp, l, r expr.Expr) Env[L.ExtSign] {
	return assumeComparison[L.ExtSign](d, env, op, l, r, narrowExtSign)
}

func (ParityDomain) Name() string  { return "parity" }
func (ParityDomain) Top() L.Parity { return L.ParityTop }
func (ParityDomain) Bot() L.Parity { return L.ParityBot }

func (ParityDomain) EvalConstant(c expr.Constant) L.Parity {
	if n, ok := c.IntValue(); ok {
		return L.Elements().Parity(n)
	}
	return L.ParityTop
}

func (ParityDomain) EvalUnary(op expr.UnaryOp, v L.Parity) L.Parity {
	return L.EvalParityUnary(op, v)
}

func (ParityDomain) EvalBinary(op expr.BinaryOp, l, r L.Parity) L.Parity {
	return L.EvalParityBinary(op, l, r)
}

func (ParityDomain) SatisfiesUnary(op expr.UnaryOp, v L.Parity) L.Satisfiability {
	return L.SatisfiesParityUnary(op, v)
}

func (ParityDomain) SatisfiesBinary(op expr.BinaryOp, l, r L.Parity) L.Satisfiability {
	return L.SatisfiesParityBinary(op, l, r)
}

func (d ParityDomain) AssumeBinary(env Env[L.Parity], op expr.BinaryOp, l, r expr.Expr) Env[L.Parity] {
	return assumeComparison[L.Parity](d, env, op, l, r, narrowParity)
}

func (ExtSignParityDomain) Name() string         { return "extsign-parity" }
func (ExtSignParityDomain) Top() L.ExtSignParity { return L.ExtSignParityTop }
func (ExtSignParityDomain) Bot() L.ExtSignParity { return L.ExtSignParityBot }

func (ExtSignParityDomain) EvalConstant(c expr.Constant) L.ExtSignParity {
	if n, ok := c.IntValue(); ok {
		return L.Elements().ExtSignParityOf(n)
	}
	return L.ExtSignParityTop
}

func (ExtSignParityDomain) EvalUnary(op expr.UnaryOp, v L.ExtSignParity) L.ExtSignParity {
	return L.EvalExtSignParityUnary(op, v)
}

func (ExtSignParityDomain) EvalBinary(op expr.BinaryOp, l, r L.ExtSignParity) L.ExtSignParity {
	return L.EvalExtSignParityBinary(op, l, r)
}

func (ExtSignParityDomain) SatisfiesUnary(op expr.UnaryOp, v L.ExtSignParity) L.Satisfiability {
	return L.SatisfiesExtSignParityUnary(op, v)
}

func (ExtSignParityDomain) SatisfiesBinary(op expr.BinaryOp, l, r L.ExtSignParity) L.Satisfiability {
	return L.SatisfiesExtSignParityBinary(op, l, r)
}

// AssumeBinary narrows both components and reduces the result, so that e.g.
// assuming x > 0 for an odd x of unknown sign yields (+, Odd).
func (d ExtSignParityDomain) AssumeBinary(env Env[L.ExtSignParity], op expr.BinaryOp, l, r expr.Expr) Env[L.ExtSignParity] {
	return assumeComparison[L.ExtSignParity](d, env, op, l, r, func(op expr.BinaryOp, x, v L.ExtSignParity) L.ExtSignParity {
		return L.Elements().ExtSignParity(
			narrowExtSign(op, x.Sign(), v.Sign()),
			narrowParity(op, x.Parity(), v.Parity()),
		)
	})
}
