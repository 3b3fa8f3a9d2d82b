package lattice

import (
	"github.com/cs-au-dk/absdom/analysis/expr"
)

// classTable gives, for every pair of concrete sign classes (negative, zero,
// positive), the classes the result of an operation may belong to.
// Rows are indexed by the left operand, columns by the right operand.
type classTable [3][3]signClasses

const (
	nz  = classNeg | classZero
	zp  = classZero | classPos
	nzp = classNeg | classZero | classPos
)

// Integer arithmetic as performed by Go: division truncates towards zero,
// and the remainder takes the sign of the dividend. A zero divisor has no
// result.
var (
	addClasses = classTable{
		//          n         z          p
		/* n */ {classNeg, classNeg, nzp},
		/* z */ {classNeg, classZero, classPos},
		/* p */ {nzp, classPos, classPos},
	}
	mulClasses = classTable{
		/* n */ {classPos, classZero, classNeg},
		/* z */ {classZero, classZero, classZero},
		/* p */ {classNeg, classZero, classPos},
	}
	// -3 / -5 = 0 and 3 / -5 = 0, so quotients may be zero.
	divClasses = classTable{
		/* n */ {zp, 0, nz},
		/* z */ {classZero, 0, classZero},
		/* p */ {nz, 0, zp},
	}
	modClasses = classTable{
		/* n */ {nz, 0, nz},
		/* z */ {classZero, 0, classZero},
		/* p */ {zp, 0, zp},
	}
)

// lift computes the best abstraction of the table's operation over all the
// concrete sign classes of the operands.
func (t *classTable) lift(l, r ExtSign) ExtSign {
	var res signClasses
	lc, rc := l.gamma(), r.gamma()
	for i := 0; i < 3; i++ {
		if lc&(1<<i) == 0 {
			continue
		}
		for j := 0; j < 3; j++ {
			if rc&(1<<j) != 0 {
				res |= t[i][j]
			}
		}
	}
	return res.alpha()
}

type extSignTable [ExtSignTop + 1][ExtSignTop + 1]ExtSign

func (t *classTable) tabulate() (res extSignTable) {
	for _, l := range extSignLattice.Elements() {
		for _, r := range extSignLattice.Elements() {
			res[l][r] = t.lift(l, r)
		}
	}
	return
}

// Transfer function truth tables over all 7×7 pairs of extended signs.
var (
	extSignAdd = addClasses.tabulate()
	extSignMul = mulClasses.tabulate()
	extSignDiv = divClasses.tabulate()
	extSignMod = modClasses.tabulate()
)

// NegateExtSign swaps the negative and positive classes.
func NegateExtSign(e ExtSign) ExtSign {
	switch e {
	case ExtSignNeg:
		return ExtSignPos
	case ExtSignPos:
		return ExtSignNeg
	case ExtSignNegOrZero:
		return ExtSignPosOrZero
	case ExtSignPosOrZero:
		return ExtSignNegOrZero
	case ExtSignBot, ExtSignZero, ExtSignTop:
		return e
	}
	panic(errPatternMatch(uint8(e)))
}

// EvalExtSignUnary abstracts the result of a unary operator.
func EvalExtSignUnary(op expr.UnaryOp, e ExtSign) ExtSign {
	if e == ExtSignBot {
		return ExtSignBot
	}
	switch op {
	case expr.Neg:
		return NegateExtSign(e)
	case expr.Not:
		return ExtSignTop
	}
	panic(errPatternMatch(op))
}

// EvalExtSignBinary abstracts the result of a binary operator. Comparisons
// and logical operators do not produce numbers and evaluate to ⊤.
func EvalExtSignBinary(op expr.BinaryOp, l, r ExtSign) ExtSign {
	switch op {
	case expr.Add:
		return extSignAdd[l][r]
	case expr.Sub:
		return extSignAdd[l][NegateExtSign(r)]
	case expr.Mul:
		return extSignMul[l][r]
	case expr.Div:
		return extSignDiv[l][r]
	case expr.Mod:
		return extSignMod[l][r]
	case expr.Eq, expr.Ne, expr.Gt, expr.Ge, expr.Lt, expr.Le, expr.And, expr.Or:
		if l == ExtSignBot || r == ExtSignBot {
			return ExtSignBot
		}
		return ExtSignTop
	}
	panic(errPatternMatch(op))
}

// outcomes is a set of possible truth values of a predicate.
type outcomes uint8

const (
	mayHold outcomes = 1 << iota
	mayFail
	holdsOrFails = mayHold | mayFail
)

type outcomeTable [3][3]outcomes

var (
	//              n             z        p
	eqOutcomes = outcomeTable{
		/* n */ {holdsOrFails, mayFail, mayFail},
		/* z */ {mayFail, mayHold, mayFail},
		/* p */ {mayFail, mayFail, holdsOrFails},
	}
	gtOutcomes = outcomeTable{
		/* n */ {holdsOrFails, mayFail, mayFail},
		/* z */ {mayHold, mayFail, mayFail},
		/* p */ {mayHold, mayHold, holdsOrFails},
	}
)

func (t *outcomeTable) lift(l, r ExtSign) Satisfiability {
	var res outcomes
	lc, rc := l.gamma(), r.gamma()
	for i := 0; i < 3; i++ {
		if lc&(1<<i) == 0 {
			continue
		}
		for j := 0; j < 3; j++ {
			if rc&(1<<j) != 0 {
				res |= t[i][j]
			}
		}
	}

	switch res {
	case mayHold:
		return Satisfied
	case mayFail:
		return NotSatisfied
	}
	return Unknown
}

// SatisfiesExtSignUnary decides unary predicates. Numeric values carry no
// truth value, so only unreachable operands give a definite answer.
func SatisfiesExtSignUnary(op expr.UnaryOp, e ExtSign) Satisfiability {
	if e == ExtSignBot {
		return NotSatisfied
	}
	return Unknown
}

// SatisfiesExtSignBinary decides `l op r`. Equality is definite only for
// 0 == 0 and for disjoint classes; > is definite only for strictly ordered
// classes. The remaining comparisons are derived:
//
//	l ≥ r  =  l = r ∨ l > r
//	l ≤ r  =  ¬(l > r)
//	l < r  =  ¬(l > r) ∧ ¬(l = r)
func SatisfiesExtSignBinary(op expr.BinaryOp, l, r ExtSign) Satisfiability {
	if l == ExtSignBot || r == ExtSignBot {
		return NotSatisfied
	}

	eq := func() Satisfiability { return eqOutcomes.lift(l, r) }
	gt := func() Satisfiability { return gtOutcomes.lift(l, r) }

	switch op {
	case expr.Eq:
		return eq()
	case expr.Ne:
		return eq().Negate()
	case expr.Gt:
		return gt()
	case expr.Ge:
		return eq().Or(gt())
	case expr.Le:
		return gt().Negate()
	case expr.Lt:
		return gt().Negate().And(eq().Negate())
	case expr.Add, expr.Sub, expr.Mul, expr.Div, expr.Mod, expr.And, expr.Or:
		return Unknown
	}
	panic(errPatternMatch(op))
}

// ExtSignBound returns the tightest extended sign containing every x for
// which `x op v` may hold, given the extended sign of v:
//
//	╔════════╦═══╦═══╦═══╦════╦════╦═══╗
//	║ x op v ║ - ║ 0 ║ + ║ 0- ║ 0+ ║ ⊤ ║
//	╠════════╬═══╬═══╬═══╬════╬════╬═══╣
//	║ x == v ║ - ║ 0 ║ + ║ 0- ║ 0+ ║ ⊤ ║
//	║ x >= v ║ ⊤ ║ 0+║ + ║ ⊤  ║ 0+ ║ ⊤ ║
//	║ x >  v ║ ⊤ ║ + ║ + ║ ⊤  ║ +  ║ ⊤ ║
//	║ x <= v ║ - ║ 0-║ ⊤ ║ 0- ║ ⊤  ║ ⊤ ║
//	║ x <  v ║ - ║ - ║ ⊤ ║ -  ║ ⊤  ║ ⊤ ║
//	║ x != v ║ ⊤ ║ ⊤ ║ ⊤ ║ ⊤  ║ ⊤  ║ ⊤ ║
//	╚════════╩═══╩═══╩═══╩════╩════╩═══╝
//
// A ⊥ operand gives ⊥. The second result is false for operators that are
// not comparisons.
func ExtSignBound(op expr.BinaryOp, v ExtSign) (ExtSign, bool) {
	if !op.IsComparison() {
		return ExtSignTop, false
	}
	if v == ExtSignBot {
		return ExtSignBot, true
	}

	switch op {
	case expr.Eq:
		return v, true
	case expr.Ne:
		return ExtSignTop, true
	case expr.Ge:
		switch {
		case v.MonoLeq(ExtSignPos):
			return ExtSignPos, true
		case v.MonoLeq(ExtSignPosOrZero):
			return ExtSignPosOrZero, true
		}
	case expr.Gt:
		if v.MonoLeq(ExtSignPosOrZero) {
			return ExtSignPos, true
		}
	case expr.Le:
		switch {
		case v.MonoLeq(ExtSignNeg):
			return ExtSignNeg, true
		case v.MonoLeq(ExtSignNegOrZero):
			return ExtSignNegOrZero, true
		}
	case expr.Lt:
		if v.MonoLeq(ExtSignNegOrZero) {
			return ExtSignNeg, true
		}
	}
	return ExtSignTop, true
}

// ExcludeExtSign removes v from x when v denotes a single value, which for
// signs only happens for 0. This is the only refinement `x != v` allows.
func ExcludeExtSign(x, v ExtSign) ExtSign {
	if v != ExtSignZero {
		return x
	}
	return (x.gamma() &^ classZero).alpha()
}
