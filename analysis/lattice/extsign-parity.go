package lattice

import "github.com/cs-au-dk/absdom/analysis/expr"

// ExtSignParity is a pair of an extended sign and a parity. Elements are
// kept reduced: pairs denoting no integer collapse to ⊥, and pairs where
// one component rules out part of the other are tightened.
//
//	╔═══════════╦═══════════╗
//	║ pair      ║ reduced   ║
//	╠═══════════╬═══════════╣
//	║ (⊥, _)    ║ (⊥, ⊥)    ║
//	║ (_, ⊥)    ║ (⊥, ⊥)    ║
//	║ (0, Odd)  ║ (⊥, ⊥)    ║
//	║ (0, ⊤)    ║ (0, Even) ║
//	║ (0+, Odd) ║ (+, Odd)  ║
//	║ (0-, Odd) ║ (-, Odd)  ║
//	╚═══════════╩═══════════╝
type ExtSignParity struct {
	sign   ExtSign
	parity Parity
}

var (
	ExtSignParityBot = ExtSignParity{ExtSignBot, ParityBot}
	ExtSignParityTop = ExtSignParity{ExtSignTop, ParityTop}
)

// ExtSignParity creates the reduced pair of s and p.
func (elementFactory) ExtSignParity(s ExtSign, p Parity) ExtSignParity {
	return ExtSignParity{s, p}.Reduce()
}

// ExtSignParityOf abstracts an integer.
func (elementFactory) ExtSignParityOf(n int64) ExtSignParity {
	return elFact.ExtSignParity(elFact.ExtSign(n), elFact.Parity(n))
}

// Reduce removes the combinations that cannot hold together. Reduce is
// idempotent and never enlarges the set of denoted integers.
func (e ExtSignParity) Reduce() ExtSignParity {
	switch {
	case e.sign == ExtSignBot || e.parity == ParityBot:
		return ExtSignParityBot
	case e.sign == ExtSignZero && e.parity == Odd:
		return ExtSignParityBot
	case e.sign == ExtSignZero && e.parity == ParityTop:
		return ExtSignParity{ExtSignZero, Even}
	case e.sign == ExtSignPosOrZero && e.parity == Odd:
		return ExtSignParity{ExtSignPos, Odd}
	case e.sign == ExtSignNegOrZero && e.parity == Odd:
		return ExtSignParity{ExtSignNeg, Odd}
	}
	return e
}

// Sign projects the extended sign component.
func (e ExtSignParity) Sign() ExtSign {
	return e.sign
}

// Parity projects the parity component.
func (e ExtSignParity) Parity() Parity {
	return e.parity
}

// Lattice retrieves the reduced product lattice.
func (ExtSignParity) Lattice() Lattice {
	return extSignParityLattice
}

func (e ExtSignParity) String() string {
	return "(" + e.sign.String() + ", " + e.parity.String() + ")"
}

func (e ExtSignParity) Height() int {
	return e.sign.Height() + e.parity.Height()
}

func (e ExtSignParity) IsTop() bool {
	return e.sign.IsTop() && e.parity.IsTop()
}

func (e ExtSignParity) IsBot() bool {
	return e.sign.IsBot() && e.parity.IsBot()
}

func (e1 ExtSignParity) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 ExtSignParity) eq(e2 Element) bool {
	return e1 == e2.(ExtSignParity)
}

func (e1 ExtSignParity) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

func (e1 ExtSignParity) leq(e2 Element) bool {
	return e1.MonoLeq(e2.(ExtSignParity))
}

// MonoLeq orders reduced pairs componentwise.
func (e1 ExtSignParity) MonoLeq(e2 ExtSignParity) bool {
	return e1.sign.MonoLeq(e2.sign) && e1.parity.MonoLeq(e2.parity)
}

func (e1 ExtSignParity) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 ExtSignParity) geq(e2 Element) bool {
	return e2.leq(e1)
}

func (e1 ExtSignParity) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

func (e1 ExtSignParity) join(e2 Element) Element {
	return e1.MonoJoin(e2.(ExtSignParity))
}

func (e1 ExtSignParity) MonoJoin(e2 ExtSignParity) ExtSignParity {
	return ExtSignParity{
		e1.sign.MonoJoin(e2.sign),
		e1.parity.MonoJoin(e2.parity),
	}.Reduce()
}

func (e1 ExtSignParity) MonoWiden(e2 ExtSignParity) ExtSignParity {
	return ExtSignParity{
		e1.sign.MonoWiden(e2.sign),
		e1.parity.MonoWiden(e2.parity),
	}.Reduce()
}

func (e1 ExtSignParity) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

func (e1 ExtSignParity) meet(e2 Element) Element {
	return e1.MonoMeet(e2.(ExtSignParity))
}

func (e1 ExtSignParity) MonoMeet(e2 ExtSignParity) ExtSignParity {
	return ExtSignParity{
		e1.sign.MonoMeet(e2.sign),
		e1.parity.MonoMeet(e2.parity),
	}.Reduce()
}

var _ = isValue[ExtSignParity]

// EvalExtSignParityUnary evaluates both components and reduces the result.
func EvalExtSignParityUnary(op expr.UnaryOp, e ExtSignParity) ExtSignParity {
	return ExtSignParity{
		EvalExtSignUnary(op, e.sign),
		EvalParityUnary(op, e.parity),
	}.Reduce()
}

// EvalExtSignParityBinary evaluates both components and reduces the result.
func EvalExtSignParityBinary(op expr.BinaryOp, l, r ExtSignParity) ExtSignParity {
	return ExtSignParity{
		EvalExtSignBinary(op, l.sign, r.sign),
		EvalParityBinary(op, l.parity, r.parity),
	}.Reduce()
}

// SatisfiesExtSignParityUnary decides unary predicates.
func SatisfiesExtSignParityUnary(op expr.UnaryOp, e ExtSignParity) Satisfiability {
	return SatisfiesExtSignUnary(op, e.sign).Refine(SatisfiesParityUnary(op, e.parity))
}

// SatisfiesExtSignParityBinary decides `l op r` with whichever component
// gives a definite answer. The sign decides orderings, and either
// component may rule out equality.
func SatisfiesExtSignParityBinary(op expr.BinaryOp, l, r ExtSignParity) Satisfiability {
	return SatisfiesExtSignBinary(op, l.sign, r.sign).
		Refine(SatisfiesParityBinary(op, l.parity, r.parity))
}
