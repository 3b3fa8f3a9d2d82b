package lattice

import "github.com/cs-au-dk/absdom/analysis/expr"

// Sign is a member of the sign lattice. The three concrete signs are
// pairwise incomparable, so joining two different signs loses all
// information:
//
//	      ⊤
//	   /  |  \
//	  -   0   +
//	   \  |  /
//	      ⊥
type Sign uint8

const (
	SignBot Sign = iota
	SignNeg
	SignZero
	SignPos
	SignTop
)

// Sign abstracts an integer.
func (elementFactory) Sign(n int64) Sign {
	switch {
	case n > 0:
		return SignPos
	case n < 0:
		return SignNeg
	}
	return SignZero
}

// Lattice retrieves the sign lattice.
func (Sign) Lattice() Lattice {
	return signLattice
}

func (s Sign) String() string {
	switch s {
	case SignBot:
		return "⊥"
	case SignNeg:
		return "-"
	case SignZero:
		return "0"
	case SignPos:
		return "+"
	case SignTop:
		return "⊤"
	}
	panic(errPatternMatch(uint8(s)))
}

func (s Sign) Height() int {
	switch s {
	case SignBot:
		return 0
	case SignTop:
		return 2
	}
	return 1
}

func (s Sign) IsTop() bool {
	return s == SignTop
}

func (s Sign) IsBot() bool {
	return s == SignBot
}

// ExtSign embeds the sign into the extended sign lattice.
func (s Sign) ExtSign() ExtSign {
	switch s {
	case SignBot:
		return ExtSignBot
	case SignNeg:
		return ExtSignNeg
	case SignZero:
		return ExtSignZero
	case SignPos:
		return ExtSignPos
	case SignTop:
		return ExtSignTop
	}
	panic(errPatternMatch(uint8(s)))
}

// SignOf projects an extended sign onto the sign lattice. 0- and 0+ have
// no counterpart and become ⊤.
func SignOf(e ExtSign) Sign {
	switch e {
	case ExtSignBot:
		return SignBot
	case ExtSignNeg:
		return SignNeg
	case ExtSignZero:
		return SignZero
	case ExtSignPos:
		return SignPos
	case ExtSignNegOrZero, ExtSignPosOrZero, ExtSignTop:
		return SignTop
	}
	panic(errPatternMatch(uint8(e)))
}

func (e1 Sign) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 Sign) eq(e2 Element) bool {
	return e1 == e2.(Sign)
}

func (e1 Sign) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

func (e1 Sign) leq(e2 Element) bool {
	return e1.MonoLeq(e2.(Sign))
}

// MonoLeq holds only reflexively, below ⊤ and above ⊥.
func (e1 Sign) MonoLeq(e2 Sign) bool {
	return e1 == e2 || e1 == SignBot || e2 == SignTop
}

func (e1 Sign) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 Sign) geq(e2 Element) bool {
	return e2.leq(e1)
}

func (e1 Sign) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

func (e1 Sign) join(e2 Element) Element {
	return e1.MonoJoin(e2.(Sign))
}

func (e1 Sign) MonoJoin(e2 Sign) Sign {
	switch {
	case e1.MonoLeq(e2):
		return e2
	case e2.MonoLeq(e1):
		return e1
	}
	return SignTop
}

// MonoWiden coincides with the join, since the lattice has finite height.
func (e1 Sign) MonoWiden(e2 Sign) Sign {
	return e1.MonoJoin(e2)
}

func (e1 Sign) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

func (e1 Sign) meet(e2 Element) Element {
	return e1.MonoMeet(e2.(Sign))
}

func (e1 Sign) MonoMeet(e2 Sign) Sign {
	switch {
	case e1.MonoLeq(e2):
		return e1
	case e2.MonoLeq(e1):
		return e2
	}
	return SignBot
}

var _ = isValue[Sign]

// NegateSign swaps - and +.
func NegateSign(s Sign) Sign {
	switch s {
	case SignNeg:
		return SignPos
	case SignPos:
		return SignNeg
	}
	return s
}

// EvalSignUnary abstracts the result of a unary operator.
func EvalSignUnary(op expr.UnaryOp, s Sign) Sign {
	if s == SignBot {
		return SignBot
	}
	switch op {
	case expr.Neg:
		return NegateSign(s)
	case expr.Not:
		return SignTop
	}
	panic(errPatternMatch(op))
}

// EvalSignBinary abstracts the result of a binary operator:
//
//	╔═══════╦═══════════════════════════════════════════════╗
//	║ l + r ║ 0 + r = r, l + 0 = l, s + s = s, otherwise ⊤ ║
//	║ l - r ║ l + (-r)                                      ║
//	║ l * r ║ 0 absorbs, ⊤ otherwise absorbs, sign rule    ║
//	║ l / r ║ r = 0 gives ⊥, 0 / r = 0, otherwise ⊤        ║
//	║ l % r ║ as for l / r                                  ║
//	╚═══════╩═══════════════════════════════════════════════╝
//
// Quotients of non-zero signs are ⊤ since integer division may truncate
// them to zero. A ⊥ operand gives ⊥.
func EvalSignBinary(op expr.BinaryOp, l, r Sign) Sign {
	if l == SignBot || r == SignBot {
		return SignBot
	}

	switch op {
	case expr.Add:
		return signAdd(l, r)
	case expr.Sub:
		return signAdd(l, NegateSign(r))
	case expr.Mul:
		switch {
		case l == SignZero || r == SignZero:
			return SignZero
		case l == SignTop || r == SignTop:
			return SignTop
		case l == r:
			return SignPos
		}
		return SignNeg
	case expr.Div, expr.Mod:
		switch {
		case r == SignZero:
			return SignBot
		case l == SignZero:
			return SignZero
		}
		return SignTop
	case expr.Eq, expr.Ne, expr.Gt, expr.Ge, expr.Lt, expr.Le, expr.And, expr.Or:
		return SignTop
	}
	panic(errPatternMatch(op))
}

func signAdd(l, r Sign) Sign {
	switch {
	case l == SignZero:
		return r
	case r == SignZero, l == r:
		return l
	}
	return SignTop
}

// SatisfiesSignBinary decides `l op r` through the extended sign lattice,
// which contains every sign.
func SatisfiesSignBinary(op expr.BinaryOp, l, r Sign) Satisfiability {
	return SatisfiesExtSignBinary(op, l.ExtSign(), r.ExtSign())
}

// SatisfiesSignUnary decides unary predicates.
func SatisfiesSignUnary(op expr.UnaryOp, s Sign) Satisfiability {
	return SatisfiesExtSignUnary(op, s.ExtSign())
}
