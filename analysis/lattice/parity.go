package lattice

import "github.com/cs-au-dk/absdom/analysis/expr"

// Parity is a member of the flat parity lattice ⊥ ⊑ Even, Odd ⊑ ⊤.
type Parity uint8

const (
	ParityBot Parity = iota
	Even
	Odd
	ParityTop
)

// Parity abstracts an integer.
func (elementFactory) Parity(n int64) Parity {
	if n%2 == 0 {
		return Even
	}
	return Odd
}

// Lattice retrieves the parity lattice.
func (Parity) Lattice() Lattice {
	return parityLattice
}

func (p Parity) String() string {
	switch p {
	case ParityBot:
		return "⊥"
	case Even:
		return "Even"
	case Odd:
		return "Odd"
	case ParityTop:
		return "⊤"
	}
	panic(errPatternMatch(uint8(p)))
}

func (p Parity) Height() int {
	switch p {
	case ParityBot:
		return 0
	case ParityTop:
		return 2
	}
	return 1
}

func (p Parity) IsTop() bool {
	return p == ParityTop
}

func (p Parity) IsBot() bool {
	return p == ParityBot
}

func (e1 Parity) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 Parity) eq(e2 Element) bool {
	return e1 == e2.(Parity)
}

func (e1 Parity) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

func (e1 Parity) leq(e2 Element) bool {
	return e1.MonoLeq(e2.(Parity))
}

func (e1 Parity) MonoLeq(e2 Parity) bool {
	return e1 == e2 || e1 == ParityBot || e2 == ParityTop
}

func (e1 Parity) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 Parity) geq(e2 Element) bool {
	return e2.leq(e1)
}

func (e1 Parity) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

func (e1 Parity) join(e2 Element) Element {
	return e1.MonoJoin(e2.(Parity))
}

func (e1 Parity) MonoJoin(e2 Parity) Parity {
	switch {
	case e1.MonoLeq(e2):
		return e2
	case e2.MonoLeq(e1):
		return e1
	}
	return ParityTop
}

func (e1 Parity) MonoWiden(e2 Parity) Parity {
	return e1.MonoJoin(e2)
}

func (e1 Parity) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

func (e1 Parity) meet(e2 Element) Element {
	return e1.MonoMeet(e2.(Parity))
}

func (e1 Parity) MonoMeet(e2 Parity) Parity {
	switch {
	case e1.MonoLeq(e2):
		return e1
	case e2.MonoLeq(e1):
		return e2
	}
	return ParityBot
}

var _ = isValue[Parity]

// EvalParityUnary abstracts the result of a unary operator. Negation
// preserves parity.
func EvalParityUnary(op expr.UnaryOp, p Parity) Parity {
	if p == ParityBot {
		return ParityBot
	}
	switch op {
	case expr.Neg:
		return p
	case expr.Not:
		return ParityTop
	}
	panic(errPatternMatch(op))
}

// EvalParityBinary abstracts the result of a binary operator following
// arithmetic modulo 2. The quotient of two odd numbers is taken to be exact,
// and an even modulus preserves the parity of the dividend.
func EvalParityBinary(op expr.BinaryOp, l, r Parity) Parity {
	if l == ParityBot || r == ParityBot {
		return ParityBot
	}

	switch op {
	case expr.Add, expr.Sub:
		switch {
		case l == ParityTop || r == ParityTop:
			return ParityTop
		case l == r:
			return Even
		}
		return Odd
	case expr.Mul:
		switch {
		case l == Even || r == Even:
			return Even
		case l == ParityTop || r == ParityTop:
			return ParityTop
		}
		return Odd
	case expr.Div:
		if l == Odd && r == Odd {
			return Odd
		}
		return ParityTop
	case expr.Mod:
		if r == Even {
			return l
		}
		return ParityTop
	case expr.Eq, expr.Ne, expr.Gt, expr.Ge, expr.Lt, expr.Le, expr.And, expr.Or:
		return ParityTop
	}
	panic(errPatternMatch(op))
}

// SatisfiesParityUnary decides unary predicates.
func SatisfiesParityUnary(op expr.UnaryOp, p Parity) Satisfiability {
	if p == ParityBot {
		return NotSatisfied
	}
	return Unknown
}

// SatisfiesParityBinary decides `l op r`. Numbers of different parity are
// never equal; two numbers of the same parity may or may not be. Parity
// carries no order information.
func SatisfiesParityBinary(op expr.BinaryOp, l, r Parity) Satisfiability {
	if l == ParityBot || r == ParityBot {
		return NotSatisfied
	}

	distinct := l != ParityTop && r != ParityTop && l != r
	switch op {
	case expr.Eq:
		if distinct {
			return NotSatisfied
		}
		return Unknown
	case expr.Ne:
		if distinct {
			return Satisfied
		}
		return Unknown
	case expr.Gt, expr.Ge, expr.Lt, expr.Le,
		expr.Add, expr.Sub, expr.Mul, expr.Div, expr.Mod, expr.And, expr.Or:
		return Unknown
	}
	panic(errPatternMatch(op))
}

// ParityBound returns the tightest parity containing every x for which
// `x op v` may hold. Only equality constrains parity.
func ParityBound(op expr.BinaryOp, v Parity) (Parity, bool) {
	if !op.IsComparison() {
		return ParityTop, false
	}
	if v == ParityBot {
		return ParityBot, true
	}
	if op == expr.Eq {
		return v, true
	}
	return ParityTop, true
}
