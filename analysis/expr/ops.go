package expr

import "fmt"

// UnaryOp enumerates the unary operators of the expression model.
type UnaryOp uint8

const (
	// Neg is numeric negation, -x.
	Neg UnaryOp = iota
	// Not is logical negation, !x.
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	}
	panic(fmt.Errorf("invalid unary operator %d", op))
}

// BinaryOp enumerates the binary operators of the expression model.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Gt
	Ge
	Lt
	Le
	And
	Or
)

var binaryOpStrings = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",
	Eq:  "==",
	Ne:  "!=",
	Gt:  ">",
	Ge:  ">=",
	Lt:  "<",
	Le:  "<=",
	And: "&&",
	Or:  "||",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpStrings) {
		return binaryOpStrings[op]
	}
	panic(fmt.Errorf("invalid binary operator %d", op))
}

// IsArithmetic holds for +, -, *, / and %.
func (op BinaryOp) IsArithmetic() bool {
	return op <= Mod
}

// IsComparison holds for the six relational operators.
func (op BinaryOp) IsComparison() bool {
	return Eq <= op && op <= Le
}

// IsLogical holds for && and ||.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// Flip returns the operator op' such that `a op b` holds iff `b op' a`
// holds. Operators other than comparisons are returned unchanged.
func (op BinaryOp) Flip() BinaryOp {
	switch op {
	case Gt:
		return Lt
	case Ge:
		return Le
	case Lt:
		return Gt
	case Le:
		return Ge
	}
	return op
}

// Negate returns the comparison that holds exactly when op does not.
// The second result is false for operators that are not comparisons.
func (op BinaryOp) Negate() (BinaryOp, bool) {
	switch op {
	case Eq:
		return Ne, true
	case Ne:
		return Eq, true
	case Gt:
		return Le, true
	case Ge:
		return Lt, true
	case Lt:
		return Ge, true
	case Le:
		return Gt, true
	}
	return op, false
}
