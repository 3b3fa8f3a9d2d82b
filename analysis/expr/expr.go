// Package expr defines the symbolic expressions consumed by the value domains
// and the dataflow analyses. The set of expression kinds is closed; code
// dispatching on it uses exhaustive type switches.
package expr

import (
	"errors"
	"fmt"

	"github.com/cs-au-dk/absdom/utils"
)

// Expr represents a symbolic expression.
type Expr interface {
	fmt.Stringer
	utils.HashableEq[Expr]

	// PushScope marks every identifier in the expression as out of scope
	// for the given token.
	PushScope(ScopeToken) Expr
	// PopScope undoes PushScope. It fails when an identifier of the
	// expression is not an out-of-scope marker for the token.
	PopScope(ScopeToken) (Expr, bool)

	expr()
}

func (Identifier) expr() {}
func (Constant) expr()   {}
func (Opaque) expr()     {}
func (Skip) expr()       {}
func (Unary) expr()      {}
func (Binary) expr()     {}
func (Ternary) expr()    {}

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

var errNilExpr = errors.New("nil expression")

// Constant is a literal. Integer literals are stored as int64; value domains
// abstract any other literal to ⊤.
type Constant struct {
	Value any
}

// Int creates an integer constant.
func Int(n int64) Constant {
	return Constant{n}
}

// IntValue returns the value of an integer constant.
func (c Constant) IntValue() (int64, bool) {
	n, ok := c.Value.(int64)
	return n, ok
}

func (c Constant) String() string {
	return fmt.Sprint(c.Value)
}

func (c Constant) Hash() uint32 {
	return utils.HashString(fmt.Sprintf("%T:%v", c.Value, c.Value))
}

func (c Constant) Equal(o Expr) bool {
	oc, ok := o.(Constant)
	return ok && c.Value == oc.Value
}

func (c Constant) PushScope(ScopeToken) Expr { return c }

func (c Constant) PopScope(ScopeToken) (Expr, bool) { return c, true }

// Opaque is an expression the front-end cannot model, such as a call. It is
// printed as its source text and value domains abstract it to ⊤. Vars are
// the variables it reads.
type Opaque struct {
	Text string
	Vars []Identifier
}

func (o Opaque) String() string {
	return o.Text
}

func (o Opaque) Hash() uint32 {
	hs := make([]uint32, 0, len(o.Vars)+2)
	hs = append(hs, 0x0d, utils.HashString(o.Text))
	for _, id := range o.Vars {
		hs = append(hs, id.Hash())
	}
	return utils.HashCombine(hs...)
}

func (o Opaque) Equal(e Expr) bool {
	oo, ok := e.(Opaque)
	if !ok || o.Text != oo.Text || len(o.Vars) != len(oo.Vars) {
		return false
	}
	for i, id := range o.Vars {
		if !id.EqualId(oo.Vars[i]) {
			return false
		}
	}
	return true
}

func (o Opaque) PushScope(t ScopeToken) Expr {
	vars := make([]Identifier, len(o.Vars))
	for i, id := range o.Vars {
		vars[i] = id.Push(t)
	}
	return Opaque{o.Text, vars}
}

func (o Opaque) PopScope(t ScopeToken) (Expr, bool) {
	vars := make([]Identifier, len(o.Vars))
	for i, id := range o.Vars {
		var ok bool
		if vars[i], ok = id.Pop(t); !ok {
			return nil, false
		}
	}
	return Opaque{o.Text, vars}, true
}

// Skip is the no-op expression.
type Skip struct{}

func (Skip) String() string { return "skip" }

func (Skip) Hash() uint32 { return 0x5c1b }

func (Skip) Equal(o Expr) bool {
	_, ok := o.(Skip)
	return ok
}

func (s Skip) PushScope(ScopeToken) Expr { return s }

func (s Skip) PopScope(ScopeToken) (Expr, bool) { return s, true }

// Unary is the application of a unary operator.
type Unary struct {
	Op UnaryOp
	X  Expr
}

func (u Unary) String() string {
	return u.Op.String() + parenthesize(u.X)
}

func (u Unary) Hash() uint32 {
	return utils.HashCombine(0x0a, uint32(u.Op), u.X.Hash())
}

func (u Unary) Equal(o Expr) bool {
	ou, ok := o.(Unary)
	return ok && u.Op == ou.Op && u.X.Equal(ou.X)
}

func (u Unary) PushScope(t ScopeToken) Expr {
	return Unary{u.Op, u.X.PushScope(t)}
}

func (u Unary) PopScope(t ScopeToken) (Expr, bool) {
	x, ok := u.X.PopScope(t)
	if !ok {
		return nil, false
	}
	return Unary{u.Op, x}, true
}

// Binary is the application of a binary operator.
type Binary struct {
	Op   BinaryOp
	X, Y Expr
}

func (b Binary) String() string {
	return parenthesize(b.X) + " " + b.Op.String() + " " + parenthesize(b.Y)
}

func (b Binary) Hash() uint32 {
	return utils.HashCombine(0x0b, uint32(b.Op), b.X.Hash(), b.Y.Hash())
}

func (b Binary) Equal(o Expr) bool {
	ob, ok := o.(Binary)
	return ok && b.Op == ob.Op && b.X.Equal(ob.X) && b.Y.Equal(ob.Y)
}

func (b Binary) PushScope(t ScopeToken) Expr {
	return Binary{b.Op, b.X.PushScope(t), b.Y.PushScope(t)}
}

func (b Binary) PopScope(t ScopeToken) (Expr, bool) {
	x, ok := b.X.PopScope(t)
	if !ok {
		return nil, false
	}
	y, ok := b.Y.PopScope(t)
	if !ok {
		return nil, false
	}
	return Binary{b.Op, x, y}, true
}

// Ternary is the conditional expression `Cond ? Then : Else`.
type Ternary struct {
	Cond, Then, Else Expr
}

func (t Ternary) String() string {
	return parenthesize(t.Cond) + " ? " + parenthesize(t.Then) + " : " + parenthesize(t.Else)
}

func (t Ternary) Hash() uint32 {
	return utils.HashCombine(0x0c, t.Cond.Hash(), t.Then.Hash(), t.Else.Hash())
}

func (t Ternary) Equal(o Expr) bool {
	ot, ok := o.(Ternary)
	return ok && t.Cond.Equal(ot.Cond) && t.Then.Equal(ot.Then) && t.Else.Equal(ot.Else)
}

func (t Ternary) PushScope(tok ScopeToken) Expr {
	return Ternary{t.Cond.PushScope(tok), t.Then.PushScope(tok), t.Else.PushScope(tok)}
}

func (t Ternary) PopScope(tok ScopeToken) (Expr, bool) {
	c, ok := t.Cond.PopScope(tok)
	if !ok {
		return nil, false
	}
	th, ok := t.Then.PopScope(tok)
	if !ok {
		return nil, false
	}
	el, ok := t.Else.PopScope(tok)
	if !ok {
		return nil, false
	}
	return Ternary{c, th, el}, true
}

func parenthesize(e Expr) string {
	switch e.(type) {
	case Binary, Ternary:
		return "(" + e.String() + ")"
	}
	return e.String()
}

// IsTrivial holds for variable references, literals and no-ops, whose
// evaluation is free. Opaque expressions are trivial too: they may have
// effects, so they are never reused.
func IsTrivial(e Expr) bool {
	switch e.(type) {
	case Identifier, Constant, Opaque, Skip:
		return true
	case Unary, Binary, Ternary:
		return false
	case nil:
		panic(errNilExpr)
	default:
		panic(errPatternMatch(e))
	}
}

// Identifiers returns the identifiers referenced by e, in order of first
// occurrence and without duplicates. Constants and no-ops contribute none,
// and opaque expressions contribute the variables they read.
func Identifiers(e Expr) []Identifier {
	var res []Identifier
	var visit func(Expr)
	visit = func(e Expr) {
		switch e := e.(type) {
		case Identifier:
			for _, id := range res {
				if id.EqualId(e) {
					return
				}
			}
			res = append(res, e)
		case Opaque:
			for _, id := range e.Vars {
				visit(id)
			}
		case Constant, Skip:
		case Unary:
			visit(e.X)
		case Binary:
			visit(e.X)
			visit(e.Y)
		case Ternary:
			visit(e.Cond)
			visit(e.Then)
			visit(e.Else)
		case nil:
			panic(errNilExpr)
		default:
			panic(errPatternMatch(e))
		}
	}
	visit(e)
	return res
}

// References reports whether id occurs in e.
func References(e Expr, id Identifier) bool {
	for _, x := range Identifiers(e) {
		if x.EqualId(id) {
			return true
		}
	}
	return false
}
