package cfg

import (
	"fmt"

	"github.com/cs-au-dk/absdom/analysis/expr"
)

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}

// Node is a statement of the control-flow graph. Every node is a program
// point of its own.
type Node interface {
	expr.ProgramPoint

	// Index is the position of the node in the CFG, starting from 0 at the
	// entry node. Nodes are numbered in the order of the source, so that
	// lower indices come first on acyclic paths.
	Index() int
	String() string

	baseNode() *BaseNode
}

type BaseNode struct {
	index int
	loc   expr.CodeLocation
}

func (n *BaseNode) Index() int {
	return n.index
}

func (n *BaseNode) Location() expr.CodeLocation {
	return n.loc
}

func (n *BaseNode) baseNode() *BaseNode {
	return n
}

// Assign is the assignment `Target = Value`.
type Assign struct {
	BaseNode
	Target expr.Identifier
	Value  expr.Expr
}

func (n *Assign) String() string {
	return n.Target.String() + " = " + n.Value.String()
}

// Eval evaluates an expression without assigning it, e.g. an expression
// statement or the condition of a branch.
type Eval struct {
	BaseNode
	Expr expr.Expr
}

func (n *Eval) String() string {
	return n.Expr.String()
}

// Skip does nothing. The entry and exit of a CFG are skip nodes.
type Skip struct {
	BaseNode
	Label string
}

func (n *Skip) String() string {
	return n.Label
}

// EdgeKind labels the edges of the CFG.
type EdgeKind uint8

const (
	// Seq is unconditional control flow.
	Seq EdgeKind = iota
	// True is taken when the condition of the source node holds.
	True
	// False is taken when the condition of the source node does not hold.
	False
)

func (k EdgeKind) String() string {
	switch k {
	case Seq:
		return "seq"
	case True:
		return "true"
	case False:
		return "false"
	}
	panic(errPatternMatch(uint8(k)))
}

type Edge struct {
	From, To Node
	Kind     EdgeKind
}

func (e Edge) String() string {
	return fmt.Sprintf("%d -%s-> %d", e.From.Index(), e.Kind, e.To.Index())
}
