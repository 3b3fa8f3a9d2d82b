package testutil

import (
	"github.com/cs-au-dk/absdom/analysis/cfg"

	"golang.org/x/tools/go/expect"
)

// Annotation is an expectation about the state after the last CFG node on
// the line of a //@ note.
type Annotation interface {
	String() string
	Note() *expect.Note
	Line() int
	Node() (*cfg.Cfg, cfg.Node, bool)
}

// AnnValue expects Var to have the abstract value printed as Value in the
// given value domain.
type AnnValue struct {
	basicAnnotation
	Domain string
	Var    string
	Value  string
}

// AnnBot expects the line to be unreachable in the given value domain.
type AnnBot struct {
	basicAnnotation
	Domain string
}

// AnnAvailable expects the expression printed as Expr to be available, or
// not available when Available is false.
type AnnAvailable struct {
	basicAnnotation
	Expr      string
	Available bool
}

// AnnReaches expects the definition of Var on DefLine to reach the line,
// or not to reach it when Reaches is false.
type AnnReaches struct {
	basicAnnotation
	Var     string
	DefLine int
	Reaches bool
}
