package expr

import (
	"fmt"

	"github.com/cs-au-dk/absdom/utils"
)

// CodeLocation identifies a position in the analyzed source.
type CodeLocation struct {
	File   string
	Line   int
	Column int
}

func (l CodeLocation) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

func (l CodeLocation) Hash() uint32 {
	return utils.HashCombine(utils.HashString(l.File), uint32(l.Line), uint32(l.Column))
}

// Location makes every code location a program point of its own.
func (l CodeLocation) Location() CodeLocation {
	return l
}

// ProgramPoint is the point of the program at which an expression is
// evaluated or an assignment takes place.
type ProgramPoint interface {
	Location() CodeLocation
}

// ScopeToken identifies a scope, e.g. the call site of a function. Pushing
// a token onto an identifier marks it as out of scope inside the callee.
type ScopeToken struct {
	Name string
}

func (t ScopeToken) String() string {
	return "[" + t.Name + "]"
}
