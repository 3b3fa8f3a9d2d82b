package dataflow

import (
	"fmt"

	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/utils"
)

// ReachingDefinition is the fact that the assignment to Id at Loc may reach
// a program point without being overwritten.
type ReachingDefinition struct {
	Id  expr.Identifier
	Loc expr.CodeLocation
}

// ReachingDefinitions creates the may-analysis state with no definitions.
func ReachingDefinitions() Domain[ReachingDefinition] {
	return NewPossible[ReachingDefinition]()
}

func (rd ReachingDefinition) String() string {
	return fmt.Sprintf("(%s, %s)", rd.Id, rd.Loc)
}

func (rd ReachingDefinition) Hash() uint32 {
	return utils.HashCombine(rd.Id.Hash(), rd.Loc.Hash())
}

func (rd ReachingDefinition) Equal(o ReachingDefinition) bool {
	return rd.Id.EqualId(o.Id) && rd.Loc == o.Loc
}

func (rd ReachingDefinition) InvolvedIdentifiers() []expr.Identifier {
	return []expr.Identifier{rd.Id}
}

// Gen records that id is defined at pp, whatever the assigned expression.
func (ReachingDefinition) Gen(
	id expr.Identifier,
	_ expr.Expr,
	pp expr.ProgramPoint,
	_ Facts[ReachingDefinition],
) []ReachingDefinition {
	return []ReachingDefinition{{id, pp.Location()}}
}

func (ReachingDefinition) GenExpr(
	expr.Expr,
	expr.ProgramPoint,
	Facts[ReachingDefinition],
) []ReachingDefinition {
	return nil
}

// Kill removes every earlier definition of id.
func (ReachingDefinition) Kill(
	id expr.Identifier,
	_ expr.Expr,
	_ expr.ProgramPoint,
	facts Facts[ReachingDefinition],
) (res []ReachingDefinition) {
	facts.ForEach(func(rd ReachingDefinition) {
		if rd.Id.EqualId(id) {
			res = append(res, rd)
		}
	})
	return
}

func (ReachingDefinition) KillExpr(
	expr.Expr,
	expr.ProgramPoint,
	Facts[ReachingDefinition],
) []ReachingDefinition {
	return nil
}

func (rd ReachingDefinition) PushScope(t expr.ScopeToken) (ReachingDefinition, bool) {
	return ReachingDefinition{rd.Id.Push(t), rd.Loc}, true
}

// PopScope drops definitions of variables local to the scope being left.
func (rd ReachingDefinition) PopScope(t expr.ScopeToken) (ReachingDefinition, bool) {
	id, ok := rd.Id.Pop(t)
	if !ok {
		return ReachingDefinition{}, false
	}
	return ReachingDefinition{id, rd.Loc}, true
}
