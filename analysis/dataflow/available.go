package dataflow

import (
	"github.com/cs-au-dk/absdom/analysis/expr"
)

// AvailableExpression is the fact that an expression has been computed on
// every path and none of its variables has been reassigned since.
// Variable references, literals and no-ops are never available, since
// evaluating them again is free.
type AvailableExpression struct {
	Expr expr.Expr
}

// AvailableExpressions creates the must-analysis state with no available
// expressions.
func AvailableExpressions() Domain[AvailableExpression] {
	return NewDefinite[AvailableExpression]()
}

func (ae AvailableExpression) String() string {
	return ae.Expr.String()
}

func (ae AvailableExpression) Hash() uint32 {
	return ae.Expr.Hash()
}

func (ae AvailableExpression) Equal(o AvailableExpression) bool {
	return ae.Expr.Equal(o.Expr)
}

func (ae AvailableExpression) InvolvedIdentifiers() []expr.Identifier {
	return expr.Identifiers(ae.Expr)
}

// Gen makes e available after `id = e`, unless e is trivial or the
// assignment overwrites one of its variables, as in x = x + y.
func (AvailableExpression) Gen(
	id expr.Identifier,
	e expr.Expr,
	_ expr.ProgramPoint,
	_ Facts[AvailableExpression],
) []AvailableExpression {
	if expr.IsTrivial(e) || expr.References(e, id) {
		return nil
	}
	return []AvailableExpression{{e}}
}

func (AvailableExpression) GenExpr(
	e expr.Expr,
	_ expr.ProgramPoint,
	_ Facts[AvailableExpression],
) []AvailableExpression {
	if expr.IsTrivial(e) {
		return nil
	}
	return []AvailableExpression{{e}}
}

// Kill invalidates every available expression that depends on id.
func (AvailableExpression) Kill(
	id expr.Identifier,
	_ expr.Expr,
	_ expr.ProgramPoint,
	facts Facts[AvailableExpression],
) (res []AvailableExpression) {
	facts.ForEach(func(ae AvailableExpression) {
		if expr.References(ae.Expr, id) {
			res = append(res, ae)
		}
	})
	return
}

func (AvailableExpression) KillExpr(
	expr.Expr,
	expr.ProgramPoint,
	Facts[AvailableExpression],
) []AvailableExpression {
	return nil
}

func (ae AvailableExpression) PushScope(t expr.ScopeToken) (AvailableExpression, bool) {
	return AvailableExpression{ae.Expr.PushScope(t)}, true
}

func (ae AvailableExpression) PopScope(t expr.ScopeToken) (AvailableExpression, bool) {
	e, ok := ae.Expr.PopScope(t)
	if !ok {
		return AvailableExpression{}, false
	}
	return AvailableExpression{e}, true
}
