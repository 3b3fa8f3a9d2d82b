// Package dataflow implements gen/kill dataflow analyses over sets of facts.
package dataflow

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/fatih/color"
	"golang.org/x/exp/slices"
)

// Facts is the read-only view of a set of facts given to transfer functions.
type Facts[E any] interface {
	ForEach(func(E))
	Contains(E) bool
}

// Element is a dataflow fact. Its transfer functions do not depend on the
// receiver, and are invoked on the zero value.
type Element[E any] interface {
	utils.HashableEq[E]
	fmt.Stringer

	// InvolvedIdentifiers lists the variables the fact depends on.
	InvolvedIdentifiers() []expr.Identifier

	// Gen computes the facts created by the assignment `id = e` at pp.
	Gen(id expr.Identifier, e expr.Expr, pp expr.ProgramPoint, facts Facts[E]) []E
	// GenExpr computes the facts created by evaluating e at pp.
	GenExpr(e expr.Expr, pp expr.ProgramPoint, facts Facts[E]) []E
	// Kill computes the facts of facts invalidated by the assignment `id = e`.
	Kill(id expr.Identifier, e expr.Expr, pp expr.ProgramPoint, facts Facts[E]) []E
	// KillExpr computes the facts invalidated by evaluating e.
	KillExpr(e expr.Expr, pp expr.ProgramPoint, facts Facts[E]) []E

	// PushScope and PopScope rename the variables of the fact when a scope
	// is entered or left. The fact is dropped if the second result is false.
	PushScope(expr.ScopeToken) (E, bool)
	PopScope(expr.ScopeToken) (E, bool)
}

var colorizeSet = func(is ...interface{}) string {
	return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
}

// Domain is an immutable set of facts. A possible domain is a may-analysis
// state: sets are joined by union and ordered by inclusion. A definite domain
// is a must-analysis state: sets are joined by intersection and ordered by
// reverse inclusion.
//
// Both have a distinct unreached element, which is the identity of the join.
// For definite domains it stands for the set of all facts.
type Domain[E Element[E]] struct {
	facts     *immutable.Map[E, struct{}]
	definite  bool
	unreached bool
}

// NewPossible creates an empty may-analysis state.
func NewPossible[E Element[E]]() Domain[E] {
	return Domain[E]{facts: utils.NewImmMap[E, struct{}]()}
}

// NewDefinite creates an empty must-analysis state.
func NewDefinite[E Element[E]]() Domain[E] {
	return Domain[E]{facts: utils.NewImmMap[E, struct{}](), definite: true}
}

// Bottom returns the unreached state of the same flavour.
func (d Domain[E]) Bottom() Domain[E] {
	d.facts = utils.NewImmMap[E, struct{}]()
	d.unreached = true
	return d
}

func (d Domain[E]) IsBot() bool {
	return d.unreached
}

// IsDefinite holds for must-analysis states.
func (d Domain[E]) IsDefinite() bool {
	return d.definite
}

func (d Domain[E]) Len() int {
	return d.facts.Len()
}

func (d Domain[E]) Contains(e E) bool {
	_, ok := d.facts.Get(e)
	return ok
}

func (d Domain[E]) ForEach(do func(E)) {
	for iter := d.facts.Iterator(); !iter.Done(); {
		e, _, _ := iter.Next()
		do(e)
	}
}

// Elements lists the facts ordered by their textual representation.
func (d Domain[E]) Elements() []E {
	res := make([]E, 0, d.facts.Len())
	d.ForEach(func(e E) { res = append(res, e) })
	slices.SortFunc(res, func(a, b E) bool {
		return a.String() < b.String()
	})
	return res
}

func (d Domain[E]) add(es ...E) Domain[E] {
	for _, e := range es {
		d.facts = d.facts.Set(e, struct{}{})
	}
	return d
}

func (d Domain[E]) remove(es ...E) Domain[E] {
	for _, e := range es {
		d.facts = d.facts.Delete(e)
	}
	return d
}

// subset computes d ⊆ o.
func (d Domain[E]) subset(o Domain[E]) bool {
	if d.Len() > o.Len() {
		return false
	}
	res := true
	d.ForEach(func(e E) {
		res = res && o.Contains(e)
	})
	return res
}

// Join merges the states of two incoming paths.
func (d Domain[E]) Join(o Domain[E]) Domain[E] {
	switch {
	case d.unreached:
		return o
	case o.unreached:
		return d
	}

	if !d.definite {
		if d.Len() < o.Len() {
			d, o = o, d
		}
		o.ForEach(func(e E) { d = d.add(e) })
		return d
	}

	res := d
	d.ForEach(func(e E) {
		if !o.Contains(e) {
			res = res.remove(e)
		}
	})
	return res
}

// Widen coincides with Join, since a program only gives rise to finitely
// many facts.
func (d Domain[E]) Widen(o Domain[E]) Domain[E] {
	return d.Join(o)
}

// Leq computes d ⊑ o.
func (d Domain[E]) Leq(o Domain[E]) bool {
	switch {
	case d.unreached:
		return true
	case o.unreached:
		return false
	case d.definite:
		return o.subset(d)
	}
	return d.subset(o)
}

func (d Domain[E]) Eq(o Domain[E]) bool {
	return d.unreached == o.unreached && d.Len() == o.Len() && d.subset(o)
}

// Assign applies the transfer function of `id = e` at pp: the killed facts
// are removed before the generated ones are added.
func (d Domain[E]) Assign(id expr.Identifier, e expr.Expr, pp expr.ProgramPoint) Domain[E] {
	if d.unreached {
		return d
	}
	var proto E
	return d.
		remove(proto.Kill(id, e, pp, d)...).
		add(proto.Gen(id, e, pp, d)...)
}

// SmallStep applies the transfer function of evaluating e at pp.
func (d Domain[E]) SmallStep(e expr.Expr, pp expr.ProgramPoint) Domain[E] {
	if d.unreached {
		return d
	}
	var proto E
	return d.
		remove(proto.KillExpr(e, pp, d)...).
		add(proto.GenExpr(e, pp, d)...)
}

// Assume leaves the state unchanged. Conditions are evaluated by SmallStep
// at the branching node, and facts carry no information about their
// outcome.
func (d Domain[E]) Assume(expr.Expr, expr.ProgramPoint) Domain[E] {
	return d
}

// PushScope renames every fact for entering the scope t.
func (d Domain[E]) PushScope(t expr.ScopeToken) Domain[E] {
	return d.rename(func(e E) (E, bool) { return e.PushScope(t) })
}

// PopScope renames every fact for leaving the scope t. Facts that cannot
// leave the scope are dropped.
func (d Domain[E]) PopScope(t expr.ScopeToken) Domain[E] {
	return d.rename(func(e E) (E, bool) { return e.PopScope(t) })
}

func (d Domain[E]) rename(f func(E) (E, bool)) Domain[E] {
	if d.unreached {
		return d
	}
	res := d
	res.facts = utils.NewImmMap[E, struct{}]()
	d.ForEach(func(e E) {
		if e, ok := f(e); ok {
			res = res.add(e)
		}
	})
	return res
}

func (d Domain[E]) String() string {
	switch {
	case d.unreached:
		return colorizeSet("⊥")
	case d.Len() == 0:
		return colorizeSet("∅")
	}

	elems := d.Elements()
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = e.String()
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
