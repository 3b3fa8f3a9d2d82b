// Package nonrel implements non-relational abstract environments, which map
// every program variable to an element of a value domain, and the
// evaluation of expressions and conditions over them.
package nonrel

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/analysis/lattice"
	"golang.org/x/exp/slices"
)

// Env is an immutable abstract environment. Variables without a binding are
// unconstrained (⊤). An assigned variable stays bound even when its value is
// ⊤, so that it is reported; equality is therefore decided by Eq and not by
// comparing maps. A bottom environment denotes an unreachable program point.
type Env[V lattice.Value[V]] struct {
	top V
	bot bool
	mp  *immutable.Map[expr.Identifier, V]
}

// NewEnv creates the environment in which every variable is unconstrained.
func NewEnv[V lattice.Value[V]](d Domain[V]) Env[V] {
	return Env[V]{
		top: d.Top(),
		mp:  immutable.NewMap[expr.Identifier, V](expr.IdentifierHasher),
	}
}

// Bottom returns the unreachable environment.
func (env Env[V]) Bottom() Env[V] {
	env.bot = true
	env.mp = immutable.NewMap[expr.Identifier, V](expr.IdentifierHasher)
	return env
}

func (env Env[V]) IsBot() bool {
	return env.bot
}

// Size is the number of bound variables.
func (env Env[V]) Size() int {
	return env.mp.Len()
}

// Get retrieves the value of a variable.
func (env Env[V]) Get(id expr.Identifier) V {
	if env.bot {
		return env.top.Lattice().Bot().(V)
	}
	if v, ok := env.mp.Get(id); ok {
		return v
	}
	return env.top
}

// Assign binds id to v in a new environment. Binding a variable to ⊥ makes
// the environment unreachable.
func (env Env[V]) Assign(id expr.Identifier, v V) Env[V] {
	switch {
	case env.bot:
		return env
	case v.IsBot():
		return env.Bottom()
	}
	env.mp = env.mp.Set(id, v)
	return env
}

// Forget removes every constraint on id.
func (env Env[V]) Forget(id expr.Identifier) Env[V] {
	if env.bot {
		return env
	}
	env.mp = env.mp.Delete(id)
	return env
}

// ForEach visits the bound variables.
func (env Env[V]) ForEach(do func(expr.Identifier, V)) {
	for iter := env.mp.Iterator(); !iter.Done(); {
		id, v, _ := iter.Next()
		do(id, v)
	}
}

// Identifiers lists the bound variables in lexicographic order.
func (env Env[V]) Identifiers() []expr.Identifier {
	ids := make([]expr.Identifier, 0, env.mp.Len())
	env.ForEach(func(id expr.Identifier, _ V) {
		ids = append(ids, id)
	})
	slices.SortFunc(ids, func(a, b expr.Identifier) bool {
		return a.String() < b.String()
	})
	return ids
}

// combine applies op to the bindings present in both environments.
func (env Env[V]) combine(o Env[V], op func(V, V) V) Env[V] {
	res := env
	res.mp = immutable.NewMap[expr.Identifier, V](expr.IdentifierHasher)
	env.ForEach(func(id expr.Identifier, v V) {
		if w, ok := o.mp.Get(id); ok {
			res = res.Assign(id, op(v, w))
		}
	})
	return res
}

// Join computes the pointwise upper bound. A variable bound in only one of
// the environments is unbound in the result.
func (env Env[V]) Join(o Env[V]) Env[V] {
	switch {
	case env.bot:
		return o
	case o.bot:
		return env
	}
	return env.combine(o, func(a, b V) V { return a.MonoJoin(b) })
}

// Widen is the pointwise widening of env by o.
func (env Env[V]) Widen(o Env[V]) Env[V] {
	switch {
	case env.bot:
		return o
	case o.bot:
		return env
	}
	return env.combine(o, func(a, b V) V { return a.MonoWiden(b) })
}

// Meet computes the pointwise lower bound.
func (env Env[V]) Meet(o Env[V]) Env[V] {
	if env.bot || o.bot {
		return env.Bottom()
	}
	res := env
	o.ForEach(func(id expr.Identifier, v V) {
		res = res.Assign(id, res.Get(id).MonoMeet(v))
	})
	return res
}

// Leq computes env ⊑ o.
func (env Env[V]) Leq(o Env[V]) bool {
	switch {
	case env.bot:
		return true
	case o.bot:
		return false
	}
	leq := true
	o.ForEach(func(id expr.Identifier, v V) {
		leq = leq && env.Get(id).MonoLeq(v)
	})
	return leq
}

func (env Env[V]) Eq(o Env[V]) bool {
	return env.Leq(o) && o.Leq(env)
}

// String prints the bindings sorted by variable, e.g. [x ↦ +, y ↦ -].
func (env Env[V]) String() string {
	if env.bot {
		return lattice.Colorize(env.top.Lattice().Bot())
	}

	ids := env.Identifiers()
	entries := make([]string, len(ids))
	for i, id := range ids {
		entries[i] = lattice.ColorizeKey(id) + " ↦ " + lattice.Colorize(env.Get(id))
	}
	return "[" + strings.Join(entries, ", ") + "]"
}
