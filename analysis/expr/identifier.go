package expr

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/absdom/utils"
)

// Identifier is a reference to a program variable. An identifier with a
// non-empty scope stack is an out-of-scope marker: a variable of an outer
// scope seen from inside the scope of the innermost token.
type Identifier struct {
	Name string
	// scopes is never mutated in place; Push copies it.
	scopes []ScopeToken
}

// Var creates an in-scope identifier.
func Var(name string) Identifier {
	return Identifier{Name: name}
}

func (id Identifier) String() string {
	if len(id.scopes) == 0 {
		return id.Name
	}
	var sb strings.Builder
	sb.WriteString(id.Name)
	for i := len(id.scopes) - 1; i >= 0; i-- {
		sb.WriteString("@" + id.scopes[i].String())
	}
	return sb.String()
}

func (id Identifier) Hash() uint32 {
	h := utils.HashString(id.Name)
	for _, t := range id.scopes {
		h = utils.HashCombine(h, utils.HashString(t.Name))
	}
	return h
}

// EqualId compares two identifiers, including their scope stacks.
func (id Identifier) EqualId(o Identifier) bool {
	if id.Name != o.Name || len(id.scopes) != len(o.scopes) {
		return false
	}
	for i := range id.scopes {
		if id.scopes[i] != o.scopes[i] {
			return false
		}
	}
	return true
}

func (id Identifier) Equal(o Expr) bool {
	oid, ok := o.(Identifier)
	return ok && id.EqualId(oid)
}

// OutOfScope holds if the identifier is an out-of-scope marker.
func (id Identifier) OutOfScope() bool {
	return len(id.scopes) > 0
}

// Scope returns the innermost scope token of an out-of-scope marker.
func (id Identifier) Scope() (ScopeToken, bool) {
	if len(id.scopes) == 0 {
		return ScopeToken{}, false
	}
	return id.scopes[len(id.scopes)-1], true
}

// Push wraps the identifier into an out-of-scope marker for t.
func (id Identifier) Push(t ScopeToken) Identifier {
	scopes := make([]ScopeToken, len(id.scopes)+1)
	copy(scopes, id.scopes)
	scopes[len(id.scopes)] = t
	return Identifier{id.Name, scopes}
}

// Pop unwraps an out-of-scope marker for t. Identifiers that are in scope,
// or out of scope for a different token, cannot be popped.
func (id Identifier) Pop(t ScopeToken) (Identifier, bool) {
	if top, ok := id.Scope(); !ok || top != t {
		return Identifier{}, false
	}
	var scopes []ScopeToken
	if len(id.scopes) > 1 {
		scopes = id.scopes[:len(id.scopes)-1:len(id.scopes)-1]
	}
	return Identifier{id.Name, scopes}, true
}

func (id Identifier) PushScope(t ScopeToken) Expr {
	return id.Push(t)
}

func (id Identifier) PopScope(t ScopeToken) (Expr, bool) {
	res, ok := id.Pop(t)
	if !ok {
		return nil, false
	}
	return res, true
}

type identifierHasher struct{}

func (identifierHasher) Hash(id Identifier) uint32 { return id.Hash() }

func (identifierHasher) Equal(a, b Identifier) bool { return a.EqualId(b) }

// IdentifierHasher is the hasher for maps keyed by identifiers.
var IdentifierHasher immutable.Hasher[Identifier] = identifierHasher{}
