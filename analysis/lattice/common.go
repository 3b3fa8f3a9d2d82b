package lattice

import (
	"errors"
	"fmt"

	"github.com/cs-au-dk/absdom/utils"
	"github.com/fatih/color"
)

var colorize = struct {
	Lattice func(...interface{}) string
	Element func(...interface{}) string
	Key     func(...interface{}) string
}{
	Lattice: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}

// Colorize pretty prints an abstract value for console output.
func Colorize(e fmt.Stringer) string {
	return colorize.Element(e.String())
}

// ColorizeKey pretty prints the key of an abstract environment.
func ColorizeKey(k fmt.Stringer) string {
	return colorize.Key(k.String())
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

type Element interface {
	Lattice() Lattice

	// External API for lattice element operations.
	// They dynamically perform lattice type checking.
	Leq(Element) bool
	Geq(Element) bool
	Eq(Element) bool
	Join(Element) Element
	Meet(Element) Element

	// Internal lattice element operations, that skip
	// lattice type checking. Only use under the
	// assumption of lattice type safety.
	leq(Element) bool
	geq(Element) bool
	eq(Element) bool
	join(Element) Element
	meet(Element) Element

	// Representational components
	String() string
	// Encodes the distance from the bottom of the lattice
	// to the element that calls this method.
	Height() int
}

// Value is implemented by the elements of the value domains. The typed
// operations are used by abstract environments, which never mix lattices.
type Value[V any] interface {
	comparable
	Element

	IsTop() bool
	IsBot() bool
	MonoJoin(V) V
	MonoMeet(V) V
	MonoWiden(V) V
	MonoLeq(V) bool
}

// isValue only compiles when instantiated with a value domain element.
func isValue[V Value[V]]() {}
