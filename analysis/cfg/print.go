package cfg

import "fmt"

// Describe prints a node with its index and source location.
func Describe(n Node) string {
	loc := n.Location()
	if loc.Line == 0 {
		return fmt.Sprintf("%d: %s", n.Index(), n)
	}
	return fmt.Sprintf("%d: %s (%s)", n.Index(), n, loc)
}
