package testutil

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/absdom/analysis/cfg"

	"golang.org/x/tools/go/expect"
)

type basicAnnotation struct {
	note *expect.Note
	mgr  *NotesManager
}

func (a basicAnnotation) Note() *expect.Note {
	return a.note
}

func (a basicAnnotation) Name() string {
	return a.note.Name
}

func (a basicAnnotation) Line() int {
	return a.mgr.fset.Position(a.note.Pos).Line
}

// Node is the last CFG node on the line of the annotation. The second
// result is false when the line has no node.
func (a basicAnnotation) Node() (*cfg.Cfg, cfg.Node, bool) {
	return a.mgr.NodeForNote(a.note)
}

func (a basicAnnotation) String() string {
	npos := a.mgr.fset.Position(a.note.Pos)
	args := make([]string, 0, len(a.note.Args))
	for _, arg := range a.note.Args {
		args = append(args, fmt.Sprintf("%v", arg))
	}
	return "//@ " + a.note.Name + "(" + strings.Join(args, ", ") + ") at " + npos.String()
}
