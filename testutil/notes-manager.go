package testutil

import (
	"fmt"
	"go/ast"
	"go/token"
	"testing"

	"github.com/cs-au-dk/absdom/analysis/cfg"

	"golang.org/x/tools/go/expect"
)

// NotesManager collects the //@ notes of a source file and the annotations
// they denote.
type NotesManager struct {
	fset  *token.FileSet
	cfgs  []*cfg.Cfg
	notes []*expect.Note
	anns  map[*expect.Note]Annotation
}

func MakeNotesManager(t *testing.T, loadRes LoadResult, file *ast.File) *NotesManager {
	t.Helper()

	notes, err := expect.ExtractGo(loadRes.Fset, file)
	if err != nil {
		t.Fatal(err)
	}

	n := &NotesManager{
		fset:  loadRes.Fset,
		cfgs:  loadRes.Cfgs,
		notes: notes,
		anns:  make(map[*expect.Note]Annotation, len(notes)),
	}
	for _, note := range notes {
		ann, err := n.CreateAnnotation(note)
		if err != nil {
			t.Fatal(err)
		}
		n.anns[note] = ann
	}
	return n
}

// ForEachAnnotation visits the annotations in source order.
func (n *NotesManager) ForEachAnnotation(do func(a Annotation)) {
	for _, note := range n.notes {
		do(n.anns[note])
	}
}

func (n *NotesManager) Len() int {
	return len(n.notes)
}

// NodeForNote finds the CFG node with the highest index on the line of the
// note, and the CFG containing it.
func (n *NotesManager) NodeForNote(note *expect.Note) (*cfg.Cfg, cfg.Node, bool) {
	npos := n.fset.Position(note.Pos)

	for _, c := range n.cfgs {
		var found cfg.Node
		c.ForEach(func(node cfg.Node) {
			loc := node.Location()
			if loc.File == npos.Filename && loc.Line == npos.Line {
				found = node
			}
		})
		if found != nil {
			return c, found, true
		}
	}
	return nil, nil, false
}

func (n *NotesManager) String() (str string) {
	str = "Note manager found the following notes:\n\n"
	for _, note := range n.notes {
		str += fmt.Sprintf("%s(%v) at position: %s\n", note.Name, note.Args, n.fset.Position(note.Pos))
	}
	return
}
