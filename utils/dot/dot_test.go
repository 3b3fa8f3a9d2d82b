package dot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDot(t *testing.T) {
	a := &DotNode{ID: "0", Attrs: DotAttrs{"label": "x = 3"}}
	b := &DotNode{ID: "1", Attrs: DotAttrs{"label": "y = x", "fillcolor": "white"}}
	G := &DotGraph{
		Title: "main",
		Nodes: []*DotNode{a, b},
		Edges: []*DotEdge{{From: a, To: b, Attrs: DotAttrs{}}},
	}

	var buf bytes.Buffer
	if err := G.WriteDot(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, expected := range []string{
		`digraph CFG {`,
		`label="main";`,
		`"0" [ label="x = 3"; ]`,
		`"1" [ fillcolor="white"; label="y = x"; ]`,
		`"0" -> "1" [  ]`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected %q in output:\n%s", expected, out)
		}
	}
}

func TestDotToImageDotFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph")
	path, err := DotToImage(out, "dot", []byte("digraph G {}"))
	if err != nil {
		t.Fatal(err)
	}
	if path != out+".dot" {
		t.Errorf("unexpected path %s", path)
	}
	if b, err := os.ReadFile(path); err != nil || string(b) != "digraph G {}" {
		t.Errorf("unexpected contents %q (%v)", b, err)
	}
}
