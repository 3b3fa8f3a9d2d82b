package cfg

import (
	"bytes"
	"testing"

	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/stretchr/testify/assert"
)

var (
	x   = expr.Var("x")
	y   = expr.Var("y")
	at1 = expr.CodeLocation{Line: 1}
	at2 = expr.CodeLocation{Line: 2}
	at3 = expr.CodeLocation{Line: 3}
)

func TestCompressRemovesForwardingSkips(t *testing.T) {
	b := NewBuilder("f")
	first := b.Assign(at1, x, expr.Int(1))
	fwd := b.Skip(expr.CodeLocation{}, "skip")
	cond := b.Eval(at2, expr.Binary{Op: expr.Gt, X: x, Y: expr.Int(0)})
	dec := b.Assign(at3, x, expr.Binary{Op: expr.Sub, X: x, Y: expr.Int(1)})
	b.Chain(b.Entry(), first, fwd, cond)
	b.Branch(cond, dec, b.Exit())
	b.Seq(dec, fwd)

	b.Compress()
	c := b.Build()

	expected := "f:\n" +
		"0: entry\n\t0 -seq-> 1\n" +
		"1: x = 1 (1:0)\n\t1 -seq-> 2\n" +
		"2: x > 0 (2:0)\n\t2 -true-> 3\n\t2 -false-> 4\n" +
		"3: x = x - 1 (3:0)\n\t3 -seq-> 2\n" +
		"4: exit\n"
	assert.Equal(t, expected, c.String())
	assert.Len(t, c.Predecessors(cond), 2)
	assert.Equal(t, 5, c.Size())
}

func TestCompressKeepsSelfLoops(t *testing.T) {
	b := NewBuilder("spin")
	loop := b.Skip(expr.CodeLocation{}, "loop")
	b.Seq(b.Entry(), loop)
	b.Seq(loop, loop)

	b.Compress()
	c := b.Build()

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, loop, c.Node(1))
	assert.Empty(t, c.Predecessors(c.Exit()))
}

func TestSortNumbersTrueBranchFirst(t *testing.T) {
	b := NewBuilder("g")
	cond := b.Eval(at1, expr.Var("c"))
	els := b.Assign(at3, y, expr.Int(2))
	then := b.Assign(at2, y, expr.Int(1))
	join := b.Eval(at3, y)
	dead := b.Skip(expr.CodeLocation{Line: 9}, "dead")
	b.Seq(b.Entry(), cond)
	b.Branch(cond, then, els)
	b.Seq(then, join)
	b.Seq(els, join)
	b.Seq(join, b.Exit())
	b.Seq(dead, join)

	b.Sort()
	c := b.Build()

	for i, n := range []Node{c.Entry(), cond, then, els, join, dead, c.Exit()} {
		assert.Equal(t, i, n.Index(), "%s", n)
		assert.Equal(t, n, c.Node(i))
	}
}

func TestGraphFollowsEdges(t *testing.T) {
	b := NewBuilder("h")
	n := b.Eval(at1, x)
	b.Seq(b.Entry(), n)
	b.Seq(n, b.Exit())
	c := b.Build()

	assert.Equal(t, []Node{n}, c.Graph().Edges(c.Entry()))
	assert.Equal(t, []Node{c.Entry(), n, c.Exit()}, c.Graph().Reachable(c.Entry()))
}

func TestVisualize(t *testing.T) {
	c, err := FromSource("prog.go", []byte(absSrc), "abs")
	if err != nil {
		t.Fatal(err)
	}

	G := c.Visualize(func(n Node) string {
		if n == c.Exit() {
			return "done"
		}
		return ""
	})
	assert.Equal(t, "abs", G.Title)
	assert.Len(t, G.Nodes, c.Size())
	assert.Len(t, G.Edges, 7)

	var buf bytes.Buffer
	if err := G.WriteDot(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, expected := range []string{
		`label="abs";`,
		`"0" [ fillcolor="#cce6ff"; label="0: entry"; ]`,
		`"2" [ label="2: x < 0 (prog.go:5:5)"; ]`,
		`"6" [ fillcolor="#cce6ff"; label="6: exit\ndone"; ]`,
		`"0" -> "1" [ color="black"; ]`,
		`"2" -> "3" [ color="darkgreen"; label="true"; ]`,
		`"2" -> "4" [ color="firebrick"; label="false"; ]`,
	} {
		assert.Contains(t, out, expected)
	}
}
