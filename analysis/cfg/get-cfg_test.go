package cfg

import (
	"testing"

	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const absSrc = `package p

func abs(x int) int {
	y := 0
	if x < 0 {
		y = -x
	} else {
		y = x
	}
	return y
}
`

// statements returns the nodes between the entry and the exit.
func statements(c *Cfg) (res []string) {
	for _, n := range c.Nodes() {
		if n != c.Entry() && n != c.Exit() {
			res = append(res, n.String())
		}
	}
	return
}

func loadFunc(t *testing.T, src, fun string) *Cfg {
	t.Helper()
	c, err := FromSource("prog.go", []byte(src), fun)
	require.NoError(t, err)
	return c
}

func TestFromSourceBranches(t *testing.T) {
	c := loadFunc(t, absSrc, "abs")

	expected := "abs:\n" +
		"0: entry\n\t0 -seq-> 1\n" +
		"1: y = 0 (prog.go:4:2)\n\t1 -seq-> 2\n" +
		"2: x < 0 (prog.go:5:5)\n\t2 -true-> 3\n\t2 -false-> 4\n" +
		"3: y = -x (prog.go:6:3)\n\t3 -seq-> 5\n" +
		"4: y = x (prog.go:8:3)\n\t4 -seq-> 5\n" +
		"5: y (prog.go:10:9)\n\t5 -seq-> 6\n" +
		"6: exit\n"
	assert.Equal(t, expected, c.String())
}

func TestFromSourceStatements(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{"op-assign", "x := 1\nx += 2", []string{"x = 1", "x = x + 2"}},
		{"inc-dec", "x := 1\nx++\nx--", []string{"x = 1", "x = x + 1", "x = x - 1"}},
		{"zero values", "var a int\nvar b bool\nvar s string", []string{"a = 0", "b = false", "s = zero(string)"}},
		{"var list", "var u, v = 1, 2", []string{"u = 1", "v = 2"}},
		{"comma-ok", "v, ok := m[1]", []string{"v = m[1]", "ok = m[1]"}},
		{"call", "f(x)", []string{"f(x)"}},
		{"store", "m[k] = x + 1", []string{"x + 1"}},
		{"literals", "x := 0x10\ny := -3\nz := -x", []string{"x = 16", "y = -3", "z = -x"}},
		{"logic", "b := !(x > 0) || y <= 2", []string{"b = !(x > 0) || (y <= 2)"}},
		{"strings", `s := "hi"`, []string{`s = "hi"`}},
		{"blank", "p := nil\n_ = p", []string{"p = nil", "p"}},
		{"bare return", "x := 1\nreturn", []string{"x = 1"}},
		{"panic", "panic(1)\nx := 1", []string{"panic(1)"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := loadFunc(t, "package p\n\nfunc f() {\n"+test.body+"\n}\n", "f")
			assert.Equal(t, test.expected, statements(c))
		})
	}
}

func TestOpaqueExpressions(t *testing.T) {
	c := loadFunc(t, "package p\n\nfunc f() {\ns := \"hi\"\nv := g(s)\n}\n", "f")

	for _, n := range []Node{c.Node(1), c.Node(2)} {
		require.IsType(t, &Assign{}, n)
		assert.IsType(t, expr.Opaque{}, n.(*Assign).Value, "%s", n)
	}
	assert.Empty(t, expr.Identifiers(c.Node(1).(*Assign).Value))
	assert.Equal(t, []expr.Identifier{expr.Var("s")}, expr.Identifiers(c.Node(2).(*Assign).Value))
}

func TestOpaqueExpressionsKeepVariables(t *testing.T) {
	src := `package p

func f(s []int, y int) int {
	a := len(s) + y
	s = append(s, a)
	return len(s) + y
}
`
	c := loadFunc(t, src, "f")
	require.Equal(t, []string{"a = len(s) + y", "s = append(s, a)", "len(s) + y"}, statements(c))

	sum := c.Node(1).(*Assign).Value
	assert.Equal(t, []expr.Identifier{expr.Var("s"), expr.Var("y")}, expr.Identifiers(sum))
	assert.True(t, expr.References(c.Node(2).(*Assign).Value, expr.Var("a")))
}

func TestParallelAssignment(t *testing.T) {
	c := loadFunc(t, "package p\n\nfunc f() {\na, b := 1, 2\na, b = b, a\n}\n", "f")

	a, b := expr.Var("a"), expr.Var("b")
	assert.Equal(t, []string{"a = 1", "b = 2", "a = b", "b = a"}, statements(c))
	assert.Equal(t, expr.Int(1), c.Node(1).(*Assign).Value)
	// The swap does not read the variables it assigns.
	assert.Equal(t, expr.Opaque{Text: "b", Vars: []expr.Identifier{b}}, c.Node(3).(*Assign).Value)
	assert.Equal(t, expr.Opaque{Text: "a", Vars: []expr.Identifier{a}}, c.Node(4).(*Assign).Value)
}

func TestShadowedVariables(t *testing.T) {
	src := `package p

func f() int {
	x := -1
	{
		x := 5
		_ = x
	}
	return x
}
`
	c := loadFunc(t, src, "f")
	assert.Equal(t, []string{"x = -1", "x#6:3 = 5", "x#6:3", "x"}, statements(c))
	assert.Equal(t, expr.Var("x"), c.Node(1).(*Assign).Target)
	assert.Equal(t, expr.Var("x#6:3"), c.Node(2).(*Assign).Target)
}

func TestShadowingInBranches(t *testing.T) {
	src := `package p

func g(n int) int {
	if n := n * 2; n > 0 {
		return n
	}
	for i := 0; i < n; i++ {
		n := i
		_ = n
	}
	return n
}
`
	c := loadFunc(t, src, "g")
	assert.Equal(t, []string{
		"n#4:5 = n * 2",
		"n#4:5 > 0",
		"n#4:5",
		"i = 0",
		"i < n",
		"n#8:3 = i",
		"n#8:3",
		"i = i + 1",
		"n",
	}, statements(c))
}

func TestCompoundCondition(t *testing.T) {
	src := `package p

func f(a, b int) int {
	x := 0
	if !(a > 0 && b > 0) {
		x = 1
	}
	return x
}
`
	c := loadFunc(t, src, "f")

	assert.Equal(t, []string{"x = 0", "!((a > 0) && (b > 0))", "x = 1", "x"}, statements(c))
	succs := c.Successors(c.Node(2))
	require.Len(t, succs, 2)
	assert.Equal(t, Edge{c.Node(2), c.Node(3), True}, succs[0])
	assert.Equal(t, Edge{c.Node(2), c.Node(4), False}, succs[1])
}

func TestSwitchCasesCompareWithTag(t *testing.T) {
	src := `package p

func sw(x int) int {
	y := 0
	switch x {
	case 1:
		y = 1
	default:
		y = 2
	}
	return y
}
`
	c := loadFunc(t, src, "sw")

	assert.Equal(t, []string{"y = 0", "x", "x == 1", "y = 1", "y = 2", "y"}, statements(c))
	assert.Equal(t, "3: x == 1 (prog.go:6:7)", Describe(c.Node(3)))
	assert.Equal(t, []Edge{
		{c.Node(3), c.Node(4), True},
		{c.Node(3), c.Node(5), False},
	}, c.Successors(c.Node(3)))
}

func TestRangeLoop(t *testing.T) {
	src := `package p

func h(xs []int) int {
	s := 0
	for _, v := range xs {
		s = s + v
	}
	return s
}
`
	c := loadFunc(t, src, "h")

	assert.Equal(t, []string{"s = 0", "xs", "_", "v = range xs", "skip", "s = s + v", "s"}, statements(c))

	head := c.Node(5)
	assert.Len(t, c.Predecessors(head), 2)
	for _, e := range c.Successors(head) {
		assert.Equal(t, Seq, e.Kind)
	}
}

func TestForLoop(t *testing.T) {
	src := `package p

func count(n int) int {
	i := 0
	for i < n {
		i++
	}
	return i
}
`
	c := loadFunc(t, src, "count")

	expected := "count:\n" +
		"0: entry\n\t0 -seq-> 1\n" +
		"1: i = 0 (prog.go:4:2)\n\t1 -seq-> 2\n" +
		"2: i < n (prog.go:5:6)\n\t2 -true-> 3\n\t2 -false-> 4\n" +
		"3: i = i + 1 (prog.go:6:3)\n\t3 -seq-> 2\n" +
		"4: i (prog.go:8:9)\n\t4 -seq-> 5\n" +
		"5: exit\n"
	assert.Equal(t, expected, c.String())
}

func TestParseFile(t *testing.T) {
	src := `package p

type T struct{}

func (t *T) m() {}

func f() {}

func g()
`
	cfgs, err := ParseFile("prog.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	assert.Equal(t, "T.m", cfgs[0].Name())
	assert.Equal(t, "T.m:\n0: entry\n\t0 -seq-> 1\n1: exit\n", cfgs[0].String())
	assert.Equal(t, "f", cfgs[1].Name())
}

func TestFromSourceErrors(t *testing.T) {
	_, err := FromSource("prog.go", []byte(absSrc), "missing")
	assert.ErrorContains(t, err, "function missing not found in prog.go")

	_, err = FromSource("bad.go", []byte("package"), "f")
	assert.ErrorContains(t, err, "parsing bad.go")
}
