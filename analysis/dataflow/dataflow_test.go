package dataflow

import (
	"os"
	"testing"

	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	utils.Opts().SetNoColorize(true)
	os.Exit(m.Run())
}

var (
	x, y, z = expr.Var("x"), expr.Var("y"), expr.Var("z")

	s1 = expr.CodeLocation{File: "prog.go", Line: 1, Column: 1}
	s2 = expr.CodeLocation{File: "prog.go", Line: 2, Column: 1}
	s3 = expr.CodeLocation{File: "prog.go", Line: 3, Column: 1}
)

func add(l, r expr.Expr) expr.Expr {
	return expr.Binary{Op: expr.Add, X: l, Y: r}
}

func strs[E Element[E]](d Domain[E]) []string {
	res := []string{}
	for _, e := range d.Elements() {
		res = append(res, e.String())
	}
	return res
}

func TestAvailableExpressionsGen(t *testing.T) {
	var ae AvailableExpression
	empty := AvailableExpressions()

	tests := []struct {
		name     string
		id       expr.Identifier
		e        expr.Expr
		expected int
	}{
		{"x = x + y", x, add(x, y), 0},
		{"x = y + z", x, add(y, z), 1},
		{"x = y", x, y, 0},
		{"x = 5", x, expr.Int(5), 0},
		{"x = -(y + x)", x, expr.Unary{Op: expr.Neg, X: add(y, x)}, 0},
		{"x = c ? y : z", x, expr.Ternary{Cond: expr.Var("c"), Then: y, Else: z}, 1},
	}

	for _, test := range tests {
		res := ae.Gen(test.id, test.e, s1, empty)
		if len(res) != test.expected {
			t.Errorf("%s generates %v, expected %d facts", test.name, res, test.expected)
		}
	}

	assert.Empty(t, ae.GenExpr(expr.Skip{}, s1, empty))
	assert.Empty(t, ae.GenExpr(x, s1, empty))
	assert.Len(t, ae.GenExpr(add(x, x), s1, empty), 1)
	assert.Empty(t, ae.KillExpr(add(x, y), s1, empty))
}

func TestAvailableExpressionsKill(t *testing.T) {
	d := AvailableExpressions().
		Assign(x, add(y, z), s1).
		Assign(expr.Var("w"), expr.Binary{Op: expr.Mul, X: x, Y: expr.Int(2)}, s2)
	require.Equal(t, []string{"x * 2", "y + z"}, strs(d))

	d = d.Assign(y, expr.Int(1), s3)
	assert.Equal(t, []string{"x * 2"}, strs(d), "assigning y kills y + z")

	d = d.Assign(x, add(x, expr.Int(1)), s3)
	assert.Empty(t, strs(d), "x = x + 1 kills x * 2 and generates nothing")

	nested := AvailableExpressions().
		Assign(z, expr.Unary{Op: expr.Neg, X: add(x, y)}, s1).
		Assign(y, expr.Int(0), s2)
	assert.Zero(t, nested.Len(), "kill looks into nested expressions")
}

func TestAvailableExpressionsKillThroughOpaque(t *testing.T) {
	sv := expr.Var("s")
	length := expr.Opaque{Text: "len(s)", Vars: []expr.Identifier{sv}}

	d := AvailableExpressions().Assign(expr.Var("a"), add(length, y), s1)
	require.Equal(t, []string{"len(s) + y"}, strs(d))

	grow := expr.Opaque{Text: "append(s, 1)", Vars: []expr.Identifier{sv}}
	assert.Empty(t, strs(d.Assign(sv, grow, s2)), "assigning s kills len(s) + y")
	assert.Equal(t, []string{"len(s) + y"}, strs(d.Assign(z, y, s2)))

	assert.Empty(t, strs(AvailableExpressions().Assign(expr.Var("a"), length, s1)),
		"opaque expressions are never available on their own")
}

func TestAvailableExpressionsJoin(t *testing.T) {
	a := AvailableExpressions().Assign(x, add(y, z), s1).SmallStep(add(y, y), s2)
	b := AvailableExpressions().Assign(x, add(y, z), s3)

	res := a.Join(b)
	assert.Equal(t, []string{"y + z"}, strs(res), "%s ⊔ %s", a, b)
	assert.True(t, a.Leq(res) && b.Leq(res))
	assert.True(t, res.Leq(a.Bottom().Join(res)))
	assert.Equal(t, a.String(), a.Join(a.Bottom()).String())
	assert.False(t, res.Leq(a), "the must-analysis is ordered by reverse inclusion")
}

func TestReachingDefinitions(t *testing.T) {
	var rd ReachingDefinition
	empty := ReachingDefinitions()

	assert.Equal(t, []ReachingDefinition{{x, s1}}, rd.Gen(x, add(x, y), s1, empty))
	assert.Empty(t, rd.GenExpr(add(x, y), s1, empty))

	d := empty.Assign(x, expr.Int(1), s1).Assign(y, x, s2)
	d = d.Assign(x, expr.Int(2), s3)

	assert.True(t, d.Contains(ReachingDefinition{x, s3}))
	assert.False(t, d.Contains(ReachingDefinition{x, s1}), "the definition at s1 is overwritten at s3")
	if diff := cmp.Diff([]string{"(x, prog.go:3:1)", "(y, prog.go:2:1)"}, strs(d)); diff != "" {
		t.Errorf("unexpected reaching definitions (-want +got):\n%s\n%s", diff, spew.Sdump(d.Elements()))
	}
}

func TestReachingDefinitionsJoin(t *testing.T) {
	a := ReachingDefinitions().Assign(x, expr.Int(1), s1)
	b := ReachingDefinitions().Assign(x, expr.Int(2), s2)

	res := a.Join(b)
	assert.Equal(t, []string{"(x, prog.go:1:1)", "(x, prog.go:2:1)"}, strs(res))
	assert.True(t, a.Leq(res))
	assert.False(t, res.Leq(a))
	assert.True(t, res.Assign(x, expr.Int(3), s3).Eq(ReachingDefinitions().Assign(x, y, s3)))
}

func TestScopes(t *testing.T) {
	call := expr.ScopeToken{Name: "f@4:2"}

	rds := ReachingDefinitions().Assign(x, expr.Int(1), s1).PushScope(call)
	require.Equal(t, []string{"(x@[f@4:2], prog.go:1:1)"}, strs(rds))

	// Definitions inside the callee do not survive the return.
	rds = rds.Assign(y, expr.Int(2), s2).PopScope(call)
	assert.Equal(t, []string{"(x, prog.go:1:1)"}, strs(rds))

	aes := AvailableExpressions().Assign(z, add(x, y), s1).PushScope(call)
	require.Equal(t, []string{"x@[f@4:2] + y@[f@4:2]"}, strs(aes))
	aes = aes.SmallStep(add(z, expr.Int(1)), s2).PopScope(call)
	assert.Equal(t, []string{"x + y"}, strs(aes))
}

func TestBottom(t *testing.T) {
	d := ReachingDefinitions().Bottom()
	assert.True(t, d.IsBot())
	assert.Equal(t, "⊥", d.String())
	assert.True(t, d.Assign(x, y, s1).IsBot())
	assert.Equal(t, "∅", ReachingDefinitions().String())
	assert.True(t, AvailableExpressions().IsDefinite())
}
