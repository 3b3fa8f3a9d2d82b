package lattice

import (
	"testing"

	"github.com/cs-au-dk/absdom/analysis/expr"
)

func TestExtSignJoin(t *testing.T) {
	lat := Create().Lattice().ExtSign()

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), lat.Top(), lat.Top()},
		{lat.Bot(), ExtSignPos, ExtSignPos},
		{ExtSignNeg, ExtSignZero, ExtSignNegOrZero},
		{ExtSignZero, ExtSignPos, ExtSignPosOrZero},
		{ExtSignNeg, ExtSignPos, lat.Top()},
		{ExtSignNegOrZero, ExtSignPosOrZero, lat.Top()},
		{ExtSignZero, ExtSignPosOrZero, ExtSignPosOrZero},
		{ExtSignPos, ExtSignNegOrZero, lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}
}

func TestExtSignMeet(t *testing.T) {
	lat := Create().Lattice().ExtSign()

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Top(), lat.Bot(), lat.Bot()},
		{lat.Top(), ExtSignPosOrZero, ExtSignPosOrZero},
		{ExtSignNegOrZero, ExtSignPosOrZero, ExtSignZero},
		{ExtSignNeg, ExtSignPos, lat.Bot()},
		{ExtSignNeg, ExtSignNegOrZero, ExtSignNeg},
		{ExtSignPos, ExtSignNegOrZero, lat.Bot()},
	}

	for _, test := range tests {
		res := test.a.Meet(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestExtSignAbstraction(t *testing.T) {
	el := Elements().ExtSign
	for n, expected := range map[int64]ExtSign{
		-7: ExtSignNeg,
		0:  ExtSignZero,
		42: ExtSignPos,
	} {
		if res := el(n); res != expected {
			t.Errorf("α(%d) = %s, expected %s", n, res, expected)
		}
	}
}

func TestExtSignEvalBinary(t *testing.T) {
	tests := []struct {
		op             expr.BinaryOp
		l, r, expected ExtSign
	}{
		{expr.Div, ExtSignPos, ExtSignZero, ExtSignBot},
		{expr.Add, ExtSignPos, ExtSignNeg, ExtSignTop},
		{expr.Add, ExtSignZero, ExtSignPos, ExtSignPos},
		{expr.Add, ExtSignPosOrZero, ExtSignPos, ExtSignPos},
		{expr.Add, ExtSignNegOrZero, ExtSignNegOrZero, ExtSignNegOrZero},
		{expr.Sub, ExtSignPos, ExtSignNeg, ExtSignPos},
		{expr.Sub, ExtSignZero, ExtSignPosOrZero, ExtSignNegOrZero},
		{expr.Mul, ExtSignNeg, ExtSignNeg, ExtSignPos},
		{expr.Mul, ExtSignNegOrZero, ExtSignPos, ExtSignNegOrZero},
		{expr.Mul, ExtSignTop, ExtSignZero, ExtSignZero},
		{expr.Div, ExtSignPos, ExtSignPos, ExtSignPosOrZero},
		{expr.Div, ExtSignNeg, ExtSignPos, ExtSignNegOrZero},
		{expr.Div, ExtSignZero, ExtSignTop, ExtSignZero},
		{expr.Div, ExtSignTop, ExtSignPosOrZero, ExtSignTop},
		{expr.Mod, ExtSignNeg, ExtSignPos, ExtSignNegOrZero},
		{expr.Mod, ExtSignPos, ExtSignNeg, ExtSignPosOrZero},
		{expr.Mod, ExtSignTop, ExtSignZero, ExtSignBot},
		{expr.Add, ExtSignBot, ExtSignPos, ExtSignBot},
		{expr.Lt, ExtSignPos, ExtSignNeg, ExtSignTop},
		{expr.Lt, ExtSignBot, ExtSignNeg, ExtSignBot},
	}

	for _, test := range tests {
		res := EvalExtSignBinary(test.op, test.l, test.r)
		if res != test.expected {
			t.Errorf("%s %s %s = %s, expected %s", test.l, test.op, test.r, res, test.expected)
		}
	}
}

func TestExtSignEvalUnary(t *testing.T) {
	tests := []struct {
		op          expr.UnaryOp
		e, expected ExtSign
	}{
		{expr.Neg, ExtSignPos, ExtSignNeg},
		{expr.Neg, ExtSignNegOrZero, ExtSignPosOrZero},
		{expr.Neg, ExtSignZero, ExtSignZero},
		{expr.Neg, ExtSignBot, ExtSignBot},
		{expr.Not, ExtSignZero, ExtSignTop},
	}

	for _, test := range tests {
		if res := EvalExtSignUnary(test.op, test.e); res != test.expected {
			t.Errorf("%s%s = %s, expected %s", test.op, test.e, res, test.expected)
		}
	}
}

func TestExtSignSatisfies(t *testing.T) {
	S, N, U := Satisfied, NotSatisfied, Unknown

	tests := []struct {
		op       expr.BinaryOp
		l, r     ExtSign
		expected Satisfiability
	}{
		{expr.Eq, ExtSignZero, ExtSignZero, S},
		{expr.Eq, ExtSignPos, ExtSignNeg, N},
		{expr.Eq, ExtSignPos, ExtSignPos, U},
		{expr.Eq, ExtSignPosOrZero, ExtSignNeg, N},
		{expr.Ne, ExtSignPos, ExtSignNeg, S},
		{expr.Ne, ExtSignTop, ExtSignZero, U},
		{expr.Gt, ExtSignPos, ExtSignNegOrZero, S},
		{expr.Gt, ExtSignZero, ExtSignPos, N},
		{expr.Gt, ExtSignPosOrZero, ExtSignZero, U},
		{expr.Ge, ExtSignZero, ExtSignNeg, S},
		{expr.Ge, ExtSignPos, ExtSignZero, S},
		{expr.Ge, ExtSignNeg, ExtSignPosOrZero, N},
		{expr.Le, ExtSignNeg, ExtSignZero, S},
		{expr.Le, ExtSignPos, ExtSignNegOrZero, N},
		{expr.Lt, ExtSignZero, ExtSignZero, N},
		{expr.Lt, ExtSignNeg, ExtSignPos, S},
		{expr.Lt, ExtSignTop, ExtSignPos, U},
		{expr.Eq, ExtSignBot, ExtSignZero, N},
		{expr.Add, ExtSignPos, ExtSignPos, U},
	}

	for _, test := range tests {
		res := SatisfiesExtSignBinary(test.op, test.l, test.r)
		if res != test.expected {
			t.Errorf("%s %s %s is %s, expected %s", test.l, test.op, test.r, res, test.expected)
		}
	}
}

func TestExtSignBound(t *testing.T) {
	tests := []struct {
		op          expr.BinaryOp
		v, expected ExtSign
		ok          bool
	}{
		{expr.Ge, ExtSignZero, ExtSignPosOrZero, true},
		{expr.Ge, ExtSignPos, ExtSignPos, true},
		{expr.Ge, ExtSignNeg, ExtSignTop, true},
		{expr.Eq, ExtSignNeg, ExtSignNeg, true},
		{expr.Ne, ExtSignZero, ExtSignTop, true},
		{expr.Ne, ExtSignPos, ExtSignTop, true},
		{expr.Gt, ExtSignZero, ExtSignPos, true},
		{expr.Gt, ExtSignPosOrZero, ExtSignPos, true},
		{expr.Le, ExtSignNegOrZero, ExtSignNegOrZero, true},
		{expr.Le, ExtSignPos, ExtSignTop, true},
		{expr.Lt, ExtSignNegOrZero, ExtSignNeg, true},
		{expr.Lt, ExtSignBot, ExtSignBot, true},
		{expr.Add, ExtSignPos, ExtSignTop, false},
	}

	for _, test := range tests {
		res, ok := ExtSignBound(test.op, test.v)
		if res != test.expected || ok != test.ok {
			t.Errorf("x %s %s bounds x by %s (%v), expected %s (%v)",
				test.op, test.v, res, ok, test.expected, test.ok)
		}
	}
}

func TestExcludeExtSign(t *testing.T) {
	tests := []struct {
		x, v, expected ExtSign
	}{
		{ExtSignPosOrZero, ExtSignZero, ExtSignPos},
		{ExtSignNegOrZero, ExtSignZero, ExtSignNeg},
		{ExtSignTop, ExtSignZero, ExtSignTop},
		{ExtSignZero, ExtSignZero, ExtSignBot},
		{ExtSignPosOrZero, ExtSignPos, ExtSignPosOrZero},
		{ExtSignPos, ExtSignPos, ExtSignPos},
	}

	for _, test := range tests {
		if res := ExcludeExtSign(test.x, test.v); res != test.expected {
			t.Errorf("%s \\ %s = %s, expected %s", test.x, test.v, res, test.expected)
		}
	}
}
