package lattice

import (
	"testing"

	"github.com/cs-au-dk/absdom/analysis/expr"
)

func TestSignJoin(t *testing.T) {
	lat := Create().Lattice().Sign()

	tests := []struct {
		a, b, expected Element
	}{
		{lat.Bot(), lat.Bot(), lat.Bot()},
		{lat.Bot(), SignNeg, SignNeg},
		{SignZero, SignZero, SignZero},
		{SignZero, SignPos, lat.Top()},
		{SignNeg, lat.Top(), lat.Top()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestSignEvalBinary(t *testing.T) {
	tests := []struct {
		op             expr.BinaryOp
		l, r, expected Sign
	}{
		{expr.Add, SignPos, SignPos, SignPos},
		{expr.Add, SignPos, SignNeg, SignTop},
		{expr.Add, SignZero, SignNeg, SignNeg},
		{expr.Sub, SignZero, SignPos, SignNeg},
		{expr.Sub, SignPos, SignNeg, SignPos},
		{expr.Sub, SignPos, SignPos, SignTop},
		{expr.Mul, SignNeg, SignNeg, SignPos},
		{expr.Mul, SignNeg, SignPos, SignNeg},
		{expr.Mul, SignTop, SignZero, SignZero},
		{expr.Div, SignPos, SignZero, SignBot},
		{expr.Div, SignZero, SignNeg, SignZero},
		{expr.Div, SignPos, SignPos, SignTop},
		{expr.Mod, SignNeg, SignTop, SignTop},
		{expr.Add, SignBot, SignTop, SignBot},
		{expr.Eq, SignPos, SignPos, SignTop},
	}

	for _, test := range tests {
		res := EvalSignBinary(test.op, test.l, test.r)
		if res != test.expected {
			t.Errorf("%s %s %s = %s, expected %s", test.l, test.op, test.r, res, test.expected)
		}
	}
}

// The sign domain is the extended sign domain without 0- and 0+.
func TestSignAgreesWithExtSign(t *testing.T) {
	signs := Create().Lattice().Sign().Elements()

	for op := expr.Add; op <= expr.Or; op++ {
		for _, l := range signs {
			for _, r := range signs {
				res := EvalSignBinary(op, l, r)
				ext := SignOf(EvalExtSignBinary(op, l.ExtSign(), r.ExtSign()))
				if res != ext {
					t.Errorf("%s %s %s = %s, but the extended sign domain gives %s", l, op, r, res, ext)
				}
			}
		}
	}
}

func TestSignSatisfies(t *testing.T) {
	tests := []struct {
		op       expr.BinaryOp
		l, r     Sign
		expected Satisfiability
	}{
		{expr.Eq, SignZero, SignZero, Satisfied},
		{expr.Gt, SignPos, SignZero, Satisfied},
		{expr.Lt, SignPos, SignNeg, NotSatisfied},
		{expr.Ne, SignTop, SignNeg, Unknown},
	}

	for _, test := range tests {
		if res := SatisfiesSignBinary(test.op, test.l, test.r); res != test.expected {
			t.Errorf("%s %s %s is %s, expected %s", test.l, test.op, test.r, res, test.expected)
		}
	}
}
