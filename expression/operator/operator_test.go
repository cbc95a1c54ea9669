package operator_test

import (
	"testing"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

func TestPrecedenceOrder(t *testing.T) {
	// tightest to loosest, one representative per tier
	tiers := []operator.Operator{
		operator.Dot,
		operator.Pow,
		operator.Invert,
		operator.Neg,
		operator.Mul,
		operator.Add,
		operator.LShift,
		operator.BitAnd,
		operator.BitXor,
		operator.BitOr,
		operator.In,
		operator.Eq,
		operator.Not,
		operator.And,
		operator.Or,
		operator.Lambda,
		operator.Assign,
		operator.Comma,
	}
	for i := 1; i < len(tiers); i++ {
		a, b := tiers[i-1], tiers[i]
		if operator.Precedence(a) >= operator.Precedence(b) {
			t.Fatalf(
				"expected %q to bind tighter than %q, got %d >= %d",
				a.Symbol(), b.Symbol(),
				operator.Precedence(a), operator.Precedence(b),
			)
		}
	}
	if operator.MaxPrecedence >= operator.Precedence(operator.Dot) {
		t.Fatal("MaxPrecedence must bind tighter than every operator")
	}
	if operator.Precedence(operator.Comma) >= operator.MinPrecedence {
		t.Fatal("MinPrecedence must bind looser than every known operator")
	}
}

func TestPrecedenceTiers(t *testing.T) {
	sameTier := [][2]operator.Operator{
		{operator.Add, operator.Sub},
		{operator.Mul, operator.Mod},
		{operator.Mul, operator.MatMul},
		{operator.Pos, operator.Neg},
		{operator.Assign, operator.Colon},
		{operator.Eq, operator.Neq},
		{operator.In, operator.IsNot},
	}
	for _, pair := range sameTier {
		if operator.Precedence(pair[0]) != operator.Precedence(pair[1]) {
			t.Fatalf(
				"expected %q and %q in the same tier, got %d and %d",
				pair[0].Symbol(), pair[1].Symbol(),
				operator.Precedence(pair[0]), operator.Precedence(pair[1]),
			)
		}
	}
}

func TestUnknownOperatorPrecedence(t *testing.T) {
	op := operator.NewBinaryOperator("?:")
	if p := operator.Precedence(op); p != operator.MinPrecedence {
		t.Fatalf("expected MinPrecedence for unknown operator, got %d", p)
	}
	if p := operator.Precedence(operator.None); p != operator.MinPrecedence {
		t.Fatalf("expected MinPrecedence for the empty operator, got %d", p)
	}
}

func TestOperatorEquality(t *testing.T) {
	if operator.NewBinaryOperator("+") != operator.Add {
		t.Fatal("binary operators with the same symbol must be interchangeable")
	}
	// unary + and binary + are distinct operators
	if operator.Operator(operator.Pos) == operator.Operator(operator.Add) {
		t.Fatal("unary and binary operators must not compare equal")
	}
	// slicing and dict-entry colons share a symbol and a tier
	if operator.Slice != operator.Colon {
		t.Fatal("expected the slice and colon operators to be interchangeable")
	}
	if operator.Precedence(operator.Slice) != operator.Precedence(operator.Assign) {
		t.Fatal("expected the slice operator in the assignment tier")
	}
}
