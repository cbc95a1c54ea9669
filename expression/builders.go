package expression

import (
	"github.com/BCG-Gamma/pytools/expression/operator"
)

// Binary builders.  Each creates an operation joining two or more
// operands with the named operator; the two mandatory parameters make
// the arity requirement impossible to violate.

func Add(first, second any, more ...any) *Operation {
	return buildOperation(operator.Add, first, second, more)
}

func Sub(first, second any, more ...any) *Operation {
	return buildOperation(operator.Sub, first, second, more)
}

func Mul(first, second any, more ...any) *Operation {
	return buildOperation(operator.Mul, first, second, more)
}

func MatMul(first, second any, more ...any) *Operation {
	return buildOperation(operator.MatMul, first, second, more)
}

func Div(first, second any, more ...any) *Operation {
	return buildOperation(operator.Div, first, second, more)
}

func FloorDiv(first, second any, more ...any) *Operation {
	return buildOperation(operator.FloorDiv, first, second, more)
}

func Mod(first, second any, more ...any) *Operation {
	return buildOperation(operator.Mod, first, second, more)
}

func Pow(first, second any, more ...any) *Operation {
	return buildOperation(operator.Pow, first, second, more)
}

func LShift(first, second any, more ...any) *Operation {
	return buildOperation(operator.LShift, first, second, more)
}

func RShift(first, second any, more ...any) *Operation {
	return buildOperation(operator.RShift, first, second, more)
}

func BitAnd(first, second any, more ...any) *Operation {
	return buildOperation(operator.BitAnd, first, second, more)
}

func BitXor(first, second any, more ...any) *Operation {
	return buildOperation(operator.BitXor, first, second, more)
}

func BitOr(first, second any, more ...any) *Operation {
	return buildOperation(operator.BitOr, first, second, more)
}

func Eq(first, second any, more ...any) *Operation {
	return buildOperation(operator.Eq, first, second, more)
}

func Neq(first, second any, more ...any) *Operation {
	return buildOperation(operator.Neq, first, second, more)
}

func Gt(first, second any, more ...any) *Operation {
	return buildOperation(operator.Gt, first, second, more)
}

func Ge(first, second any, more ...any) *Operation {
	return buildOperation(operator.Ge, first, second, more)
}

func Lt(first, second any, more ...any) *Operation {
	return buildOperation(operator.Lt, first, second, more)
}

func Le(first, second any, more ...any) *Operation {
	return buildOperation(operator.Le, first, second, more)
}

func And(first, second any, more ...any) *Operation {
	return buildOperation(operator.And, first, second, more)
}

func Or(first, second any, more ...any) *Operation {
	return buildOperation(operator.Or, first, second, more)
}

func In(first, second any, more ...any) *Operation {
	return buildOperation(operator.In, first, second, more)
}

func NotIn(first, second any, more ...any) *Operation {
	return buildOperation(operator.NotIn, first, second, more)
}

func Is(first, second any, more ...any) *Operation {
	return buildOperation(operator.Is, first, second, more)
}

func IsNot(first, second any, more ...any) *Operation {
	return buildOperation(operator.IsNot, first, second, more)
}

func buildOperation(op operator.BinaryOperator, first, second any, more []any) *Operation {
	operands := make([]any, 0, 2+len(more))
	operands = append(operands, first, second)
	operands = append(operands, more...)
	return mustOperation(op, operands...)
}

// Unary builders.

func Not(operand any) *UnaryOperation    { return NewUnaryOperation(operator.Not, operand) }
func Neg(operand any) *UnaryOperation    { return NewUnaryOperation(operator.Neg, operand) }
func Pos(operand any) *UnaryOperation    { return NewUnaryOperation(operator.Pos, operand) }
func Invert(operand any) *UnaryOperation { return NewUnaryOperation(operator.Invert, operand) }
