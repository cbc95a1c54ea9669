package expression

import (
	"fmt"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

// Operation is an n-ary infix operation joining two or more operands
// with a binary operator.
type Operation struct {
	op       operator.BinaryOperator
	operands []Expression
}

var _ InfixExpression = (*Operation)(nil)

// NewOperation creates an operation joining the given operands with
// op.  At least two operands are required.
//
// When the first operand is itself an operation with the same
// operator, its operands are spliced into the new operation, so
// chains built up operand by operand collapse into one flat
// operation.  Operands in later positions are never flattened.
func NewOperation(op operator.BinaryOperator, operands ...any) (*Operation, error) {
	if len(operands) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrOperandCount, len(operands))
	}
	exprs := make([]Expression, len(operands))
	for i, operand := range operands {
		exprs[i] = MakeExpression(operand)
	}
	return newOperation(op, exprs), nil
}

func mustOperation(op operator.BinaryOperator, operands ...any) *Operation {
	o, err := NewOperation(op, operands...)
	if err != nil {
		panic(err)
	}
	return o
}

func newOperation(op operator.BinaryOperator, exprs []Expression) *Operation {
	if first, ok := exprs[0].(InfixExpression); ok && first.Infix() == op {
		inner := first.Subexpressions()
		flat := make([]Expression, 0, len(inner)+len(exprs)-1)
		flat = append(flat, inner...)
		flat = append(flat, exprs[1:]...)
		exprs = flat
	}
	return &Operation{op: op, operands: exprs}
}

// Operator gets the operator joining this operation's operands.
func (o *Operation) Operator() operator.BinaryOperator { return o.op }

// Operands gets this operation's operands.
func (o *Operation) Operands() []Expression { return o.operands }

func (o *Operation) Infix() operator.BinaryOperator { return o.op }
func (o *Operation) Precedence() int                { return operator.Precedence(o.op) }
func (o *Operation) Subexpressions() []Expression   { return o.operands }

func (o *Operation) Hash() uint64 {
	parts := make([]uint64, len(o.operands))
	for i, operand := range o.operands {
		parts[i] = operand.Hash()
	}
	return hashNode("operation\x00"+o.op.Symbol(), parts...)
}

func (o *Operation) eqSameType(other Expression) bool {
	i := other.(InfixExpression)
	return o.op == i.Infix() && equalExpressions(o.operands, i.Subexpressions())
}

// Attr is an attribute access in the shape of obj.attr.  Chained
// accesses flatten into a single operation over all names.
type Attr struct{ Operation }

// NewAttr creates an attribute access of attribute on obj.  The
// attribute must be a valid identifier.
func NewAttr(obj any, attribute string) (*Attr, error) {
	if !isIdentName(attribute) {
		return nil, fmt.Errorf("%w: %q", ErrBadAttribute, attribute)
	}
	return &Attr{*newOperation(operator.Dot, []Expression{
		MakeExpression(obj),
		&Identifier{name: attribute},
	})}, nil
}

func (a *Attr) Hash() uint64 {
	parts := make([]uint64, len(a.operands))
	for i, operand := range a.operands {
		parts[i] = operand.Hash()
	}
	return hashNode("attr", parts...)
}
