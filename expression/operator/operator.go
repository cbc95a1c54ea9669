// Package operator defines the operators used in expressions, along
// with the total precedence order that governs parenthesization.
package operator

// Operator is an operator used in expressions.  Operators compare
// equal by symbol and arity, not by identity: two binary operators
// with the same symbol are interchangeable.
type Operator interface {
	// Symbol gets the textual symbol of the operator.
	Symbol() string

	// IsUnary reports whether this is a unary operator.
	IsUnary() bool
}

// BinaryOperator is an operator with two or more operands.
type BinaryOperator struct {
	symbol string
}

var _ Operator = BinaryOperator{}

// NewBinaryOperator creates a binary operator with the given symbol.
// Operators not listed in the precedence table get the loosest
// possible precedence.
func NewBinaryOperator(symbol string) BinaryOperator {
	return BinaryOperator{symbol: symbol}
}

func (op BinaryOperator) Symbol() string { return op.symbol }
func (op BinaryOperator) IsUnary() bool  { return false }

// UnaryOperator is an operator with a single operand.
type UnaryOperator struct {
	symbol string
}

var _ Operator = UnaryOperator{}

// NewUnaryOperator creates a unary operator with the given symbol.
func NewUnaryOperator(symbol string) UnaryOperator {
	return UnaryOperator{symbol: symbol}
}

func (op UnaryOperator) Symbol() string { return op.symbol }
func (op UnaryOperator) IsUnary() bool  { return true }

// The predefined operators.
var (
	Dot      = BinaryOperator{"."}
	Pow      = BinaryOperator{"**"}
	Pos      = UnaryOperator{"+"}
	Neg      = UnaryOperator{"-"}
	Mul      = BinaryOperator{"*"}
	MatMul   = BinaryOperator{"@"}
	Div      = BinaryOperator{"/"}
	FloorDiv = BinaryOperator{"//"}
	Invert   = UnaryOperator{"~"}
	Mod      = BinaryOperator{"%"}
	Add      = BinaryOperator{"+"}
	Sub      = BinaryOperator{"-"}
	LShift   = BinaryOperator{"<<"}
	RShift   = BinaryOperator{">>"}
	BitAnd   = BinaryOperator{"&"}
	BitXor   = BinaryOperator{"^"}
	BitOr    = BinaryOperator{"|"}
	In       = BinaryOperator{"in"}
	NotIn    = BinaryOperator{"not in"}
	Is       = BinaryOperator{"is"}
	IsNot    = BinaryOperator{"is not"}
	Lt       = BinaryOperator{"<"}
	Le       = BinaryOperator{"<="}
	Gt       = BinaryOperator{">"}
	Ge       = BinaryOperator{">="}
	NeqObs   = BinaryOperator{"<>"}
	Neq      = BinaryOperator{"!="}
	Eq       = BinaryOperator{"=="}
	Not      = UnaryOperator{"not"}
	And      = BinaryOperator{"and"}
	Or       = BinaryOperator{"or"}
	Lambda   = UnaryOperator{"lambda"}
	Assign   = BinaryOperator{"="}
	Colon    = BinaryOperator{":"}
	Slice    = BinaryOperator{":"}
	Comma    = BinaryOperator{","}

	// None is the empty operator, joining its operands with no
	// visible symbol.  It has no entry in the precedence table and
	// therefore always forces parenthesization.
	None = BinaryOperator{""}
)

// Precedence bounds.  Lower values bind tighter: the Dot tier is 0
// and the Comma tier is the loosest named tier.  MaxPrecedence is the
// pseudo-precedence reported by atomic and bracketed expressions,
// which never need parentheses; MinPrecedence is assigned to
// operators missing from the table, which always do.
const (
	MaxPrecedence = -1
	MinPrecedence = 18
)

// precedenceOrder lists the operator tiers from tightest-binding to
// loosest.  Operators within one tier compare equal in precedence.
var precedenceOrder = [][]Operator{
	{Dot},
	{Pow},
	{Invert},
	{Pos, Neg},
	{Mul, MatMul, Div, FloorDiv, Mod},
	{Add, Sub},
	{LShift, RShift},
	{BitAnd},
	{BitXor},
	{BitOr},
	{In, NotIn, Is, IsNot, Lt, Le, Gt, Ge},
	{NeqObs, Neq, Eq},
	{Not},
	{And},
	{Or},
	{Lambda},
	{Assign, Colon},
	{Comma},
}

var precedenceByOperator = func() map[Operator]int {
	m := make(map[Operator]int, 40)
	for tier, ops := range precedenceOrder {
		for _, op := range ops {
			m[op] = tier
		}
	}
	return m
}()

// Precedence gets the precedence tier of the given operator.
// Operators missing from the table get MinPrecedence, the loosest
// tier, so that unknown operators are always parenthesized.
func Precedence(op Operator) int {
	if p, ok := precedenceByOperator[op]; ok {
		return p
	}
	return MinPrecedence
}
