package expression

import (
	"github.com/BCG-Gamma/pytools/expression/operator"
)

// BracketPair is a pair of opening and closing brackets.
type BracketPair struct {
	Opening string
	Closing string
}

// The predefined bracket pairs.
var (
	RoundBrackets  = BracketPair{"(", ")"}
	SquareBrackets = BracketPair{"[", "]"}
	CurlyBrackets  = BracketPair{"{", "}"}
	AngledBrackets = BracketPair{"<", ">"}
)

// Bracketed is an expression surrounded by brackets.  Bracketed
// expressions never need outer parentheses, so they report the
// tightest possible precedence.
type Bracketed struct {
	brackets      BracketPair
	subexpression Expression
}

var _ BracketedExpression = (*Bracketed)(nil)

// NewBracketed creates an expression wrapping the given value in the
// given bracket pair.
func NewBracketed(brackets BracketPair, subexpression any) *Bracketed {
	return &Bracketed{
		brackets:      brackets,
		subexpression: MakeExpression(subexpression),
	}
}

func (b *Bracketed) Brackets() BracketPair        { return b.brackets }
func (b *Bracketed) Subexpression() Expression    { return b.subexpression }
func (b *Bracketed) Precedence() int              { return operator.MaxPrecedence }
func (b *Bracketed) Subexpressions() []Expression { return []Expression{b.subexpression} }

func (b *Bracketed) Hash() uint64 {
	return hashNode(
		"bracketed\x00"+b.brackets.Opening+b.brackets.Closing,
		b.subexpression.Hash(),
	)
}

func (b *Bracketed) eqSameType(other Expression) bool {
	o := other.(BracketedExpression)
	return b.brackets == o.Brackets() && Equal(b.subexpression, o.Subexpression())
}

// collectionLiteral is the common shape of list, tuple, set and dict
// literals as well as invocation argument lists: a bracket pair
// around zero or more elements.  No elements bracket the empty
// expression, a single element is bracketed directly, and two or more
// elements are joined into one comma operation.
type collectionLiteral struct {
	Bracketed
	elements []Expression
}

func newCollectionLiteral(brackets BracketPair, elements []any) collectionLiteral {
	exprs := make([]Expression, len(elements))
	for i, element := range elements {
		exprs[i] = MakeExpression(element)
	}
	return collectionFromExpressions(brackets, exprs)
}

func collectionFromExpressions(brackets BracketPair, exprs []Expression) collectionLiteral {
	var subexpression Expression
	switch len(exprs) {
	case 0:
		subexpression = Empty()
	case 1:
		subexpression = exprs[0]
	default:
		subexpression = newOperation(operator.Comma, exprs)
	}
	return collectionLiteral{
		Bracketed: Bracketed{brackets: brackets, subexpression: subexpression},
		elements:  exprs,
	}
}

// Elements gets the expressions representing the elements of this
// collection.
func (c *collectionLiteral) Elements() []Expression { return c.elements }

// ListLiteral is a list of expressions in square brackets.
type ListLiteral struct{ collectionLiteral }

// List creates a list literal from the given elements.
func List(elements ...any) *ListLiteral {
	return &ListLiteral{newCollectionLiteral(SquareBrackets, elements)}
}

func (l *ListLiteral) Hash() uint64 { return hashNode("list", l.Bracketed.Hash()) }

// TupleLiteral is a fixed sequence of expressions in round brackets.
type TupleLiteral struct{ collectionLiteral }

// Tuple creates a tuple literal from the given elements.
func Tuple(elements ...any) *TupleLiteral {
	return &TupleLiteral{newCollectionLiteral(RoundBrackets, elements)}
}

func (t *TupleLiteral) Hash() uint64 { return hashNode("tuple", t.Bracketed.Hash()) }

// SetLiteral is an unordered collection of expressions in curly
// brackets.
type SetLiteral struct{ collectionLiteral }

// Set creates a set literal from the given elements.
func Set(elements ...any) *SetLiteral {
	return &SetLiteral{newCollectionLiteral(CurlyBrackets, elements)}
}

func (s *SetLiteral) Hash() uint64 { return hashNode("set", s.Bracketed.Hash()) }

// DictLiteral is a collection of key-value entries in curly brackets.
type DictLiteral struct{ collectionLiteral }

// Dict creates a dict literal from the given entries, preserving
// their order.
func Dict(entries ...*DictEntry) *DictLiteral {
	exprs := make([]Expression, len(entries))
	for i, entry := range entries {
		exprs[i] = entry
	}
	return &DictLiteral{collectionFromExpressions(CurlyBrackets, exprs)}
}

func (d *DictLiteral) Hash() uint64 { return hashNode("dict", d.Bracketed.Hash()) }

// argumentList is the bracketed argument collection of an invocation.
type argumentList struct{ collectionLiteral }

func newArgumentList(brackets BracketPair, args []any) *argumentList {
	return &argumentList{newCollectionLiteral(brackets, args)}
}

func (a *argumentList) Hash() uint64 { return hashNode("arguments", a.Bracketed.Hash()) }
