// Package expression provides basic utilities for constructing
// complex expressions and rendering them as indented strings; useful
// for generating representations of complex objects.
//
// Expressions are immutable values built from literals, identifiers,
// operations and collection literals, either directly through the
// constructors in this package or through MakeExpression, which maps
// arbitrary native values onto expression trees.  Rendering is done
// by the formatting subpackage.
package expression

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/skillian/logging"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

const (
	// PkgName gets this package's name as a string constant
	PkgName = "github.com/BCG-Gamma/pytools/expression"
)

var (
	logger = logging.GetLogger(PkgName)
)

// Expression is a node of an expression tree, composed of literals
// and (possibly nested) operations.  The set of implementations is
// closed: external types participate by implementing
// HasExpressionRepr instead.
type Expression interface {
	// Precedence gets the precedence of this expression, used to
	// determine the need for parentheses.  Lower values bind
	// tighter; atoms report operator.MaxPrecedence and never need
	// parentheses.
	Precedence() int

	// Subexpressions gets the subexpressions of this expression.
	Subexpressions() []Expression

	// Hash calculates a structural 64-bit hash of this expression.
	// Expressions that are Equal have equal hashes.
	Hash() uint64

	// eqSameType checks equality against another expression that is
	// already known to have the identical dynamic type.
	eqSameType(other Expression) bool
}

// Atomic is an expression without subexpressions: a literal, an
// identifier, or the empty expression.
type Atomic interface {
	Expression

	// Text gets the text representing this atomic expression.
	Text() string

	// Value gets the underlying value of this atomic expression.
	Value() any
}

// BracketedExpression is an expression surrounded by a bracket pair.
type BracketedExpression interface {
	Expression

	// Brackets gets the brackets surrounding this expression's
	// subexpression.
	Brackets() BracketPair

	// Subexpression gets the single expression enclosed by the
	// brackets.
	Subexpression() Expression
}

// PrefixExpression combines a prefix and a body, separated by zero or
// more characters.  Unary operations, keyword arguments, dictionary
// entries, invocations and lambda definitions are all prefix
// expressions.
type PrefixExpression interface {
	Expression

	// Prefix gets the prefix of this expression.
	Prefix() Expression

	// Separator gets the characters separating the prefix from the
	// body.
	Separator() string

	// Body gets the body of this expression.
	Body() Expression
}

// InfixExpression is an expression whose subexpressions are separated
// by a binary operator.
type InfixExpression interface {
	Expression

	// Infix gets the operator separating this expression's
	// subexpressions.
	Infix() operator.BinaryOperator
}

// Equal compares two expressions structurally.  Aliases on either
// side transparently compare as the expressions they point to, so
// trees containing aliases are indistinguishable from their
// non-aliased counterparts.
func Equal(a, b Expression) bool {
	if alias, ok := a.(*Alias); ok {
		return Equal(alias.Expression(), b)
	}
	if alias, ok := b.(*Alias); ok {
		return Equal(a, alias.Expression())
	}
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.eqSameType(b)
}

func equalExpressions(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i, e := range a {
		if !Equal(e, b[i]) {
			return false
		}
	}
	return true
}

// hashNode digests a node tag together with the hashes of the node's
// parts.  The tag keeps structurally similar nodes of different kinds
// from colliding.
func hashNode(tag string, parts ...uint64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(tag)
	var buf [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(buf[:], p)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func hashText(tag, text string) uint64 {
	return xxhash.Sum64String(tag + "\x00" + text)
}
