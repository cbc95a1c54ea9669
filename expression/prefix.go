package expression

import (
	"fmt"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

// eqPrefix compares two prefix expressions of identical dynamic type.
func eqPrefix(a, b PrefixExpression) bool {
	return a.Separator() == b.Separator() &&
		Equal(a.Prefix(), b.Prefix()) &&
		Equal(a.Body(), b.Body())
}

func hashPrefix(tag string, e PrefixExpression) uint64 {
	return hashNode(
		tag+"\x00"+e.Separator(),
		e.Prefix().Hash(),
		e.Body().Hash(),
	)
}

// UnaryOperation applies a unary operator to a single operand.  It is
// a prefix expression with an empty prefix and the operator symbol as
// the separator.
type UnaryOperation struct {
	op      operator.UnaryOperator
	operand Expression
}

var _ PrefixExpression = (*UnaryOperation)(nil)

// NewUnaryOperation creates a unary operation applying op to the
// given operand.
func NewUnaryOperation(op operator.UnaryOperator, operand any) *UnaryOperation {
	return &UnaryOperation{op: op, operand: MakeExpression(operand)}
}

func (u *UnaryOperation) Operator() operator.UnaryOperator { return u.op }
func (u *UnaryOperation) Operands() []Expression           { return u.Subexpressions() }
func (u *UnaryOperation) Prefix() Expression               { return Empty() }
func (u *UnaryOperation) Separator() string                { return u.op.Symbol() }
func (u *UnaryOperation) Body() Expression                 { return u.operand }
func (u *UnaryOperation) Precedence() int                  { return operator.Precedence(u.op) }

func (u *UnaryOperation) Subexpressions() []Expression {
	return []Expression{Empty(), u.operand}
}

func (u *UnaryOperation) Hash() uint64 { return hashPrefix("unary", u) }

func (u *UnaryOperation) eqSameType(other Expression) bool {
	return eqPrefix(u, other.(PrefixExpression))
}

// KeywordArgument is a named argument of a call, rendered as
// name=value.
type KeywordArgument struct {
	name  string
	value Expression
}

var _ PrefixExpression = (*KeywordArgument)(nil)

// Kwarg creates a keyword argument with the given name and value.
func Kwarg(name string, value any) (*KeywordArgument, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: keyword argument name", ErrEmptyIdentifier)
	}
	return &KeywordArgument{name: name, value: MakeExpression(value)}, nil
}

func (k *KeywordArgument) Name() string       { return k.name }
func (k *KeywordArgument) Value() Expression  { return k.value }
func (k *KeywordArgument) Prefix() Expression { return &Identifier{name: k.name} }
func (k *KeywordArgument) Separator() string  { return "=" }
func (k *KeywordArgument) Body() Expression   { return k.value }
func (k *KeywordArgument) Precedence() int    { return operator.Precedence(operator.Assign) }

func (k *KeywordArgument) Subexpressions() []Expression {
	return []Expression{k.Prefix(), k.value}
}

func (k *KeywordArgument) Hash() uint64 { return hashPrefix("kwarg", k) }

func (k *KeywordArgument) eqSameType(other Expression) bool {
	return eqPrefix(k, other.(PrefixExpression))
}

// DictEntry is a key and a value separated by a colon, used in dict
// literals.
type DictEntry struct {
	key   Expression
	value Expression
}

var _ PrefixExpression = (*DictEntry)(nil)

// Entry creates a dict entry mapping key to value.
func Entry(key, value any) *DictEntry {
	return &DictEntry{key: MakeExpression(key), value: MakeExpression(value)}
}

func (d *DictEntry) Key() Expression    { return d.key }
func (d *DictEntry) Value() Expression  { return d.value }
func (d *DictEntry) Prefix() Expression { return d.key }
func (d *DictEntry) Separator() string  { return ": " }
func (d *DictEntry) Body() Expression   { return d.value }
func (d *DictEntry) Precedence() int    { return operator.Precedence(operator.Colon) }

func (d *DictEntry) Subexpressions() []Expression {
	return []Expression{d.key, d.value}
}

func (d *DictEntry) Hash() uint64 { return hashPrefix("entry", d) }

func (d *DictEntry) eqSameType(other Expression) bool {
	return eqPrefix(d, other.(PrefixExpression))
}

// Invocation is an expression applied to a bracketed argument list,
// in the shape of callee(args) or collection[keys].
type Invocation struct {
	prefix Expression
	args   *argumentList
}

var _ PrefixExpression = (*Invocation)(nil)

func newInvocation(prefix any, brackets BracketPair, args []any) Invocation {
	return Invocation{
		prefix: MakeExpression(prefix),
		args:   newArgumentList(brackets, args),
	}
}

// Arguments gets the invocation's arguments.
func (inv *Invocation) Arguments() []Expression { return inv.args.Elements() }

func (inv *Invocation) Prefix() Expression { return inv.prefix }
func (inv *Invocation) Separator() string  { return "" }
func (inv *Invocation) Body() Expression   { return inv.args }
func (inv *Invocation) Precedence() int    { return operator.Precedence(operator.Dot) }

func (inv *Invocation) Subexpressions() []Expression {
	return []Expression{inv.prefix, inv.args}
}

func (inv *Invocation) Hash() uint64 { return hashPrefix("invocation", inv) }

func (inv *Invocation) eqSameType(other Expression) bool {
	return eqPrefix(inv, other.(PrefixExpression))
}

// Call is a function invocation.  Keyword arguments are appended
// after the positional arguments by passing Kwarg values among args.
type Call struct{ Invocation }

// NewCall creates a call of callee with the given arguments.
func NewCall(callee any, args ...any) *Call {
	return &Call{newInvocation(callee, RoundBrackets, args)}
}

// Callee gets the expression invoked by this call.
func (c *Call) Callee() Expression { return c.prefix }

func (c *Call) Hash() uint64 { return hashPrefix("call", c) }

// Index is an indexing operation in the shape of x[key].  Multiple
// keys render as one bracketed, comma-separated key list.
type Index struct{ Invocation }

// NewIndex creates an index of collection by one or more keys.
func NewIndex(collection any, keys ...any) (*Index, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: index requires at least one key", ErrOperandCount)
	}
	return &Index{newInvocation(collection, SquareBrackets, keys)}, nil
}

func (ix *Index) Hash() uint64 { return hashPrefix("index", ix) }

// LambdaDefinition is the parameter list and body of a lambda
// expression, separated by a colon.
type LambdaDefinition struct {
	params Expression
	body   Expression
}

var _ PrefixExpression = (*LambdaDefinition)(nil)

// NewLambdaDefinition creates a lambda definition with the given
// parameters and body.
func NewLambdaDefinition(params []*Identifier, body any) *LambdaDefinition {
	var paramsExpr Expression
	switch len(params) {
	case 0:
		paramsExpr = Empty()
	case 1:
		paramsExpr = params[0]
	default:
		exprs := make([]Expression, len(params))
		for i, param := range params {
			exprs[i] = param
		}
		paramsExpr = newOperation(operator.Comma, exprs)
	}
	return &LambdaDefinition{params: paramsExpr, body: MakeExpression(body)}
}

// Params gets the parameters of the lambda definition.
func (ld *LambdaDefinition) Params() Expression { return ld.params }

func (ld *LambdaDefinition) Prefix() Expression { return ld.params }
func (ld *LambdaDefinition) Separator() string  { return ": " }
func (ld *LambdaDefinition) Body() Expression   { return ld.body }
func (ld *LambdaDefinition) Precedence() int    { return operator.Precedence(operator.Lambda) }

func (ld *LambdaDefinition) Subexpressions() []Expression {
	return []Expression{ld.params, ld.body}
}

func (ld *LambdaDefinition) Hash() uint64 { return hashPrefix("lambdadef", ld) }

func (ld *LambdaDefinition) eqSameType(other Expression) bool {
	return eqPrefix(ld, other.(PrefixExpression))
}

// Lambda is an anonymous function expression.
type Lambda struct {
	definition *LambdaDefinition
}

var _ PrefixExpression = (*Lambda)(nil)

// NewLambda creates a lambda expression with the given parameters and
// body.
func NewLambda(params []*Identifier, body any) *Lambda {
	return &Lambda{definition: NewLambdaDefinition(params, body)}
}

func (l *Lambda) Prefix() Expression { return Empty() }
func (l *Lambda) Separator() string  { return operator.Lambda.Symbol() + " " }
func (l *Lambda) Body() Expression   { return l.definition }
func (l *Lambda) Precedence() int    { return operator.Precedence(operator.Lambda) }

func (l *Lambda) Subexpressions() []Expression {
	return []Expression{Empty(), l.definition}
}

func (l *Lambda) Hash() uint64 { return hashPrefix("lambda", l) }

func (l *Lambda) eqSameType(other Expression) bool {
	return eqPrefix(l, other.(PrefixExpression))
}
