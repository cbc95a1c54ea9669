package expression

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

// Literal is an atomic expression representing a constant value.
type Literal struct {
	value any
	text  string
}

var _ Atomic = (*Literal)(nil)

// Lit creates a literal expression for the given value.
func Lit(value any) *Literal {
	return &Literal{value: value, text: literalText(value)}
}

func (l *Literal) Value() any                   { return l.value }
func (l *Literal) Text() string                 { return l.text }
func (l *Literal) Precedence() int              { return operator.MaxPrecedence }
func (l *Literal) Subexpressions() []Expression { return nil }

func (l *Literal) Hash() uint64 {
	return hashText("literal\x00"+typeName(l.value), l.text)
}

func (l *Literal) eqSameType(other Expression) bool {
	o := other.(*Literal)
	return typeName(l.value) == typeName(o.value) && l.text == o.text
}

// literalText renders a value with Go literal syntax.  Strings are
// quoted, booleans and nil use their keywords, exact decimals and
// UUIDs use their canonical text, and any other Stringer speaks for
// itself.
func literalText(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return v.String()
	case uuid.UUID:
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", value)
}

// Identifier is an atomic expression representing a name.
type Identifier struct {
	name string
}

var _ Atomic = (*Identifier)(nil)

// NewId creates an identifier with the given name.  The name must
// not be empty.
func NewId(name string) (*Identifier, error) {
	if name == "" {
		return nil, ErrEmptyIdentifier
	}
	return &Identifier{name: name}, nil
}

func (id *Identifier) Name() string                 { return id.name }
func (id *Identifier) Value() any                   { return id.name }
func (id *Identifier) Text() string                 { return id.name }
func (id *Identifier) Precedence() int              { return operator.MaxPrecedence }
func (id *Identifier) Subexpressions() []Expression { return nil }
func (id *Identifier) Hash() uint64                 { return hashText("identifier", id.name) }

func (id *Identifier) eqSameType(other Expression) bool {
	return id.name == other.(*Identifier).name
}

// isIdentName reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits or underscores.
func isIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// IdentifierCache deduplicates identifiers by name.  It replaces the
// weak-reference interning of identifiers with an owned mapping whose
// lifetime the caller controls.
type IdentifierCache struct {
	byName map[string]*Identifier
}

// Get returns the cached identifier for name, creating it on first
// use.
func (c *IdentifierCache) Get(name string) (*Identifier, error) {
	if id, ok := c.byName[name]; ok {
		return id, nil
	}
	id, err := NewId(name)
	if err != nil {
		return nil, err
	}
	if c.byName == nil {
		c.byName = make(map[string]*Identifier)
	}
	c.byName[name] = id
	return id, nil
}

// emptyExpression is the singleton epsilon expression, representing
// "nothing rendered".  It always renders as the empty string and
// contributes zero length.
type emptyExpression struct{}

var emptyInstance = &emptyExpression{}

var _ Atomic = (*emptyExpression)(nil)

// Empty gets the singleton empty expression.
func Empty() Expression { return emptyInstance }

// IsEmpty reports whether e is the empty expression.
func IsEmpty(e Expression) bool { return e == Expression(emptyInstance) }

func (emptyExpression) Value() any                       { return nil }
func (emptyExpression) Text() string                     { return "" }
func (emptyExpression) Precedence() int                  { return operator.MaxPrecedence }
func (emptyExpression) Subexpressions() []Expression     { return nil }
func (emptyExpression) Hash() uint64                     { return hashText("empty", "") }
func (emptyExpression) eqSameType(other Expression) bool { return true }
