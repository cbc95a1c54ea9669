package expression

import (
	"fmt"
	"sync"
)

// Formatter renders an expression as text.
type Formatter interface {
	// ToText renders the given expression.
	ToText(e Expression) string
}

// HasExpressionRepr is implemented by types that can represent
// themselves as an expression tree.  MakeExpression consults it
// before any other conversion rule.
type HasExpressionRepr interface {
	// ToExpression gets the expression representing this object.
	ToExpression() Expression
}

var (
	formattersMu sync.RWMutex
	formatters   = make(map[bool]Formatter)
)

// RegisterDefaultFormatter registers the default formatter for either
// single-line or multiline rendering.  Each mode can be registered
// exactly once, typically from a formatter package's init function.
func RegisterDefaultFormatter(singleLine bool, f Formatter) error {
	formattersMu.Lock()
	defer formattersMu.Unlock()
	if _, ok := formatters[singleLine]; ok {
		return fmt.Errorf("%w: singleLine=%t", ErrFormatterRegistered, singleLine)
	}
	formatters[singleLine] = f
	logger.Verbose("registered default formatter %[1]v (type: %[1]T) for singleLine=%[2]t", f, singleLine)
	return nil
}

// DefaultFormatter gets the registered default formatter for the
// requested rendering mode.
func DefaultFormatter(singleLine bool) (Formatter, error) {
	formattersMu.RLock()
	defer formattersMu.RUnlock()
	f, ok := formatters[singleLine]
	if !ok {
		return nil, fmt.Errorf("%w: singleLine=%t", ErrFormatterNotRegistered, singleLine)
	}
	return f, nil
}

// ReprOf renders v's expression representation on a single line using
// the registered single-line formatter.
func ReprOf(v HasExpressionRepr) (string, error) {
	f, err := DefaultFormatter(true)
	if err != nil {
		return "", err
	}
	return f.ToText(v.ToExpression()), nil
}

// StringOf renders v's expression representation across multiple
// lines using the registered multiline formatter.
func StringOf(v HasExpressionRepr) (string, error) {
	f, err := DefaultFormatter(false)
	if err != nil {
		return "", err
	}
	return f.ToText(v.ToExpression()), nil
}
