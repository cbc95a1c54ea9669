package expression

import "errors"

var (
	// ErrOperandCount indicates that an operation was constructed
	// with fewer operands than its arity requires.
	ErrOperandCount = errors.New("operation requires at least two operands")

	// ErrEmptyIdentifier indicates an identifier or keyword-argument
	// name without any text.
	ErrEmptyIdentifier = errors.New("identifier must not be empty")

	// ErrBadAttribute indicates an attribute name that is not a
	// valid identifier.
	ErrBadAttribute = errors.New("attribute must be a valid identifier")

	// ErrFormatterRegistered indicates an attempt to register a
	// second default formatter for the same single-line flag value.
	ErrFormatterRegistered = errors.New("default formatter already registered")

	// ErrFormatterNotRegistered indicates that no default formatter
	// has been registered for the requested single-line flag value.
	ErrFormatterNotRegistered = errors.New("no default formatter registered")
)
