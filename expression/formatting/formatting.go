// Package formatting renders expression trees as text, either on a
// single line or across multiple lines kept within a maximum width.
//
// Importing this package registers its formatters as the defaults
// used by expression.ReprOf and expression.StringOf.
package formatting

import (
	"strings"

	"github.com/skillian/logging"

	"github.com/BCG-Gamma/pytools/expression"
)

const (
	// PkgName gets this package's name as a string constant
	PkgName = "github.com/BCG-Gamma/pytools/expression/formatting"
)

var (
	logger = logging.GetLogger(PkgName)
)

// Config holds the parameters used to render an expression.
type Config struct {
	// MaxWidth is the maximum line width.
	MaxWidth int

	// IndentWidth is the number of spaces in one indentation level.
	IndentWidth int

	// SingleLine forces output onto a single line regardless of
	// width.
	SingleLine bool
}

func defaultConfig() Config {
	return Config{MaxWidth: 80, IndentWidth: 4}
}

// Option configures a TextFormatter.
type Option func(*Config)

// WithMaxWidth sets the maximum line width.
func WithMaxWidth(width int) Option {
	return func(cfg *Config) { cfg.MaxWidth = width }
}

// WithIndentWidth sets the width of one indentation level in spaces.
func WithIndentWidth(width int) Option {
	return func(cfg *Config) { cfg.IndentWidth = width }
}

// WithSingleLine forces single-line output regardless of width.
func WithSingleLine(singleLine bool) Option {
	return func(cfg *Config) { cfg.SingleLine = singleLine }
}

// TextFormatter renders expressions as text, breaking lines to keep
// the output within the configured width unless single-line output is
// forced.
type TextFormatter struct {
	config Config
}

var _ expression.Formatter = (*TextFormatter)(nil)

// NewTextFormatter creates a text formatter with the given options
// applied over the defaults of an 80 character width and 4 space
// indentation.
func NewTextFormatter(options ...Option) *TextFormatter {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}
	return &TextFormatter{config: cfg}
}

// Config gets a copy of the formatter's configuration.
func (tf *TextFormatter) Config() Config { return tf.config }

// ToText renders the given expression.
func (tf *TextFormatter) ToText(e expression.Expression) string {
	form := fromExpression(e)
	if form.needsMultiLineEncapsulation() {
		form = encapsulate(form, false)
	}
	if tf.config.SingleLine {
		return form.singleLineText()
	}
	var b strings.Builder
	for i, line := range form.lines(tf.config, 0, 0, 0) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for s := 0; s < line.indent*tf.config.IndentWidth; s++ {
			b.WriteByte(' ')
		}
		b.WriteString(line.text)
	}
	return b.String()
}

var (
	defaultMultiLine  = NewTextFormatter()
	defaultSingleLine = NewTextFormatter(WithSingleLine(true))
)

// Repr renders an expression on a single line.
func Repr(e expression.Expression) string { return defaultSingleLine.ToText(e) }

// String renders an expression across multiple lines with the default
// configuration.
func String(e expression.Expression) string { return defaultMultiLine.ToText(e) }

func init() {
	if err := expression.RegisterDefaultFormatter(false, defaultMultiLine); err != nil {
		logger.Error1("registering default formatter: %v", err)
	}
	if err := expression.RegisterDefaultFormatter(true, defaultSingleLine); err != nil {
		logger.Error1("registering default formatter: %v", err)
	}
}
