package formatting

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BCG-Gamma/pytools/expression"
	"github.com/BCG-Gamma/pytools/expression/operator"
)

// indentedLine is one line of rendered output together with its
// indentation level.
type indentedLine struct {
	indent int
	text   string
}

// textualForm is a hierarchical textual representation of an
// expression, the intermediate shape between the expression tree and
// the rendered text.
type textualForm interface {
	// length gets the length, in characters, of the single-line
	// rendering of this form.
	length() int

	// singleLineText renders this form on a single line.
	singleLineText() string

	// lines renders this form as indented lines.  leading and
	// trailing reserve space on the first and last line for
	// characters merged in by the enclosing form.
	lines(cfg Config, indent, leading, trailing int) []indentedLine

	// needsMultiLineEncapsulation reports whether this form should be
	// wrapped in brackets when rendered across multiple lines.
	needsMultiLineEncapsulation() bool
}

// complexForm is a form that can overflow the maximum line width and
// knows how to break itself across multiple lines.
type complexForm interface {
	textualForm
	multiLines(cfg Config, indent, leading, trailing int) []indentedLine
}

// complexLines renders f on a single line if it fits within the
// maximum width at the current indentation, counting the reserved
// leading and trailing characters, and breaks it into multiple lines
// otherwise.
func complexLines(f complexForm, cfg Config, indent, leading, trailing int) []indentedLine {
	if leading+f.length()+indent*cfg.IndentWidth+trailing > cfg.MaxWidth {
		return f.multiLines(cfg, indent, leading, trailing)
	}
	return []indentedLine{{indent: indent, text: f.singleLineText()}}
}

// encapsulate wraps f in round brackets.  When visibleSingleLine is
// false the brackets only appear in multiline renderings.
func encapsulate(f textualForm, visibleSingleLine bool) textualForm {
	return &bracketedForm{
		brackets: expression.RoundBrackets,
		subform:  f,
		visible:  visibleSingleLine,
	}
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// fromExpression builds the textual form of an expression tree.
// Aliases are transparent and contribute the form of their target.
func fromExpression(e expression.Expression) textualForm {
	if alias, ok := e.(*expression.Alias); ok {
		return fromExpression(alias.Expression())
	}
	if expression.IsEmpty(e) {
		return emptyFormInstance
	}
	switch x := e.(type) {
	case expression.Atomic:
		return &atomicForm{text: x.Text()}
	case expression.BracketedExpression:
		return &bracketedForm{
			brackets: x.Brackets(),
			subform:  fromExpression(x.Subexpression()),
			visible:  true,
		}
	case expression.InfixExpression:
		return fromInfix(x)
	case expression.PrefixExpression:
		return fromPrefix(x)
	}
	panic(fmt.Sprintf("unknown expression %[1]v (type: %[1]T)", e))
}

// emptyForm renders as nothing.
type emptyForm struct{}

var emptyFormInstance = emptyForm{}

func (emptyForm) length() int                                { return 0 }
func (emptyForm) singleLineText() string                     { return "" }
func (emptyForm) lines(Config, int, int, int) []indentedLine { return nil }
func (emptyForm) needsMultiLineEncapsulation() bool          { return false }

// atomicForm renders the text of an atomic expression.  It never
// breaks across lines, regardless of width.
type atomicForm struct {
	text string
}

func (f *atomicForm) length() int            { return runeLen(f.text) }
func (f *atomicForm) singleLineText() string { return f.text }

func (f *atomicForm) lines(_ Config, indent, _, _ int) []indentedLine {
	return []indentedLine{{indent: indent, text: f.text}}
}

func (f *atomicForm) needsMultiLineEncapsulation() bool { return false }

// bracketedForm surrounds a subform with a bracket pair.  Invisible
// brackets are rendered only when the form breaks across multiple
// lines; they implement the parentheses that exist purely to carry a
// multiline layout.
type bracketedForm struct {
	brackets expression.BracketPair
	subform  textualForm
	visible  bool
}

func (f *bracketedForm) length() int {
	n := f.subform.length()
	if f.visible {
		n += runeLen(f.brackets.Opening) + runeLen(f.brackets.Closing)
	}
	return n
}

func (f *bracketedForm) singleLineText() string {
	text := f.subform.singleLineText()
	if f.visible {
		return f.brackets.Opening + text + f.brackets.Closing
	}
	return text
}

func (f *bracketedForm) lines(cfg Config, indent, leading, trailing int) []indentedLine {
	return complexLines(f, cfg, indent, leading, trailing)
}

func (f *bracketedForm) multiLines(cfg Config, indent, _, _ int) []indentedLine {
	result := []indentedLine{{indent: indent, text: f.brackets.Opening}}
	result = append(result, f.subform.lines(cfg, indent+1, 0, 0)...)
	return append(result, indentedLine{indent: indent, text: f.brackets.Closing})
}

func (f *bracketedForm) needsMultiLineEncapsulation() bool { return false }

// prefixForm renders a prefix, a separator and a body.
type prefixForm struct {
	prefix    textualForm
	separator string
	body      textualForm
	len       int
}

// fromPrefix builds the form of a prefix expression, parenthesizing
// the prefix or body when it binds more loosely than the expression
// itself.  Alphabetic separators get spaced apart from non-empty
// neighbors.
func fromPrefix(e expression.PrefixExpression) textualForm {
	parent := e.Precedence()

	prefixExpr := e.Prefix()
	prefix := fromExpression(prefixExpr)
	if prefixExpr.Precedence() > parent {
		prefix = encapsulate(prefix, true)
	}

	bodyExpr := e.Body()
	body := fromExpression(bodyExpr)
	if bodyExpr.Precedence() > parent {
		body = encapsulate(body, true)
	}

	separator := e.Separator()
	if prefix.length() > 0 && startsAlpha(separator) {
		separator = " " + separator
	}
	if body.length() > 0 && endsAlpha(separator) {
		separator += " "
	}

	return &prefixForm{
		prefix:    prefix,
		separator: separator,
		body:      body,
		len:       prefix.length() + runeLen(separator) + body.length(),
	}
}

func startsAlpha(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

func endsAlpha(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsLetter(r)
}

func (f *prefixForm) length() int { return f.len }

func (f *prefixForm) singleLineText() string {
	return f.prefix.singleLineText() + f.separator + f.body.singleLineText()
}

func (f *prefixForm) lines(cfg Config, indent, leading, trailing int) []indentedLine {
	return complexLines(f, cfg, indent, leading, trailing)
}

func (f *prefixForm) multiLines(cfg Config, indent, leading, trailing int) []indentedLine {
	prefixLines := f.prefix.lines(cfg, indent, leading, 0)

	bodyLeading := runeLen(f.separator)
	if n := len(prefixLines); n > 0 {
		bodyLeading += runeLen(prefixLines[n-1].text)
	}
	bodyLines := f.body.lines(cfg, indent, bodyLeading, trailing)
	if len(bodyLines) == 0 {
		bodyLines = []indentedLine{{indent: indent}}
	}

	if n := len(prefixLines); n > 0 {
		merged := prefixLines[n-1]
		merged.text += f.separator + bodyLines[0].text
		bodyLines[0] = merged
		return append(prefixLines[:n-1], bodyLines...)
	}
	bodyLines[0].text = f.separator + bodyLines[0].text
	return bodyLines
}

func (f *prefixForm) needsMultiLineEncapsulation() bool {
	return f.prefix.needsMultiLineEncapsulation() || f.body.needsMultiLineEncapsulation()
}

// paddingMode controls the spacing around an infix operator.
type paddingMode int

const (
	paddingNone paddingMode = iota
	paddingRight
	paddingBoth
)

func (p paddingMode) spaces() int {
	switch p {
	case paddingRight:
		return 1
	case paddingBoth:
		return 2
	}
	return 0
}

// infixForm renders subforms joined by an infix operator.
type infixForm struct {
	infix    string
	padding  paddingMode
	subforms []textualForm
	len      int
}

// fromInfix builds the form of an infix expression.  The first
// operand is parenthesized when it binds strictly more loosely than
// the operation; later operands also when they bind equally loosely,
// which preserves explicit right-side grouping.
func fromInfix(e expression.InfixExpression) textualForm {
	subs := e.Subexpressions()
	if len(subs) == 1 {
		return fromExpression(subs[0])
	}

	parent := e.Precedence()
	subforms := make([]textualForm, len(subs))
	for i, sub := range subs {
		f := fromExpression(sub)
		wrap := sub.Precedence() > parent
		if i > 0 {
			wrap = sub.Precedence() >= parent
		}
		if wrap {
			f = encapsulate(f, true)
		}
		subforms[i] = f
	}

	infix := e.Infix()
	var padding paddingMode
	switch infix {
	case operator.Comma:
		padding = paddingRight
	case operator.Dot, operator.Slice, operator.None:
		padding = paddingNone
	default:
		padding = paddingBoth
	}

	return newInfixForm(infix.Symbol(), padding, subforms)
}

func newInfixForm(infix string, padding paddingMode, subforms []textualForm) *infixForm {
	if padding == paddingRight {
		// items of comma lists carry their own parentheses when they
		// break across lines
		for i, sub := range subforms {
			if _, ok := sub.(*infixForm); ok {
				subforms[i] = encapsulate(sub, false)
			}
		}
	}

	length := 0
	for _, sub := range subforms {
		length += sub.length()
	}
	if n := len(subforms) - 1; n > 0 {
		length += n * (runeLen(infix) + padding.spaces())
	}

	return &infixForm{infix: infix, padding: padding, subforms: subforms, len: length}
}

func (f *infixForm) length() int { return f.len }

func (f *infixForm) singleLineText() string {
	separator := ""
	if f.infix != "" {
		switch f.padding {
		case paddingNone:
			separator = f.infix
		case paddingRight:
			separator = f.infix + " "
		default:
			separator = " " + f.infix + " "
		}
	}
	var b strings.Builder
	for i, sub := range f.subforms {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(sub.singleLineText())
	}
	return b.String()
}

func (f *infixForm) lines(cfg Config, indent, leading, trailing int) []indentedLine {
	return complexLines(f, cfg, indent, leading, trailing)
}

func (f *infixForm) multiLines(cfg Config, indent, leading, trailing int) []indentedLine {
	var result []indentedLine

	if len(f.subforms) == 1 {
		return f.subforms[0].lines(cfg, indent, leading, trailing)
	}

	lastIdx := len(f.subforms) - 1

	if f.padding == paddingRight {
		lenInfix := runeLen(f.infix)
		for idx, sub := range f.subforms {
			subLeading, subTrailing := 0, lenInfix
			if idx == 0 {
				subLeading = leading
			}
			if idx == lastIdx {
				subTrailing = trailing
			}
			lines := sub.lines(cfg, indent, subLeading, subTrailing)
			if len(lines) == 0 {
				lines = []indentedLine{{indent: indent}}
			}
			if idx != lastIdx {
				lines[len(lines)-1].text += f.infix
			}
			result = append(result, lines...)
		}
		return result
	}

	infix := f.infix
	if f.padding == paddingBoth {
		infix += " "
	}
	lenInfix := runeLen(infix)
	for idx, sub := range f.subforms {
		subLeading, subTrailing := lenInfix, 0
		if idx == 0 {
			subLeading = leading
		}
		if idx == lastIdx {
			subTrailing = trailing
		}
		lines := sub.lines(cfg, indent, subLeading, subTrailing)
		if len(lines) == 0 {
			lines = []indentedLine{{indent: indent}}
		}
		if idx != 0 {
			lines[0].text = infix + lines[0].text
		}
		result = append(result, lines...)
	}
	return result
}

func (f *infixForm) needsMultiLineEncapsulation() bool { return true }
