package expression

// Alias is a mutable indirection to another expression.  Replacing
// the target changes every tree the alias participates in, which
// allows recursive or late-bound structures.  An alias compares and
// hashes as its current target, so it is transparent to Equal.
type Alias struct {
	expression Expression
}

var _ Expression = (*Alias)(nil)

// NewAlias creates an alias pointing at the given expression.
func NewAlias(expression any) *Alias {
	return &Alias{expression: MakeExpression(expression)}
}

// Expression gets the expression the alias currently points to.
func (a *Alias) Expression() Expression { return a.expression }

// SetExpression redirects the alias to a new target.
func (a *Alias) SetExpression(expression any) {
	a.expression = MakeExpression(expression)
}

func (a *Alias) Precedence() int              { return a.expression.Precedence() }
func (a *Alias) Subexpressions() []Expression { return []Expression{a.expression} }
func (a *Alias) Hash() uint64                 { return a.expression.Hash() }

func (a *Alias) eqSameType(other Expression) bool {
	// Unreachable through Equal, which unwraps aliases first.
	return Equal(a.expression, other)
}
