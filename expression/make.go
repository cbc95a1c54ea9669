package expression

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BCG-Gamma/pytools/expression/operator"
)

// Slice marks a value as a slicing expression for MakeExpression.
// Nil bounds render as nothing, so Slice{Stop: 3} becomes :3.
type Slice struct {
	Start any
	Stop  any
	Step  any
}

// MakeExpression maps an arbitrary value onto an expression tree.
//
// Expressions pass through unchanged, HasExpressionRepr values
// contribute their own representation, strings and scalars become
// literals, and containers are converted element-wise: unnamed slices
// to list literals, arrays to tuple literals and maps to dict
// literals with entries sorted by the text of their keys.  A named
// slice type renders as a call of the type name on the elements.
func MakeExpression(value any) Expression {
	switch v := value.(type) {
	case nil:
		return Lit(nil)
	case Expression:
		return v
	case HasExpressionRepr:
		return v.ToExpression()
	case string:
		return Lit(v)
	case Slice:
		return sliceExpression(v)
	case decimal.Decimal:
		return Lit(v)
	case uuid.UUID:
		return Lit(v)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		elems := reflectElements(rv)
		if name := rv.Type().Name(); name != "" {
			return NewCall(&Identifier{name: name}, elems...)
		}
		return List(elems...)
	case reflect.Array:
		return Tuple(reflectElements(rv)...)
	case reflect.Map:
		return mapExpression(rv)
	case reflect.Func, reflect.Chan:
		if name := rv.Type().Name(); name != "" {
			return &Identifier{name: name}
		}
	}
	return Lit(value)
}

func reflectElements(rv reflect.Value) []any {
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

func mapExpression(rv reflect.Value) *DictLiteral {
	type keyed struct {
		text  string
		entry *DictEntry
	}
	sorted := make([]keyed, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		sorted = append(sorted, keyed{
			text:  fmt.Sprint(k),
			entry: Entry(k, iter.Value().Interface()),
		})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].text < sorted[j].text })
	entries := make([]*DictEntry, len(sorted))
	for i, k := range sorted {
		entries[i] = k.entry
	}
	return Dict(entries...)
}

func sliceExpression(s Slice) *Operation {
	bound := func(v any) Expression {
		if v == nil {
			return Empty()
		}
		return MakeExpression(v)
	}
	operands := []Expression{bound(s.Start), bound(s.Stop)}
	if s.Step != nil {
		operands = append(operands, MakeExpression(s.Step))
	}
	return newOperation(operator.Slice, operands)
}
