package owl

import (
	"fmt"
	"strings"
)

// ClassExpression is the closed union of OWL2 class expression trees. Each
// composite exclusively owns its children; expressions form trees, never
// shared subgraphs or cycles. Expressions are axiom payload only — this
// package never evaluates them.
type ClassExpression interface {
	// Key returns the canonical structural form of the expression in OWL
	// functional syntax. Two expressions are structurally equal exactly
	// when their keys are equal.
	Key() string

	isClassExpression()
}

// NamedClass is a class expression consisting of a single named class.
type NamedClass struct {
	Class Entity
}

// ObjectIntersectionOf is the intersection of two or more class expressions.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// ObjectUnionOf is the union of two or more class expressions.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

// ObjectComplementOf is the complement of a class expression.
type ObjectComplementOf struct {
	Operand ClassExpression
}

// ObjectSomeValuesFrom is the existential restriction on an object property.
type ObjectSomeValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

// ObjectAllValuesFrom is the universal restriction on an object property.
type ObjectAllValuesFrom struct {
	Property Entity
	Filler   ClassExpression
}

// ObjectHasValue restricts an object property to a specific individual.
type ObjectHasValue struct {
	Property   Entity
	Individual Entity
}

// ObjectHasSelf restricts an object property to relate individuals to themselves.
type ObjectHasSelf struct {
	Property Entity
}

// ObjectMinCardinality is the minimum cardinality restriction. A nil Filler
// means the restriction is unqualified.
type ObjectMinCardinality struct {
	N        int
	Property Entity
	Filler   ClassExpression
}

// ObjectMaxCardinality is the maximum cardinality restriction. A nil Filler
// means the restriction is unqualified.
type ObjectMaxCardinality struct {
	N        int
	Property Entity
	Filler   ClassExpression
}

// ObjectExactCardinality is the exact cardinality restriction. A nil Filler
// means the restriction is unqualified.
type ObjectExactCardinality struct {
	N        int
	Property Entity
	Filler   ClassExpression
}

func (NamedClass) isClassExpression()             {}
func (ObjectIntersectionOf) isClassExpression()   {}
func (ObjectUnionOf) isClassExpression()          {}
func (ObjectComplementOf) isClassExpression()     {}
func (ObjectSomeValuesFrom) isClassExpression()   {}
func (ObjectAllValuesFrom) isClassExpression()    {}
func (ObjectHasValue) isClassExpression()         {}
func (ObjectHasSelf) isClassExpression()          {}
func (ObjectMinCardinality) isClassExpression()   {}
func (ObjectMaxCardinality) isClassExpression()   {}
func (ObjectExactCardinality) isClassExpression() {}

// Key implements ClassExpression.
func (e NamedClass) Key() string { return e.Class.ref() }

// Key implements ClassExpression.
func (e ObjectIntersectionOf) Key() string {
	return "ObjectIntersectionOf(" + joinExpressionKeys(e.Operands) + ")"
}

// Key implements ClassExpression.
func (e ObjectUnionOf) Key() string {
	return "ObjectUnionOf(" + joinExpressionKeys(e.Operands) + ")"
}

// Key implements ClassExpression.
func (e ObjectComplementOf) Key() string {
	return "ObjectComplementOf(" + e.Operand.Key() + ")"
}

// Key implements ClassExpression.
func (e ObjectSomeValuesFrom) Key() string {
	return "ObjectSomeValuesFrom(" + e.Property.ref() + " " + e.Filler.Key() + ")"
}

// Key implements ClassExpression.
func (e ObjectAllValuesFrom) Key() string {
	return "ObjectAllValuesFrom(" + e.Property.ref() + " " + e.Filler.Key() + ")"
}

// Key implements ClassExpression.
func (e ObjectHasValue) Key() string {
	return "ObjectHasValue(" + e.Property.ref() + " " + e.Individual.ref() + ")"
}

// Key implements ClassExpression.
func (e ObjectHasSelf) Key() string {
	return "ObjectHasSelf(" + e.Property.ref() + ")"
}

// Key implements ClassExpression.
func (e ObjectMinCardinality) Key() string {
	return cardinalityKey("ObjectMinCardinality", e.N, e.Property, e.Filler)
}

// Key implements ClassExpression.
func (e ObjectMaxCardinality) Key() string {
	return cardinalityKey("ObjectMaxCardinality", e.N, e.Property, e.Filler)
}

// Key implements ClassExpression.
func (e ObjectExactCardinality) Key() string {
	return cardinalityKey("ObjectExactCardinality", e.N, e.Property, e.Filler)
}

func cardinalityKey(name string, n int, property Entity, filler ClassExpression) string {
	if filler == nil {
		return fmt.Sprintf("%s(%d %s)", name, n, property.ref())
	}
	return fmt.Sprintf("%s(%d %s %s)", name, n, property.ref(), filler.Key())
}

func joinExpressionKeys(operands []ClassExpression) string {
	keys := make([]string, len(operands))
	for i, op := range operands {
		keys[i] = op.Key()
	}
	return strings.Join(keys, " ")
}

// CloneExpression returns a deep, independent copy of a class expression.
func CloneExpression(expr ClassExpression) ClassExpression {
	switch e := expr.(type) {
	case nil:
		return nil
	case NamedClass:
		return e
	case ObjectIntersectionOf:
		return ObjectIntersectionOf{Operands: cloneExpressions(e.Operands)}
	case ObjectUnionOf:
		return ObjectUnionOf{Operands: cloneExpressions(e.Operands)}
	case ObjectComplementOf:
		return ObjectComplementOf{Operand: CloneExpression(e.Operand)}
	case ObjectSomeValuesFrom:
		return ObjectSomeValuesFrom{Property: e.Property, Filler: CloneExpression(e.Filler)}
	case ObjectAllValuesFrom:
		return ObjectAllValuesFrom{Property: e.Property, Filler: CloneExpression(e.Filler)}
	case ObjectHasValue:
		return e
	case ObjectHasSelf:
		return e
	case ObjectMinCardinality:
		return ObjectMinCardinality{N: e.N, Property: e.Property, Filler: CloneExpression(e.Filler)}
	case ObjectMaxCardinality:
		return ObjectMaxCardinality{N: e.N, Property: e.Property, Filler: CloneExpression(e.Filler)}
	case ObjectExactCardinality:
		return ObjectExactCardinality{N: e.N, Property: e.Property, Filler: CloneExpression(e.Filler)}
	default:
		// The union is closed; a new variant here is a programming error.
		panic(fmt.Sprintf("owl: unknown class expression type %T", expr))
	}
}

func cloneExpressions(operands []ClassExpression) []ClassExpression {
	if operands == nil {
		return nil
	}
	out := make([]ClassExpression, len(operands))
	for i, op := range operands {
		out[i] = CloneExpression(op)
	}
	return out
}

// ExpressionClasses collects the named entities referenced anywhere in a
// class expression tree: classes, properties, and individuals.
func ExpressionClasses(expr ClassExpression) []Entity {
	var out []Entity
	collectExpressionEntities(expr, &out)
	return out
}

func collectExpressionEntities(expr ClassExpression, out *[]Entity) {
	switch e := expr.(type) {
	case nil:
	case NamedClass:
		*out = append(*out, e.Class)
	case ObjectIntersectionOf:
		for _, op := range e.Operands {
			collectExpressionEntities(op, out)
		}
	case ObjectUnionOf:
		for _, op := range e.Operands {
			collectExpressionEntities(op, out)
		}
	case ObjectComplementOf:
		collectExpressionEntities(e.Operand, out)
	case ObjectSomeValuesFrom:
		*out = append(*out, e.Property)
		collectExpressionEntities(e.Filler, out)
	case ObjectAllValuesFrom:
		*out = append(*out, e.Property)
		collectExpressionEntities(e.Filler, out)
	case ObjectHasValue:
		*out = append(*out, e.Property, e.Individual)
	case ObjectHasSelf:
		*out = append(*out, e.Property)
	case ObjectMinCardinality:
		*out = append(*out, e.Property)
		collectExpressionEntities(e.Filler, out)
	case ObjectMaxCardinality:
		*out = append(*out, e.Property)
		collectExpressionEntities(e.Filler, out)
	case ObjectExactCardinality:
		*out = append(*out, e.Property)
		collectExpressionEntities(e.Filler, out)
	}
}

// DataRange is the closed union of OWL2 data ranges.
type DataRange interface {
	// Key returns the canonical structural form of the range.
	Key() string

	isDataRange()
}

// NamedDatatype is a data range consisting of a single datatype.
type NamedDatatype struct {
	Datatype Entity
}

// DataIntersectionOf is the intersection of two or more data ranges.
type DataIntersectionOf struct {
	Operands []DataRange
}

// DataUnionOf is the union of two or more data ranges.
type DataUnionOf struct {
	Operands []DataRange
}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

// DataOneOf is an enumeration of literal values.
type DataOneOf struct {
	Literals []Literal
}

func (NamedDatatype) isDataRange()      {}
func (DataIntersectionOf) isDataRange() {}
func (DataUnionOf) isDataRange()        {}
func (DataComplementOf) isDataRange()   {}
func (DataOneOf) isDataRange()          {}

// Key implements DataRange.
func (r NamedDatatype) Key() string { return r.Datatype.ref() }

// Key implements DataRange.
func (r DataIntersectionOf) Key() string {
	return "DataIntersectionOf(" + joinDataRangeKeys(r.Operands) + ")"
}

// Key implements DataRange.
func (r DataUnionOf) Key() string {
	return "DataUnionOf(" + joinDataRangeKeys(r.Operands) + ")"
}

// Key implements DataRange.
func (r DataComplementOf) Key() string {
	return "DataComplementOf(" + r.Operand.Key() + ")"
}

// Key implements DataRange.
func (r DataOneOf) Key() string {
	keys := make([]string, len(r.Literals))
	for i, lit := range r.Literals {
		keys[i] = lit.Key()
	}
	return "DataOneOf(" + strings.Join(keys, " ") + ")"
}

func joinDataRangeKeys(operands []DataRange) string {
	keys := make([]string, len(operands))
	for i, op := range operands {
		keys[i] = op.Key()
	}
	return strings.Join(keys, " ")
}

// CloneDataRange returns a deep, independent copy of a data range.
func CloneDataRange(r DataRange) DataRange {
	switch dr := r.(type) {
	case nil:
		return nil
	case NamedDatatype:
		return dr
	case DataIntersectionOf:
		return DataIntersectionOf{Operands: cloneDataRanges(dr.Operands)}
	case DataUnionOf:
		return DataUnionOf{Operands: cloneDataRanges(dr.Operands)}
	case DataComplementOf:
		return DataComplementOf{Operand: CloneDataRange(dr.Operand)}
	case DataOneOf:
		lits := make([]Literal, len(dr.Literals))
		copy(lits, dr.Literals)
		return DataOneOf{Literals: lits}
	default:
		panic(fmt.Sprintf("owl: unknown data range type %T", r))
	}
}

func cloneDataRanges(operands []DataRange) []DataRange {
	if operands == nil {
		return nil
	}
	out := make([]DataRange, len(operands))
	for i, op := range operands {
		out[i] = CloneDataRange(op)
	}
	return out
}
