package owl

import (
	"strconv"
)

// XSD datatype IRIs needed for literal construction. The full XSD table
// lives in vocabulary/xsd; these are duplicated here so the core model has
// no dependency on the vocabulary layer.
const (
	xsdNamespace     = "http://www.w3.org/2001/XMLSchema#"
	rdfNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdStringIRI     = xsdNamespace + "string"
	xsdIntegerIRI    = xsdNamespace + "integer"
	xsdDoubleIRI     = xsdNamespace + "double"
	xsdBooleanIRI    = xsdNamespace + "boolean"
	rdfLangStringIRI = rdfNamespace + "langString"
)

// Literal is a data value: a lexical form paired with either a datatype IRI
// or a language tag. Equality is defined on the pair.
type Literal struct {
	lexical  string
	datatype IRI
	lang     string
}

// NewTypedLiteral constructs a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{lexical: lexical, datatype: datatype}
}

// NewStringLiteral constructs an xsd:string literal.
func NewStringLiteral(lexical string) Literal {
	return Literal{lexical: lexical, datatype: MustParseIRI(xsdStringIRI)}
}

// NewIntegerLiteral constructs an xsd:integer literal.
func NewIntegerLiteral(value int64) Literal {
	return Literal{lexical: strconv.FormatInt(value, 10), datatype: MustParseIRI(xsdIntegerIRI)}
}

// NewDoubleLiteral constructs an xsd:double literal.
func NewDoubleLiteral(value float64) Literal {
	return Literal{lexical: strconv.FormatFloat(value, 'g', -1, 64), datatype: MustParseIRI(xsdDoubleIRI)}
}

// NewBooleanLiteral constructs an xsd:boolean literal.
func NewBooleanLiteral(value bool) Literal {
	return Literal{lexical: strconv.FormatBool(value), datatype: MustParseIRI(xsdBooleanIRI)}
}

// NewLangLiteral constructs a language-tagged rdf:langString literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{lexical: lexical, datatype: MustParseIRI(rdfLangStringIRI), lang: lang}
}

// Lexical returns the lexical form of the literal.
func (l Literal) Lexical() string { return l.lexical }

// Datatype returns the datatype IRI.
func (l Literal) Datatype() IRI { return l.datatype }

// Lang returns the language tag, empty unless the literal is language-tagged.
func (l Literal) Lang() string { return l.lang }

// IsZero reports whether the literal is the zero value.
func (l Literal) IsZero() bool { return l.lexical == "" && l.datatype.IsZero() && l.lang == "" }

// Equal reports whether two literals have the same lexical form and the
// same datatype or language tag.
func (l Literal) Equal(other Literal) bool {
	return l.lexical == other.lexical &&
		l.datatype.Equal(other.datatype) &&
		l.lang == other.lang
}

// Key returns the canonical string form used for structural comparison:
// `"lexical"@lang` for language-tagged literals, `"lexical"^^<datatype>`
// otherwise.
func (l Literal) Key() string {
	quoted := strconv.Quote(l.lexical)
	if l.lang != "" {
		return quoted + "@" + l.lang
	}
	return quoted + "^^<" + l.datatype.Full() + ">"
}

// String returns the canonical string form.
func (l Literal) String() string { return l.Key() }

// IsLangTagged reports whether the literal carries a language tag.
func (l Literal) IsLangTagged() bool { return l.lang != "" }

// IsString reports whether the literal's datatype is xsd:string.
func (l Literal) IsString() bool { return l.datatype.Full() == xsdStringIRI }
