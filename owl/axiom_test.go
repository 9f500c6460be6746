package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	istaerrors "github.com/RomanoLab/ista/errors"
)

var (
	testNS      = "http://example.org/onto#"
	clsPerson   = NewClass(MustParseIRI(testNS + "Person"))
	clsAgent    = NewClass(MustParseIRI(testNS + "Agent"))
	propKnows   = NewObjectProperty(MustParseIRI(testNS + "knows"))
	propAge     = NewDataProperty(MustParseIRI(testNS + "age"))
	indAlice    = NewNamedIndividual(MustParseIRI(testNS + "Alice"))
	indBob      = NewNamedIndividual(MustParseIRI(testNS + "Bob"))
	propSeeAlso = NewAnnotationProperty(MustParseIRI("http://www.w3.org/2000/01/rdf-schema#seeAlso"))
)

func TestAxiomKeys(t *testing.T) {
	tests := []struct {
		name     string
		axiom    Axiom
		expected string
	}{
		{
			name:     "declaration",
			axiom:    Declaration{Entity: clsPerson},
			expected: "Declaration(Class(<http://example.org/onto#Person>))",
		},
		{
			name:     "subclass of named classes",
			axiom:    SubClassOf{Sub: NamedClass{Class: clsPerson}, Super: NamedClass{Class: clsAgent}},
			expected: "SubClassOf(<http://example.org/onto#Person> <http://example.org/onto#Agent>)",
		},
		{
			name: "subclass of existential restriction",
			axiom: SubClassOf{
				Sub:   NamedClass{Class: clsPerson},
				Super: ObjectSomeValuesFrom{Property: propKnows, Filler: NamedClass{Class: clsPerson}},
			},
			expected: "SubClassOf(<http://example.org/onto#Person> " +
				"ObjectSomeValuesFrom(<http://example.org/onto#knows> <http://example.org/onto#Person>))",
		},
		{
			name:     "class assertion",
			axiom:    ClassAssertion{Class: NamedClass{Class: clsPerson}, Individual: indAlice},
			expected: "ClassAssertion(<http://example.org/onto#Person> <http://example.org/onto#Alice>)",
		},
		{
			name:  "object property assertion",
			axiom: ObjectPropertyAssertion{Property: propKnows, Subject: indAlice, Object: indBob},
			expected: "ObjectPropertyAssertion(<http://example.org/onto#knows> " +
				"<http://example.org/onto#Alice> <http://example.org/onto#Bob>)",
		},
		{
			name:  "data property assertion",
			axiom: DataPropertyAssertion{Property: propAge, Subject: indAlice, Value: NewIntegerLiteral(30)},
			expected: `DataPropertyAssertion(<http://example.org/onto#age> ` +
				`<http://example.org/onto#Alice> "30"^^<http://www.w3.org/2001/XMLSchema#integer>)`,
		},
		{
			name:     "transitive characteristic",
			axiom:    ObjectPropertyCharacteristic{Characteristic: Transitive, Property: propKnows},
			expected: "TransitiveObjectProperty(<http://example.org/onto#knows>)",
		},
		{
			name:     "same individual",
			axiom:    SameIndividual{Individuals: []Entity{indAlice, indBob}},
			expected: "SameIndividual(<http://example.org/onto#Alice> <http://example.org/onto#Bob>)",
		},
		{
			name: "annotation assertion with literal",
			axiom: AnnotationAssertion{
				Property: propSeeAlso,
				Subject:  clsPerson.IRI,
				Value:    AnnotationLiteral(NewStringLiteral("a person")),
			},
			expected: `AnnotationAssertion(<http://www.w3.org/2000/01/rdf-schema#seeAlso> ` +
				`<http://example.org/onto#Person> "a person"^^<http://www.w3.org/2001/XMLSchema#string>)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.axiom.Validate())
			assert.Equal(t, tt.expected, tt.axiom.Key())
			assert.Equal(t, string(tt.axiom.Kind()), tt.expected[:len(tt.axiom.Kind())])
		})
	}
}

func TestAxiomValidation(t *testing.T) {
	tests := []struct {
		name  string
		axiom Axiom
	}{
		{
			name:  "declaration of zero entity",
			axiom: Declaration{},
		},
		{
			name:  "subclass with nil operand",
			axiom: SubClassOf{Sub: NamedClass{Class: clsPerson}},
		},
		{
			name:  "equivalent classes with one operand",
			axiom: EquivalentClasses{Classes: []ClassExpression{NamedClass{Class: clsPerson}}},
		},
		{
			name:  "object assertion with class as subject",
			axiom: ObjectPropertyAssertion{Property: propKnows, Subject: clsPerson, Object: indBob},
		},
		{
			name:  "object assertion with data property",
			axiom: ObjectPropertyAssertion{Property: propAge, Subject: indAlice, Object: indBob},
		},
		{
			name:  "data assertion with untyped literal",
			axiom: DataPropertyAssertion{Property: propAge, Subject: indAlice, Value: Literal{}},
		},
		{
			name:  "characteristic on data property",
			axiom: ObjectPropertyCharacteristic{Characteristic: Functional, Property: propAge},
		},
		{
			name:  "unknown characteristic",
			axiom: ObjectPropertyCharacteristic{Characteristic: "Magical", Property: propKnows},
		},
		{
			name:  "same individual with single member",
			axiom: SameIndividual{Individuals: []Entity{indAlice}},
		},
		{
			name:  "annotation with wrong property kind",
			axiom: AnnotationAssertion{Property: propKnows, Subject: clsPerson.IRI, Value: AnnotationIRI(clsAgent.IRI)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.axiom.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, istaerrors.ErrInvalidAxiom)
		})
	}
}

func TestStructuralEqualityViaKeys(t *testing.T) {
	a := ObjectPropertyAssertion{Property: propKnows, Subject: indAlice, Object: indBob}
	b := ObjectPropertyAssertion{
		Property: NewObjectProperty(MustParseIRI(testNS + "knows")),
		Subject:  NewNamedIndividual(MustParseIRI(testNS + "Alice")),
		Object:   NewNamedIndividual(MustParseIRI(testNS + "Bob")),
	}
	assert.Equal(t, a.Key(), b.Key(), "independently constructed axioms compare equal structurally")

	// Direction matters for structural identity.
	reversed := ObjectPropertyAssertion{Property: propKnows, Subject: indBob, Object: indAlice}
	assert.NotEqual(t, a.Key(), reversed.Key())
}

func TestCloneExpressionIndependence(t *testing.T) {
	original := ObjectIntersectionOf{Operands: []ClassExpression{
		NamedClass{Class: clsPerson},
		ObjectComplementOf{Operand: NamedClass{Class: clsAgent}},
	}}

	clone := CloneExpression(original).(ObjectIntersectionOf)
	require.Equal(t, original.Key(), clone.Key())

	// Mutating the clone's operand slice must not affect the original.
	clone.Operands[0] = NamedClass{Class: clsAgent}
	assert.NotEqual(t, original.Operands[0].(NamedClass).Class.Key(), clone.Operands[0].(NamedClass).Class.Key())
	assert.Equal(t, clsPerson.Key(), original.Operands[0].(NamedClass).Class.Key())
}

func TestCloneAxiomNaryIndependence(t *testing.T) {
	original := EquivalentClasses{Classes: []ClassExpression{
		NamedClass{Class: clsPerson},
		ObjectSomeValuesFrom{Property: propKnows, Filler: NamedClass{Class: clsAgent}},
	}}

	clone := CloneAxiom(original).(EquivalentClasses)
	require.Equal(t, original.Key(), clone.Key())

	clone.Classes[0] = NamedClass{Class: clsAgent}
	assert.Equal(t, clsPerson.Key(), original.Classes[0].(NamedClass).Class.Key())

	// A nil operand slice stays nil through cloning.
	empty := CloneAxiom(DisjointClasses{}).(DisjointClasses)
	assert.Nil(t, empty.Classes)
}

func TestExpressionClassesCollection(t *testing.T) {
	expr := ObjectUnionOf{Operands: []ClassExpression{
		NamedClass{Class: clsPerson},
		ObjectSomeValuesFrom{Property: propKnows, Filler: NamedClass{Class: clsAgent}},
		ObjectHasValue{Property: propKnows, Individual: indAlice},
	}}

	entities := ExpressionClasses(expr)
	keys := make([]string, len(entities))
	for i, e := range entities {
		keys[i] = e.Key()
	}
	assert.Equal(t, []string{
		clsPerson.Key(),
		propKnows.Key(), clsAgent.Key(),
		propKnows.Key(), indAlice.Key(),
	}, keys)
}

func TestDataRangeKeys(t *testing.T) {
	xsdInt := NewDatatype(MustParseIRI("http://www.w3.org/2001/XMLSchema#integer"))
	oneOf := DataOneOf{Literals: []Literal{NewIntegerLiteral(1), NewIntegerLiteral(2)}}

	r := DataUnionOf{Operands: []DataRange{NamedDatatype{Datatype: xsdInt}, oneOf}}
	assert.Equal(t,
		`DataUnionOf(<http://www.w3.org/2001/XMLSchema#integer> `+
			`DataOneOf("1"^^<http://www.w3.org/2001/XMLSchema#integer> "2"^^<http://www.w3.org/2001/XMLSchema#integer>))`,
		r.Key())

	clone := CloneDataRange(r)
	assert.Equal(t, r.Key(), clone.Key())
}
