package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{name: "structural", class: ErrorStructural, expected: "structural"},
		{name: "not found", class: ErrorNotFound, expected: "not_found"},
		{name: "unsupported", class: ErrorUnsupported, expected: "unsupported"},
		{name: "unknown value", class: ErrorClass(42), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		structural  bool
		notFound    bool
		unsupported bool
	}{
		{
			name:       "invalid IRI is structural",
			err:        ErrInvalidIRI,
			structural: true,
		},
		{
			name:       "wrapped invalid axiom is structural",
			err:        fmt.Errorf("adding axiom: %w", ErrInvalidAxiom),
			structural: true,
		},
		{
			name:     "entity not found",
			err:      ErrEntityNotFound,
			notFound: true,
		},
		{
			name:     "wrapped ontology not found",
			err:      fmt.Errorf("loading snapshot: %w", ErrOntologyNotFound),
			notFound: true,
		},
		{
			name:        "unsupported syntax",
			err:         ErrUnsupportedSyntax,
			unsupported: true,
		},
		{
			name:       "parsing failure is structural",
			err:        ErrParsingFailed,
			structural: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.structural, IsStructural(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.unsupported, IsUnsupported(tt.err))
		})
	}
}

func TestClassifiedErrorWrapping(t *testing.T) {
	base := stderrors.New("missing closing paren")

	err := WrapStructural(base, "FunctionalParser", "Parse", "axiom tokenization")
	require.Error(t, err)

	var ce *ClassifiedError
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, ErrorStructural, ce.Class)
	assert.Equal(t, "FunctionalParser", ce.Component)
	assert.Equal(t, "Parse", ce.Operation)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "FunctionalParser.Parse")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "Ontology", "AddAxiom", "validation"))
	assert.NoError(t, WrapStructural(nil, "Ontology", "AddAxiom", "validation"))
	assert.NoError(t, WrapNotFound(nil, "Store", "Load", "lookup"))
	assert.NoError(t, WrapUnsupported(nil, "Serializer", "Serialize", "syntax"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrorNotFound, Classify(ErrIndividualNotFound))
	assert.Equal(t, ErrorUnsupported, Classify(ErrUnsupportedSyntax))
	assert.Equal(t, ErrorStructural, Classify(ErrInvalidLiteral))
	assert.Equal(t, ErrorStructural, Classify(stderrors.New("anything else")))
}
