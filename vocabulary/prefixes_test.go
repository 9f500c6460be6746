package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandCURIE(t *testing.T) {
	tests := []struct {
		name     string
		curie    string
		expected string
		ok       bool
	}{
		{
			name:     "xsd string",
			curie:    "xsd:string",
			expected: XSDNamespace + "string",
			ok:       true,
		},
		{
			name:     "owl thing",
			curie:    "owl:Thing",
			expected: OwlThing,
			ok:       true,
		},
		{
			name:     "unknown prefix unchanged",
			curie:    "nope:thing",
			expected: "nope:thing",
			ok:       false,
		},
		{
			name:     "full IRI is not a CURIE",
			curie:    "http://example.org/x",
			expected: "http://example.org/x",
			ok:       false,
		},
		{
			name:     "no colon",
			curie:    "plain",
			expected: "plain",
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExpandCURIE(tt.curie)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCompactIRI(t *testing.T) {
	got, ok := CompactIRI(XSDNamespace + "integer")
	assert.True(t, ok)
	assert.Equal(t, "xsd:integer", got)

	// Unregistered namespace stays whole.
	got, ok = CompactIRI("http://example.org/private#Thing")
	assert.False(t, ok)
	assert.Equal(t, "http://example.org/private#Thing", got)

	// Bare namespace has no local name to compact.
	_, ok = CompactIRI(XSDNamespace)
	assert.False(t, ok)
}

func TestRegisterPrefixOverride(t *testing.T) {
	RegisterPrefix("ex", "http://example.org/a#")
	got, ok := ExpandCURIE("ex:X")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/a#X", got)

	RegisterPrefix("ex", "http://example.org/b#")
	got, ok = ExpandCURIE("ex:X")
	assert.True(t, ok)
	assert.Equal(t, "http://example.org/b#X", got)

	assert.Contains(t, RegisteredPrefixes(), "ex")
}
