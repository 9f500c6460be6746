package neo4j

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
)

const testNS = "http://example.org/social#"

func iri(local string) owl.IRI { return owl.MustParseIRI(testNS + local) }

func ind(local string) owl.Entity { return owl.NewNamedIndividual(iri(local)) }

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Person", "Person"},
		{"has-part", "haspart"},
		{"knows_well", "knows_well"},
		{"42things", "N42things"},
		{"", "Resource"},
		{"---", "Resource"},
		{"étudiant", "étudiant"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestPropertyValue(t *testing.T) {
	tests := []struct {
		name string
		lit  owl.Literal
		want any
	}{
		{"integer", owl.NewIntegerLiteral(34), int64(34)},
		{"double", owl.NewDoubleLiteral(2.5), 2.5},
		{"boolean", owl.NewBooleanLiteral(true), true},
		{"string", owl.NewStringLiteral("hello"), "hello"},
		{"lang-tagged falls back to lexical", owl.NewLangLiteral("bonjour", "fr"), "bonjour"},
		{"unparseable integer falls back", owl.NewTypedLiteral("not-a-number",
			owl.MustParseIRI("http://www.w3.org/2001/XMLSchema#integer")), "not-a-number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyValue(tt.lit))
		})
	}
}

func TestChunk(t *testing.T) {
	rows := make([]map[string]any, 7)

	chunks := Chunk(rows, 3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[2], 1)

	assert.Len(t, Chunk(rows, 0), 1)
	assert.Empty(t, Chunk(nil, 3))
}

func buildOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	person := owl.NewClass(iri("Person"))
	org := owl.NewClass(iri("Organization"))
	knows := owl.NewObjectProperty(iri("knows"))
	worksFor := owl.NewObjectProperty(iri("worksFor"))
	age := owl.NewDataProperty(iri("age"))

	o := ontology.New()
	for _, ax := range []owl.Axiom{
		owl.ClassAssertion{Class: owl.NamedClass{Class: person}, Individual: ind("alice")},
		owl.ClassAssertion{Class: owl.NamedClass{Class: person}, Individual: ind("bob")},
		owl.ClassAssertion{Class: owl.NamedClass{Class: org}, Individual: ind("acme")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("alice"), Object: ind("bob")},
		owl.ObjectPropertyAssertion{Property: worksFor, Subject: ind("alice"), Object: ind("acme")},
		owl.DataPropertyAssertion{Property: age, Subject: ind("alice"), Value: owl.NewIntegerLiteral(34)},
	} {
		require.NoError(t, o.AddAxiom(ax))
	}
	return o
}

func TestCollectNodes(t *testing.T) {
	l := NewLoader(nil)
	o := buildOntology(t)

	rows, props := l.collectNodes(o)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, props)

	byIRI := make(map[string]nodeRow)
	for _, r := range rows {
		byIRI[r.props["iri"].(string)] = r
	}

	alice := byIRI[testNS+"alice"]
	assert.Equal(t, "Person", alice.label)
	assert.Equal(t, int64(34), alice.props["age"])

	acme := byIRI[testNS+"acme"]
	assert.Equal(t, "Organization", acme.label)
}

func TestCollectRelationships(t *testing.T) {
	l := NewLoader(nil)

	rels := l.collectRelationships(buildOntology(t))
	require.Len(t, rels, 2)
	assert.Equal(t, relRow{relType: "knows", from: testNS + "alice", to: testNS + "bob"}, rels[0])
	assert.Equal(t, relRow{relType: "worksFor", from: testNS + "alice", to: testNS + "acme"}, rels[1])
}

func TestGrouping(t *testing.T) {
	rows := []nodeRow{
		{label: "Person", props: map[string]any{"iri": "a"}},
		{label: "Person", props: map[string]any{"iri": "b"}},
		{label: "Organization", props: map[string]any{"iri": "c"}},
		{label: "Person", props: map[string]any{"iri": "d"}},
	}

	batches := groupNodes(rows, 2)
	require.Len(t, batches, 3)
	assert.Equal(t, "Person", batches[0].label)
	assert.Len(t, batches[0].rows, 2)
	assert.Equal(t, "Person", batches[1].label)
	assert.Len(t, batches[1].rows, 1)
	assert.Equal(t, "Organization", batches[2].label)

	rels := []relRow{
		{relType: "knows", from: "a", to: "b"},
		{relType: "worksFor", from: "a", to: "c"},
		{relType: "knows", from: "b", to: "c"},
	}
	relBatches := groupRelationships(rels, 10)
	require.Len(t, relBatches, 2)
	assert.Equal(t, "knows", relBatches[0].relType)
	assert.Len(t, relBatches[0].rows, 2)
}

func TestLoaderOptions(t *testing.T) {
	l := NewLoader(nil, WithBatchSize(100), WithWorkers(2), WithDatabase("onto"))
	assert.Equal(t, 100, l.batchSize)
	assert.Equal(t, 2, l.workers)
	assert.Equal(t, "onto", l.database)

	// Non-positive values keep the defaults.
	l = NewLoader(nil, WithBatchSize(0), WithWorkers(-1))
	assert.Equal(t, 500, l.batchSize)
	assert.Equal(t, 4, l.workers)
}
