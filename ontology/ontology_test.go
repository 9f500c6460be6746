package ontology

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/owl"
)

const testNS = "http://example.org/social#"

func iri(local string) owl.IRI { return owl.MustParseIRI(testNS + local) }

func ind(local string) owl.Entity { return owl.NewNamedIndividual(iri(local)) }

// socialOntology builds the six-individual fixture used across the suite:
//
//	Alice -knows- Bob -knows- Carol -knows- Dave   (undirected chain)
//	Eve                                            (isolated Person)
//	AcmeCorp                                       (Organization, employs Alice)
func socialOntology(t *testing.T, opts ...Option) *Ontology {
	t.Helper()

	person := owl.NewClass(iri("Person"))
	org := owl.NewClass(iri("Organization"))
	knows := owl.NewObjectProperty(iri("knows"))
	employs := owl.NewObjectProperty(iri("employs"))
	age := owl.NewDataProperty(iri("age"))

	o := New(append([]Option{WithIRI(owl.MustParseIRI(testNS))}, opts...)...)

	axioms := []owl.Axiom{
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: org},
		owl.Declaration{Entity: knows},
		owl.Declaration{Entity: employs},
		owl.Declaration{Entity: age},
	}
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		axioms = append(axioms,
			owl.Declaration{Entity: ind(name)},
			owl.ClassAssertion{Class: owl.NamedClass{Class: person}, Individual: ind(name)},
		)
	}
	axioms = append(axioms,
		owl.Declaration{Entity: ind("AcmeCorp")},
		owl.ClassAssertion{Class: owl.NamedClass{Class: org}, Individual: ind("AcmeCorp")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Alice"), Object: ind("Bob")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Bob"), Object: ind("Carol")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Carol"), Object: ind("Dave")},
		owl.ObjectPropertyAssertion{Property: employs, Subject: ind("AcmeCorp"), Object: ind("Alice")},
		owl.DataPropertyAssertion{Property: age, Subject: ind("Alice"), Value: owl.NewIntegerLiteral(34)},
	)

	for _, ax := range axioms {
		require.NoError(t, o.AddAxiom(ax))
	}
	return o
}

func TestAddAxiomDeduplicates(t *testing.T) {
	o := New()
	ax := owl.ClassAssertion{
		Class:      owl.NamedClass{Class: owl.NewClass(iri("Person"))},
		Individual: ind("Alice"),
	}

	require.NoError(t, o.AddAxiom(ax))
	require.NoError(t, o.AddAxiom(ax))

	assert.Equal(t, 1, o.AxiomCount())
	assert.True(t, o.ContainsAxiom(ax))
	// Structurally equal but separately constructed value.
	assert.True(t, o.ContainsAxiom(owl.ClassAssertion{
		Class:      owl.NamedClass{Class: owl.NewClass(iri("Person"))},
		Individual: ind("Alice"),
	}))
}

func TestAddAxiomRejectsInvalid(t *testing.T) {
	o := New()

	err := o.AddAxiom(nil)
	require.Error(t, err)
	assert.True(t, errors.IsStructural(err))

	err = o.AddAxiom(owl.ObjectPropertyAssertion{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidAxiom)
	assert.Equal(t, 0, o.AxiomCount())
}

func TestEntityProjections(t *testing.T) {
	o := socialOntology(t)

	assert.Equal(t, 6, o.IndividualCount())
	assert.Equal(t, 2, o.ClassCount())
	assert.Equal(t, 2, o.ObjectPropertyCount())
	assert.Equal(t, 1, o.DataPropertyCount())

	inds := o.Individuals()
	require.Len(t, inds, 6)
	// Insertion order follows first appearance in axioms.
	assert.Equal(t, ind("Alice"), inds[0])
	assert.Equal(t, ind("AcmeCorp"), inds[5])

	classes := o.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "Person", classes[0].IRI.Local())
	assert.Equal(t, "Organization", classes[1].IRI.Local())
}

func TestIndividualsOfClass(t *testing.T) {
	o := socialOntology(t)

	persons := o.IndividualsOfClass(iri("Person"))
	require.Len(t, persons, 5)
	assert.Equal(t, ind("Alice"), persons[0])
	assert.Equal(t, ind("Eve"), persons[4])

	orgs := o.IndividualsOfClass(iri("Organization"))
	require.Len(t, orgs, 1)
	assert.Equal(t, ind("AcmeCorp"), orgs[0])

	assert.Empty(t, o.IndividualsOfClass(iri("Nonexistent")))
}

func TestAssertionsAbout(t *testing.T) {
	o := socialOntology(t)

	about := o.AssertionsAbout(ind("Alice"))
	// ClassAssertion, knows(Alice,Bob), employs(AcmeCorp,Alice), age.
	require.Len(t, about, 4)
	assert.Equal(t, owl.KindClassAssertion, about[0].Kind())
	assert.Equal(t, owl.KindDataPropertyAssertion, about[3].Kind())

	assert.Empty(t, o.AssertionsAbout(ind("Nobody")))
}

func TestNegativeAssertionsIndexedButNotTraversable(t *testing.T) {
	o := socialOntology(t)
	neg := owl.NegativeObjectPropertyAssertion{
		Property: owl.NewObjectProperty(iri("knows")),
		Subject:  ind("Eve"),
		Object:   ind("Dave"),
	}
	require.NoError(t, o.AddAxiom(neg))

	assert.Contains(t, o.AssertionsAbout(ind("Eve")), owl.Axiom(neg))
	assert.Empty(t, o.DirectNeighbors(ind("Eve")))
	assert.False(t, o.HasPath(iri("Eve"), iri("Dave")))
}

func TestDirectNeighbors(t *testing.T) {
	o := socialOntology(t)

	tests := []struct {
		name string
		ind  owl.Entity
		want []owl.Entity
	}{
		{"middle of chain", ind("Bob"), []owl.Entity{ind("Alice"), ind("Carol")}},
		{"employs counts both ways", ind("Alice"), []owl.Entity{ind("Bob"), ind("AcmeCorp")}},
		{"isolated", ind("Eve"), nil},
		{"unknown individual", ind("Nobody"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.DirectNeighbors(tt.ind)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestDirectNeighborsCollapsesMultiEdges(t *testing.T) {
	o := socialOntology(t)
	require.NoError(t, o.AddAxiom(owl.ObjectPropertyAssertion{
		Property: owl.NewObjectProperty(iri("worksWith")),
		Subject:  ind("Alice"),
		Object:   ind("Bob"),
	}))

	got := o.DirectNeighbors(ind("Alice"))
	assert.ElementsMatch(t, []owl.Entity{ind("Bob"), ind("AcmeCorp")}, got)
}

func TestNeighborsKHop(t *testing.T) {
	o := socialOntology(t)

	tests := []struct {
		name string
		seed owl.IRI
		k    int
		want []owl.Entity
	}{
		{"one hop", iri("Alice"), 1, []owl.Entity{ind("Bob"), ind("AcmeCorp")}},
		{"two hops", iri("Alice"), 2, []owl.Entity{ind("Bob"), ind("AcmeCorp"), ind("Carol")}},
		{"whole component", iri("Alice"), 10, []owl.Entity{ind("Bob"), ind("AcmeCorp"), ind("Carol"), ind("Dave")}},
		{"zero hops", iri("Alice"), 0, nil},
		{"isolated seed", iri("Eve"), 3, nil},
		{"unknown seed", iri("Nobody"), 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.Neighbors(tt.seed, tt.k)
			assert.ElementsMatch(t, tt.want, got)
			for _, e := range got {
				assert.NotEqual(t, tt.seed.Full(), e.Key(), "seed must be excluded")
			}
		})
	}
}

func TestHasPath(t *testing.T) {
	o := socialOntology(t)

	tests := []struct {
		name string
		a, b owl.IRI
		want bool
	}{
		{"chain ends", iri("Alice"), iri("Dave"), true},
		{"reverse direction", iri("Dave"), iri("AcmeCorp"), true},
		{"self", iri("Bob"), iri("Bob"), true},
		{"isolated", iri("Alice"), iri("Eve"), false},
		{"missing endpoint", iri("Alice"), iri("Nobody"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.HasPath(tt.a, tt.b))
		})
	}
}

func TestAxiomsSnapshotIsolation(t *testing.T) {
	o := socialOntology(t)

	snap := o.Axioms()
	n := len(snap)
	snap[0] = nil

	fresh := o.Axioms()
	require.Len(t, fresh, n)
	assert.NotNil(t, fresh[0])
}

func TestStatistics(t *testing.T) {
	o := socialOntology(t)

	want := Statistics{
		IRI:        testNS,
		AxiomCount: o.AxiomCount(),
		AxiomsByKind: map[owl.AxiomKind]int{
			owl.KindDeclaration:             11,
			owl.KindClassAssertion:          6,
			owl.KindObjectPropertyAssertion: 4,
			owl.KindDataPropertyAssertion:   1,
		},
		ClassCount:          2,
		ObjectPropertyCount: 2,
		DataPropertyCount:   1,
		IndividualCount:     6,
		EdgeCount:           4,
	}
	if diff := cmp.Diff(want, o.Statistics()); diff != "" {
		t.Errorf("statistics mismatch (-want +got):\n%s", diff)
	}
	assert.NotEmpty(t, o.Statistics().String())
}

func TestMetricsHooks(t *testing.T) {
	reg := metric.NewMetricsRegistry()
	o := socialOntology(t, WithMetrics(reg.CoreMetrics()))

	// Duplicate insert must hit the duplicate counter, not fail.
	dup := owl.ObjectPropertyAssertion{
		Property: owl.NewObjectProperty(iri("knows")),
		Subject:  ind("Alice"),
		Object:   ind("Bob"),
	}
	require.NoError(t, o.AddAxiom(dup))
	assert.Equal(t, 1, o.AxiomCountByKind(owl.KindDataPropertyAssertion))
}
