package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
)

const testNS = "http://example.org/social#"

func iri(local string) owl.IRI { return owl.MustParseIRI(testNS + local) }

func ind(local string) owl.Entity { return owl.NewNamedIndividual(iri(local)) }

func names(entities []owl.Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.IRI.Local()
	}
	return out
}

// socialNetwork builds the six-individual fixture:
//
//	knows:    Alice-Bob, Alice-Carol, Bob-Carol, Bob-Dave, Carol-Dave, Dave-Eve
//	worksFor: Alice, Bob, Carol -> AcmeCorp
func socialNetwork(t *testing.T) *ontology.Ontology {
	t.Helper()

	person := owl.NewClass(iri("Person"))
	org := owl.NewClass(iri("Organization"))
	knows := owl.NewObjectProperty(iri("knows"))
	worksFor := owl.NewObjectProperty(iri("worksFor"))
	age := owl.NewDataProperty(iri("age"))

	o := ontology.New(ontology.WithIRI(owl.MustParseIRI(testNS)))
	axioms := []owl.Axiom{
		owl.Declaration{Entity: person},
		owl.Declaration{Entity: org},
		owl.Declaration{Entity: knows},
		owl.Declaration{Entity: worksFor},
	}
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		axioms = append(axioms, owl.ClassAssertion{Class: owl.NamedClass{Class: person}, Individual: ind(name)})
	}
	axioms = append(axioms,
		owl.ClassAssertion{Class: owl.NamedClass{Class: org}, Individual: ind("AcmeCorp")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Alice"), Object: ind("Bob")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Alice"), Object: ind("Carol")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Bob"), Object: ind("Carol")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Bob"), Object: ind("Dave")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Carol"), Object: ind("Dave")},
		owl.ObjectPropertyAssertion{Property: knows, Subject: ind("Dave"), Object: ind("Eve")},
		owl.ObjectPropertyAssertion{Property: worksFor, Subject: ind("Alice"), Object: ind("AcmeCorp")},
		owl.ObjectPropertyAssertion{Property: worksFor, Subject: ind("Bob"), Object: ind("AcmeCorp")},
		owl.ObjectPropertyAssertion{Property: worksFor, Subject: ind("Carol"), Object: ind("AcmeCorp")},
		owl.DataPropertyAssertion{Property: age, Subject: ind("Alice"), Value: owl.NewIntegerLiteral(34)},
	)
	for _, ax := range axioms {
		require.NoError(t, o.AddAxiom(ax))
	}
	return o
}

// requireConsistent asserts the shared retention post-condition: every
// retained object-property assertion has both endpoints included, every
// retained class assertion has its individual included.
func requireConsistent(t *testing.T, r *Result) {
	t.Helper()
	included := make(map[string]struct{}, len(r.IncludedIndividuals))
	for _, e := range r.IncludedIndividuals {
		included[e.Key()] = struct{}{}
	}
	for _, ax := range r.Ontology.Axioms() {
		switch a := ax.(type) {
		case owl.ObjectPropertyAssertion:
			assert.Contains(t, included, a.Subject.Key())
			assert.Contains(t, included, a.Object.Key())
		case owl.ClassAssertion:
			assert.Contains(t, included, a.Individual.Key())
		}
	}
}

func TestByIndividuals(t *testing.T) {
	src := socialNetwork(t)
	f := New(src)

	r := f.ByIndividuals(iri("Alice"), iri("Bob"), iri("Nobody"))

	assert.ElementsMatch(t, []string{"Alice", "Bob"}, names(r.IncludedIndividuals))
	assert.Equal(t, src.AxiomCount(), r.OriginalAxiomCount)
	assert.Equal(t, 6, r.OriginalIndividualCount)
	assert.Equal(t, 2, r.FilteredIndividualCount)
	assert.True(t, r.Includes(iri("Alice")))
	assert.False(t, r.Includes(iri("Carol")))

	// knows(Alice,Bob) survives; assertions reaching outside do not.
	assert.Equal(t, 1, r.Ontology.AxiomCountByKind(owl.KindObjectPropertyAssertion))
	assert.Equal(t, 1, r.Ontology.AxiomCountByKind(owl.KindDataPropertyAssertion))
	requireConsistent(t, r)
}

func TestByClassesCompleteness(t *testing.T) {
	src := socialNetwork(t)
	f := New(src)

	r := f.ByClasses(iri("Person"))

	assert.ElementsMatch(t, names(src.IndividualsOfClass(iri("Person"))), names(r.IncludedIndividuals))
	assert.ElementsMatch(t, []string{"Alice", "Bob", "Carol", "Dave", "Eve"}, names(r.IncludedIndividuals))
	assert.False(t, r.Includes(iri("AcmeCorp")))
	// worksFor assertions reach AcmeCorp and must not leak in.
	assert.Equal(t, 6, r.Ontology.AxiomCountByKind(owl.KindObjectPropertyAssertion))
	requireConsistent(t, r)
}

func TestByClassesUnknownClass(t *testing.T) {
	f := New(socialNetwork(t))

	r := f.ByClasses(iri("Robot"))

	assert.Zero(t, r.FilteredIndividualCount)
	assert.Zero(t, r.FilteredAxiomCount)
}

func TestNeighborhood(t *testing.T) {
	f := New(socialNetwork(t))

	tests := []struct {
		name string
		seed owl.IRI
		k    int
		want []string
	}{
		{"zero hops is seed alone", iri("Alice"), 0, []string{"Alice"}},
		{"one hop", iri("Alice"), 1, []string{"Alice", "Bob", "Carol", "AcmeCorp"}},
		{"two hops reaches Dave", iri("Alice"), 2, []string{"Alice", "Bob", "Carol", "AcmeCorp", "Dave"}},
		{"three hops reaches Eve", iri("Alice"), 3, []string{"Alice", "Bob", "Carol", "AcmeCorp", "Dave", "Eve"}},
		{"missing seed", iri("Nobody"), 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := f.Neighborhood(tt.seed, tt.k)
			assert.ElementsMatch(t, tt.want, names(r.IncludedIndividuals))
			requireConsistent(t, r)
		})
	}
}

func TestNeighborhoodMonotonicity(t *testing.T) {
	f := New(socialNetwork(t))

	prev := map[string]struct{}{}
	for k := 0; k <= 4; k++ {
		r := f.Neighborhood(iri("Alice"), k)
		cur := make(map[string]struct{}, len(r.IncludedIndividuals))
		for _, e := range r.IncludedIndividuals {
			cur[e.Key()] = struct{}{}
		}
		for key := range prev {
			assert.Contains(t, cur, key, "k=%d must contain everything from k=%d", k, k-1)
		}
		prev = cur
	}
}

func TestPath(t *testing.T) {
	src := socialNetwork(t)
	f := New(src)

	t.Run("shortest path Alice to Eve", func(t *testing.T) {
		r := f.Path(iri("Alice"), iri("Eve"))
		require.Equal(t, 4, r.FilteredIndividualCount)
		got := names(r.IncludedIndividuals)
		assert.Equal(t, "Alice", got[0])
		assert.Equal(t, "Eve", got[3])
		// First-discovered predecessor: Bob is found before Carol.
		assert.Equal(t, []string{"Alice", "Bob", "Dave", "Eve"}, got)
		requireConsistent(t, r)
	})

	t.Run("self path", func(t *testing.T) {
		r := f.Path(iri("Bob"), iri("Bob"))
		assert.Equal(t, []string{"Bob"}, names(r.IncludedIndividuals))
	})

	t.Run("no path yields empty result", func(t *testing.T) {
		require.NoError(t, src.AddAxiom(owl.ClassAssertion{
			Class:      owl.NamedClass{Class: owl.NewClass(iri("Person"))},
			Individual: ind("Hermit"),
		}))
		r := f.Path(iri("Alice"), iri("Hermit"))
		assert.Zero(t, r.FilteredIndividualCount)
		assert.Zero(t, r.FilteredAxiomCount)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		r := f.Path(iri("Alice"), iri("Nobody"))
		assert.Zero(t, r.FilteredIndividualCount)
	})
}

func TestPathAgreesWithHasPath(t *testing.T) {
	src := socialNetwork(t)
	require.NoError(t, src.AddAxiom(owl.ClassAssertion{
		Class:      owl.NamedClass{Class: owl.NewClass(iri("Person"))},
		Individual: ind("Hermit"),
	}))
	f := New(src)

	all := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "AcmeCorp", "Hermit"}
	for _, a := range all {
		for _, b := range all {
			want := src.HasPath(iri(a), iri(b))
			got := f.Path(iri(a), iri(b)).FilteredIndividualCount > 0
			assert.Equal(t, want, got, "path %s-%s", a, b)
		}
	}
}

func TestRandomSample(t *testing.T) {
	f := New(socialNetwork(t))

	r1 := f.RandomSample(3, 42)
	r2 := f.RandomSample(3, 42)

	assert.Equal(t, 3, r1.FilteredIndividualCount)
	assert.Equal(t, names(r1.IncludedIndividuals), names(r2.IncludedIndividuals))
	requireConsistent(t, r1)

	other := f.RandomSample(3, 7)
	assert.Len(t, other.IncludedIndividuals, 3)

	t.Run("n larger than population", func(t *testing.T) {
		r := f.RandomSample(100, 1)
		assert.Equal(t, 6, r.FilteredIndividualCount)
	})

	t.Run("zero and negative n", func(t *testing.T) {
		assert.Zero(t, f.RandomSample(0, 1).FilteredIndividualCount)
		assert.Zero(t, f.RandomSample(-1, 1).FilteredIndividualCount)
	})
}

func TestBuilder(t *testing.T) {
	src := socialNetwork(t)

	t.Run("individuals plus depth", func(t *testing.T) {
		f := New(src).WithIndividuals(iri("Eve")).WithMaxDepth(1)
		r := f.Execute()
		assert.ElementsMatch(t, []string{"Eve", "Dave"}, names(r.IncludedIndividuals))
		requireConsistent(t, r)
	})

	t.Run("classes without depth", func(t *testing.T) {
		f := New(src).WithClasses(iri("Organization"))
		r := f.Execute()
		assert.ElementsMatch(t, []string{"AcmeCorp"}, names(r.IncludedIndividuals))
	})

	t.Run("execute is idempotent", func(t *testing.T) {
		f := New(src).WithClasses(iri("Organization")).WithMaxDepth(1)
		r1 := f.Execute()
		r2 := f.Execute()
		assert.Equal(t, names(r1.IncludedIndividuals), names(r2.IncludedIndividuals))
		assert.Equal(t, r1.FilteredAxiomCount, r2.FilteredAxiomCount)
		assert.Equal(t, src.AxiomCount(), r2.OriginalAxiomCount)
	})

	t.Run("empty criteria", func(t *testing.T) {
		r := New(src).Execute()
		assert.Zero(t, r.FilteredIndividualCount)
	})
}

func TestResultIndependence(t *testing.T) {
	src := socialNetwork(t)
	f := New(src)

	r := f.ByIndividuals(iri("Alice"), iri("Bob"))
	before := r.Ontology.AxiomCount()

	// Mutating the source after extraction must not change the result.
	require.NoError(t, src.AddAxiom(owl.ObjectPropertyAssertion{
		Property: owl.NewObjectProperty(iri("knows")),
		Subject:  ind("Alice"),
		Object:   ind("Eve"),
	}))

	assert.Equal(t, before, r.Ontology.AxiomCount())
	assert.False(t, r.Includes(iri("Eve")))
}

func TestDeclarationsForRetainedEntities(t *testing.T) {
	f := New(socialNetwork(t))

	r := f.ByIndividuals(iri("Alice"), iri("Bob"))

	for _, e := range []owl.Entity{
		owl.NewClass(iri("Person")),
		owl.NewObjectProperty(iri("knows")),
		owl.NewDataProperty(iri("age")),
		ind("Alice"),
		ind("Bob"),
	} {
		assert.True(t, r.Ontology.ContainsAxiom(owl.Declaration{Entity: e}), "missing declaration for %s", e)
	}
}

func TestFilterMetrics(t *testing.T) {
	reg := metric.NewMetricsRegistry()
	f := New(socialNetwork(t), WithMetrics(reg.CoreMetrics()))

	r := f.Neighborhood(iri("Alice"), 1)
	assert.Equal(t, 4, r.FilteredIndividualCount)
}
