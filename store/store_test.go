package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	ns := "http://example.org/onto#"
	person := owl.NewClass(owl.MustParseIRI(ns + "Person"))
	alice := owl.NewNamedIndividual(owl.MustParseIRI(ns + "alice"))
	knows := owl.NewObjectProperty(owl.MustParseIRI(ns + "knows"))
	bob := owl.NewNamedIndividual(owl.MustParseIRI(ns + "bob"))

	o := ontology.New(ontology.WithIRI(owl.MustParseIRI(ns)))
	for _, ax := range []owl.Axiom{
		owl.Declaration{Entity: person},
		owl.ClassAssertion{Class: owl.NamedClass{Class: person}, Individual: alice},
		owl.ObjectPropertyAssertion{Property: knows, Subject: alice, Object: bob},
	} {
		require.NoError(t, o.AddAxiom(ax))
	}
	return o
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	src := sampleOntology(t)

	require.NoError(t, s.Save(ctx, "social", src))

	back, err := s.Load(ctx, "social")
	require.NoError(t, err)
	assert.Equal(t, src.AxiomCount(), back.AxiomCount())
	assert.Equal(t, src.IRI().Full(), back.IRI().Full())
	assert.Equal(t, src.IndividualCount(), back.IndividualCount())
}

func TestSaveOverwrites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "social", sampleOntology(t)))

	bigger := sampleOntology(t)
	require.NoError(t, bigger.AddAxiom(owl.ClassAssertion{
		Class:      owl.NamedClass{Class: owl.NewClass(owl.MustParseIRI("http://example.org/onto#Person"))},
		Individual: owl.NewNamedIndividual(owl.MustParseIRI("http://example.org/onto#bob")),
	}))
	require.NoError(t, s.Save(ctx, "social", bigger))

	back, err := s.Load(ctx, "social")
	require.NoError(t, err)
	assert.Equal(t, bigger.AxiomCount(), back.AxiomCount())
}

func TestLoadMissing(t *testing.T) {
	s := openStore(t)

	_, err := s.Load(context.Background(), "absent")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestList(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.Save(ctx, "zeta", sampleOntology(t)))
	require.NoError(t, s.Save(ctx, "alpha", sampleOntology(t)))

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "social", sampleOntology(t)))
	require.NoError(t, s.Delete(ctx, "social"))

	_, err := s.Load(ctx, "social")
	assert.True(t, errors.IsNotFound(err))

	err = s.Delete(ctx, "social")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestBadNames(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	assert.Error(t, s.Save(ctx, "", sampleOntology(t)))
	assert.Error(t, s.Save(ctx, "a/b", sampleOntology(t)))
	_, err := s.Load(ctx, "")
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.Save(ctx, "social", sampleOntology(t)))
	_, err := s.List(ctx)
	assert.Error(t, err)
}
