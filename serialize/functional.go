package serialize

import (
	"sort"
	"strings"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/vocabulary"
)

// FunctionalSerializer writes OWL2 functional syntax. Axioms are emitted
// one per line in insertion order with full IRIs in angle brackets, so a
// document parses back into a structurally identical ontology.
type FunctionalSerializer struct {
	metrics *metric.Metrics
}

// Serialize renders the ontology as a functional-syntax document: prefix
// declarations for the registered standard prefixes, then an Ontology
// block wrapping every axiom.
func (s *FunctionalSerializer) Serialize(ont *ontology.Ontology) (string, error) {
	if ont == nil {
		return "", errors.Wrap(errors.ErrOntologyNotFound, "FunctionalSerializer", "Serialize", "nil ontology")
	}

	var b strings.Builder
	prefixes := vocabulary.RegisteredPrefixes()
	sort.Strings(prefixes)
	for _, p := range prefixes {
		ns, ok := vocabulary.LookupPrefix(p)
		if !ok {
			continue
		}
		b.WriteString("Prefix(")
		b.WriteString(p)
		b.WriteString(":=<")
		b.WriteString(ns)
		b.WriteString(">)\n")
	}

	b.WriteString("Ontology(")
	if !ont.IRI().IsZero() {
		b.WriteString("<")
		b.WriteString(ont.IRI().Full())
		b.WriteString(">")
	}
	b.WriteString("\n")
	for _, ax := range ont.Axioms() {
		b.WriteString(ax.Key())
		b.WriteString("\n")
	}
	b.WriteString(")\n")
	countSerialize(s.metrics, FunctionalSyntax)
	return b.String(), nil
}

// SerializeFile renders the ontology and writes it to path.
func (s *FunctionalSerializer) SerializeFile(ont *ontology.Ontology, path string) error {
	doc, err := s.Serialize(ont)
	if err != nil {
		return err
	}
	if err := writeFile(path, doc); err != nil {
		return errors.Wrap(err, "FunctionalSerializer", "SerializeFile", "write "+path)
	}
	return nil
}
