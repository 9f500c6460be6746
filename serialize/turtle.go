package serialize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
	"github.com/RomanoLab/ista/vocabulary"
)

// TurtleSerializer writes the RDF-expressible portion of an ontology as
// Turtle: a prefix block, the ontology header, schema declarations, named
// subclass axioms, and one predicate group per individual. The same
// axioms the RDF/XML writer omits are omitted here.
type TurtleSerializer struct {
	metrics *metric.Metrics
}

// Serialize renders the ontology as a Turtle document.
func (s *TurtleSerializer) Serialize(ont *ontology.Ontology) (string, error) {
	if ont == nil {
		return "", errors.Wrap(errors.ErrOntologyNotFound, "TurtleSerializer", "Serialize", "nil ontology")
	}

	var b strings.Builder
	writePrefixBlock(&b)

	if !ont.IRI().IsZero() {
		b.WriteString(turtleRef(owl.Entity{Kind: owl.KindClass, IRI: ont.IRI()}))
		b.WriteString(" a owl:Ontology .\n\n")
	}

	for _, cls := range ont.Classes() {
		writeDeclarationTriple(&b, cls, "owl:Class")
	}
	for _, prop := range ont.ObjectProperties() {
		writeDeclarationTriple(&b, prop, "owl:ObjectProperty")
	}
	for _, prop := range ont.DataProperties() {
		writeDeclarationTriple(&b, prop, "owl:DatatypeProperty")
	}
	for _, prop := range ont.AnnotationProperties() {
		writeDeclarationTriple(&b, prop, "owl:AnnotationProperty")
	}
	b.WriteString("\n")

	writeSubClassTriples(&b, ont)
	writeAnnotationTriples(&b, ont)

	for _, individual := range ont.Individuals() {
		writeIndividualTriples(&b, ont, individual)
	}
	countSerialize(s.metrics, Turtle)
	return b.String(), nil
}

// SerializeFile renders the ontology and writes it to path.
func (s *TurtleSerializer) SerializeFile(ont *ontology.Ontology, path string) error {
	doc, err := s.Serialize(ont)
	if err != nil {
		return err
	}
	if err := writeFile(path, doc); err != nil {
		return errors.Wrap(err, "TurtleSerializer", "SerializeFile", "write "+path)
	}
	return nil
}

func writePrefixBlock(b *strings.Builder) {
	prefixes := vocabulary.RegisteredPrefixes()
	sort.Strings(prefixes)
	for _, p := range prefixes {
		ns, ok := vocabulary.LookupPrefix(p)
		if !ok {
			continue
		}
		b.WriteString("@prefix ")
		b.WriteString(p)
		b.WriteString(": <")
		b.WriteString(ns)
		b.WriteString("> .\n")
	}
	b.WriteString("\n")
}

func writeDeclarationTriple(b *strings.Builder, e owl.Entity, typeName string) {
	b.WriteString(turtleRef(e))
	b.WriteString(" a ")
	b.WriteString(typeName)
	b.WriteString(" .\n")
}

func writeSubClassTriples(b *strings.Builder, ont *ontology.Ontology) {
	wrote := false
	for _, ax := range ont.Axioms() {
		sc, ok := ax.(owl.SubClassOf)
		if !ok {
			continue
		}
		sub, subOK := sc.Sub.(owl.NamedClass)
		super, superOK := sc.Super.(owl.NamedClass)
		if !subOK || !superOK {
			continue
		}
		b.WriteString(turtleRef(sub.Class))
		b.WriteString(" rdfs:subClassOf ")
		b.WriteString(turtleRef(super.Class))
		b.WriteString(" .\n")
		wrote = true
	}
	if wrote {
		b.WriteString("\n")
	}
}

func writeAnnotationTriples(b *strings.Builder, ont *ontology.Ontology) {
	wrote := false
	for _, ax := range ont.Axioms() {
		aa, ok := ax.(owl.AnnotationAssertion)
		if !ok {
			continue
		}
		b.WriteString(turtleIRI(aa.Subject))
		b.WriteString(" ")
		b.WriteString(turtleRef(aa.Property))
		b.WriteString(" ")
		if aa.Value.IsIRI() {
			b.WriteString(turtleIRI(aa.Value.IRI()))
		} else {
			b.WriteString(turtleLiteral(aa.Value.Literal()))
		}
		b.WriteString(" .\n")
		wrote = true
	}
	if wrote {
		b.WriteString("\n")
	}
}

// writeIndividualTriples emits one predicate-list group per individual,
// types first, then outgoing object links, then data values.
func writeIndividualTriples(b *strings.Builder, ont *ontology.Ontology, individual owl.Entity) {
	var lines []string
	for _, ax := range ont.AssertionsAbout(individual) {
		switch a := ax.(type) {
		case owl.ClassAssertion:
			if nc, ok := a.Class.(owl.NamedClass); ok {
				lines = append(lines, "a "+turtleRef(nc.Class))
			}
		case owl.ObjectPropertyAssertion:
			if a.Subject.Key() != individual.Key() {
				continue
			}
			lines = append(lines, turtleRef(a.Property)+" "+turtleRef(a.Object))
		case owl.DataPropertyAssertion:
			lines = append(lines, turtleRef(a.Property)+" "+turtleLiteral(a.Value))
		}
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString(turtleRef(individual))
	b.WriteString(" ")
	b.WriteString(strings.Join(lines, " ;\n    "))
	b.WriteString(" .\n\n")
}

// turtleRef renders an entity reference: a CURIE when a registered prefix
// matches, a blank node label for anonymous individuals, a full IRI
// otherwise.
func turtleRef(e owl.Entity) string {
	if e.Kind == owl.KindAnonymousIndividual {
		return "_:" + e.NodeID
	}
	return turtleIRI(e.IRI)
}

func turtleIRI(iri owl.IRI) string {
	if curie, ok := vocabulary.CompactIRI(iri.Full()); ok {
		return curie
	}
	return "<" + iri.Full() + ">"
}

func turtleLiteral(lit owl.Literal) string {
	quoted := strconv.Quote(lit.Lexical())
	if lit.IsLangTagged() {
		return quoted + "@" + lit.Lang()
	}
	if lit.IsString() {
		return quoted
	}
	return quoted + "^^" + turtleIRI(lit.Datatype())
}
