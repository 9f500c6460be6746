package serialize

import (
	"bytes"
	"encoding/xml"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
	"github.com/RomanoLab/ista/vocabulary"
)

// RDFXMLSerializer writes the RDF-expressible portion of an ontology as
// RDF/XML: entity declarations, named class assertions, object- and
// data-property assertions, named subclass axioms, and annotations.
// Axioms with no direct triple form (complex class expressions, negative
// assertions, same/different individuals) are omitted from the output.
type RDFXMLSerializer struct {
	metrics *metric.Metrics
}

// Serialize renders the ontology as an RDF/XML document.
func (s *RDFXMLSerializer) Serialize(ont *ontology.Ontology) (string, error) {
	if ont == nil {
		return "", errors.Wrap(errors.ErrOntologyNotFound, "RDFXMLSerializer", "Serialize", "nil ontology")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	w := &rdfWriter{enc: enc}
	if err := w.document(ont); err != nil {
		return "", errors.Wrap(err, "RDFXMLSerializer", "Serialize", "encode")
	}
	if err := enc.Flush(); err != nil {
		return "", errors.Wrap(err, "RDFXMLSerializer", "Serialize", "flush")
	}
	buf.WriteString("\n")
	countSerialize(s.metrics, RDFXML)
	return buf.String(), nil
}

// SerializeFile renders the ontology and writes it to path.
func (s *RDFXMLSerializer) SerializeFile(ont *ontology.Ontology, path string) error {
	doc, err := s.Serialize(ont)
	if err != nil {
		return err
	}
	if err := writeFile(path, doc); err != nil {
		return errors.Wrap(err, "RDFXMLSerializer", "SerializeFile", "write "+path)
	}
	return nil
}

type rdfWriter struct {
	enc *xml.Encoder
}

func elem(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (w *rdfWriter) document(ont *ontology.Ontology) error {
	root := elem("rdf:RDF",
		attr("xmlns:rdf", vocabulary.RDFNamespace),
		attr("xmlns:rdfs", vocabulary.RDFSNamespace),
		attr("xmlns:owl", vocabulary.OWLNamespace),
		attr("xmlns:xsd", vocabulary.XSDNamespace),
	)
	if err := w.enc.EncodeToken(root); err != nil {
		return err
	}

	if !ont.IRI().IsZero() {
		if err := w.emptyElement(elem("owl:Ontology", attr("rdf:about", ont.IRI().Full()))); err != nil {
			return err
		}
	}

	// Schema entities first, then one description per individual.
	for _, cls := range ont.Classes() {
		if err := w.emptyElement(elem("owl:Class", attr("rdf:about", cls.IRI.Full()))); err != nil {
			return err
		}
	}
	for _, prop := range ont.ObjectProperties() {
		if err := w.emptyElement(elem("owl:ObjectProperty", attr("rdf:about", prop.IRI.Full()))); err != nil {
			return err
		}
	}
	for _, prop := range ont.DataProperties() {
		if err := w.emptyElement(elem("owl:DatatypeProperty", attr("rdf:about", prop.IRI.Full()))); err != nil {
			return err
		}
	}
	for _, prop := range ont.AnnotationProperties() {
		if err := w.emptyElement(elem("owl:AnnotationProperty", attr("rdf:about", prop.IRI.Full()))); err != nil {
			return err
		}
	}

	if err := w.subClassAxioms(ont); err != nil {
		return err
	}
	if err := w.annotationAxioms(ont); err != nil {
		return err
	}

	for _, individual := range ont.Individuals() {
		if err := w.individualDescription(ont, individual); err != nil {
			return err
		}
	}

	return w.enc.EncodeToken(root.End())
}

// subClassAxioms emits rdfs:subClassOf for named-to-named subclass axioms.
func (w *rdfWriter) subClassAxioms(ont *ontology.Ontology) error {
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
		start := elem("owl:Class", attr("rdf:about", sub.Class.IRI.Full()))
		if err := w.enc.EncodeToken(start); err != nil {
			return err
		}
		if err := w.emptyElement(elem("rdfs:subClassOf", attr("rdf:resource", super.Class.IRI.Full()))); err != nil {
			return err
		}
		if err := w.enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}

// annotationAxioms emits one rdf:Description per annotation assertion.
func (w *rdfWriter) annotationAxioms(ont *ontology.Ontology) error {
	for _, ax := range ont.Axioms() {
		aa, ok := ax.(owl.AnnotationAssertion)
		if !ok {
			continue
		}
		start := elem("rdf:Description", attr("rdf:about", aa.Subject.Full()))
		if err := w.enc.EncodeToken(start); err != nil {
			return err
		}
		tag := w.propertyTag(aa.Property)
		if aa.Value.IsIRI() {
			if err := w.emptyElement(elem(tag, attr("rdf:resource", aa.Value.IRI().Full()))); err != nil {
				return err
			}
		} else {
			lit := aa.Value.Literal()
			el := elem(tag, attr("rdf:datatype", lit.Datatype().Full()))
			if lit.IsLangTagged() {
				el = elem(tag, attr("xml:lang", lit.Lang()))
			}
			if err := w.textElement(el, lit.Lexical()); err != nil {
				return err
			}
		}
		if err := w.enc.EncodeToken(start.End()); err != nil {
			return err
		}
	}
	return nil
}

// individualDescription emits one owl:NamedIndividual element carrying the
// individual's types, object-property links, and data values.
func (w *rdfWriter) individualDescription(ont *ontology.Ontology, individual owl.Entity) error {
	var about xml.Attr
	if individual.Kind == owl.KindAnonymousIndividual {
		about = attr("rdf:nodeID", individual.NodeID)
	} else {
		about = attr("rdf:about", individual.IRI.Full())
	}
	start := elem("owl:NamedIndividual", about)
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	for _, ax := range ont.AssertionsAbout(individual) {
		switch a := ax.(type) {
		case owl.ClassAssertion:
			nc, ok := a.Class.(owl.NamedClass)
			if !ok {
				continue
			}
			if err := w.emptyElement(elem("rdf:type", attr("rdf:resource", nc.Class.IRI.Full()))); err != nil {
				return err
			}
		case owl.ObjectPropertyAssertion:
			// Emit from the subject side only; the object sees the same
			// axiom in its incident list.
			if a.Subject.Key() != individual.Key() {
				continue
			}
			target := attr("rdf:resource", a.Object.IRI.Full())
			if a.Object.Kind == owl.KindAnonymousIndividual {
				target = attr("rdf:nodeID", a.Object.NodeID)
			}
			if err := w.emptyElement(elem(w.propertyTag(a.Property), target)); err != nil {
				return err
			}
		case owl.DataPropertyAssertion:
			lit := a.Value
			el := elem(w.propertyTag(a.Property), attr("rdf:datatype", lit.Datatype().Full()))
			if lit.IsLangTagged() {
				el = elem(w.propertyTag(a.Property), attr("xml:lang", lit.Lang()))
			}
			if err := w.textElement(el, lit.Lexical()); err != nil {
				return err
			}
		}
	}
	return w.enc.EncodeToken(start.End())
}

// propertyTag renders a property IRI as a QName, preferring a registered
// prefix and falling back to the local name.
func (w *rdfWriter) propertyTag(prop owl.Entity) string {
	if curie, ok := vocabulary.CompactIRI(prop.IRI.Full()); ok {
		return curie
	}
	return prop.IRI.Local()
}

func (w *rdfWriter) emptyElement(el xml.StartElement) error {
	if err := w.enc.EncodeToken(el); err != nil {
		return err
	}
	return w.enc.EncodeToken(el.End())
}

func (w *rdfWriter) textElement(el xml.StartElement, text string) error {
	if err := w.enc.EncodeToken(el); err != nil {
		return err
	}
	if err := w.enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return w.enc.EncodeToken(el.End())
}
