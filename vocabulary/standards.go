// Package vocabulary provides semantic vocabulary definitions and mappings:
// W3C standard namespaces, well-known term IRIs, and a process-wide prefix
// registry used by serializers and the CLI.
package vocabulary

// Standard W3C namespaces.
//
// References:
// - OWL: https://www.w3.org/TR/owl2-overview/
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - XSD: https://www.w3.org/TR/xmlschema11-2/
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"
	DCNamespace   = "http://purl.org/dc/terms/"
)

// Base IRI constants for the ista vocabulary
const (
	IstaBase          = "https://w3id.org/ista"
	OntologyNamespace = IstaBase + "/ontology#"
)

// OWL (Web Ontology Language) term IRIs
const (
	// OwlThing is the class of all individuals.
	OwlThing = OWLNamespace + "Thing"

	// OwlNothing is the empty class.
	OwlNothing = OWLNamespace + "Nothing"

	// OwlSameAs indicates that two URI references refer to the same entity.
	OwlSameAs = OWLNamespace + "sameAs"

	// OwlEquivalentClass indicates equivalent classes
	OwlEquivalentClass = OWLNamespace + "equivalentClass"

	// OwlNamedIndividual marks a named individual in RDF serializations.
	OwlNamedIndividual = OWLNamespace + "NamedIndividual"

	// OwlObjectProperty marks an object property in RDF serializations.
	OwlObjectProperty = OWLNamespace + "ObjectProperty"

	// OwlDatatypeProperty marks a data property in RDF serializations.
	OwlDatatypeProperty = OWLNamespace + "DatatypeProperty"

	// OwlAnnotationProperty marks an annotation property in RDF serializations.
	OwlAnnotationProperty = OWLNamespace + "AnnotationProperty"

	// OwlClass marks a class in RDF serializations.
	OwlClass = OWLNamespace + "Class"

	// OwlOntology marks the ontology header node in RDF serializations.
	OwlOntology = OWLNamespace + "Ontology"
)

// RDF and RDF Schema term IRIs
const (
	// RdfType is the instance-of predicate.
	RdfType = RDFNamespace + "type"

	// RdfLangString is the datatype of language-tagged literals.
	RdfLangString = RDFNamespace + "langString"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSNamespace + "label"

	// RdfsComment provides a human-readable description
	RdfsComment = RDFSNamespace + "comment"

	// RdfsSeeAlso indicates a resource that provides additional information
	RdfsSeeAlso = RDFSNamespace + "seeAlso"

	// RdfsSubClassOf is the class-hierarchy predicate.
	RdfsSubClassOf = RDFSNamespace + "subClassOf"

	// RdfsDomain is the property-domain predicate.
	RdfsDomain = RDFSNamespace + "domain"

	// RdfsRange is the property-range predicate.
	RdfsRange = RDFSNamespace + "range"
)
