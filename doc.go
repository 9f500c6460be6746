// Package ista is an OWL2 knowledge-representation engine: a typed
// axiom/entity data model with structural identity, an indexed ontology
// container, and a subgraph-extraction engine producing consistent
// sub-ontologies.
//
// The packages layer as follows:
//
//   - owl: IRIs, literals, entities, class expressions, and the closed
//     axiom union. Structural identity via canonical Key() strings.
//   - vocabulary: W3C namespaces, well-known terms, and the prefix
//     registry; vocabulary/xsd holds the XSD datatype table.
//   - ontology: the insertion-ordered, duplicate-eliminating axiom store
//     with incremental indices for individuals, class members, and the
//     undirected assertion graph.
//   - filter: five extraction strategies plus a composable builder, each
//     yielding an independent sub-ontology with provenance counts.
//   - serialize: functional syntax in both directions; RDF/XML and
//     Turtle serializers.
//   - store: BadgerDB-backed named snapshots.
//   - export/neo4j: batched bulk loading into Neo4j.
//   - cmd/ista: the command line tool tying it together.
package ista
