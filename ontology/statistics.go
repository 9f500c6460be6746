package ontology

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RomanoLab/ista/owl"
)

// Statistics is a summary snapshot of an ontology's contents.
type Statistics struct {
	IRI                 string                `json:"iri,omitempty"`
	AxiomCount          int                   `json:"axiom_count"`
	AxiomsByKind        map[owl.AxiomKind]int `json:"axioms_by_kind"`
	ClassCount          int                   `json:"class_count"`
	ObjectPropertyCount int                   `json:"object_property_count"`
	DataPropertyCount   int                   `json:"data_property_count"`
	IndividualCount     int                   `json:"individual_count"`
	EdgeCount           int                   `json:"edge_count"`
}

// Statistics computes a summary of the ontology. EdgeCount is the number of
// object-property assertion edges, counting each assertion once.
func (o *Ontology) Statistics() Statistics {
	byKind := make(map[owl.AxiomKind]int, len(o.kindCounts))
	for kind, n := range o.kindCounts {
		byKind[kind] = n
	}

	edges := 0
	for _, adj := range o.adjacency {
		edges += len(adj)
	}

	return Statistics{
		IRI:                 o.iri.Full(),
		AxiomCount:          len(o.axioms),
		AxiomsByKind:        byKind,
		ClassCount:          o.ClassCount(),
		ObjectPropertyCount: o.ObjectPropertyCount(),
		DataPropertyCount:   o.DataPropertyCount(),
		IndividualCount:     o.IndividualCount(),
		EdgeCount:           edges / 2,
	}
}

// String renders the statistics as a stable multi-line report.
func (s Statistics) String() string {
	var b strings.Builder
	if s.IRI != "" {
		fmt.Fprintf(&b, "ontology: %s\n", s.IRI)
	}
	fmt.Fprintf(&b, "axioms: %d\n", s.AxiomCount)

	kinds := make([]string, 0, len(s.AxiomsByKind))
	for kind := range s.AxiomsByKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(&b, "  %s: %d\n", kind, s.AxiomsByKind[owl.AxiomKind(kind)])
	}

	fmt.Fprintf(&b, "classes: %d\n", s.ClassCount)
	fmt.Fprintf(&b, "object properties: %d\n", s.ObjectPropertyCount)
	fmt.Fprintf(&b, "data properties: %d\n", s.DataPropertyCount)
	fmt.Fprintf(&b, "individuals: %d\n", s.IndividualCount)
	fmt.Fprintf(&b, "edges: %d", s.EdgeCount)
	return b.String()
}
