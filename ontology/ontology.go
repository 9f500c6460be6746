// Package ontology provides the authoritative, queryable axiom store: an
// insertion-ordered, duplicate-eliminating axiom collection with derived
// indices for individuals, class membership, and the undirected assertion
// graph used by neighborhood and path queries.
package ontology

import (
	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/owl"
)

// Ontology owns a deduplicated axiom collection and its derived indices.
//
// Concurrency: Ontology is single-writer. AddAxiom is unsafe for
// unsynchronized concurrent callers. All read accessors may run
// concurrently with each other but never concurrently with AddAxiom on the
// same Ontology; callers needing both must serialize externally.
type Ontology struct {
	iri owl.IRI

	axioms     []owl.Axiom
	axiomKeys  map[string]struct{}
	kindCounts map[owl.AxiomKind]int

	// Entity table, insertion ordered. Keys combine kind and identity so
	// punned IRIs (one IRI declared as both class and individual) keep
	// separate entries.
	entities    map[string]owl.Entity
	entityOrder []string

	// individual key -> incident assertion axioms, in insertion order.
	incident map[string][]owl.Axiom

	// named class key -> member individuals, in insertion order.
	members   map[string][]owl.Entity
	memberSet map[string]map[string]struct{}

	// individual key -> adjacent individual keys over object-property
	// assertions, both directions. Multi-edges between the same pair are
	// kept; the BFS visited set makes them harmless.
	adjacency map[string][]string

	metrics *metric.Metrics
}

// Option configures an Ontology at construction time.
type Option func(*Ontology)

// WithIRI sets the ontology IRI.
func WithIRI(iri owl.IRI) Option {
	return func(o *Ontology) { o.iri = iri }
}

// WithMetrics attaches core metrics updated on every insert.
func WithMetrics(m *metric.Metrics) Option {
	return func(o *Ontology) { o.metrics = m }
}

// New creates an empty Ontology.
func New(opts ...Option) *Ontology {
	o := &Ontology{
		axiomKeys:  make(map[string]struct{}),
		kindCounts: make(map[owl.AxiomKind]int),
		entities:   make(map[string]owl.Entity),
		incident:   make(map[string][]owl.Axiom),
		members:    make(map[string][]owl.Entity),
		memberSet:  make(map[string]map[string]struct{}),
		adjacency:  make(map[string][]string),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// IRI returns the ontology IRI, zero when unset.
func (o *Ontology) IRI() owl.IRI { return o.iri }

// AddAxiom inserts an axiom if it is not already structurally present.
// Re-adding an identical axiom is a no-op. The entity table and all derived
// indices are updated incrementally. Returns a structural error for
// malformed axioms; the ontology is unchanged on error.
func (o *Ontology) AddAxiom(ax owl.Axiom) error {
	if ax == nil {
		return errors.Wrap(errors.ErrInvalidAxiom, "Ontology", "AddAxiom", "nil axiom")
	}
	if err := ax.Validate(); err != nil {
		return errors.Wrap(err, "Ontology", "AddAxiom", "axiom validation")
	}

	key := ax.Key()
	if _, exists := o.axiomKeys[key]; exists {
		if o.metrics != nil {
			o.metrics.DuplicateAxioms.Inc()
		}
		return nil
	}

	o.axiomKeys[key] = struct{}{}
	o.axioms = append(o.axioms, ax)
	o.kindCounts[ax.Kind()]++

	for _, e := range ax.Entities() {
		o.registerEntity(e)
	}
	o.indexAxiom(ax)

	if o.metrics != nil {
		o.metrics.AxiomsAdded.WithLabelValues(string(ax.Kind())).Inc()
		o.metrics.EntitiesRegistered.Set(float64(len(o.entityOrder)))
	}
	return nil
}

// ContainsAxiom reports whether a structurally identical axiom is present.
func (o *Ontology) ContainsAxiom(ax owl.Axiom) bool {
	if ax == nil {
		return false
	}
	_, ok := o.axiomKeys[ax.Key()]
	return ok
}

// Axioms returns the full axiom collection in insertion order. The returned
// slice is a snapshot; modifying it does not affect the ontology.
func (o *Ontology) Axioms() []owl.Axiom {
	out := make([]owl.Axiom, len(o.axioms))
	copy(out, o.axioms)
	return out
}

// AxiomCount returns the number of stored axioms.
func (o *Ontology) AxiomCount() int { return len(o.axioms) }

// AxiomCountByKind returns the number of stored axioms of one kind.
func (o *Ontology) AxiomCountByKind(kind owl.AxiomKind) int { return o.kindCounts[kind] }

// Individuals returns all named and anonymous individuals in insertion order.
func (o *Ontology) Individuals() []owl.Entity {
	return o.entitiesOfKinds(owl.KindNamedIndividual, owl.KindAnonymousIndividual)
}

// Classes returns all classes in insertion order.
func (o *Ontology) Classes() []owl.Entity {
	return o.entitiesOfKinds(owl.KindClass)
}

// ObjectProperties returns all object properties in insertion order.
func (o *Ontology) ObjectProperties() []owl.Entity {
	return o.entitiesOfKinds(owl.KindObjectProperty)
}

// DataProperties returns all data properties in insertion order.
func (o *Ontology) DataProperties() []owl.Entity {
	return o.entitiesOfKinds(owl.KindDataProperty)
}

// AnnotationProperties returns all annotation properties in insertion order.
func (o *Ontology) AnnotationProperties() []owl.Entity {
	return o.entitiesOfKinds(owl.KindAnnotationProperty)
}

// IndividualCount returns the number of individuals.
func (o *Ontology) IndividualCount() int {
	return o.countOfKinds(owl.KindNamedIndividual, owl.KindAnonymousIndividual)
}

// ClassCount returns the number of classes.
func (o *Ontology) ClassCount() int { return o.countOfKinds(owl.KindClass) }

// ObjectPropertyCount returns the number of object properties.
func (o *Ontology) ObjectPropertyCount() int { return o.countOfKinds(owl.KindObjectProperty) }

// DataPropertyCount returns the number of data properties.
func (o *Ontology) DataPropertyCount() int { return o.countOfKinds(owl.KindDataProperty) }

// IndividualsOfClass returns the individuals directly asserted to be
// members of the named class, in insertion order. An unknown class yields
// an empty result, not an error.
func (o *Ontology) IndividualsOfClass(cls owl.IRI) []owl.Entity {
	found := o.members[cls.Full()]
	out := make([]owl.Entity, len(found))
	copy(out, found)
	return out
}

// Individual resolves an IRI to a named individual in the entity table.
func (o *Ontology) Individual(iri owl.IRI) (owl.Entity, bool) {
	e, ok := o.entities[entityTableKey(owl.NewNamedIndividual(iri))]
	return e, ok
}

// HasIndividual reports whether the IRI names an individual in this ontology.
func (o *Ontology) HasIndividual(iri owl.IRI) bool {
	_, ok := o.Individual(iri)
	return ok
}

// AssertionsAbout returns every assertion axiom incident to the individual,
// in insertion order: class assertions, object-property assertions from
// either end, data-property assertions, their negative variants, and
// same/different-individual axioms.
func (o *Ontology) AssertionsAbout(individual owl.Entity) []owl.Axiom {
	found := o.incident[individual.Key()]
	out := make([]owl.Axiom, len(found))
	copy(out, found)
	return out
}

// DirectNeighbors returns the individuals adjacent to the given individual
// over object-property assertions. Assertions are treated as undirected
// edges: both the subjects pointing at the individual and the objects it
// points at are neighbors. Duplicates from multi-edges are collapsed.
func (o *Ontology) DirectNeighbors(individual owl.Entity) []owl.Entity {
	keys := o.adjacency[individual.Key()]
	seen := make(map[string]struct{}, len(keys))
	out := make([]owl.Entity, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, o.entityByIndividualKey(k))
	}
	return out
}

// Neighbors returns all individuals reachable within k hops of the seed
// individual, the seed excluded, over the undirected assertion graph.
// A seed absent from the ontology yields an empty result.
func (o *Ontology) Neighbors(seed owl.IRI, k int) []owl.Entity {
	start, ok := o.Individual(seed)
	if !ok || k <= 0 {
		return nil
	}

	visited := map[string]struct{}{start.Key(): {}}
	frontier := []string{start.Key()}
	var out []owl.Entity

	for depth := 0; depth < k && len(frontier) > 0; depth++ {
		var next []string
		for _, key := range frontier {
			for _, adj := range o.adjacency[key] {
				if _, seen := visited[adj]; seen {
					continue
				}
				visited[adj] = struct{}{}
				next = append(next, adj)
				out = append(out, o.entityByIndividualKey(adj))
			}
		}
		frontier = next
	}
	return out
}

// HasPath reports whether two individuals are connected in the undirected
// assertion graph. A missing endpoint yields false.
func (o *Ontology) HasPath(a, b owl.IRI) bool {
	from, okA := o.Individual(a)
	to, okB := o.Individual(b)
	if !okA || !okB {
		return false
	}
	if from.Key() == to.Key() {
		return true
	}

	// Short-circuiting BFS over the adjacency index.
	visited := map[string]struct{}{from.Key(): {}}
	queue := []string{from.Key()}
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		for _, adj := range o.adjacency[key] {
			if adj == to.Key() {
				return true
			}
			if _, seen := visited[adj]; seen {
				continue
			}
			visited[adj] = struct{}{}
			queue = append(queue, adj)
		}
	}
	return false
}

// registerEntity adds an entity to the table if its kind+identity pair is new.
func (o *Ontology) registerEntity(e owl.Entity) {
	if e.IsZero() || e.Key() == "" {
		return
	}
	key := entityTableKey(e)
	if _, exists := o.entities[key]; exists {
		return
	}
	o.entities[key] = e
	o.entityOrder = append(o.entityOrder, key)
}

// indexAxiom maintains the derived indices for one freshly inserted axiom.
func (o *Ontology) indexAxiom(ax owl.Axiom) {
	switch a := ax.(type) {
	case owl.ClassAssertion:
		o.addIncident(a.Individual, ax)
		if nc, ok := a.Class.(owl.NamedClass); ok {
			o.addMember(nc.Class, a.Individual)
		}
	case owl.ObjectPropertyAssertion:
		o.addIncident(a.Subject, ax)
		o.addIncident(a.Object, ax)
		o.addEdge(a.Subject, a.Object)
	case owl.DataPropertyAssertion:
		o.addIncident(a.Subject, ax)
	case owl.NegativeObjectPropertyAssertion:
		// Indexed as incident facts, but never as traversable edges.
		o.addIncident(a.Subject, ax)
		o.addIncident(a.Object, ax)
	case owl.NegativeDataPropertyAssertion:
		o.addIncident(a.Subject, ax)
	case owl.SameIndividual:
		for _, ind := range a.Individuals {
			o.addIncident(ind, ax)
		}
	case owl.DifferentIndividuals:
		for _, ind := range a.Individuals {
			o.addIncident(ind, ax)
		}
	}
}

func (o *Ontology) addIncident(individual owl.Entity, ax owl.Axiom) {
	key := individual.Key()
	o.incident[key] = append(o.incident[key], ax)
}

func (o *Ontology) addMember(cls owl.Entity, individual owl.Entity) {
	clsKey := cls.Key()
	set, ok := o.memberSet[clsKey]
	if !ok {
		set = make(map[string]struct{})
		o.memberSet[clsKey] = set
	}
	if _, dup := set[individual.Key()]; dup {
		return
	}
	set[individual.Key()] = struct{}{}
	o.members[clsKey] = append(o.members[clsKey], individual)
}

func (o *Ontology) addEdge(a, b owl.Entity) {
	o.adjacency[a.Key()] = append(o.adjacency[a.Key()], b.Key())
	o.adjacency[b.Key()] = append(o.adjacency[b.Key()], a.Key())
}

// entityByIndividualKey resolves an adjacency key back to its entity.
// Adjacency keys are only produced from registered individuals, so lookups
// always succeed for well-formed ontologies.
func (o *Ontology) entityByIndividualKey(key string) owl.Entity {
	if e, ok := o.entities[string(owl.KindNamedIndividual)+"|"+key]; ok {
		return e
	}
	if e, ok := o.entities[string(owl.KindAnonymousIndividual)+"|"+key]; ok {
		return e
	}
	return owl.Entity{}
}

func (o *Ontology) entitiesOfKinds(kinds ...owl.EntityKind) []owl.Entity {
	var out []owl.Entity
	for _, key := range o.entityOrder {
		e := o.entities[key]
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func (o *Ontology) countOfKinds(kinds ...owl.EntityKind) int {
	n := 0
	for _, key := range o.entityOrder {
		e := o.entities[key]
		for _, k := range kinds {
			if e.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

func entityTableKey(e owl.Entity) string {
	return string(e.Kind) + "|" + e.Key()
}
