// Package filter extracts consistent sub-ontologies from a source ontology.
// Every strategy resolves a set of included individuals and materializes a
// fresh ontology containing exactly the assertions supported by that set,
// plus declarations for every referenced entity. Results hold deep copies
// and never alias the source.
package filter

import (
	"math/rand"
	"time"

	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
)

// Strategy labels for instrumentation.
const (
	strategyIndividuals  = "by_individuals"
	strategyClasses      = "by_classes"
	strategyNeighborhood = "neighborhood"
	strategyPath         = "path"
	strategySample       = "random_sample"
	strategyBuilder      = "builder"
)

// Filter is a read-only extraction engine over a borrowed ontology.
// Filter operations may run concurrently with each other but never
// concurrently with AddAxiom on the source.
type Filter struct {
	source  *ontology.Ontology
	metrics *metric.Metrics

	classes     []owl.IRI
	individuals []owl.IRI
	maxDepth    int
	depthSet    bool
}

// Option configures a Filter.
type Option func(*Filter)

// WithMetrics attaches filter operation counters and duration observations.
func WithMetrics(m *metric.Metrics) Option {
	return func(f *Filter) { f.metrics = m }
}

// New creates a Filter over the given source ontology.
func New(source *ontology.Ontology, opts ...Option) *Filter {
	f := &Filter{source: source}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Result is the immutable output of one extraction: an independent
// ontology plus provenance counts. Later mutation of the source cannot
// change a previously returned Result.
type Result struct {
	Ontology                *ontology.Ontology
	OriginalAxiomCount      int
	FilteredAxiomCount      int
	OriginalIndividualCount int
	FilteredIndividualCount int
	IncludedIndividuals     []owl.Entity

	includedKeys map[string]struct{}
}

// Includes reports whether the IRI names an included individual.
func (r *Result) Includes(iri owl.IRI) bool {
	_, ok := r.includedKeys[iri.Full()]
	return ok
}

// ByIndividuals extracts the sub-ontology around the named individuals.
// IRIs not present in the source are ignored.
func (f *Filter) ByIndividuals(iris ...owl.IRI) *Result {
	var selected []owl.Entity
	seen := make(map[string]struct{}, len(iris))
	for _, iri := range iris {
		e, ok := f.source.Individual(iri)
		if !ok {
			continue
		}
		if _, dup := seen[e.Key()]; dup {
			continue
		}
		seen[e.Key()] = struct{}{}
		selected = append(selected, e)
	}
	return f.build(strategyIndividuals, selected)
}

// ByClasses extracts the sub-ontology of all direct members of the named
// classes. Unknown classes contribute nothing.
func (f *Filter) ByClasses(classes ...owl.IRI) *Result {
	return f.build(strategyClasses, f.resolveClasses(classes))
}

// Neighborhood extracts the seed individual together with every individual
// within k hops over the undirected assertion graph. k = 0 selects the
// seed alone. A seed absent from the source yields an empty result.
func (f *Filter) Neighborhood(seed owl.IRI, k int) *Result {
	var seeds []owl.Entity
	if e, ok := f.source.Individual(seed); ok {
		seeds = append(seeds, e)
	}
	return f.build(strategyNeighborhood, f.expand(seeds, k))
}

// Path extracts the individuals on one shortest path between two
// individuals over the undirected assertion graph. Ties are broken by BFS
// discovery order, so the result is deterministic but not necessarily the
// unique shortest path. An unreachable or missing endpoint yields an empty
// result, signalling no path.
func (f *Filter) Path(a, b owl.IRI) *Result {
	return f.build(strategyPath, f.shortestPath(a, b))
}

// RandomSample extracts a deterministic pseudorandom selection of
// min(n, individual count) individuals, without replacement. Identical
// (ontology, n, seed) inputs yield identical selections. No neighborhood
// expansion is applied.
func (f *Filter) RandomSample(n int, seed int64) *Result {
	individuals := f.source.Individuals()
	if n > len(individuals) {
		n = len(individuals)
	}
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(individuals))
	selected := make([]owl.Entity, 0, n)
	for _, idx := range perm[:n] {
		selected = append(selected, individuals[idx])
	}
	return f.build(strategySample, selected)
}

// resolveClasses unions the direct members of each class, first-seen order.
func (f *Filter) resolveClasses(classes []owl.IRI) []owl.Entity {
	var selected []owl.Entity
	seen := make(map[string]struct{})
	for _, cls := range classes {
		for _, member := range f.source.IndividualsOfClass(cls) {
			if _, dup := seen[member.Key()]; dup {
				continue
			}
			seen[member.Key()] = struct{}{}
			selected = append(selected, member)
		}
	}
	return selected
}

// expand runs a k-hop BFS from every seed and unions seeds with everything
// reached.
func (f *Filter) expand(seeds []owl.Entity, k int) []owl.Entity {
	var selected []owl.Entity
	visited := make(map[string]struct{})
	var frontier []owl.Entity

	for _, e := range seeds {
		if _, dup := visited[e.Key()]; dup {
			continue
		}
		visited[e.Key()] = struct{}{}
		selected = append(selected, e)
		frontier = append(frontier, e)
	}

	for depth := 0; depth < k && len(frontier) > 0; depth++ {
		var next []owl.Entity
		for _, e := range frontier {
			for _, adj := range f.source.DirectNeighbors(e) {
				if _, dup := visited[adj.Key()]; dup {
					continue
				}
				visited[adj.Key()] = struct{}{}
				selected = append(selected, adj)
				next = append(next, adj)
			}
		}
		frontier = next
	}
	return selected
}

// shortestPath runs an unweighted BFS from a toward b and reconstructs one
// shortest path via first-discovered predecessors. Returns nil when b is
// unreachable or either endpoint is missing.
func (f *Filter) shortestPath(a, b owl.IRI) []owl.Entity {
	from, okA := f.source.Individual(a)
	to, okB := f.source.Individual(b)
	if !okA || !okB {
		return nil
	}
	if from.Key() == to.Key() {
		return []owl.Entity{from}
	}

	prev := map[string]owl.Entity{from.Key(): {}}
	entityOf := map[string]owl.Entity{from.Key(): from}
	queue := []owl.Entity{from}
	found := false

	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]
		for _, adj := range f.source.DirectNeighbors(cur) {
			if _, seen := prev[adj.Key()]; seen {
				continue
			}
			prev[adj.Key()] = cur
			entityOf[adj.Key()] = adj
			if adj.Key() == to.Key() {
				found = true
				break
			}
			queue = append(queue, adj)
		}
	}
	if !found {
		return nil
	}

	// Walk predecessors back from b, then reverse into a→b order.
	var reversed []owl.Entity
	for key := to.Key(); key != from.Key(); key = prev[key].Key() {
		reversed = append(reversed, entityOf[key])
	}
	reversed = append(reversed, from)

	path := make([]owl.Entity, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}
	return path
}

// build materializes a Result for the resolved individual set. The
// filtered ontology contains exactly the class assertions whose individual
// is selected, the object-property assertions with both endpoints
// selected, the data-property assertions whose subject is selected, and
// declarations for every entity those retained axioms reference.
func (f *Filter) build(strategy string, selected []owl.Entity) *Result {
	start := time.Now()

	included := make(map[string]struct{}, len(selected))
	for _, e := range selected {
		included[e.Key()] = struct{}{}
	}

	out := ontology.New(ontology.WithIRI(f.source.IRI()))
	for _, ax := range f.source.Axioms() {
		if !f.retains(ax, included) {
			continue
		}
		clone := owl.CloneAxiom(ax)
		for _, e := range clone.Entities() {
			// Errors are impossible here: declarations of entities taken
			// from validated axioms always validate.
			_ = out.AddAxiom(owl.Declaration{Entity: e})
		}
		_ = out.AddAxiom(clone)
	}
	// Selected individuals with no retained assertions still appear.
	for _, e := range selected {
		_ = out.AddAxiom(owl.Declaration{Entity: e})
	}

	if f.metrics != nil {
		f.metrics.FilterOperations.WithLabelValues(strategy).Inc()
		f.metrics.FilterDuration.Observe(time.Since(start).Seconds())
	}

	return &Result{
		Ontology:                out,
		OriginalAxiomCount:      f.source.AxiomCount(),
		FilteredAxiomCount:      out.AxiomCount(),
		OriginalIndividualCount: f.source.IndividualCount(),
		FilteredIndividualCount: out.IndividualCount(),
		IncludedIndividuals:     append([]owl.Entity(nil), selected...),
		includedKeys:            included,
	}
}

func (f *Filter) retains(ax owl.Axiom, included map[string]struct{}) bool {
	switch a := ax.(type) {
	case owl.ClassAssertion:
		_, ok := included[a.Individual.Key()]
		return ok
	case owl.ObjectPropertyAssertion:
		// Both endpoints must be selected; incidental assertions to
		// individuals outside the selection never leak in.
		_, subjOK := included[a.Subject.Key()]
		_, objOK := included[a.Object.Key()]
		return subjOK && objOK
	case owl.DataPropertyAssertion:
		_, ok := included[a.Subject.Key()]
		return ok
	default:
		return false
	}
}
