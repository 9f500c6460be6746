package filter

import "github.com/RomanoLab/ista/owl"

// WithClasses adds class criteria: Execute seeds the selection with every
// direct member of each class. Returns the filter for chaining.
func (f *Filter) WithClasses(classes ...owl.IRI) *Filter {
	f.classes = append(f.classes, classes...)
	return f
}

// WithIndividuals adds individual criteria: Execute seeds the selection
// with each named individual present in the source.
func (f *Filter) WithIndividuals(iris ...owl.IRI) *Filter {
	f.individuals = append(f.individuals, iris...)
	return f
}

// WithMaxDepth enables neighborhood expansion: Execute expands the seeded
// selection via BFS up to depth hops and unions the results. Unset, no
// expansion is applied.
func (f *Filter) WithMaxDepth(depth int) *Filter {
	f.maxDepth = depth
	f.depthSet = true
	return f
}

// Execute resolves the accumulated criteria into a Result. The initial set
// is the union of the class members and named individuals; with a max
// depth set, it is expanded by BFS from every seed. Repeated calls with
// unchanged criteria are idempotent and never mutate the source.
func (f *Filter) Execute() *Result {
	seedSet := make(map[string]struct{})
	var seeds []owl.Entity
	addSeed := func(e owl.Entity) {
		if _, dup := seedSet[e.Key()]; dup {
			return
		}
		seedSet[e.Key()] = struct{}{}
		seeds = append(seeds, e)
	}

	for _, member := range f.resolveClasses(f.classes) {
		addSeed(member)
	}
	for _, iri := range f.individuals {
		if e, ok := f.source.Individual(iri); ok {
			addSeed(e)
		}
	}

	depth := 0
	if f.depthSet {
		depth = f.maxDepth
	}
	return f.build(strategyBuilder, f.expand(seeds, depth))
}
