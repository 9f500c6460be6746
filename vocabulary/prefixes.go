package vocabulary

import (
	"sort"
	"strings"
	"sync"
)

// Global prefix registry mapping prefixes to namespaces. Serializers use it
// to compact IRIs; parsers use it to expand CURIEs. Populated with the
// standard W3C prefixes at init and extended by applications.
var (
	prefixMu       sync.RWMutex
	prefixRegistry = make(map[string]string)
)

func init() {
	RegisterPrefix("rdf", RDFNamespace)
	RegisterPrefix("rdfs", RDFSNamespace)
	RegisterPrefix("owl", OWLNamespace)
	RegisterPrefix("xsd", XSDNamespace)
	RegisterPrefix("skos", SKOSNamespace)
	RegisterPrefix("dc", DCNamespace)
}

// RegisterPrefix registers a prefix→namespace mapping in the global
// registry. Re-registering a prefix overwrites the previous mapping,
// enabling application-specific overrides.
func RegisterPrefix(prefix, namespace string) {
	prefixMu.Lock()
	defer prefixMu.Unlock()
	prefixRegistry[prefix] = namespace
}

// LookupPrefix returns the namespace registered for a prefix.
func LookupPrefix(prefix string) (string, bool) {
	prefixMu.RLock()
	defer prefixMu.RUnlock()
	ns, ok := prefixRegistry[prefix]
	return ns, ok
}

// ExpandCURIE expands a compact "prefix:local" form into a full IRI string.
// Returns the input unchanged with ok=false when the prefix is unknown or
// the input is not a CURIE.
func ExpandCURIE(curie string) (string, bool) {
	idx := strings.Index(curie, ":")
	if idx <= 0 {
		return curie, false
	}

	prefix := curie[:idx]
	local := curie[idx+1:]

	// A scheme-qualified IRI is not a CURIE.
	if strings.HasPrefix(local, "//") {
		return curie, false
	}

	ns, ok := LookupPrefix(prefix)
	if !ok {
		return curie, false
	}
	return ns + local, true
}

// CompactIRI compacts a full IRI string into "prefix:local" form using the
// longest matching registered namespace. Returns the input unchanged with
// ok=false when no registered namespace matches.
func CompactIRI(full string) (string, bool) {
	prefixMu.RLock()
	defer prefixMu.RUnlock()

	bestPrefix := ""
	bestLen := 0
	for prefix, ns := range prefixRegistry {
		if ns != "" && strings.HasPrefix(full, ns) && len(ns) > bestLen {
			bestPrefix = prefix
			bestLen = len(ns)
		}
	}

	if bestLen == 0 || bestLen == len(full) {
		return full, false
	}

	local := full[bestLen:]
	if strings.ContainsAny(local, "/#") {
		// The remainder crosses a namespace boundary; compaction would be misleading.
		return full, false
	}
	return bestPrefix + ":" + local, true
}

// RegisteredPrefixes returns all registered prefixes in sorted order.
// Useful for serializer prefix blocks and debugging.
func RegisteredPrefixes() []string {
	prefixMu.RLock()
	defer prefixMu.RUnlock()

	prefixes := make([]string, 0, len(prefixRegistry))
	for prefix := range prefixRegistry {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}
