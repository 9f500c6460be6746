// Package owl provides the core OWL2 data model: IRIs, literals, entities,
// class expressions, and the closed axiom union that the ontology container
// and filter engine operate on.
package owl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RomanoLab/ista/errors"
)

// IRI is an Internationalized Resource Identifier, the canonical identity
// key for ontology entities. Equality and hashing are defined on the full
// string form; the prefix is display metadata only. An IRI is immutable
// once constructed.
type IRI struct {
	prefix    string
	namespace string
	local     string
	full      string
}

// NewIRI constructs an IRI from a namespace and a local name.
// The full form is the concatenation of both parts.
func NewIRI(namespace, local string) (IRI, error) {
	full := namespace + local
	if err := checkIRIString(full); err != nil {
		return IRI{}, err
	}
	return IRI{namespace: namespace, local: local, full: full}, nil
}

// ParseIRI constructs an IRI from its full string form, splitting the
// namespace from the local name at the last '#' or '/' separator.
func ParseIRI(full string) (IRI, error) {
	if err := checkIRIString(full); err != nil {
		return IRI{}, err
	}
	namespace, local := splitIRI(full)
	return IRI{namespace: namespace, local: local, full: full}, nil
}

// MustParseIRI is like ParseIRI but panics on invalid input. It is intended
// for package-level constant tables and tests.
func MustParseIRI(full string) IRI {
	iri, err := ParseIRI(full)
	if err != nil {
		panic(fmt.Sprintf("owl: MustParseIRI(%q): %v", full, err))
	}
	return iri
}

// WithPrefix returns a copy of the IRI carrying the given display prefix.
// The full form, and therefore identity, is unchanged.
func (i IRI) WithPrefix(prefix string) IRI {
	i.prefix = prefix
	return i
}

// Full returns the canonical full string form.
func (i IRI) Full() string { return i.full }

// Namespace returns the namespace part of the IRI.
func (i IRI) Namespace() string { return i.namespace }

// Local returns the local name part of the IRI.
func (i IRI) Local() string { return i.local }

// Prefix returns the display prefix, if any.
func (i IRI) Prefix() string { return i.prefix }

// IsZero reports whether the IRI is the zero value.
func (i IRI) IsZero() bool { return i.full == "" }

// Equal reports whether two IRIs have the same full string form.
func (i IRI) Equal(other IRI) bool { return i.full == other.full }

// Short returns the compact "prefix:local" form when a prefix is set,
// otherwise the full form.
func (i IRI) Short() string {
	if i.prefix != "" {
		return i.prefix + ":" + i.local
	}
	return i.full
}

// String returns the full string form.
func (i IRI) String() string { return i.full }

// MarshalJSON serializes the IRI as its full string form.
func (i IRI) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.full)
}

// UnmarshalJSON deserializes an IRI from its full string form.
func (i *IRI) UnmarshalJSON(data []byte) error {
	var full string
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	parsed, err := ParseIRI(full)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// checkIRIString rejects strings that cannot identify an ontology entity.
// Full grammar validation is a parser concern; this catches the malformed
// inputs that would corrupt identity semantics.
func checkIRIString(full string) error {
	if full == "" {
		return errors.Wrap(errors.ErrInvalidIRI, "owl", "ParseIRI", "empty IRI")
	}
	if strings.ContainsAny(full, " \t\n\r<>\"{}|\\^`") {
		return errors.Wrap(errors.ErrInvalidIRI, "owl", "ParseIRI",
			fmt.Sprintf("illegal character in %q", full))
	}
	if !strings.Contains(full, ":") {
		return errors.Wrap(errors.ErrInvalidIRI, "owl", "ParseIRI",
			fmt.Sprintf("missing scheme in %q", full))
	}
	return nil
}

// splitIRI separates a full IRI into namespace and local name at the last
// '#' or '/' separator. IRIs without either separator keep everything in
// the local name.
func splitIRI(full string) (namespace, local string) {
	if idx := strings.LastIndex(full, "#"); idx >= 0 {
		return full[:idx+1], full[idx+1:]
	}
	if idx := strings.LastIndex(full, "/"); idx >= 0 {
		return full[:idx+1], full[idx+1:]
	}
	return "", full
}
