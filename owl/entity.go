package owl

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EntityKind identifies the kind of a named or anonymous ontology entity.
type EntityKind string

const (
	// KindClass is an OWL class.
	KindClass EntityKind = "Class"
	// KindObjectProperty relates two individuals.
	KindObjectProperty EntityKind = "ObjectProperty"
	// KindDataProperty relates an individual to a literal value.
	KindDataProperty EntityKind = "DataProperty"
	// KindAnnotationProperty carries non-logical metadata.
	KindAnnotationProperty EntityKind = "AnnotationProperty"
	// KindDatatype is a data range identified by IRI, such as xsd:integer.
	KindDatatype EntityKind = "Datatype"
	// KindNamedIndividual is a concrete instance identified by IRI.
	KindNamedIndividual EntityKind = "NamedIndividual"
	// KindAnonymousIndividual is a concrete instance identified by an opaque
	// node id rather than an IRI.
	KindAnonymousIndividual EntityKind = "AnonymousIndividual"
)

// String returns the string representation of the EntityKind.
func (k EntityKind) String() string { return string(k) }

// IsValid checks if the EntityKind is one of the defined constants.
func (k EntityKind) IsValid() bool {
	switch k {
	case KindClass, KindObjectProperty, KindDataProperty, KindAnnotationProperty,
		KindDatatype, KindNamedIndividual, KindAnonymousIndividual:
		return true
	default:
		return false
	}
}

// MarshalJSON implements json.Marshaler to ensure EntityKind serializes as a string.
func (k EntityKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

// UnmarshalJSON implements json.Unmarshaler to deserialize EntityKind from string.
func (k *EntityKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*k = EntityKind(s)
	return nil
}

// Entity is a typed named resource. Named kinds are identified by IRI;
// anonymous individuals are identified by an opaque node id — never both.
type Entity struct {
	Kind   EntityKind `json:"kind"`
	IRI    IRI        `json:"iri,omitempty"`
	NodeID string     `json:"node_id,omitempty"`
}

// NewClass constructs a class entity.
func NewClass(iri IRI) Entity { return Entity{Kind: KindClass, IRI: iri} }

// NewObjectProperty constructs an object property entity.
func NewObjectProperty(iri IRI) Entity { return Entity{Kind: KindObjectProperty, IRI: iri} }

// NewDataProperty constructs a data property entity.
func NewDataProperty(iri IRI) Entity { return Entity{Kind: KindDataProperty, IRI: iri} }

// NewAnnotationProperty constructs an annotation property entity.
func NewAnnotationProperty(iri IRI) Entity { return Entity{Kind: KindAnnotationProperty, IRI: iri} }

// NewDatatype constructs a datatype entity.
func NewDatatype(iri IRI) Entity { return Entity{Kind: KindDatatype, IRI: iri} }

// NewNamedIndividual constructs a named individual entity.
func NewNamedIndividual(iri IRI) Entity { return Entity{Kind: KindNamedIndividual, IRI: iri} }

// NewAnonymousIndividual mints an anonymous individual with a fresh node id.
func NewAnonymousIndividual() Entity {
	return Entity{Kind: KindAnonymousIndividual, NodeID: uuid.NewString()}
}

// AnonymousIndividualWithID constructs an anonymous individual with an
// explicit node id, used when round-tripping through serializers.
func AnonymousIndividualWithID(nodeID string) Entity {
	return Entity{Kind: KindAnonymousIndividual, NodeID: nodeID}
}

// IsZero reports whether the entity is the zero value.
func (e Entity) IsZero() bool { return e.Kind == "" }

// IsNamed reports whether the entity is identified by IRI.
func (e Entity) IsNamed() bool { return e.Kind != KindAnonymousIndividual && !e.IRI.IsZero() }

// IsIndividual reports whether the entity denotes a concrete instance.
func (e Entity) IsIndividual() bool {
	return e.Kind == KindNamedIndividual || e.Kind == KindAnonymousIndividual
}

// Key returns the canonical identity string: the full IRI for named
// entities, "_:<nodeID>" for anonymous individuals. Two entities denote the
// same resource exactly when their keys are equal.
func (e Entity) Key() string {
	if e.Kind == KindAnonymousIndividual {
		return "_:" + e.NodeID
	}
	return e.IRI.Full()
}

// Equal reports whether two entities have the same kind and identity.
func (e Entity) Equal(other Entity) bool {
	return e.Kind == other.Kind && e.Key() == other.Key()
}

// String returns the canonical identity string.
func (e Entity) String() string { return e.Key() }

// ref renders the entity reference in functional syntax: "<iri>" for named
// entities, "_:id" for anonymous individuals.
func (e Entity) ref() string {
	if e.Kind == KindAnonymousIndividual {
		return "_:" + e.NodeID
	}
	return "<" + e.IRI.Full() + ">"
}
