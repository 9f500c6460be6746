package owl

import (
	"fmt"
	"strings"

	"github.com/RomanoLab/ista/errors"
)

// AxiomKind identifies the kind of an axiom. The constant value doubles as
// the functional-syntax head of its canonical form.
type AxiomKind string

const (
	// Declarations
	KindDeclaration AxiomKind = "Declaration"

	// Class axioms
	KindSubClassOf        AxiomKind = "SubClassOf"
	KindEquivalentClasses AxiomKind = "EquivalentClasses"
	KindDisjointClasses   AxiomKind = "DisjointClasses"
	KindDisjointUnion     AxiomKind = "DisjointUnion"

	// Object property axioms
	KindObjectPropertyDomain            AxiomKind = "ObjectPropertyDomain"
	KindObjectPropertyRange             AxiomKind = "ObjectPropertyRange"
	KindSubObjectPropertyOf             AxiomKind = "SubObjectPropertyOf"
	KindFunctionalObjectProperty        AxiomKind = "FunctionalObjectProperty"
	KindInverseFunctionalObjectProperty AxiomKind = "InverseFunctionalObjectProperty"
	KindTransitiveObjectProperty        AxiomKind = "TransitiveObjectProperty"
	KindSymmetricObjectProperty         AxiomKind = "SymmetricObjectProperty"
	KindAsymmetricObjectProperty        AxiomKind = "AsymmetricObjectProperty"
	KindReflexiveObjectProperty         AxiomKind = "ReflexiveObjectProperty"
	KindIrreflexiveObjectProperty       AxiomKind = "IrreflexiveObjectProperty"

	// Data property axioms
	KindDataPropertyDomain     AxiomKind = "DataPropertyDomain"
	KindDataPropertyRange      AxiomKind = "DataPropertyRange"
	KindSubDataPropertyOf      AxiomKind = "SubDataPropertyOf"
	KindFunctionalDataProperty AxiomKind = "FunctionalDataProperty"

	// Assertions
	KindClassAssertion                  AxiomKind = "ClassAssertion"
	KindObjectPropertyAssertion         AxiomKind = "ObjectPropertyAssertion"
	KindNegativeObjectPropertyAssertion AxiomKind = "NegativeObjectPropertyAssertion"
	KindDataPropertyAssertion           AxiomKind = "DataPropertyAssertion"
	KindNegativeDataPropertyAssertion   AxiomKind = "NegativeDataPropertyAssertion"
	KindSameIndividual                  AxiomKind = "SameIndividual"
	KindDifferentIndividuals            AxiomKind = "DifferentIndividuals"

	// Annotation axioms
	KindAnnotationAssertion AxiomKind = "AnnotationAssertion"
)

// String returns the string representation of the AxiomKind.
func (k AxiomKind) String() string { return string(k) }

// Axiom is the closed union of OWL2 axioms supported by the engine. Axioms
// are immutable value types compared structurally via Key(); corrections
// are expressed as new axioms, never in-place mutation.
type Axiom interface {
	// Kind returns the discriminator identifying the axiom variant.
	Kind() AxiomKind
	// Key returns the canonical structural form of the axiom in OWL
	// functional syntax. Two axioms are structurally equal exactly when
	// their keys are equal.
	Key() string
	// Validate reports a structural error when the axiom references
	// malformed or wrongly-kinded entities.
	Validate() error
	// Entities returns every entity the axiom references, in reference
	// order. Used for entity-table registration and for emitting
	// declarations in filter results.
	Entities() []Entity

	isAxiom()
}

// invalid builds a structural validation error for an axiom kind.
func invalid(kind AxiomKind, format string, args ...any) error {
	return errors.Wrap(
		fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidAxiom),
		"owl", string(kind), "validation")
}

// requireKind checks that an entity has the expected kind and an identity.
func requireKind(kind AxiomKind, role string, e Entity, want EntityKind) error {
	if e.Kind != want {
		return invalid(kind, "%s must be a %s, got %q", role, want, e.Kind)
	}
	if e.Key() == "" {
		return invalid(kind, "%s has no identity", role)
	}
	return nil
}

// requireIndividual checks that an entity is a named or anonymous individual.
func requireIndividual(kind AxiomKind, role string, e Entity) error {
	if !e.IsIndividual() {
		return invalid(kind, "%s must be an individual, got %q", role, e.Kind)
	}
	if e.Key() == "" {
		return invalid(kind, "%s has no identity", role)
	}
	return nil
}

// Declaration declares an entity. Declarations are optional metadata:
// referencing an individual in an assertion never requires a prior
// Declaration axiom.
type Declaration struct {
	Entity Entity
}

func (Declaration) isAxiom() {}

// Kind implements Axiom.
func (a Declaration) Kind() AxiomKind { return KindDeclaration }

// Key implements Axiom.
func (a Declaration) Key() string {
	return fmt.Sprintf("Declaration(%s(%s))", a.Entity.Kind, a.Entity.ref())
}

// Validate implements Axiom.
func (a Declaration) Validate() error {
	if !a.Entity.Kind.IsValid() {
		return invalid(KindDeclaration, "unknown entity kind %q", a.Entity.Kind)
	}
	if a.Entity.Key() == "" {
		return invalid(KindDeclaration, "entity has no identity")
	}
	return nil
}

// Entities implements Axiom.
func (a Declaration) Entities() []Entity { return []Entity{a.Entity} }

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
}

func (SubClassOf) isAxiom() {}

// Kind implements Axiom.
func (a SubClassOf) Kind() AxiomKind { return KindSubClassOf }

// Key implements Axiom.
func (a SubClassOf) Key() string {
	return fmt.Sprintf("SubClassOf(%s %s)", a.Sub.Key(), a.Super.Key())
}

// Validate implements Axiom.
func (a SubClassOf) Validate() error {
	if a.Sub == nil || a.Super == nil {
		return invalid(KindSubClassOf, "missing class expression")
	}
	return nil
}

// Entities implements Axiom.
func (a SubClassOf) Entities() []Entity {
	return append(ExpressionClasses(a.Sub), ExpressionClasses(a.Super)...)
}

// EquivalentClasses states that all listed class expressions denote the same class.
type EquivalentClasses struct {
	Classes []ClassExpression
}

func (EquivalentClasses) isAxiom() {}

// Kind implements Axiom.
func (a EquivalentClasses) Kind() AxiomKind { return KindEquivalentClasses }

// Key implements Axiom.
func (a EquivalentClasses) Key() string {
	return "EquivalentClasses(" + joinExpressionKeys(a.Classes) + ")"
}

// Validate implements Axiom.
func (a EquivalentClasses) Validate() error { return validateExpressionList(KindEquivalentClasses, a.Classes) }

// Entities implements Axiom.
func (a EquivalentClasses) Entities() []Entity { return expressionListEntities(a.Classes) }

// DisjointClasses states that no individual belongs to more than one of the
// listed class expressions.
type DisjointClasses struct {
	Classes []ClassExpression
}

func (DisjointClasses) isAxiom() {}

// Kind implements Axiom.
func (a DisjointClasses) Kind() AxiomKind { return KindDisjointClasses }

// Key implements Axiom.
func (a DisjointClasses) Key() string {
	return "DisjointClasses(" + joinExpressionKeys(a.Classes) + ")"
}

// Validate implements Axiom.
func (a DisjointClasses) Validate() error { return validateExpressionList(KindDisjointClasses, a.Classes) }

// Entities implements Axiom.
func (a DisjointClasses) Entities() []Entity { return expressionListEntities(a.Classes) }

// DisjointUnion states that Class is the disjoint union of the listed
// class expressions.
type DisjointUnion struct {
	Class     Entity
	Disjuncts []ClassExpression
}

func (DisjointUnion) isAxiom() {}

// Kind implements Axiom.
func (a DisjointUnion) Kind() AxiomKind { return KindDisjointUnion }

// Key implements Axiom.
func (a DisjointUnion) Key() string {
	return fmt.Sprintf("DisjointUnion(%s %s)", a.Class.ref(), joinExpressionKeys(a.Disjuncts))
}

// Validate implements Axiom.
func (a DisjointUnion) Validate() error {
	if err := requireKind(KindDisjointUnion, "class", a.Class, KindClass); err != nil {
		return err
	}
	return validateExpressionList(KindDisjointUnion, a.Disjuncts)
}

// Entities implements Axiom.
func (a DisjointUnion) Entities() []Entity {
	return append([]Entity{a.Class}, expressionListEntities(a.Disjuncts)...)
}

// ObjectPropertyDomain restricts the subjects of a property to a class.
type ObjectPropertyDomain struct {
	Property Entity
	Domain   ClassExpression
}

func (ObjectPropertyDomain) isAxiom() {}

// Kind implements Axiom.
func (a ObjectPropertyDomain) Kind() AxiomKind { return KindObjectPropertyDomain }

// Key implements Axiom.
func (a ObjectPropertyDomain) Key() string {
	return fmt.Sprintf("ObjectPropertyDomain(%s %s)", a.Property.ref(), a.Domain.Key())
}

// Validate implements Axiom.
func (a ObjectPropertyDomain) Validate() error {
	if err := requireKind(KindObjectPropertyDomain, "property", a.Property, KindObjectProperty); err != nil {
		return err
	}
	if a.Domain == nil {
		return invalid(KindObjectPropertyDomain, "missing domain expression")
	}
	return nil
}

// Entities implements Axiom.
func (a ObjectPropertyDomain) Entities() []Entity {
	return append([]Entity{a.Property}, ExpressionClasses(a.Domain)...)
}

// ObjectPropertyRange restricts the objects of a property to a class.
type ObjectPropertyRange struct {
	Property Entity
	Range    ClassExpression
}

func (ObjectPropertyRange) isAxiom() {}

// Kind implements Axiom.
func (a ObjectPropertyRange) Kind() AxiomKind { return KindObjectPropertyRange }

// Key implements Axiom.
func (a ObjectPropertyRange) Key() string {
	return fmt.Sprintf("ObjectPropertyRange(%s %s)", a.Property.ref(), a.Range.Key())
}

// Validate implements Axiom.
func (a ObjectPropertyRange) Validate() error {
	if err := requireKind(KindObjectPropertyRange, "property", a.Property, KindObjectProperty); err != nil {
		return err
	}
	if a.Range == nil {
		return invalid(KindObjectPropertyRange, "missing range expression")
	}
	return nil
}

// Entities implements Axiom.
func (a ObjectPropertyRange) Entities() []Entity {
	return append([]Entity{a.Property}, ExpressionClasses(a.Range)...)
}

// SubObjectPropertyOf states that Sub is a subproperty of Super.
type SubObjectPropertyOf struct {
	Sub   Entity
	Super Entity
}

func (SubObjectPropertyOf) isAxiom() {}

// Kind implements Axiom.
func (a SubObjectPropertyOf) Kind() AxiomKind { return KindSubObjectPropertyOf }

// Key implements Axiom.
func (a SubObjectPropertyOf) Key() string {
	return fmt.Sprintf("SubObjectPropertyOf(%s %s)", a.Sub.ref(), a.Super.ref())
}

// Validate implements Axiom.
func (a SubObjectPropertyOf) Validate() error {
	if err := requireKind(KindSubObjectPropertyOf, "subproperty", a.Sub, KindObjectProperty); err != nil {
		return err
	}
	return requireKind(KindSubObjectPropertyOf, "superproperty", a.Super, KindObjectProperty)
}

// Entities implements Axiom.
func (a SubObjectPropertyOf) Entities() []Entity { return []Entity{a.Sub, a.Super} }

// Characteristic is a logical characteristic of an object property.
type Characteristic string

const (
	Functional        Characteristic = "Functional"
	InverseFunctional Characteristic = "InverseFunctional"
	Transitive        Characteristic = "Transitive"
	Symmetric         Characteristic = "Symmetric"
	Asymmetric        Characteristic = "Asymmetric"
	Reflexive         Characteristic = "Reflexive"
	Irreflexive       Characteristic = "Irreflexive"
)

// IsValid checks if the Characteristic is one of the defined constants.
func (c Characteristic) IsValid() bool {
	switch c {
	case Functional, InverseFunctional, Transitive, Symmetric, Asymmetric, Reflexive, Irreflexive:
		return true
	default:
		return false
	}
}

// ObjectPropertyCharacteristic asserts a logical characteristic of an
// object property. Each characteristic maps to its own axiom kind, keeping
// the union closed while avoiding seven near-identical variants.
type ObjectPropertyCharacteristic struct {
	Characteristic Characteristic
	Property       Entity
}

func (ObjectPropertyCharacteristic) isAxiom() {}

// Kind implements Axiom.
func (a ObjectPropertyCharacteristic) Kind() AxiomKind {
	return AxiomKind(string(a.Characteristic) + "ObjectProperty")
}

// Key implements Axiom.
func (a ObjectPropertyCharacteristic) Key() string {
	return fmt.Sprintf("%s(%s)", a.Kind(), a.Property.ref())
}

// Validate implements Axiom.
func (a ObjectPropertyCharacteristic) Validate() error {
	if !a.Characteristic.IsValid() {
		return invalid(KindFunctionalObjectProperty, "unknown characteristic %q", a.Characteristic)
	}
	return requireKind(a.Kind(), "property", a.Property, KindObjectProperty)
}

// Entities implements Axiom.
func (a ObjectPropertyCharacteristic) Entities() []Entity { return []Entity{a.Property} }

// DataPropertyDomain restricts the subjects of a data property to a class.
type DataPropertyDomain struct {
	Property Entity
	Domain   ClassExpression
}

func (DataPropertyDomain) isAxiom() {}

// Kind implements Axiom.
func (a DataPropertyDomain) Kind() AxiomKind { return KindDataPropertyDomain }

// Key implements Axiom.
func (a DataPropertyDomain) Key() string {
	return fmt.Sprintf("DataPropertyDomain(%s %s)", a.Property.ref(), a.Domain.Key())
}

// Validate implements Axiom.
func (a DataPropertyDomain) Validate() error {
	if err := requireKind(KindDataPropertyDomain, "property", a.Property, KindDataProperty); err != nil {
		return err
	}
	if a.Domain == nil {
		return invalid(KindDataPropertyDomain, "missing domain expression")
	}
	return nil
}

// Entities implements Axiom.
func (a DataPropertyDomain) Entities() []Entity {
	return append([]Entity{a.Property}, ExpressionClasses(a.Domain)...)
}

// DataPropertyRange restricts the values of a data property to a data range.
type DataPropertyRange struct {
	Property Entity
	Range    DataRange
}

func (DataPropertyRange) isAxiom() {}

// Kind implements Axiom.
func (a DataPropertyRange) Kind() AxiomKind { return KindDataPropertyRange }

// Key implements Axiom.
func (a DataPropertyRange) Key() string {
	return fmt.Sprintf("DataPropertyRange(%s %s)", a.Property.ref(), a.Range.Key())
}

// Validate implements Axiom.
func (a DataPropertyRange) Validate() error {
	if err := requireKind(KindDataPropertyRange, "property", a.Property, KindDataProperty); err != nil {
		return err
	}
	if a.Range == nil {
		return invalid(KindDataPropertyRange, "missing range")
	}
	return nil
}

// Entities implements Axiom.
func (a DataPropertyRange) Entities() []Entity { return []Entity{a.Property} }

// SubDataPropertyOf states that Sub is a subproperty of Super.
type SubDataPropertyOf struct {
	Sub   Entity
	Super Entity
}

func (SubDataPropertyOf) isAxiom() {}

// Kind implements Axiom.
func (a SubDataPropertyOf) Kind() AxiomKind { return KindSubDataPropertyOf }

// Key implements Axiom.
func (a SubDataPropertyOf) Key() string {
	return fmt.Sprintf("SubDataPropertyOf(%s %s)", a.Sub.ref(), a.Super.ref())
}

// Validate implements Axiom.
func (a SubDataPropertyOf) Validate() error {
	if err := requireKind(KindSubDataPropertyOf, "subproperty", a.Sub, KindDataProperty); err != nil {
		return err
	}
	return requireKind(KindSubDataPropertyOf, "superproperty", a.Super, KindDataProperty)
}

// Entities implements Axiom.
func (a SubDataPropertyOf) Entities() []Entity { return []Entity{a.Sub, a.Super} }

// FunctionalDataProperty asserts that a data property assigns at most one
// value per individual.
type FunctionalDataProperty struct {
	Property Entity
}

func (FunctionalDataProperty) isAxiom() {}

// Kind implements Axiom.
func (a FunctionalDataProperty) Kind() AxiomKind { return KindFunctionalDataProperty }

// Key implements Axiom.
func (a FunctionalDataProperty) Key() string {
	return fmt.Sprintf("FunctionalDataProperty(%s)", a.Property.ref())
}

// Validate implements Axiom.
func (a FunctionalDataProperty) Validate() error {
	return requireKind(KindFunctionalDataProperty, "property", a.Property, KindDataProperty)
}

// Entities implements Axiom.
func (a FunctionalDataProperty) Entities() []Entity { return []Entity{a.Property} }

// ClassAssertion states that Individual is an instance of Class.
type ClassAssertion struct {
	Class      ClassExpression
	Individual Entity
}

func (ClassAssertion) isAxiom() {}

// Kind implements Axiom.
func (a ClassAssertion) Kind() AxiomKind { return KindClassAssertion }

// Key implements Axiom.
func (a ClassAssertion) Key() string {
	return fmt.Sprintf("ClassAssertion(%s %s)", a.Class.Key(), a.Individual.ref())
}

// Validate implements Axiom.
func (a ClassAssertion) Validate() error {
	if a.Class == nil {
		return invalid(KindClassAssertion, "missing class expression")
	}
	return requireIndividual(KindClassAssertion, "individual", a.Individual)
}

// Entities implements Axiom.
func (a ClassAssertion) Entities() []Entity {
	return append(ExpressionClasses(a.Class), a.Individual)
}

// ObjectPropertyAssertion states that Subject is related to Object by
// Property. The assertion is directional in storage and serialization;
// graph traversal treats it as an undirected edge.
type ObjectPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Object   Entity
}

func (ObjectPropertyAssertion) isAxiom() {}

// Kind implements Axiom.
func (a ObjectPropertyAssertion) Kind() AxiomKind { return KindObjectPropertyAssertion }

// Key implements Axiom.
func (a ObjectPropertyAssertion) Key() string {
	return fmt.Sprintf("ObjectPropertyAssertion(%s %s %s)", a.Property.ref(), a.Subject.ref(), a.Object.ref())
}

// Validate implements Axiom.
func (a ObjectPropertyAssertion) Validate() error {
	if err := requireKind(KindObjectPropertyAssertion, "property", a.Property, KindObjectProperty); err != nil {
		return err
	}
	if err := requireIndividual(KindObjectPropertyAssertion, "subject", a.Subject); err != nil {
		return err
	}
	return requireIndividual(KindObjectPropertyAssertion, "object", a.Object)
}

// Entities implements Axiom.
func (a ObjectPropertyAssertion) Entities() []Entity {
	return []Entity{a.Property, a.Subject, a.Object}
}

// NegativeObjectPropertyAssertion states that Subject is not related to
// Object by Property. Negative assertions never contribute graph edges.
type NegativeObjectPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Object   Entity
}

func (NegativeObjectPropertyAssertion) isAxiom() {}

// Kind implements Axiom.
func (a NegativeObjectPropertyAssertion) Kind() AxiomKind { return KindNegativeObjectPropertyAssertion }

// Key implements Axiom.
func (a NegativeObjectPropertyAssertion) Key() string {
	return fmt.Sprintf("NegativeObjectPropertyAssertion(%s %s %s)", a.Property.ref(), a.Subject.ref(), a.Object.ref())
}

// Validate implements Axiom.
func (a NegativeObjectPropertyAssertion) Validate() error {
	if err := requireKind(KindNegativeObjectPropertyAssertion, "property", a.Property, KindObjectProperty); err != nil {
		return err
	}
	if err := requireIndividual(KindNegativeObjectPropertyAssertion, "subject", a.Subject); err != nil {
		return err
	}
	return requireIndividual(KindNegativeObjectPropertyAssertion, "object", a.Object)
}

// Entities implements Axiom.
func (a NegativeObjectPropertyAssertion) Entities() []Entity {
	return []Entity{a.Property, a.Subject, a.Object}
}

// DataPropertyAssertion states that Subject has literal Value for Property.
type DataPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Value    Literal
}

func (DataPropertyAssertion) isAxiom() {}

// Kind implements Axiom.
func (a DataPropertyAssertion) Kind() AxiomKind { return KindDataPropertyAssertion }

// Key implements Axiom.
func (a DataPropertyAssertion) Key() string {
	return fmt.Sprintf("DataPropertyAssertion(%s %s %s)", a.Property.ref(), a.Subject.ref(), a.Value.Key())
}

// Validate implements Axiom.
func (a DataPropertyAssertion) Validate() error {
	if err := requireKind(KindDataPropertyAssertion, "property", a.Property, KindDataProperty); err != nil {
		return err
	}
	if err := requireIndividual(KindDataPropertyAssertion, "subject", a.Subject); err != nil {
		return err
	}
	if a.Value.Datatype().IsZero() && !a.Value.IsLangTagged() {
		return invalid(KindDataPropertyAssertion, "literal has no datatype or language tag")
	}
	return nil
}

// Entities implements Axiom.
func (a DataPropertyAssertion) Entities() []Entity { return []Entity{a.Property, a.Subject} }

// NegativeDataPropertyAssertion states that Subject does not have literal
// Value for Property.
type NegativeDataPropertyAssertion struct {
	Property Entity
	Subject  Entity
	Value    Literal
}

func (NegativeDataPropertyAssertion) isAxiom() {}

// Kind implements Axiom.
func (a NegativeDataPropertyAssertion) Kind() AxiomKind { return KindNegativeDataPropertyAssertion }

// Key implements Axiom.
func (a NegativeDataPropertyAssertion) Key() string {
	return fmt.Sprintf("NegativeDataPropertyAssertion(%s %s %s)", a.Property.ref(), a.Subject.ref(), a.Value.Key())
}

// Validate implements Axiom.
func (a NegativeDataPropertyAssertion) Validate() error {
	if err := requireKind(KindNegativeDataPropertyAssertion, "property", a.Property, KindDataProperty); err != nil {
		return err
	}
	if err := requireIndividual(KindNegativeDataPropertyAssertion, "subject", a.Subject); err != nil {
		return err
	}
	if a.Value.Datatype().IsZero() && !a.Value.IsLangTagged() {
		return invalid(KindNegativeDataPropertyAssertion, "literal has no datatype or language tag")
	}
	return nil
}

// Entities implements Axiom.
func (a NegativeDataPropertyAssertion) Entities() []Entity { return []Entity{a.Property, a.Subject} }

// SameIndividual states that all listed individuals denote the same resource.
type SameIndividual struct {
	Individuals []Entity
}

func (SameIndividual) isAxiom() {}

// Kind implements Axiom.
func (a SameIndividual) Kind() AxiomKind { return KindSameIndividual }

// Key implements Axiom.
func (a SameIndividual) Key() string {
	return "SameIndividual(" + joinEntityRefs(a.Individuals) + ")"
}

// Validate implements Axiom.
func (a SameIndividual) Validate() error {
	return validateIndividualList(KindSameIndividual, a.Individuals)
}

// Entities implements Axiom.
func (a SameIndividual) Entities() []Entity { return append([]Entity(nil), a.Individuals...) }

// DifferentIndividuals states that the listed individuals denote pairwise
// distinct resources.
type DifferentIndividuals struct {
	Individuals []Entity
}

func (DifferentIndividuals) isAxiom() {}

// Kind implements Axiom.
func (a DifferentIndividuals) Kind() AxiomKind { return KindDifferentIndividuals }

// Key implements Axiom.
func (a DifferentIndividuals) Key() string {
	return "DifferentIndividuals(" + joinEntityRefs(a.Individuals) + ")"
}

// Validate implements Axiom.
func (a DifferentIndividuals) Validate() error {
	return validateIndividualList(KindDifferentIndividuals, a.Individuals)
}

// Entities implements Axiom.
func (a DifferentIndividuals) Entities() []Entity { return append([]Entity(nil), a.Individuals...) }

// AnnotationValue is either an IRI or a literal.
type AnnotationValue struct {
	iri     IRI
	literal Literal
	isIRI   bool
}

// AnnotationIRI constructs an IRI-valued annotation value.
func AnnotationIRI(iri IRI) AnnotationValue { return AnnotationValue{iri: iri, isIRI: true} }

// AnnotationLiteral constructs a literal-valued annotation value.
func AnnotationLiteral(lit Literal) AnnotationValue { return AnnotationValue{literal: lit} }

// IsIRI reports whether the value is an IRI.
func (v AnnotationValue) IsIRI() bool { return v.isIRI }

// IRI returns the IRI value; zero unless IsIRI.
func (v AnnotationValue) IRI() IRI { return v.iri }

// Literal returns the literal value; zero when IsIRI.
func (v AnnotationValue) Literal() Literal { return v.literal }

// Key returns the canonical form of the value.
func (v AnnotationValue) Key() string {
	if v.isIRI {
		return "<" + v.iri.Full() + ">"
	}
	return v.literal.Key()
}

// AnnotationAssertion attaches non-logical metadata to a subject IRI.
type AnnotationAssertion struct {
	Property Entity
	Subject  IRI
	Value    AnnotationValue
}

func (AnnotationAssertion) isAxiom() {}

// Kind implements Axiom.
func (a AnnotationAssertion) Kind() AxiomKind { return KindAnnotationAssertion }

// Key implements Axiom.
func (a AnnotationAssertion) Key() string {
	return fmt.Sprintf("AnnotationAssertion(%s <%s> %s)", a.Property.ref(), a.Subject.Full(), a.Value.Key())
}

// Validate implements Axiom.
func (a AnnotationAssertion) Validate() error {
	if err := requireKind(KindAnnotationAssertion, "property", a.Property, KindAnnotationProperty); err != nil {
		return err
	}
	if a.Subject.IsZero() {
		return invalid(KindAnnotationAssertion, "missing subject IRI")
	}
	if !a.Value.isIRI && a.Value.literal.Datatype().IsZero() && !a.Value.literal.IsLangTagged() {
		return invalid(KindAnnotationAssertion, "annotation value has no datatype or language tag")
	}
	return nil
}

// Entities implements Axiom.
func (a AnnotationAssertion) Entities() []Entity { return []Entity{a.Property} }

func joinEntityRefs(entities []Entity) string {
	refs := make([]string, len(entities))
	for i, e := range entities {
		refs[i] = e.ref()
	}
	return strings.Join(refs, " ")
}

func validateExpressionList(kind AxiomKind, exprs []ClassExpression) error {
	if len(exprs) < 2 {
		return invalid(kind, "needs at least two class expressions, got %d", len(exprs))
	}
	for i, e := range exprs {
		if e == nil {
			return invalid(kind, "nil class expression at position %d", i)
		}
	}
	return nil
}

func validateIndividualList(kind AxiomKind, individuals []Entity) error {
	if len(individuals) < 2 {
		return invalid(kind, "needs at least two individuals, got %d", len(individuals))
	}
	for i, ind := range individuals {
		if err := requireIndividual(kind, fmt.Sprintf("individual %d", i), ind); err != nil {
			return err
		}
	}
	return nil
}

func expressionListEntities(exprs []ClassExpression) []Entity {
	var out []Entity
	for _, e := range exprs {
		collectExpressionEntities(e, &out)
	}
	return out
}
