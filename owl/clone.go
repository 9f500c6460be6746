package owl

// CloneAxiom returns a deep, independent copy of the axiom. Nested class
// expressions, data ranges, and entity slices are duplicated so the clone
// shares no mutable state with the original. Panics on a nil axiom or on a
// type outside the closed union.
func CloneAxiom(ax Axiom) Axiom {
	switch a := ax.(type) {
	case Declaration:
		return a
	case SubClassOf:
		return SubClassOf{Sub: CloneExpression(a.Sub), Super: CloneExpression(a.Super)}
	case EquivalentClasses:
		return EquivalentClasses{Classes: cloneExpressions(a.Classes)}
	case DisjointClasses:
		return DisjointClasses{Classes: cloneExpressions(a.Classes)}
	case DisjointUnion:
		return DisjointUnion{Class: a.Class, Disjuncts: cloneExpressions(a.Disjuncts)}
	case ObjectPropertyDomain:
		return ObjectPropertyDomain{Property: a.Property, Domain: CloneExpression(a.Domain)}
	case ObjectPropertyRange:
		return ObjectPropertyRange{Property: a.Property, Range: CloneExpression(a.Range)}
	case SubObjectPropertyOf:
		return a
	case ObjectPropertyCharacteristic:
		return a
	case DataPropertyDomain:
		return DataPropertyDomain{Property: a.Property, Domain: CloneExpression(a.Domain)}
	case DataPropertyRange:
		return DataPropertyRange{Property: a.Property, Range: CloneDataRange(a.Range)}
	case SubDataPropertyOf:
		return a
	case FunctionalDataProperty:
		return a
	case ClassAssertion:
		return ClassAssertion{Class: CloneExpression(a.Class), Individual: a.Individual}
	case ObjectPropertyAssertion:
		return a
	case NegativeObjectPropertyAssertion:
		return a
	case DataPropertyAssertion:
		return a
	case NegativeDataPropertyAssertion:
		return a
	case SameIndividual:
		return SameIndividual{Individuals: cloneEntities(a.Individuals)}
	case DifferentIndividuals:
		return DifferentIndividuals{Individuals: cloneEntities(a.Individuals)}
	case AnnotationAssertion:
		return a
	default:
		panic("owl: CloneAxiom on unknown axiom type; union is closed")
	}
}

func cloneEntities(entities []Entity) []Entity {
	out := make([]Entity, len(entities))
	copy(out, entities)
	return out
}
