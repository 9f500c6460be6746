// Package xsd provides the process-wide, read-only table of XML Schema
// datatype IRIs. The table is initialized once at startup and never mutated
// afterward.
package xsd

import (
	"github.com/RomanoLab/ista/owl"
	"github.com/RomanoLab/ista/vocabulary"
)

// XML Schema datatype IRIs as typed owl.IRI values, carrying the "xsd"
// display prefix for compact serialization.
var (
	String             = mk("string")
	Boolean            = mk("boolean")
	Decimal            = mk("decimal")
	Integer            = mk("integer")
	Long               = mk("long")
	Int                = mk("int")
	Short              = mk("short")
	Byte               = mk("byte")
	NonNegativeInteger = mk("nonNegativeInteger")
	PositiveInteger    = mk("positiveInteger")
	Float              = mk("float")
	Double             = mk("double")
	Date               = mk("date")
	Time               = mk("time")
	DateTime           = mk("dateTime")
	Duration           = mk("duration")
	AnyURI             = mk("anyURI")
	Base64Binary       = mk("base64Binary")
	HexBinary          = mk("hexBinary")
	Language           = mk("language")
	Token              = mk("token")
	NMToken            = mk("NMTOKEN")
)

func mk(local string) owl.IRI {
	return owl.MustParseIRI(vocabulary.XSDNamespace + local).WithPrefix("xsd")
}

// Datatype returns the datatype entity for one of the table's IRIs.
func Datatype(iri owl.IRI) owl.Entity {
	return owl.NewDatatype(iri)
}
