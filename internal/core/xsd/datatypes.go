// Package xsd holds the XSD datatype vocabulary and the canonicalizing value
// caster used when literal values are compared during mining.
package xsd

import "github.com/agenthands/graphite/internal/core/model"

const Namespace = "http://www.w3.org/2001/XMLSchema#"

const (
	AnyType  model.IRI = Namespace + "anyType"
	AnyURI   model.IRI = Namespace + "anyURI"
	Boolean  model.IRI = Namespace + "boolean"
	String   model.IRI = Namespace + "string"
	Normal   model.IRI = Namespace + "normalizedString"
	Token    model.IRI = Namespace + "token"
	Language model.IRI = Namespace + "language"

	Byte               model.IRI = Namespace + "byte"
	Decimal            model.IRI = Namespace + "decimal"
	Double             model.IRI = Namespace + "double"
	Float              model.IRI = Namespace + "float"
	Int                model.IRI = Namespace + "int"
	Integer            model.IRI = Namespace + "integer"
	Long               model.IRI = Namespace + "long"
	NegativeInteger    model.IRI = Namespace + "negativeInteger"
	NonNegativeInteger model.IRI = Namespace + "nonNegativeInteger"
	NonPositiveInteger model.IRI = Namespace + "nonPositiveInteger"
	PositiveInteger    model.IRI = Namespace + "positiveInteger"
	Short              model.IRI = Namespace + "short"
	UnsignedByte       model.IRI = Namespace + "unsignedByte"
	UnsignedInt        model.IRI = Namespace + "unsignedInt"
	UnsignedLong       model.IRI = Namespace + "unsignedLong"
	UnsignedShort      model.IRI = Namespace + "unsignedShort"

	Date          model.IRI = Namespace + "date"
	DateTime      model.IRI = Namespace + "dateTime"
	DateTimeStamp model.IRI = Namespace + "dateTimeStamp"

	GDay       model.IRI = Namespace + "gDay"
	GMonth     model.IRI = Namespace + "gMonth"
	GMonthDay  model.IRI = Namespace + "gMonthDay"
	GYear      model.IRI = Namespace + "gYear"
	GYearMonth model.IRI = Namespace + "gYearMonth"
)

// Datatype families. Cast dispatches on these; anything outside them passes
// through unchanged.
var (
	numeric = map[model.IRI]struct{}{
		Byte: {}, Decimal: {}, Double: {}, Float: {}, Int: {}, Integer: {},
		Long: {}, NegativeInteger: {}, NonNegativeInteger: {},
		NonPositiveInteger: {}, PositiveInteger: {}, Short: {},
		UnsignedByte: {}, UnsignedInt: {}, UnsignedLong: {}, UnsignedShort: {},
	}

	datetime = map[model.IRI]struct{}{
		Date: {}, DateTime: {}, DateTimeStamp: {},
	}

	datefrag = map[model.IRI]struct{}{
		GDay: {}, GMonth: {}, GMonthDay: {}, GYear: {}, GYearMonth: {},
	}

	stringly = map[model.IRI]struct{}{
		AnyURI: {}, Language: {}, Normal: {}, String: {}, Token: {},
	}
)

func IsNumeric(dtype model.IRI) bool {
	_, ok := numeric[dtype]
	return ok
}

func IsDateTime(dtype model.IRI) bool {
	_, ok := datetime[dtype]
	return ok
}

func IsDateFrag(dtype model.IRI) bool {
	_, ok := datefrag[dtype]
	return ok
}

func IsString(dtype model.IRI) bool {
	_, ok := stringly[dtype]
	return ok
}

// SameValueSpace reports whether two datatypes canonicalize into a directly
// comparable value space: the same datatype, or the same numeric, datetime
// or string family. Date fragments only compare within one datatype, since
// their day offsets are relative to the fragment kind.
func SameValueSpace(a, b model.IRI) bool {
	if a == b {
		return true
	}
	return (IsNumeric(a) && IsNumeric(b)) ||
		(IsDateTime(a) && IsDateTime(b)) ||
		(IsString(a) && IsString(b))
}

// DatatypeOf resolves the datatype of a literal: the explicit tag if present,
// xsd:string for plain literals carrying a language tag, xsd:anyType
// otherwise. Index construction and canonical comparison share this rule.
func DatatypeOf(l model.Literal) model.IRI {
	if l.Datatype != "" {
		return l.Datatype
	}
	if l.Lang != "" {
		return String
	}
	return AnyType
}
