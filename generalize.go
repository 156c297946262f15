package schemadrift

import (
	"strings"

	"github.com/schemadrift/schemadrift/source"
)

// Raw type labels produced by column classification (see rawLabel). The
// nullable-integer label mirrors the distinct spelling such columns carry
// in dataframe-style tooling.
const (
	rawBool        = "bool"
	rawInt         = "int64"
	rawNullableInt = "Int64"
	rawFloat       = "float64"
	rawObject      = "object"
	rawDatetime    = "datetime"
	rawBytes       = "bytes"
	rawMixed       = "mixed"
	rawEmpty       = "empty"
	rawArray       = "array"
)

// Generalize maps a raw type label plus the non-null sample values to
// exactly one canonical type. It is total: unrecognized labels fall
// through unchanged rather than failing.
func Generalize(raw string, samples []source.Value) DataType {
	switch {
	case raw == rawBool:
		return TypeBoolean
	case isIntegerLabel(raw):
		return TypeInteger
	case isNumericLabel(raw):
		return TypeNumber
	case raw == "string" || raw == rawObject || raw == "category" || raw == rawMixed:
		if hasByteSamples(samples) {
			return TypeBytes
		}
		return TypeString
	case strings.HasPrefix(raw, rawArray):
		return TypeUnknownArray
	case raw == rawEmpty:
		return TypeNull
	}
	return DataType(raw)
}

// The label sets are closed: anything outside them falls through to the
// passthrough rule, so a label like "interval" is never mistaken for a
// numeric type.
func isIntegerLabel(raw string) bool {
	switch raw {
	case "int8", "int16", "int32", rawInt,
		"Int8", "Int16", "Int32", rawNullableInt,
		"uint8", "uint16", "uint32", "uint64":
		return true
	}
	return false
}

func isNumericLabel(raw string) bool {
	switch raw {
	case "float16", "float32", rawFloat, "complex64", "complex128":
		return true
	}
	return false
}

func hasByteSamples(samples []source.Value) bool {
	for _, v := range samples {
		if v.Kind == source.KindBytes {
			return true
		}
	}
	return false
}

// rawLabel derives the raw type label for a column from the kinds of its
// non-null values. hasNulls distinguishes the nullable-integer spelling.
func rawLabel(col []source.Value, hasNulls bool) string {
	var kinds [8]bool
	n := 0
	for _, v := range col {
		if v.Kind == source.KindNull {
			continue
		}
		if !kinds[v.Kind] {
			kinds[v.Kind] = true
			n++
		}
	}
	if n == 0 {
		return rawEmpty
	}
	if n == 2 && kinds[source.KindInt] && kinds[source.KindFloat] {
		// Mixed int/float columns are plain floating point.
		return rawFloat
	}
	if n > 1 {
		return rawMixed
	}
	switch {
	case kinds[source.KindBool]:
		return rawBool
	case kinds[source.KindInt]:
		if hasNulls {
			return rawNullableInt
		}
		return rawInt
	case kinds[source.KindFloat]:
		return rawFloat
	case kinds[source.KindTime]:
		return rawDatetime
	case kinds[source.KindBytes]:
		return rawBytes
	case kinds[source.KindArray]:
		return rawArray
	}
	return rawObject
}
