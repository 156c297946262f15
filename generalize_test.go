package schemadrift_test

import (
	"testing"

	schemadrift "github.com/schemadrift/schemadrift"
	"github.com/schemadrift/schemadrift/source"
)

func TestGeneralize_RulePriority(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		samples []source.Value
		want    schemadrift.DataType
	}{
		{"bool", "bool", nil, schemadrift.TypeBoolean},
		{"int", "int64", nil, schemadrift.TypeInteger},
		{"nullable int", "Int64", nil, schemadrift.TypeInteger},
		{"narrow int", "int32", nil, schemadrift.TypeInteger},
		{"float", "float64", nil, schemadrift.TypeNumber},
		{"narrow float", "float32", nil, schemadrift.TypeNumber},
		{"object no bytes", "object", []source.Value{source.Str("a")}, schemadrift.TypeString},
		{"object with bytes", "object", []source.Value{source.Str("a"), source.Bytes([]byte{1})}, schemadrift.TypeBytes},
		{"mixed", "mixed", []source.Value{source.Str("a"), source.Int(1)}, schemadrift.TypeString},
		{"category", "category", nil, schemadrift.TypeString},
		{"array", "array", nil, schemadrift.TypeUnknownArray},
		{"empty column", "empty", nil, schemadrift.TypeNull},
		{"datetime passthrough", "datetime", nil, schemadrift.TypeDatetime},
		{"unknown passthrough", "period", nil, schemadrift.DataType("period")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := schemadrift.Generalize(tc.raw, tc.samples); got != tc.want {
				t.Fatalf("Generalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestGeneralize_NeverFails(t *testing.T) {
	// Anything unrecognized falls through unchanged, including labels
	// that merely share a prefix with a numeric type name.
	for _, raw := range []string{"timedelta64", "interval", "integerish", "floatish", ""} {
		if got := schemadrift.Generalize(raw, nil); got != schemadrift.DataType(raw) {
			t.Fatalf("Generalize(%q) = %q, want passthrough", raw, got)
		}
	}
}
