package schemadrift

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/schemadrift/schemadrift/source"
)

// Record is one field-name-to-value mapping being checked against a
// schema.
type Record map[string]source.Value

// Verdict is the outcome of validating one record. Violations accumulate
// in a deterministic order; Valid is true iff there are none.
type Verdict struct {
	Valid      bool     `json:"is_valid"`
	Violations []string `json:"violations"`
}

// Validate checks one record against the schema. It never short-circuits:
// every missing column, extra column, and per-field type mismatch is
// reported. Neither the record nor the schema is mutated.
func Validate(rec Record, s Schema) Verdict {
	var violations []string

	for _, f := range s.Columns {
		if _, ok := rec[f.Name]; !ok {
			violations = append(violations, fmt.Sprintf("Missing column '%s' in record", f.Name))
		}
	}

	var extras []string
	for name := range rec {
		if _, ok := s.FieldByName(name); !ok {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		violations = append(violations, fmt.Sprintf("Extra column '%s' not defined in schema", name))
	}

	for _, f := range s.Columns {
		v, ok := rec[f.Name]
		if !ok {
			continue
		}
		if isNullValue(v) {
			if !f.Nullable {
				violations = append(violations,
					fmt.Sprintf("Column '%s' is not nullable but contains a null/empty value", f.Name))
			}
			continue
		}
		if !kindMatches(f.DataType, v) {
			violations = append(violations,
				fmt.Sprintf("Column '%s' has invalid type. Expected '%s', got '%s' for value '%s'",
					f.Name, f.DataType, v.Kind, v.String()))
		}
	}

	return Verdict{Valid: len(violations) == 0, Violations: violations}
}

// isNullValue treats an all-whitespace string the same as a missing
// value, matching how delimited sources surface empty cells.
func isNullValue(v source.Value) bool {
	if v.IsNull() {
		return true
	}
	return v.Kind == source.KindString && strings.TrimSpace(v.S) == ""
}

func kindMatches(dt DataType, v source.Value) bool {
	switch dt {
	case TypeString:
		// Timestamps were textual in the source; a date-like cell in a
		// string column is still a string value.
		return v.Kind == source.KindString || v.Kind == source.KindTime
	case TypeInteger:
		if v.Kind == source.KindInt {
			return true
		}
		return v.Kind == source.KindFloat && v.F == math.Trunc(v.F)
	case TypeNumber:
		return v.Kind == source.KindInt || v.Kind == source.KindFloat
	case TypeBoolean:
		if v.Kind == source.KindBool {
			return true
		}
		if v.Kind == source.KindString {
			lower := strings.ToLower(v.S)
			return lower == "true" || lower == "false"
		}
		return false
	case TypeBytes:
		return v.Kind == source.KindBytes
	}
	// category, datetime, and raw-label fallbacks accept anything
	// textual, byte-like, or timestamp-like.
	return v.Kind == source.KindString || v.Kind == source.KindBytes || v.Kind == source.KindTime
}
