package schemadrift

import "sort"

// DiffStatus marks a presence difference between two schemas.
type DiffStatus string

const (
	OnlyInFirst  DiffStatus = "only-in-first"
	OnlyInSecond DiffStatus = "only-in-second"
)

// Property names used as keys in DiffEntry.Changes.
const (
	PropCanonicalType = "canonicalType"
	PropNullable      = "nullable"
	PropSampleValues  = "sampleValues"
)

// PropertyChange records one differing field property.
type PropertyChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// DiffEntry describes how one field differs between two schemas: either a
// presence diff (Status plus the full descriptor) or a property diff
// (Changes keyed by property name, holding only properties that differ).
type DiffEntry struct {
	Status  DiffStatus                `json:"status,omitempty"`
	Field   *Field                    `json:"field,omitempty"`
	Changes map[string]PropertyChange `json:"changes,omitempty"`
}

// Compare diffs two schemas field by field. Fields are visited in
// lexicographic name order over the union of both schemas, independent of
// source column order, so output is deterministic. A field present in
// both schemas with no differing property never appears in the result;
// the boolean is true iff the result map is non-empty.
func Compare(a, b Schema) (map[string]DiffEntry, bool) {
	names := make([]string, 0, len(a.Columns)+len(b.Columns))
	seen := make(map[string]bool, len(a.Columns)+len(b.Columns))
	for _, f := range a.Columns {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	for _, f := range b.Columns {
		if !seen[f.Name] {
			seen[f.Name] = true
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)

	diff := make(map[string]DiffEntry)
	for _, name := range names {
		fa, inA := a.FieldByName(name)
		fb, inB := b.FieldByName(name)
		switch {
		case inA && !inB:
			f := fa
			diff[name] = DiffEntry{Status: OnlyInFirst, Field: &f}
		case !inA && inB:
			f := fb
			diff[name] = DiffEntry{Status: OnlyInSecond, Field: &f}
		default:
			if changes := compareFields(fa, fb); len(changes) > 0 {
				diff[name] = DiffEntry{Changes: changes}
			}
		}
	}
	return diff, len(diff) > 0
}

func compareFields(a, b Field) map[string]PropertyChange {
	changes := map[string]PropertyChange{}
	if a.DataType != b.DataType {
		changes[PropCanonicalType] = PropertyChange{Before: a.DataType, After: b.DataType}
	}
	if a.Nullable != b.Nullable {
		changes[PropNullable] = PropertyChange{Before: a.Nullable, After: b.Nullable}
	}
	// Sample values compare as sorted sets: sorting erases observation
	// order, and the sorted sequences are what the diff carries.
	sa, sb := sortedSet(a.DataValues), sortedSet(b.DataValues)
	if !equalStrings(sa, sb) {
		changes[PropSampleValues] = PropertyChange{Before: sa, After: sb}
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}

func sortedSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
