package schemadrift

// Field describes one column of a data source.
type Field struct {
	Name string `json:"name"`
	// DataType is the canonical generalized type.
	DataType DataType `json:"dataType"`
	// ActualType is the underlying raw type label before generalization.
	// It is diagnostic only and never used in comparison logic.
	ActualType string `json:"actualType"`
	// Nullable is true when any value in the full column is null/missing.
	Nullable bool `json:"nullable"`
	// DataValues lists unique stringified sample values in first-seen
	// order, or holds the single TooManyValues sentinel.
	DataValues []string `json:"dataValues"`
}

// Schema is the ordered field list describing one data source's structure
// at a point in time. It is immutable once constructed: comparison and
// validation read it but never mutate it.
type Schema struct {
	Columns []Field `json:"columns"`
}

// FieldByName returns the descriptor for name, if present.
func (s Schema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Columns {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
