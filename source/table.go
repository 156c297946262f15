package source

import "strconv"

// Table is an in-memory row/column view of one data file. Columns keeps
// source order; every row has exactly len(Columns) values, padded with
// nulls where the source row was short.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// Column returns the full value sequence for column index i.
func (t Table) Column(i int) []Value {
	out := make([]Value, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}

// Records converts the table into one name→value map per row. Columns
// absent from a given source record (JSON union columns) appear as null.
func (t Table) Records() []map[string]Value {
	recs := make([]map[string]Value, len(t.Rows))
	for r, row := range t.Rows {
		m := make(map[string]Value, len(t.Columns))
		for c, name := range t.Columns {
			m[name] = row[c]
		}
		recs[r] = m
	}
	return recs
}

// dedupeColumns makes duplicate header names unique by suffixing ".1",
// ".2", ... to repeats, preserving source order.
func dedupeColumns(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		n := seen[name]
		seen[name] = n + 1
		if n == 0 {
			out[i] = name
			continue
		}
		out[i] = name + "." + strconv.Itoa(n)
	}
	return out
}
