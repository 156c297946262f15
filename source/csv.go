package source

import (
	"encoding/csv"
	"io"
	"os"

	sderrors "github.com/schemadrift/schemadrift/errors"
)

// ReadDelimited parses a delimited text file (CSV, TSV) as a table. The
// first row is the header; short data rows are padded with nulls and long
// rows are truncated to the header width.
func ReadDelimited(path string, comma rune) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, sderrors.Wrap(sderrors.CodeNotFound, "file not found: "+path, err)
		}
		return Table{}, sderrors.Wrap(sderrors.CodeReadError, "opening "+path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return Table{}, sderrors.New(sderrors.CodeEmptyInput, "file has no rows: "+path)
	}
	if err != nil {
		return Table{}, sderrors.Wrap(sderrors.CodeMalformedInput, "reading header of "+path, err)
	}
	cols := dedupeColumns(header)

	var rows [][]Value
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, sderrors.Wrap(sderrors.CodeMalformedInput, "reading "+path, err)
		}
		row := make([]Value, len(cols))
		for i := range cols {
			if i < len(rec) {
				row[i] = classifyCell(rec[i])
			} else {
				row[i] = Null()
			}
		}
		rows = append(rows, row)
	}
	return Table{Columns: cols, Rows: rows}, nil
}
