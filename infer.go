package schemadrift

import (
	"os"
	"path/filepath"
	"strings"

	sderrors "github.com/schemadrift/schemadrift/errors"
	"github.com/schemadrift/schemadrift/source"
)

// Infer reads the data file at path and produces its schema. Sampling is
// deterministic: sample values come from the first opts.SampleRows rows,
// while raw type and nullability are determined from the full column.
func Infer(path string, opts Options) (Schema, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Schema{}, sderrors.Wrap(sderrors.CodeNotFound, "file not found: "+path, err)
		}
		return Schema{}, sderrors.Wrap(sderrors.CodeReadError, "stat "+path, err)
	}
	if info.IsDir() {
		return Schema{}, sderrors.New(sderrors.CodeIsADirectory, "path is a directory: "+path)
	}

	t, err := ReadTable(path)
	if err != nil {
		return Schema{}, err
	}
	if len(t.Rows) == 0 || len(t.Columns) == 0 {
		return Schema{}, sderrors.New(sderrors.CodeEmptyInput, "file has no rows: "+path)
	}

	sampleN := opts.SampleRows
	if sampleN > len(t.Rows) {
		sampleN = len(t.Rows)
	}

	fields := make([]Field, 0, len(t.Columns))
	for i, name := range t.Columns {
		col := t.Column(i)
		nullable := false
		for _, v := range col {
			if v.IsNull() {
				nullable = true
				break
			}
		}
		raw := rawLabel(col, nullable)

		var sample []source.Value
		for _, v := range col[:sampleN] {
			if !v.IsNull() {
				sample = append(sample, v)
			}
		}

		fields = append(fields, Field{
			Name:       name,
			DataType:   Generalize(raw, sample),
			ActualType: raw,
			Nullable:   nullable,
			DataValues: uniqueValues(sample, opts.MaxUniqueValues),
		})
	}
	return Schema{Columns: fields}, nil
}

// ReadTable dispatches on the file extension and parses the file as a
// row/column table. It is shared by inference and by record validation
// over data files.
func ReadTable(path string) (source.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return source.ReadDelimited(path, ',')
	case ".tsv":
		return source.ReadDelimited(path, '\t')
	case ".xls", ".xlsx":
		return source.ReadSpreadsheet(path)
	case ".json":
		return source.ReadJSON(path)
	}
	return source.Table{}, sderrors.New(sderrors.CodeUnsupportedFileType,
		"unsupported file type for schema inference: "+path)
}

// uniqueValues collects unique stringified values in first-seen order,
// collapsing to the overflow sentinel when the unique count exceeds cap.
func uniqueValues(sample []source.Value, limit int) []string {
	seen := make(map[string]bool, len(sample))
	out := make([]string, 0, len(sample))
	for _, v := range sample {
		s := v.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		if len(out) == limit {
			return []string{TooManyValues}
		}
		out = append(out, s)
	}
	return out
}
