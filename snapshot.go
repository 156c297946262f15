package schemadrift

import (
	"os"
	"path/filepath"

	j "github.com/goccy/go-json"

	sderrors "github.com/schemadrift/schemadrift/errors"
)

// Save writes the schema to path as an indented JSON snapshot. Missing
// intermediate directories are created. The write is atomic: content goes
// to a temporary file in the destination directory first, so a failed
// save never leaves a truncated snapshot behind.
func Save(s Schema, path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return sderrors.New(sderrors.CodeIsADirectory, "snapshot path is a directory: "+path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if os.IsPermission(err) {
			return sderrors.Wrap(sderrors.CodePermissionDenied, "creating directory "+dir, err)
		}
		return sderrors.Wrap(sderrors.CodeWriteError, "creating directory "+dir, err)
	}

	b, err := j.MarshalIndent(s, "", "    ")
	if err != nil {
		return sderrors.Wrap(sderrors.CodeWriteError, "encoding snapshot", err)
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		if os.IsPermission(err) {
			return sderrors.Wrap(sderrors.CodePermissionDenied, "writing snapshot to "+path, err)
		}
		return sderrors.Wrap(sderrors.CodeWriteError, "writing snapshot to "+path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return sderrors.Wrap(sderrors.CodeWriteError, "writing snapshot to "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return sderrors.Wrap(sderrors.CodeWriteError, "writing snapshot to "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		if os.IsPermission(err) {
			return sderrors.Wrap(sderrors.CodePermissionDenied, "writing snapshot to "+path, err)
		}
		return sderrors.Wrap(sderrors.CodeWriteError, "writing snapshot to "+path, err)
	}
	return nil
}

// Load reads a snapshot file back into a Schema, preserving field order.
func Load(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Schema{}, sderrors.Wrap(sderrors.CodeNotFound, "snapshot not found: "+path, err)
		}
		return Schema{}, sderrors.Wrap(sderrors.CodeReadError, "reading snapshot "+path, err)
	}

	var s Schema
	if err := j.Unmarshal(b, &s); err != nil {
		return Schema{}, sderrors.Wrap(sderrors.CodeMalformedSnapshot, "invalid JSON in snapshot "+path, err)
	}
	if s.Columns == nil {
		return Schema{}, sderrors.New(sderrors.CodeMalformedSnapshot, "snapshot is not schema-shaped (missing columns): "+path)
	}
	seen := make(map[string]bool, len(s.Columns))
	for _, f := range s.Columns {
		if f.Name == "" {
			return Schema{}, sderrors.New(sderrors.CodeMalformedSnapshot, "snapshot has a column without a name: "+path)
		}
		if seen[f.Name] {
			return Schema{}, sderrors.New(sderrors.CodeMalformedSnapshot, "snapshot has duplicate column '"+f.Name+"': "+path)
		}
		seen[f.Name] = true
	}
	return s, nil
}
