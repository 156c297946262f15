package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"

	sderrors "github.com/schemadrift/schemadrift/errors"
)

// ReadJSON parses a JSON file as a table. A top-level array of objects
// yields one row per object with the column set unioned across all rows
// in first-seen key order; a single top-level object yields a one-row
// table. Any other top-level value is an unsupported structure.
//
// Decoding walks the token stream so that object key order survives; a
// plain map decode would lose the source column order.
func ReadJSON(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, sderrors.Wrap(sderrors.CodeNotFound, "file not found: "+path, err)
		}
		return Table{}, sderrors.Wrap(sderrors.CodeReadError, "reading "+path, err)
	}

	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Table{}, sderrors.New(sderrors.CodeEmptyInput, "file has no rows: "+path)
		}
		return Table{}, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}

	switch d := tok.(type) {
	case j.Delim:
		switch d {
		case '[':
			return readObjectRows(dec, path)
		case '{':
			keys, vals, err := readObjectBody(dec, path)
			if err != nil {
				return Table{}, err
			}
			row := make([]Value, len(keys))
			for i, k := range keys {
				row[i] = vals[k]
			}
			return Table{Columns: keys, Rows: [][]Value{row}}, nil
		}
	}
	return Table{}, sderrors.New(sderrors.CodeUnsupportedStructure,
		"unsupported JSON structure in "+path+": expected a list of objects or a single object")
}

// readObjectRows consumes array elements after the opening '[' and unions
// their keys into a single column list.
func readObjectRows(dec *j.Decoder, path string) (Table, error) {
	var (
		cols    []string
		seen    = map[string]bool{}
		keysets [][]string
		valsets []map[string]Value
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Table{}, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
		}
		if d, ok := tok.(j.Delim); !ok || d != '{' {
			return Table{}, sderrors.New(sderrors.CodeUnsupportedStructure,
				"unsupported JSON structure in "+path+": expected a list of objects or a single object")
		}
		keys, vals, err := readObjectBody(dec, path)
		if err != nil {
			return Table{}, err
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
		keysets = append(keysets, keys)
		valsets = append(valsets, vals)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return Table{}, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}

	rows := make([][]Value, len(valsets))
	for r, vals := range valsets {
		row := make([]Value, len(cols))
		for c, name := range cols {
			if v, ok := vals[name]; ok {
				row[c] = v
			} else {
				row[c] = Null()
			}
		}
		rows[r] = row
	}
	return Table{Columns: cols, Rows: rows}, nil
}

// readObjectBody consumes key/value pairs after the opening '{' and
// returns keys in source order.
func readObjectBody(dec *j.Decoder, path string) ([]string, map[string]Value, error) {
	var keys []string
	vals := map[string]Value{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, sderrors.Newf(sderrors.CodeMalformedInput, "invalid JSON in %s: expected object key, got %v", path, tok)
		}
		v, err := readValue(dec, path)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := vals[key]; !dup {
			keys = append(keys, key)
		}
		vals[key] = v
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}
	return keys, vals, nil
}

// readValue consumes one JSON value and tags it. Scalars map directly to
// kinds; RFC3339-shaped strings become timestamps; nested arrays keep
// their JSON text under the array kind and nested objects are flattened
// to their JSON text as strings.
func readValue(dec *j.Decoder, path string) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}
	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		if t, ok := sniffTime(v); ok {
			return Time(t), nil
		}
		return Str(v), nil
	case j.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Value{}, sderrors.Newf(sderrors.CodeMalformedInput, "invalid number %q in %s", v.String(), path)
		}
		return Float(f), nil
	case j.Delim:
		switch v {
		case '[':
			raw, err := consumeContainer(dec, path, ']')
			if err != nil {
				return Value{}, err
			}
			return Array(raw), nil
		case '{':
			raw, err := consumeContainer(dec, path, '}')
			if err != nil {
				return Value{}, err
			}
			return Str(raw), nil
		}
	}
	return Value{}, sderrors.Newf(sderrors.CodeMalformedInput, "invalid JSON in %s: unexpected token %v", path, tok)
}

// consumeContainer drains a nested container whose opening delimiter has
// already been read and re-renders it as compact JSON text.
func consumeContainer(dec *j.Decoder, path string, closing byte) (string, error) {
	els, err := drain(dec, path, closing)
	if err != nil {
		return "", err
	}
	b, err := j.Marshal(els)
	if err != nil {
		return "", sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}
	return string(b), nil
}

func drain(dec *j.Decoder, path string, closing byte) (any, error) {
	if closing == '}' {
		m := map[string]any{}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
			}
			key := fmt.Sprintf("%v", tok)
			v, err := drainValue(dec, path)
			if err != nil {
				return nil, err
			}
			m[key] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
		}
		return m, nil
	}
	var a []any
	for dec.More() {
		v, err := drainValue(dec, path)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}
	if a == nil {
		a = []any{}
	}
	return a, nil
}

func drainValue(dec *j.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, sderrors.Wrap(sderrors.CodeMalformedInput, "invalid JSON in "+path, err)
	}
	if d, ok := tok.(j.Delim); ok {
		switch d {
		case '{':
			return drain(dec, path, '}')
		case '[':
			return drain(dec, path, ']')
		}
		return nil, sderrors.Newf(sderrors.CodeMalformedInput, "invalid JSON in %s: unexpected %v", path, d)
	}
	return tok, nil
}
