// Package source reads tabular data files (delimited text, spreadsheets,
// JSON) into an in-memory table of tagged values. Every cell is classified
// exactly once at ingestion time into a closed set of kinds; all downstream
// generalization and validation logic dispatches on the tag.
package source

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// Kind tags a single ingested value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindTime
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "str"
	case KindBytes:
		return "bytes"
	case KindTime:
		return "datetime"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is one tagged cell. Only the payload field matching Kind is set.
type Value struct {
	Kind Kind

	B   bool
	I   int64
	F   float64
	S   string
	Raw []byte
	T   time.Time
}

func Null() Value            { return Value{Kind: KindNull} }
func Bool(b bool) Value      { return Value{Kind: KindBool, B: b} }
func Int(i int64) Value      { return Value{Kind: KindInt, I: i} }
func Float(f float64) Value  { return Value{Kind: KindFloat, F: f} }
func Str(s string) Value     { return Value{Kind: KindString, S: s} }
func Bytes(b []byte) Value   { return Value{Kind: KindBytes, Raw: b} }
func Time(t time.Time) Value { return Value{Kind: KindTime, T: t} }
func Array(js string) Value  { return Value{Kind: KindArray, S: js} }

func (v Value) IsNull() bool { return v.Kind == KindNull }

// String renders the value in its canonical textual form, as used for
// schema sample values and violation messages.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.B)
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case KindString, KindArray:
		return v.S
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.Raw)
	case KindTime:
		return v.T.Format(time.RFC3339)
	}
	return ""
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func sniffTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// classifyCell tags a textual cell from a delimited or spreadsheet source.
// An empty cell is null; quoting carries no type information in these
// formats, so numeric and boolean literals are sniffed from the text.
func classifyCell(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Null()
	}
	if strings.EqualFold(s, "true") {
		return Bool(true)
	}
	if strings.EqualFold(s, "false") {
		return Bool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	if t, ok := sniffTime(s); ok {
		return Time(t)
	}
	return Str(cell)
}
