package schemadrift_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	schemadrift "github.com/schemadrift/schemadrift"
)

func field(name string, dt schemadrift.DataType, nullable bool, values ...string) schemadrift.Field {
	return schemadrift.Field{Name: name, DataType: dt, ActualType: "object", Nullable: nullable, DataValues: values}
}

func TestCompare_IdenticalSchemas(t *testing.T) {
	s := schemadrift.Schema{Columns: []schemadrift.Field{
		field("a", schemadrift.TypeInteger, false, "1", "2"),
		field("b", schemadrift.TypeString, true, "x"),
	}}
	diff, differs := schemadrift.Compare(s, s)
	require.False(t, differs)
	require.Empty(t, diff)
}

func TestCompare_SingleTypeChange(t *testing.T) {
	a := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeInteger, false)}}
	b := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeNumber, false)}}

	diff, differs := schemadrift.Compare(a, b)
	require.True(t, differs)
	require.Len(t, diff, 1)

	entry, ok := diff["x"]
	require.True(t, ok)
	require.Empty(t, entry.Status)
	require.Len(t, entry.Changes, 1)
	change := entry.Changes["canonicalType"]
	require.Equal(t, schemadrift.TypeInteger, change.Before)
	require.Equal(t, schemadrift.TypeNumber, change.After)
}

func TestCompare_PresenceDiffs(t *testing.T) {
	a := schemadrift.Schema{Columns: []schemadrift.Field{
		field("shared", schemadrift.TypeString, false),
		field("gone", schemadrift.TypeInteger, false),
	}}
	b := schemadrift.Schema{Columns: []schemadrift.Field{
		field("shared", schemadrift.TypeString, false),
		field("added", schemadrift.TypeBoolean, true),
	}}

	diff, differs := schemadrift.Compare(a, b)
	require.True(t, differs)
	require.Len(t, diff, 2)

	require.Equal(t, schemadrift.OnlyInFirst, diff["gone"].Status)
	require.NotNil(t, diff["gone"].Field)
	require.Equal(t, "gone", diff["gone"].Field.Name)

	require.Equal(t, schemadrift.OnlyInSecond, diff["added"].Status)
	require.NotNil(t, diff["added"].Field)
	require.Equal(t, schemadrift.TypeBoolean, diff["added"].Field.DataType)
}

func TestCompare_DetectionIsSymmetric(t *testing.T) {
	a := schemadrift.Schema{Columns: []schemadrift.Field{
		field("x", schemadrift.TypeInteger, false),
		field("only_a", schemadrift.TypeString, false),
	}}
	b := schemadrift.Schema{Columns: []schemadrift.Field{
		field("x", schemadrift.TypeNumber, false),
		field("only_b", schemadrift.TypeString, false),
	}}

	ab, _ := schemadrift.Compare(a, b)
	ba, _ := schemadrift.Compare(b, a)

	require.Len(t, ba, len(ab))
	for name := range ab {
		require.Contains(t, ba, name)
	}
	require.Equal(t, schemadrift.OnlyInFirst, ab["only_a"].Status)
	require.Equal(t, schemadrift.OnlyInSecond, ba["only_a"].Status)
	require.Equal(t, schemadrift.OnlyInSecond, ab["only_b"].Status)
	require.Equal(t, schemadrift.OnlyInFirst, ba["only_b"].Status)
}

func TestCompare_SampleValuesCompareAsSortedSets(t *testing.T) {
	// Same values, different observation order and duplicates: no diff.
	a := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeString, false, "b", "a", "b")}}
	b := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeString, false, "a", "b")}}
	diff, differs := schemadrift.Compare(a, b)
	require.False(t, differs)
	require.Empty(t, diff)

	// Genuinely different value sets: the sorted sequences are attached.
	c := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeString, false, "c", "a")}}
	diff, differs = schemadrift.Compare(a, c)
	require.True(t, differs)
	change := diff["x"].Changes["sampleValues"]
	require.Equal(t, []string{"a", "b"}, change.Before)
	require.Equal(t, []string{"a", "c"}, change.After)
}

func TestCompare_NullabilityChange(t *testing.T) {
	a := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeString, false)}}
	b := schemadrift.Schema{Columns: []schemadrift.Field{field("x", schemadrift.TypeString, true)}}
	diff, differs := schemadrift.Compare(a, b)
	require.True(t, differs)
	change := diff["x"].Changes["nullable"]
	require.Equal(t, false, change.Before)
	require.Equal(t, true, change.After)
}
