package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sderrors "github.com/schemadrift/schemadrift/errors"
	"github.com/schemadrift/schemadrift/source"
)

func TestReadJSON_ListOfObjects(t *testing.T) {
	path := writeFile(t, "data.json",
		`[{"id": 1, "name": "ann"}, {"id": 2, "name": "bo", "extra": 1.5}]`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "name", "extra"}, table.Columns)
	require.Len(t, table.Rows, 2)

	require.Equal(t, source.KindInt, table.Rows[0][0].Kind)
	require.Equal(t, source.KindString, table.Rows[0][1].Kind)
	require.True(t, table.Rows[0][2].IsNull()) // extra missing in record 1
	require.Equal(t, source.KindFloat, table.Rows[1][2].Kind)
}

func TestReadJSON_KeyOrderPreserved(t *testing.T) {
	path := writeFile(t, "data.json", `{"zeta": 1, "alpha": 2, "mid": 3}`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha", "mid"}, table.Columns)
	require.Len(t, table.Rows, 1)
}

func TestReadJSON_ScalarKinds(t *testing.T) {
	path := writeFile(t, "data.json",
		`{"n": null, "b": false, "i": 9, "f": 2.5, "s": "txt", "t": "2024-01-02T03:04:05Z"}`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)

	row := table.Rows[0]
	require.Equal(t, source.KindNull, row[0].Kind)
	require.Equal(t, source.KindBool, row[1].Kind)
	require.Equal(t, source.KindInt, row[2].Kind)
	require.Equal(t, source.KindFloat, row[3].Kind)
	require.Equal(t, source.KindString, row[4].Kind)
	require.Equal(t, source.KindTime, row[5].Kind)
}

func TestReadJSON_QuotedNumberStaysString(t *testing.T) {
	// Unlike CSV cells, JSON strings carry explicit quoting; "17" must
	// not be sniffed into an integer.
	path := writeFile(t, "data.json", `{"age": "17"}`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, source.KindString, table.Rows[0][0].Kind)
}

func TestReadJSON_NestedContainers(t *testing.T) {
	path := writeFile(t, "data.json", `{"tags": [1, 2], "meta": {"k": "v"}}`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)

	require.Equal(t, source.KindArray, table.Rows[0][0].Kind)
	require.Equal(t, "[1,2]", table.Rows[0][0].String())
	require.Equal(t, source.KindString, table.Rows[0][1].Kind)
}

func TestReadJSON_EmptyArray(t *testing.T) {
	path := writeFile(t, "data.json", `[]`)
	table, err := source.ReadJSON(path)
	require.NoError(t, err)
	require.Empty(t, table.Rows)
	require.Empty(t, table.Columns)
}

func TestReadJSON_Failures(t *testing.T) {
	_, err := source.ReadJSON(writeFile(t, "scalar.json", `"just a string"`))
	require.Equal(t, sderrors.CodeUnsupportedStructure, sderrors.CodeOf(err))

	_, err = source.ReadJSON(writeFile(t, "mixed.json", `[{"a": 1}, 2]`))
	require.Equal(t, sderrors.CodeUnsupportedStructure, sderrors.CodeOf(err))

	_, err = source.ReadJSON(writeFile(t, "bad.json", `{"a":`))
	require.Equal(t, sderrors.CodeMalformedInput, sderrors.CodeOf(err))

	_, err = source.ReadJSON(writeFile(t, "empty.json", ``))
	require.Equal(t, sderrors.CodeEmptyInput, sderrors.CodeOf(err))
}
