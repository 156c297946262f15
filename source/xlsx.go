package source

import (
	"os"

	"github.com/xuri/excelize/v2"

	sderrors "github.com/schemadrift/schemadrift/errors"
)

// ReadSpreadsheet parses the first sheet of an xlsx/xls workbook as a
// table. The first row is the header; cell text is classified the same
// way as delimited text.
func ReadSpreadsheet(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, sderrors.Wrap(sderrors.CodeNotFound, "file not found: "+path, err)
		}
		return Table{}, sderrors.Wrap(sderrors.CodeReadError, "opening spreadsheet "+path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, sderrors.New(sderrors.CodeEmptyInput, "spreadsheet has no sheets: "+path)
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, sderrors.Wrap(sderrors.CodeReadError, "reading sheet of "+path, err)
	}
	if len(raw) == 0 {
		return Table{}, sderrors.New(sderrors.CodeEmptyInput, "file has no rows: "+path)
	}

	cols := dedupeColumns(raw[0])
	rows := make([][]Value, 0, len(raw)-1)
	for _, rec := range raw[1:] {
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
