package core

import (
	"strings"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

// headingRow is the row holding column titles; data starts right after it.
const headingRow = 0

// Glean scans data rows of s and returns one RawRow per labor category.
//
// Price lists carry no row count, so the end of data is found by looking at
// the schema's end-of-data fields: the first row where all of them are
// blank ends the scan, and nothing after it is read. The scan also stops at
// the last row of the sheet, so a sheet without a blank trailing row
// cannot run past its populated region.
func Glean(s workbook.Sheet, schema *Schema, cols ColumnIndexMap) []RawRow {
	var rows []RawRow

	for rownum := headingRow + 1; rownum < s.NumRows(); rownum++ {
		reader := NewRowReader(s, rownum)

		if endOfData(reader, schema, cols) {
			break
		}

		row := RawRow{
			Line:   rownum + 1,
			Fields: make(map[string]FieldValue, len(schema.Fields)),
		}
		for _, f := range schema.Fields {
			row.Fields[f.Name] = reader.Read(cols[f.Name], f.Coercer)
		}
		rows = append(rows, row)
	}

	return rows
}

// endOfData reports whether every end-of-data field of the row is blank.
func endOfData(reader RowReader, schema *Schema, cols ColumnIndexMap) bool {
	for _, name := range schema.EndOfData {
		f, _ := schema.Field(name)
		v := reader.Read(cols[name], f.Coercer)
		if strings.TrimSpace(v.Value) != "" {
			return false
		}
	}
	return true
}
