package core

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

// CellText returns the cleaned text of a cell. Rows or columns out of
// range, and empty cells, yield "".
func CellText(s workbook.Sheet, row, col int) string {
	if col < 0 {
		return ""
	}
	cells := s.Row(row)
	if col >= len(cells) {
		return ""
	}
	return CleanCell(cells[col])
}

// RowReader reads the cells of a single sheet row.
type RowReader struct {
	sheet workbook.Sheet
	row   int
}

// NewRowReader binds a reader to one row of s.
func NewRowReader(s workbook.Sheet, row int) RowReader {
	return RowReader{sheet: s, row: row}
}

// Read returns the cell at col, passed through coerce when it is non-nil
// and the cell is not empty. A coercer failure never escapes: the returned
// value keeps the raw text and records the failure.
func (r RowReader) Read(col int, coerce Coercer) FieldValue {
	raw := CellText(r.sheet, r.row, col)
	v := FieldValue{Raw: raw, Value: raw}
	if coerce == nil || raw == "" {
		return v
	}

	coerced, err := safeCoerce(coerce, raw)
	if err != nil {
		v.CoerceErr = err.Error()
		return v
	}
	v.Value = coerced
	return v
}

// safeCoerce runs coerce, turning a panic into an error.
func safeCoerce(coerce Coercer, raw string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("coercer panic: %v", p)
		}
	}()
	return coerce(raw)
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Trims whitespace
// - Removes an Excel formula wrapper (="...")
// - Removes surrounding double quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}

	return strings.TrimSpace(s)
}
