package workbook

import (
	"bytes"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// ReadXLS loads every sheet of a legacy BIFF (.xls) document.
func ReadXLS(r io.Reader) (book *Book, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	// The BIFF decoder panics on some malformed files.
	defer func() {
		if p := recover(); p != nil {
			book, err = nil, fmt.Errorf("open workbook: malformed xls: %v", p)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	book = NewBook()
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		book.Add(NewGrid(sheet.Name, xlsRows(sheet)))
	}
	return book, nil
}

// xlsRows copies a sheet into row-major cell text. Missing rows become
// empty rows so that row indexes match the spreadsheet.
func xlsRows(sheet *xls.WorkSheet) [][]string {
	if sheet.MaxRow == 0 && sheet.Row(0) == nil {
		return nil
	}

	rows := make([][]string, int(sheet.MaxRow)+1)
	for i := range rows {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		last := row.LastCol()
		if last <= 0 {
			continue
		}
		cells := make([]string, last)
		for c := row.FirstCol(); c < last; c++ {
			cells[c] = row.Col(c)
		}
		rows[i] = cells
	}
	return rows
}
