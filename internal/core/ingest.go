package core

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

// ErrSheetNotFound is matched by errors.Is for any SheetNotFoundError.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetNotFoundError reports a workbook without the requested sheet.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("There is no sheet in the workbook called %q.", e.Name)
}

func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrSheetNotFound
}

// GleanBook locates the price list sheet in book, maps its heading row and
// gleans its data rows. An empty sheetName selects the schema's default.
// Sheet and column problems fail the whole call before any data row is read.
func GleanBook(book workbook.Workbook, schema *Schema, sheetName string) ([]RawRow, error) {
	if sheetName == "" {
		sheetName = schema.SheetName
	}

	sheet, ok := book.Sheet(sheetName)
	if !ok {
		return nil, &SheetNotFoundError{Name: sheetName, Available: book.SheetNames()}
	}

	heading := sheet.Row(headingRow)
	cols, err := ResolveColumns(heading, schema.Fields)
	if err != nil {
		return nil, err
	}

	return Glean(sheet, schema, cols), nil
}

// Ingest runs the whole pipeline over book and returns the classified
// price list. Two runs over the same workbook give identical results.
func Ingest(book workbook.Workbook, schema *Schema, sheetName string) (*PriceList, error) {
	rows, err := GleanBook(book, schema, sheetName)
	if err != nil {
		return nil, err
	}
	return NewPriceList(schema, rows), nil
}
