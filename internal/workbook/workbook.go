// Package workbook provides the tabular input boundary for price list ingestion.
//
// A [Workbook] is a set of named sheets; a [Sheet] is an ordered sequence of
// rows of cell text. Rows may be shorter than the heading row: callers must
// treat cells past the end of a row as empty.
//
// Workbooks are read fully into memory. [ReadExcel] handles .xlsx files,
// [ReadXLS] legacy .xls files, [ReadCSV] comma-separated exports, and
// [Open] picks one of them from the file name.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Open for file types it cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Sheet is a single named grid of cell text.
type Sheet interface {
	Name() string
	NumRows() int
	// Row returns the cells of row i (zero-based), or nil when i is out of range.
	Row(i int) []string
}

// Workbook exposes sheets by name.
type Workbook interface {
	SheetNames() []string
	Sheet(name string) (Sheet, bool)
}

// Grid is an in-memory Sheet.
type Grid struct {
	name string
	rows [][]string
}

// NewGrid creates a sheet named name holding rows. The slice is not copied.
func NewGrid(name string, rows [][]string) *Grid {
	return &Grid{name: name, rows: rows}
}

func (g *Grid) Name() string { return g.name }

func (g *Grid) NumRows() int { return len(g.rows) }

func (g *Grid) Row(i int) []string {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Book is an in-memory Workbook that remembers sheet order.
type Book struct {
	order  []string
	sheets map[string]Sheet
}

// NewBook creates a workbook from sheets, in the given order.
func NewBook(sheets ...Sheet) *Book {
	b := &Book{sheets: make(map[string]Sheet, len(sheets))}
	for _, s := range sheets {
		b.Add(s)
	}
	return b
}

// Add appends a sheet. A sheet with the same name replaces the earlier one
// but keeps its position.
func (b *Book) Add(s Sheet) {
	if _, exists := b.sheets[s.Name()]; !exists {
		b.order = append(b.order, s.Name())
	}
	b.sheets[s.Name()] = s
}

func (b *Book) SheetNames() []string {
	names := make([]string, len(b.order))
	copy(names, b.order)
	return names
}

func (b *Book) Sheet(name string) (Sheet, bool) {
	s, ok := b.sheets[name]
	return s, ok
}

// Open reads a workbook from r, choosing the reader from the extension of
// fileName. CSV files hold a single sheet, which is given csvSheetName.
func Open(fileName string, r io.Reader, csvSheetName string) (Workbook, error) {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".xlsx", ".xlsm":
		return ReadExcel(r)
	case ".xls":
		return ReadXLS(r)
	case ".csv":
		return ReadCSV(r, csvSheetName)
	default:
		return nil, fmt.Errorf("%w: %q (use .xls, .xlsx or .csv)", ErrUnsupportedFormat, ext)
	}
}
