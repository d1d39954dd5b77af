package core

import (
	"github.com/JonMunkholm/pricelist/internal/workbook"
)

const testSheet = "Service Pricing"

var testHeading = []string{
	"SIN(s) Proposed",
	"Service Proposed (e.g. Labor Category or Job Title/Task)",
	"Minimum Education / Certification Level",
	"Minimum Years of Experience (cannot be a range)",
	"Unit of Issue (e.g. Hour, Task, Sq Ft)",
	"Price Offered to GSA (including IFF)",
}

var canonicalRow = []string{"123-1", "Consultant II", "Professional Certification", "2", "hour", "$90.68"}

// testSchema mirrors the Region 10 price list with a $15.00 floor.
func testSchema() *Schema {
	return &Schema{
		Key:       "region_10",
		Title:     "Region 10",
		SheetName: testSheet,
		Fields: []FieldSpec{
			{Name: "sin", Title: testHeading[0], Required: true},
			{Name: "labor_category", Title: testHeading[1], Required: true},
			{Name: "education_level", Title: testHeading[2], Required: true, Coercer: ExtractMinEducation},
			{Name: "min_years_experience", Title: testHeading[3], Type: FieldInteger, Required: true, Coercer: ParseInteger, Min: "0"},
			{
				Name: "unit_of_issue", Title: testHeading[4], Required: true, Coercer: ExtractHourUnitOfIssue,
				Choices: []string{UnitHour}, ChoicesMessage: `Value must be "Hour" or "Hourly".`,
			},
			{
				Name: "price_including_iff", Title: testHeading[5], Type: FieldDecimal, Required: true,
				Coercer: StripNonNumeric, Min: "15.00", MinMessage: "Price must be at least $%s.",
			},
		},
		EndOfData:  []string{"sin", "price_including_iff"},
		PriceField: "price_including_iff",
	}
}

// testBook builds a one-sheet workbook with the heading row followed by rows.
func testBook(rows ...[]string) *workbook.Book {
	all := append([][]string{testHeading}, rows...)
	return workbook.NewBook(workbook.NewGrid(testSheet, all))
}

// row copies canonicalRow with the given column overrides.
func row(overrides map[int]string) []string {
	r := append([]string(nil), canonicalRow...)
	for i, v := range overrides {
		r[i] = v
	}
	return r
}

// spySheet records every row index read through it.
type spySheet struct {
	workbook.Sheet
	reads []int
}

func (s *spySheet) Row(i int) []string {
	s.reads = append(s.reads, i)
	return s.Sheet.Row(i)
}

func (s *spySheet) maxRead() int {
	m := -1
	for _, r := range s.reads {
		if r > m {
			m = r
		}
	}
	return m
}

// spyBook serves spy sheets and records sheet lookups.
type spyBook struct {
	sheets map[string]*spySheet
}

func newSpyBook(sheets ...workbook.Sheet) *spyBook {
	b := &spyBook{sheets: make(map[string]*spySheet)}
	for _, s := range sheets {
		b.sheets[s.Name()] = &spySheet{Sheet: s}
	}
	return b
}

func (b *spyBook) SheetNames() []string {
	var names []string
	for n := range b.sheets {
		names = append(names, n)
	}
	return names
}

func (b *spyBook) Sheet(name string) (workbook.Sheet, bool) {
	s, ok := b.sheets[name]
	if !ok {
		return nil, false
	}
	return s, true
}
