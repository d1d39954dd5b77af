package core

import (
	"testing"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

func gleanSheet(t *testing.T, s workbook.Sheet) []RawRow {
	t.Helper()
	schema := testSchema()
	cols, err := ResolveColumns(s.Row(0), schema.Fields)
	if err != nil {
		t.Fatalf("ResolveColumns() error = %v", err)
	}
	return Glean(s, schema, cols)
}

func TestGlean_StopsAtSentinelRow(t *testing.T) {
	grid := workbook.NewGrid(testSheet, [][]string{
		testHeading,
		canonicalRow,
		row(map[int]string{0: "123-2"}),
		{"", "Notes", "", "", "", ""},
		row(map[int]string{0: "999-9"}),
	})
	spy := &spySheet{Sheet: grid}

	rows := gleanSheet(t, spy)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("Lines = %d, %d; want 2, 3", rows[0].Line, rows[1].Line)
	}
	if got := spy.maxRead(); got != 3 {
		t.Errorf("highest row read = %d, want 3 (nothing after the sentinel)", got)
	}
}

func TestGlean_SentinelNeedsAllFieldsBlank(t *testing.T) {
	rows := gleanSheet(t, workbook.NewGrid(testSheet, [][]string{
		testHeading,
		row(map[int]string{0: ""}),
		row(map[int]string{5: ""}),
		{"", "", "", "", "", "   "},
		canonicalRow,
	}))

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Fields["sin"].Value != "" || rows[1].Fields["price_including_iff"].Value != "" {
		t.Errorf("rows with one blank sentinel field should still be gleaned: %+v", rows)
	}
}

func TestGlean_StopsAtLastRow(t *testing.T) {
	rows := gleanSheet(t, workbook.NewGrid(testSheet, [][]string{
		testHeading,
		canonicalRow,
		canonicalRow,
	}))
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
}

func TestGlean_HeadingOnly(t *testing.T) {
	if rows := gleanSheet(t, workbook.NewGrid(testSheet, [][]string{testHeading})); len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestGlean_CoercesEveryField(t *testing.T) {
	rows := gleanSheet(t, workbook.NewGrid(testSheet, [][]string{testHeading, canonicalRow}))
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	want := map[string]string{
		"sin":                  "123-1",
		"labor_category":       "Consultant II",
		"education_level":      "Professional Certification",
		"min_years_experience": "2",
		"unit_of_issue":        "Hour",
		"price_including_iff":  "90.68",
	}
	for name, v := range want {
		if got := rows[0].Fields[name].Value; got != v {
			t.Errorf("%s = %q, want %q", name, got, v)
		}
	}
}
