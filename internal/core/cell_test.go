package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/JonMunkholm/pricelist/internal/workbook"
)

func TestCellText(t *testing.T) {
	sheet := workbook.NewGrid("S", [][]string{
		{"a", "  b  ", `="00123"`},
		{"short"},
	})

	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{"plain", 0, 0, "a"},
		{"trimmed", 0, 1, "b"},
		{"formula wrapper", 0, 2, "00123"},
		{"short row", 1, 2, ""},
		{"row past end", 5, 0, ""},
		{"negative column", 0, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellText(sheet, tt.row, tt.col); got != tt.want {
				t.Errorf("CellText(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"  spaced  ", "spaced"},
		{`"quoted"`, "quoted"},
		{`="formula"`, "formula"},
		{`"`, `"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRowReader_Read(t *testing.T) {
	sheet := workbook.NewGrid("S", [][]string{{"$90.68", "2-3", ""}})
	r := NewRowReader(sheet, 0)

	t.Run("coerced", func(t *testing.T) {
		v := r.Read(0, StripNonNumeric)
		if v.Value != "90.68" || v.Raw != "$90.68" || v.Failed() {
			t.Errorf("Read = %+v", v)
		}
	})

	t.Run("coercion failure keeps raw text", func(t *testing.T) {
		v := r.Read(1, ParseInteger)
		if !v.Failed() {
			t.Fatal("expected coercion failure")
		}
		if v.Value != "2-3" {
			t.Errorf("Value = %q, want raw text", v.Value)
		}
		if v.CoerceErr != ErrNotInteger.Error() {
			t.Errorf("CoerceErr = %q", v.CoerceErr)
		}
	})

	t.Run("empty cell skips coercer", func(t *testing.T) {
		called := false
		v := r.Read(2, func(s string) (string, error) {
			called = true
			return "", errors.New("should not run")
		})
		if called {
			t.Error("coercer called for empty cell")
		}
		if v.Value != "" || v.Failed() {
			t.Errorf("Read = %+v", v)
		}
	})

	t.Run("no coercer", func(t *testing.T) {
		if v := r.Read(0, nil); v.Value != "$90.68" {
			t.Errorf("Value = %q, want raw text", v.Value)
		}
	})

	t.Run("coercer panic is contained", func(t *testing.T) {
		v := r.Read(0, func(string) (string, error) { panic("boom") })
		if !v.Failed() || !strings.Contains(v.CoerceErr, "boom") {
			t.Errorf("Read = %+v, want failure mentioning panic", v)
		}
		if v.Value != "$90.68" {
			t.Errorf("Value = %q, want raw text", v.Value)
		}
	})
}
