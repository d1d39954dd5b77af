package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/pricelist/internal/core"
	"github.com/JonMunkholm/pricelist/internal/workbook"
)

func TestRegion10_IsConsistent(t *testing.T) {
	s := Region10("")
	if err := s.Check(); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if s.SheetName != "Service Pricing" {
		t.Errorf("SheetName = %q, want %q", s.SheetName, "Service Pricing")
	}

	price, ok := s.Field("price_including_iff")
	if !ok {
		t.Fatal("price_including_iff field missing")
	}
	if price.Min != DefaultMinPrice {
		t.Errorf("price Min = %q, want %q", price.Min, DefaultMinPrice)
	}

	want := map[string]string{
		"sin":                  "SIN(s) Proposed",
		"labor_category":       "Service Proposed (e.g. Labor Category or Job Title/Task)",
		"education_level":      "Minimum Education / Certification Level",
		"min_years_experience": "Minimum Years of Experience (cannot be a range)",
		"unit_of_issue":        "Unit of Issue (e.g. Hour, Task, Sq Ft)",
		"price_including_iff":  "Price Offered to GSA (including IFF)",
	}
	got := s.TitleMap()
	if len(got) != len(want) {
		t.Fatalf("TitleMap has %d entries, want %d", len(got), len(want))
	}
	for name, title := range want {
		if got[name] != title {
			t.Errorf("TitleMap[%q] = %q, want %q", name, got[name], title)
		}
	}
}

func TestRegion10_ExampleIngestsAsValid(t *testing.T) {
	s := Region10("")
	book := workbook.NewBook(workbook.NewGrid(s.SheetName, s.Example))

	pl, err := core.Ingest(book, s, "")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if c := pl.Counts(); c.Valid != 1 || c.Invalid != 0 {
		t.Fatalf("Counts = %+v, want 1 valid", c)
	}

	rec := pl.ValidRows[0].Record
	if got := rec.Text("sin"); got != "123-1" {
		t.Errorf("sin = %q, want %q", got, "123-1")
	}
	if got := rec.Text("education_level"); got != "Professional Certification" {
		t.Errorf("education_level = %q", got)
	}
	if got := rec.Text("unit_of_issue"); got != "Hour" {
		t.Errorf("unit_of_issue = %q, want Hour", got)
	}
	if n, ok := rec.Int("min_years_experience"); !ok || n != 2 {
		t.Errorf("min_years_experience = %v, %v; want 2", n, ok)
	}
	price, ok := rec.Decimal("price_including_iff")
	if !ok || core.FormatDecimal(price) != "90.68" {
		t.Errorf("price_including_iff = %q, want 90.68", core.FormatDecimal(price))
	}
}

func TestRegion10_MinPriceIsConfigurable(t *testing.T) {
	s := Region10("95.00")
	book := workbook.NewBook(workbook.NewGrid(s.SheetName, s.Example))

	pl, err := core.Ingest(book, s, "")
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if len(pl.InvalidRows) != 1 {
		t.Fatalf("want 1 invalid row, got %+v", pl.Counts())
	}
	errs := pl.InvalidRows[0].Errors
	if len(errs) != 1 || errs[0].Message != "Price must be at least $95.00." {
		t.Errorf("Errors = %+v", errs)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		file      string
		key       string
		sheet     string
		fields    int
		priceMin  string
		wantTitle string
	}{
		{file: "region_3.toml", key: "region_3", sheet: "Labor Rates", fields: 4, priceMin: "20.00", wantTitle: "Hourly Rate"},
		{file: "region_7.yaml", key: "region_7", sheet: "Pricing", fields: 5, priceMin: "25.00", wantTitle: "Price"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := LoadFile(filepath.Join("testdata", tt.file), "20.00")
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if s.Key != tt.key || s.SheetName != tt.sheet {
				t.Errorf("Key/SheetName = %q/%q, want %q/%q", s.Key, s.SheetName, tt.key, tt.sheet)
			}
			if len(s.Fields) != tt.fields {
				t.Errorf("len(Fields) = %d, want %d", len(s.Fields), tt.fields)
			}
			price, ok := s.Field(s.PriceField)
			if !ok {
				t.Fatalf("price field %q missing", s.PriceField)
			}
			if price.Min != tt.priceMin {
				t.Errorf("price Min = %q, want %q", price.Min, tt.priceMin)
			}
			if price.Title != tt.wantTitle {
				t.Errorf("price Title = %q, want %q", price.Title, tt.wantTitle)
			}
			if price.Coercer == nil {
				t.Error("price coercer was not resolved")
			}
			if len(s.Example) == 0 {
				t.Error("Example is empty")
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		data    string
		wantErr string
	}{
		{
			name:    "unknown coercer",
			ext:     ".yaml",
			data:    "key: x\nsheet_name: S\nend_of_data: [a]\nfields:\n  - {name: a, title: A, coercer: shout}\n",
			wantErr: "unknown coercer",
		},
		{
			name:    "unknown type",
			ext:     ".yaml",
			data:    "key: x\nsheet_name: S\nend_of_data: [a]\nfields:\n  - {name: a, title: A, type: date}\n",
			wantErr: "unknown type",
		},
		{
			name:    "unknown key",
			ext:     ".toml",
			data:    "key = \"x\"\nsheet = \"S\"\n",
			wantErr: "TOML",
		},
		{
			name:    "end of data names no field",
			ext:     ".toml",
			data:    "key = \"x\"\nsheet_name = \"S\"\nend_of_data = [\"b\"]\n[[fields]]\nname = \"a\"\ntitle = \"A\"\n",
			wantErr: "end-of-data field",
		},
		{
			name:    "unsupported extension",
			ext:     ".json",
			data:    "{}",
			wantErr: "unsupported schema file type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext, "")
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("built-ins only", func(t *testing.T) {
		reg, err := NewRegistry("", "")
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		if got := reg.Keys(); len(got) != 1 || got[0] != Region10Key {
			t.Errorf("Keys() = %v, want [%s]", got, Region10Key)
		}
	})

	t.Run("with schema dir", func(t *testing.T) {
		reg, err := NewRegistry("", "testdata")
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		want := []string{"region_10", "region_3", "region_7"}
		got := reg.Keys()
		if strings.Join(got, ",") != strings.Join(want, ",") {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		dir := t.TempDir()
		data := "key: region_10\nsheet_name: S\nend_of_data: [a]\nfields:\n  - {name: a, title: A}\n"
		if err := os.WriteFile(filepath.Join(dir, "dup.yaml"), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewRegistry("", dir); err == nil || !strings.Contains(err.Error(), "already registered") {
			t.Errorf("NewRegistry() error = %v, want already registered", err)
		}
	})

	t.Run("unknown key lookup", func(t *testing.T) {
		reg, _ := NewRegistry("", "")
		if _, err := reg.Lookup("region_99"); !errors.Is(err, core.ErrUnknownSchema) {
			t.Errorf("Lookup() error = %v, want ErrUnknownSchema", err)
		}
	})
}
