package core

import (
	"fmt"
	"strings"
	"time"
)

// FieldType represents the typed value a field validates into.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldDecimal
)

// FieldSpec declares one canonical field of a price list schema: where it
// lives (its heading label), how its cell text is coerced and which
// constraints the coerced value must satisfy.
type FieldSpec struct {
	Name        string    // Canonical field name: "price_including_iff"
	Title       string    // Heading label expected in row 0 (must match exactly)
	Type        FieldType // Typed value produced by validation
	Required    bool      // Value must be non-empty
	CoercerName string    // Name of Coercer in the coercer table, if any

	// Coercer is an optional cell text normalizer.
	Coercer Coercer `json:"-"`

	// Min is an inclusive lower bound as a decimal literal ("15.00", "0").
	// Only used for FieldInteger and FieldDecimal.
	Min        string
	MinMessage string // Overrides the default bound message; %s receives Min

	// Choices restricts the coerced value to an exact set of tokens.
	Choices        []string
	ChoicesMessage string
}

// Schema is the complete configuration of one price list variant. A single
// generic pipeline is run against it; variants differ only in data.
type Schema struct {
	Key          string // Identifier: "region_10"
	Title        string // Display name: "Region 10"
	SheetName    string // Default sheet to read: "Service Pricing"
	Fields       []FieldSpec
	EndOfData    []string   // Fields that, when all blank, end the scan
	PriceField   string     // Field summarized by PriceList.Summary
	Instructions string     // Upload hint shown next to the file picker
	Example      [][]string // Heading row plus sample rows
}

// Field returns the spec for a canonical field name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FieldNames returns canonical field names in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// TitleMap returns the field name to heading label mapping.
func (s *Schema) TitleMap() map[string]string {
	m := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		m[f.Name] = f.Title
	}
	return m
}

// Check reports configuration mistakes that would make the schema unusable.
func (s *Schema) Check() error {
	var errs []string

	if s.Key == "" {
		errs = append(errs, "key is required")
	}
	if s.SheetName == "" {
		errs = append(errs, "sheet name is required")
	}
	if len(s.Fields) == 0 {
		errs = append(errs, "at least one field is required")
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		switch {
		case f.Name == "":
			errs = append(errs, "field with empty name")
			continue
		case seen[f.Name]:
			errs = append(errs, fmt.Sprintf("duplicate field %q", f.Name))
		case f.Title == "":
			errs = append(errs, fmt.Sprintf("field %q has no heading title", f.Name))
		}
		seen[f.Name] = true

		if f.Min != "" {
			if f.Type == FieldText {
				errs = append(errs, fmt.Sprintf("field %q: min set on text field", f.Name))
			} else if _, err := parseDecimal(f.Min); err != nil {
				errs = append(errs, fmt.Sprintf("field %q: invalid min %q", f.Name, f.Min))
			}
		}
	}

	if len(s.EndOfData) == 0 {
		errs = append(errs, "at least one end-of-data field is required")
	}
	for _, name := range s.EndOfData {
		if !seen[name] {
			errs = append(errs, fmt.Sprintf("end-of-data field %q is not a schema field", name))
		}
	}
	if s.PriceField != "" {
		if f, ok := s.Field(s.PriceField); !ok || f.Type == FieldText {
			errs = append(errs, fmt.Sprintf("price field %q must be a numeric schema field", s.PriceField))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema %q: %s", s.Key, strings.Join(errs, "; "))
	}
	return nil
}

// FieldValue is one cell as read for a field: the cleaned cell text, the
// coerced value, and the coercer failure if there was one. When coercion
// fails Value holds the raw text so the row can still be displayed.
type FieldValue struct {
	Raw       string `json:"raw"`
	Value     string `json:"value"`
	CoerceErr string `json:"coerceError,omitempty"`
}

// Failed reports whether the coercer rejected the cell text.
func (v FieldValue) Failed() bool {
	return v.CoerceErr != ""
}

// RawRow is one gleaned data row keyed by canonical field name.
type RawRow struct {
	Line   int                   // 1-based spreadsheet row number
	Fields map[string]FieldValue // One entry per schema field
}

// Counts summarizes how a price list's rows were classified.
type Counts struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// IngestResult contains the outcome of one ingestion run.
type IngestResult struct {
	RunID     string
	SchemaKey string
	FileName  string
	SheetName string
	PriceList *PriceList
	Duration  time.Duration
}
