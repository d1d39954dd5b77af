package core

import (
	"github.com/montanaflynn/stats"
)

// PriceList is the outcome of validating every gleaned row of a price list
// sheet. Rows are kept in sheet order within each bucket.
type PriceList struct {
	Schema      *Schema
	Rows        []RawRow
	ValidRows   []ValidatedRow
	InvalidRows []ValidatedRow
}

// NewPriceList validates rows against schema and splits them into the valid
// and invalid buckets.
func NewPriceList(schema *Schema, rows []RawRow) *PriceList {
	pl := &PriceList{
		Schema: schema,
		Rows:   rows,
	}
	v := NewSchemaValidator(schema)
	for _, row := range rows {
		vr := v.Validate(row)
		if vr.Valid() {
			pl.ValidRows = append(pl.ValidRows, vr)
		} else {
			pl.InvalidRows = append(pl.InvalidRows, vr)
		}
	}
	return pl
}

// Counts returns the row totals of both buckets.
func (pl *PriceList) Counts() Counts {
	return Counts{
		Total:   len(pl.ValidRows) + len(pl.InvalidRows),
		Valid:   len(pl.ValidRows),
		Invalid: len(pl.InvalidRows),
	}
}

// IsEmpty reports whether the sheet held no data rows at all.
func (pl *PriceList) IsEmpty() bool {
	return len(pl.ValidRows) == 0 && len(pl.InvalidRows) == 0
}

// DisplayRow is one row as shown to the uploader. Values hold the typed
// value rendered as text for valid rows and the gleaned text otherwise.
type DisplayRow struct {
	Line   int                 `json:"line"`
	Values map[string]string   `json:"values"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// DisplayRows renders both buckets for output, in bucket order. The slices
// are never nil.
func (pl *PriceList) DisplayRows() (valid, invalid []DisplayRow) {
	valid = make([]DisplayRow, 0, len(pl.ValidRows))
	invalid = make([]DisplayRow, 0, len(pl.InvalidRows))

	names := pl.Schema.FieldNames()
	for _, vr := range pl.ValidRows {
		values := make(map[string]string, len(names))
		for _, name := range names {
			values[name] = vr.Record.Format(name)
		}
		valid = append(valid, DisplayRow{Line: vr.Line, Values: values})
	}
	for _, vr := range pl.InvalidRows {
		invalid = append(invalid, DisplayRow{
			Line:   vr.Line,
			Values: vr.Input,
			Errors: vr.FieldErrors(),
		})
	}
	return valid, invalid
}

// PriceSummary describes the distribution of prices over valid rows.
// Amounts are rounded to cents.
type PriceSummary struct {
	Field  string  `json:"field"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
}

// Summary computes price statistics over the valid rows. It returns nil
// when the schema has no price field or no valid row carries a price.
func (pl *PriceList) Summary() *PriceSummary {
	field := pl.Schema.PriceField
	if field == "" {
		return nil
	}

	var prices stats.Float64Data
	for _, vr := range pl.ValidRows {
		if n, ok := vr.Record.Decimal(field); ok {
			prices = append(prices, decimalFloat(n))
		} else if i, ok := vr.Record.Int(field); ok {
			prices = append(prices, float64(i))
		}
	}
	if len(prices) == 0 {
		return nil
	}

	// Errors are only returned for empty input, which is ruled out above.
	minV, _ := prices.Min()
	maxV, _ := prices.Max()
	mean, _ := prices.Mean()
	median, _ := prices.Median()
	sd, _ := prices.StandardDeviationPopulation()

	return &PriceSummary{
		Field:  field,
		Count:  len(prices),
		Min:    cents(minV),
		Max:    cents(maxV),
		Mean:   cents(mean),
		Median: cents(median),
		StdDev: cents(sd),
	}
}

func cents(v float64) float64 {
	r, err := stats.Round(v, 2)
	if err != nil {
		return v
	}
	return r
}
