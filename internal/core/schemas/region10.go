// Package schemas holds the built-in price list schemas and loads
// additional ones from schema files.
package schemas

import "github.com/JonMunkholm/pricelist/internal/core"

// Region10Key identifies the Region 10 price list.
const Region10Key = "region_10"

// DefaultMinPrice is the lowest acceptable hourly price.
const DefaultMinPrice = "15.00"

// Region10 returns the Region 10 schema with prices floored at minPrice.
// An empty minPrice uses DefaultMinPrice.
func Region10(minPrice string) *core.Schema {
	if minPrice == "" {
		minPrice = DefaultMinPrice
	}
	return &core.Schema{
		Key:       Region10Key,
		Title:     "Region 10",
		SheetName: "Service Pricing",
		Fields: []core.FieldSpec{
			{
				Name:     "sin",
				Title:    "SIN(s) Proposed",
				Type:     core.FieldText,
				Required: true,
			},
			{
				Name:     "labor_category",
				Title:    "Service Proposed (e.g. Labor Category or Job Title/Task)",
				Type:     core.FieldText,
				Required: true,
			},
			{
				Name:        "education_level",
				Title:       "Minimum Education / Certification Level",
				Type:        core.FieldText,
				Required:    true,
				Coercer:     core.ExtractMinEducation,
				CoercerName: "extract_min_education",
			},
			{
				Name:        "min_years_experience",
				Title:       "Minimum Years of Experience (cannot be a range)",
				Type:        core.FieldInteger,
				Required:    true,
				Coercer:     core.ParseInteger,
				CoercerName: "integer",
				Min:         "0",
			},
			{
				Name:           "unit_of_issue",
				Title:          "Unit of Issue (e.g. Hour, Task, Sq Ft)",
				Type:           core.FieldText,
				Required:       true,
				Coercer:        core.ExtractHourUnitOfIssue,
				CoercerName:    "extract_hour_unit_of_issue",
				Choices:        []string{core.UnitHour},
				ChoicesMessage: `Value must be "Hour" or "Hourly".`,
			},
			{
				Name:        "price_including_iff",
				Title:       "Price Offered to GSA (including IFF)",
				Type:        core.FieldDecimal,
				Required:    true,
				Coercer:     core.StripNonNumeric,
				CoercerName: "strip_non_numeric",
				Min:         minPrice,
				MinMessage:  "Price must be at least $%s.",
			},
		},
		EndOfData:    []string{"sin", "price_including_iff"},
		PriceField:   "price_including_iff",
		Instructions: "XLS or XLSX format, please.",
		Example:      region10Example(),
	}
}

// region10Example is the heading row plus one sample row. Columns that no
// field reads are kept so the download matches what vendors fill in.
func region10Example() [][]string {
	return [][]string{
		{
			"SIN(s) Proposed",
			"Service Proposed (e.g. Labor Category or Job Title/Task)",
			"Minimum Education / Certification Level",
			"Minimum Years of Experience (cannot be a range)",
			"Contractor or Customer Facility or Both",
			"Domestic or Overseas",
			"Commercial Price List (CPL) OR Market Prices",
			"Unit of Issue (e.g. Hour, Task, Sq Ft)",
			"Most Favored Commercial Customer (MFC)*",
			"Discount Offered to Commercial MFC (%)",
			"Commercial MFC Price",
			"Discount Offered to GSA (off CPL or Market Prices) (%)",
			"Price Offered to GSA (Excluding IFF)",
			"Price Offered to GSA (including IFF)",
			"Discount Offered to GSA (off MFC Prices) (%)",
		},
		{
			"123-1",
			"Consultant II",
			"Professional Certification",
			"2",
			"Both",
			"Domestic Only",
			"$100.00",
			"hour",
			"ABC Company",
			"5.00%",
			"$95.00",
			"10.00%",
			"$90.00",
			"$90.68",
			"5.26%",
		},
	}
}
