package core

// validation.go checks gleaned rows against a schema's field constraints.
//
// Every field is checked in schema order by one function driven by the
// declarative FieldSpec: required, coercion outcome, type, lower bound and
// allowed values. A row either becomes a typed Record or carries one
// ValidationError per failing field. Validation never returns an error and
// never panics; the worst outcome for a row is the invalid bucket.

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string `json:"field"`   // Canonical field name
	Value   string `json:"value"`   // The invalid value as displayed
	Message string `json:"message"` // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Record is a valid labor category. Values hold a string for text fields,
// an int64 for integer fields and a pgtype.Numeric for decimal fields.
type Record struct {
	Line   int            `json:"line"`
	Values map[string]any `json:"values"`
}

// Text returns a text field, or "" if absent.
func (r *Record) Text(name string) string {
	s, _ := r.Values[name].(string)
	return s
}

// Int returns an integer field.
func (r *Record) Int(name string) (int64, bool) {
	n, ok := r.Values[name].(int64)
	return n, ok
}

// Decimal returns a decimal field.
func (r *Record) Decimal(name string) (pgtype.Numeric, bool) {
	n, ok := r.Values[name].(pgtype.Numeric)
	return n, ok
}

// Format renders a field for display: decimals keep their own scale.
func (r *Record) Format(name string) string {
	switch v := r.Values[name].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case pgtype.Numeric:
		return FormatDecimal(v)
	default:
		return ""
	}
}

// ValidatedRow is the classified outcome for one gleaned row. Record is set
// only when the row is valid; Input always holds the values to display.
type ValidatedRow struct {
	Line   int               `json:"line"`
	Input  map[string]string `json:"input"`
	Record *Record           `json:"record,omitempty"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Valid reports whether every field passed.
func (r ValidatedRow) Valid() bool {
	return r.Record != nil
}

// FieldErrors groups error messages by field name.
func (r ValidatedRow) FieldErrors() map[string][]string {
	if len(r.Errors) == 0 {
		return nil
	}
	m := make(map[string][]string, len(r.Errors))
	for _, e := range r.Errors {
		m[e.Field] = append(m[e.Field], e.Message)
	}
	return m
}

// Default messages; FieldSpec can override the bound and choice texts.
const (
	msgRequired      = "This field is required."
	msgWholeNumber   = "Enter a whole number."
	msgNumber        = "Enter a number."
	msgMinDefault    = "Ensure this value is greater than or equal to %s."
	msgChoiceDefault = "Value must be one of: %s."
)

// SchemaValidator validates rows against one schema.
type SchemaValidator struct {
	schema *Schema
	floors map[string]pgtype.Numeric
}

// NewSchemaValidator prepares a validator for schema. Bounds that do not
// parse are ignored here; Schema.Check reports them.
func NewSchemaValidator(schema *Schema) *SchemaValidator {
	v := &SchemaValidator{
		schema: schema,
		floors: make(map[string]pgtype.Numeric),
	}
	for _, f := range schema.Fields {
		if f.Min == "" {
			continue
		}
		if n, err := parseDecimal(f.Min); err == nil {
			v.floors[f.Name] = n
		}
	}
	return v
}

// Validate classifies a gleaned row.
func (v *SchemaValidator) Validate(row RawRow) ValidatedRow {
	out := ValidatedRow{
		Line:  row.Line,
		Input: make(map[string]string, len(v.schema.Fields)),
	}
	values := make(map[string]any, len(v.schema.Fields))

	for _, spec := range v.schema.Fields {
		fv := row.Fields[spec.Name]
		out.Input[spec.Name] = fv.Value

		typed, msg := v.validateField(spec, fv)
		if msg != "" {
			out.Errors = append(out.Errors, ValidationError{
				Field:   spec.Name,
				Value:   fv.Value,
				Message: msg,
			})
			continue
		}
		if typed != nil {
			values[spec.Name] = typed
		}
	}

	if len(out.Errors) == 0 {
		out.Record = &Record{Line: row.Line, Values: values}
	}
	return out
}

// validateField returns the typed value or a non-empty error message.
// A blank optional field yields (nil, "").
func (v *SchemaValidator) validateField(spec FieldSpec, fv FieldValue) (any, string) {
	value := strings.TrimSpace(fv.Value)

	if value == "" {
		if spec.Required {
			return nil, msgRequired
		}
		return nil, ""
	}

	if fv.Failed() {
		return nil, coercionMessage(spec, fv)
	}

	var typed any
	switch spec.Type {
	case FieldInteger:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, msgWholeNumber
		}
		if floor, ok := v.floors[spec.Name]; ok {
			if compareDecimal(pgtype.Numeric{Int: big.NewInt(n), Valid: true}, floor) < 0 {
				return nil, minMessage(spec)
			}
		}
		typed = n

	case FieldDecimal:
		n, err := parseDecimal(value)
		if err != nil {
			return nil, msgNumber
		}
		if floor, ok := v.floors[spec.Name]; ok && compareDecimal(n, floor) < 0 {
			return nil, minMessage(spec)
		}
		typed = n

	default:
		typed = value
	}

	if len(spec.Choices) > 0 && !containsExact(spec.Choices, value) {
		if spec.ChoicesMessage != "" {
			return nil, spec.ChoicesMessage
		}
		return nil, fmt.Sprintf(msgChoiceDefault, strings.Join(spec.Choices, ", "))
	}

	return typed, ""
}

// coercionMessage turns a coercer failure into a field error message.
func coercionMessage(spec FieldSpec, fv FieldValue) string {
	switch spec.Type {
	case FieldInteger:
		return msgWholeNumber
	case FieldDecimal:
		return msgNumber
	default:
		return fv.CoerceErr
	}
}

func minMessage(spec FieldSpec) string {
	if spec.MinMessage != "" {
		if strings.Contains(spec.MinMessage, "%s") {
			return fmt.Sprintf(spec.MinMessage, spec.Min)
		}
		return spec.MinMessage
	}
	return fmt.Sprintf(msgMinDefault, spec.Min)
}

func containsExact(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}
