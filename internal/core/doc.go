// Package core provides the business logic for price list ingestion.
//
// Vendors submit price lists as spreadsheets. This package turns one sheet
// of such a workbook into labor category records, independent of any UI or
// transport layer, so it can be used by web handlers, the CLI or tests.
//
// # Pipeline
//
//  1. The sheet is located by name ([GleanBook]); a missing sheet fails the
//     whole ingestion with [SheetNotFoundError].
//  2. The heading row is mapped to canonical field names ([ResolveColumns]).
//     Column order does not matter, but every heading label must be present.
//  3. Data rows are read until the first row whose end-of-data fields are
//     all blank ([Glean]). Each cell passes through the field's [Coercer].
//  4. Each row is validated against the schema's [FieldSpec] constraints and
//     lands in the valid or invalid bucket of a [PriceList].
//
// # Schemas
//
// A [Schema] is plain data: the sheet name, the heading label of each
// field, coercers, constraints and an example workbook. Variants are
// registered in a [Registry]; package schemas provides the built-in ones
// and loads more from TOML or YAML files.
//
//	reg := core.NewRegistry()
//	reg.Register(schemas.Region10("15.00"))
//	pl, err := core.Ingest(book, schema, "")
//
// # Error Handling
//
// Only whole-file problems are returned as errors. They are mapped to
// user-facing messages with support codes by [MapError]:
//
//   - SHEET001, HDR001: sheet or heading problems
//   - SCH001: unknown schema
//   - FILE001-FILE005: file size, format and content
//   - ING001-ING005: busy, cancelled, timed out, unreadable upload
//
// Bad cells and rows never become errors; they are reported per field in
// [ValidatedRow.Errors].
package core
