package web

import (
	"github.com/JonMunkholm/pricelist/internal/core"
)

type fieldResponse struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Coercer  string   `json:"coercer,omitempty"`
	Min      string   `json:"min,omitempty"`
	Choices  []string `json:"choices,omitempty"`
}

type schemaResponse struct {
	Key          string          `json:"key"`
	Title        string          `json:"title"`
	SheetName    string          `json:"sheetName"`
	Instructions string          `json:"instructions,omitempty"`
	Default      bool            `json:"default"`
	Headings     []string        `json:"headings"`
	Fields       []fieldResponse `json:"fields"`
}

func newSchemaResponse(s *core.Schema, defaultKey string) schemaResponse {
	out := schemaResponse{
		Key:          s.Key,
		Title:        s.Title,
		SheetName:    s.SheetName,
		Instructions: s.Instructions,
		Default:      s.Key == defaultKey,
		Headings:     make([]string, len(s.Fields)),
		Fields:       make([]fieldResponse, len(s.Fields)),
	}
	for i, f := range s.Fields {
		out.Headings[i] = f.Title
		out.Fields[i] = fieldResponse{
			Name:     f.Name,
			Title:    f.Title,
			Type:     fieldTypeName(f.Type),
			Required: f.Required,
			Coercer:  f.CoercerName,
			Min:      f.Min,
			Choices:  f.Choices,
		}
	}
	return out
}

func fieldTypeName(t core.FieldType) string {
	switch t {
	case core.FieldInteger:
		return "integer"
	case core.FieldDecimal:
		return "decimal"
	default:
		return "text"
	}
}

type ingestResponse struct {
	RunID       string             `json:"runId"`
	Schema      string             `json:"schema"`
	FileName    string             `json:"fileName"`
	Sheet       string             `json:"sheet"`
	DurationMS  int64              `json:"durationMs"`
	Counts      core.Counts        `json:"counts"`
	Summary     *core.PriceSummary `json:"summary,omitempty"`
	ValidRows   []core.DisplayRow  `json:"validRows"`
	InvalidRows []core.DisplayRow  `json:"invalidRows"`
}

func newIngestResponse(res *core.IngestResult) ingestResponse {
	pl := res.PriceList
	valid, invalid := pl.DisplayRows()
	return ingestResponse{
		RunID:       res.RunID,
		Schema:      res.SchemaKey,
		FileName:    res.FileName,
		Sheet:       res.SheetName,
		DurationMS:  res.Duration.Milliseconds(),
		Counts:      pl.Counts(),
		Summary:     pl.Summary(),
		ValidRows:   valid,
		InvalidRows: invalid,
	}
}
