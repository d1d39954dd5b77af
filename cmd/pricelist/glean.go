package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/pricelist/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// fileReport is the JSON document written for each input file. Exactly one
// of Error or the result fields is populated.
type fileReport struct {
	File        string             `json:"file"`
	RunID       string             `json:"runId,omitempty"`
	Schema      string             `json:"schema,omitempty"`
	Sheet       string             `json:"sheet,omitempty"`
	Error       *core.UserMessage  `json:"error,omitempty"`
	Counts      *core.Counts       `json:"counts,omitempty"`
	Summary     *core.PriceSummary `json:"summary,omitempty"`
	ValidRows   []core.DisplayRow  `json:"validRows,omitempty"`
	InvalidRows []core.DisplayRow  `json:"invalidRows,omitempty"`
}

func runGlean(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	reports := gleanFiles(cmd.Context(), app.service, args, concurrency)

	failed := 0
	for _, r := range reports {
		if r.Error != nil {
			failed++
		}
		if err := writeReport(cmd.OutOrStdout(), r, pretty); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be ingested", failed, len(reports))
	}
	return nil
}

// gleanFiles ingests paths with at most limit files in flight. Reports come
// back in input order regardless of completion order.
func gleanFiles(ctx context.Context, svc *core.Service, paths []string, limit int) []fileReport {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]fileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			reports[i] = gleanFile(gctx, svc, path)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func gleanFile(ctx context.Context, svc *core.Service, path string) fileReport {
	report := fileReport{File: path}

	f, err := os.Open(path)
	if err != nil {
		msg := core.UserMessage{
			Message: fmt.Sprintf("Could not open %s.", path),
			Action:  "Check the path and permissions.",
			Code:    "FILE000",
		}
		report.Error = &msg
		return report
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	res, err := svc.Ingest(ctx, core.IngestRequest{
		SchemaKey: schemaKey,
		SheetName: sheetName,
		FileName:  filepath.Base(path),
		Reader:    f,
		Size:      size,
	})
	if err != nil {
		msg := core.MapError(err)
		report.Error = &msg
		return report
	}

	return newFileReport(path, res)
}

func newFileReport(path string, res *core.IngestResult) fileReport {
	pl := res.PriceList
	counts := pl.Counts()
	valid, invalid := pl.DisplayRows()
	return fileReport{
		File:        path,
		RunID:       res.RunID,
		Schema:      res.SchemaKey,
		Sheet:       res.SheetName,
		Counts:      &counts,
		Summary:     pl.Summary(),
		ValidRows:   valid,
		InvalidRows: invalid,
	}
}

func writeReport(w io.Writer, r fileReport, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
