// Package main provides the command line front end for price list ingestion.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	schemaKey   string
	sheetName   string
	schemaDir   string
	minPrice    string
	pretty      bool
	concurrency int
	outputPath  string
	logLevel    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pricelist",
		Short: "Glean and validate labor category price lists",
		Long: `pricelist reads price list workbooks (xlsx or csv), finds the labor
category rows and reports which of them are valid, as JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&schemaDir, "schema-dir", "", "Directory of extra .toml/.yaml schema files (default: $INGEST_SCHEMA_DIR)")
	rootCmd.PersistentFlags().StringVar(&minPrice, "min-price", "", "Lowest acceptable price (default: $INGEST_MIN_PRICE or 15.00)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $LOG_LEVEL or info)")

	rootCmd.AddCommand(newGleanCmd(), newExampleCmd(), newSchemasCmd())
	return rootCmd
}

func newGleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glean FILE...",
		Short: "Ingest one or more price list files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGlean,
	}
	cmd.Flags().StringVar(&schemaKey, "schema", "", "Schema key (default: $INGEST_DEFAULT_SCHEMA or region_10)")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to read (default: the schema's sheet)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Files processed at once")
	return cmd
}

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the example workbook of a schema",
		Args:  cobra.NoArgs,
		RunE:  runExample,
	}
	cmd.Flags().StringVar(&schemaKey, "schema", "", "Schema key (default: $INGEST_DEFAULT_SCHEMA or region_10)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List registered schemas",
		Args:  cobra.NoArgs,
		RunE:  runSchemas,
	}
}

func runExample(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := app.service.ExampleWorkbook(schemaKey, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write example: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	app.logger.Info("example written", "path", outputPath)
	return nil
}

func runSchemas(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, s := range app.service.Schemas() {
		marker := " "
		if s.Key == app.service.DefaultSchema() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-16s %-24s sheet=%q fields=%d\n", marker, s.Key, s.Title, s.SheetName, len(s.Fields))
	}
	return nil
}
