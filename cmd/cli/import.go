package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iyabazu/pc-search/config"
	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/ingest/xlsx"
)

var (
	importSheet  string
	importMaker  string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import a maker price list workbook into the product database",
	Long: `Parses an xlsx price list into products and upserts them into the
product database. Rows failing validation are reported and skipped.
With --dry-run the workbook is parsed and reported but nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "worksheet name (default: first sheet)")
	importCmd.Flags().StringVar(&importMaker, "maker", "", "maker name for rows without one")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "parse and report without writing")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	importer := xlsx.NewImporter(xlsx.ImporterOptions{
		SheetName:     importSheet,
		DefaultMaker:  importMaker,
		SkipEmptyRows: true,
	})

	result, err := importer.Import(content)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		logger.Error().
			Int("row", e.RowNumber).
			Str("field", e.Field).
			Str("value", e.Value).
			Msg(e.Message)
	}
	for _, w := range result.Warnings {
		logger.Warn().
			Int("row", w.RowNumber).
			Str("field", w.Field).
			Msg(w.Message)
	}

	logger.Info().
		Str("file", path).
		Int("total", result.TotalRows).
		Int("valid", result.ValidRows).
		Int("errors", len(result.Errors)).
		Msg("Workbook parsed")

	if importDryRun {
		logger.Info().Msg("Dry run, nothing written")
		return nil
	}

	if result.ValidRows == 0 {
		return fmt.Errorf("no valid rows to import")
	}

	uri := config.GetMongoURI()
	if uri == "" {
		return fmt.Errorf("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := catalog.ConnectMongo(ctx, uri, cfg.Catalog.Database, cfg.Catalog.Collection)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	if err := store.Upsert(ctx, result.Products); err != nil {
		return err
	}

	logger.Info().Int("count", result.ValidRows).Msg("Products imported")
	return nil
}
