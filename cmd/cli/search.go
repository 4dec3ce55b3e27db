package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iyabazu/pc-search/config"
	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run the search pipeline locally",
	Long: `Runs the filter/sort/paginate pipeline over the product database and
prints one page of results. The query argument uses the same format as the
site URL, for example "maker=レノボ&gpu=RTX+4070&sort=price-desc&page=2".
Without a database connection the built-in fallback dataset is searched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	rawQuery := ""
	if len(args) > 0 {
		rawQuery = args[0]
	}
	applied, page := search.DecodeQuery(rawQuery)

	products, err := loadProducts(cmd.Context())
	if err != nil {
		return err
	}

	filtered := search.Evaluate(products, applied)
	sorted := search.Sort(filtered, applied.SortBy)
	items, info := search.Paginate(sorted, page, search.DefaultPageSize)

	fmt.Printf("%s\n", search.Title(applied))
	fmt.Printf("%d件中 %d-%d件 (page %d/%d)\n\n",
		info.TotalItems, info.StartIndex, info.EndIndex, info.CurrentPage, info.TotalPages)

	for _, p := range items {
		fmt.Printf("%-14s %-10s ¥%-9d %s / %s / %s / %s\n",
			p.ID, p.Maker, p.EffectivePrice, p.CPU, p.GPU, p.Memory, p.Storage)
	}

	if canonical := search.Encode(applied, info.CurrentPage); canonical != "" {
		fmt.Printf("\nquery: %s\n", canonical)
	}
	return nil
}

// loadProducts fetches the active catalog, falling back to the built-in
// dataset when no database is reachable.
func loadProducts(ctx context.Context) ([]catalog.Product, error) {
	uri := config.GetMongoURI()
	if uri == "" {
		logger.Warn().Msg("MONGODB_URI not set, searching fallback dataset")
		return catalog.Fallback(), nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	store, err := catalog.ConnectMongo(fetchCtx, uri, cfg.Catalog.Database, cfg.Catalog.Collection)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to mongodb, searching fallback dataset")
		return catalog.Fallback(), nil
	}
	defer store.Close(fetchCtx)

	products, err := store.FetchActive(fetchCtx, cfg.Catalog.FetchLimit)
	if err != nil {
		return nil, err
	}
	return products, nil
}
