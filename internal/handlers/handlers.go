// Package handlers contains the gin handlers for the search API.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/options"
)

var (
	productCache  *catalog.Cache
	productStore  catalog.Store
	filterOptions *options.FilterOptions
	logger        zerolog.Logger
)

// Init wires the handler package dependencies. Call once before mounting
// routes.
func Init(cache *catalog.Cache, store catalog.Store, opts *options.FilterOptions, log zerolog.Logger) {
	productCache = cache
	productStore = store
	filterOptions = opts
	logger = log.With().Str("component", "handlers").Logger()
}
