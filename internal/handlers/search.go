package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/search"
)

// SearchResponse is the search page payload: one page of products plus
// everything the client needs to render state (pagination, applied filters,
// the canonical query for the address bar, facet counts, page title).
type SearchResponse struct {
	Products   []catalog.Product     `json:"products"`
	Pagination search.PaginationInfo `json:"pagination"`
	Applied    search.FilterState    `json:"applied"`
	Query      string                `json:"query"`
	Title      string                `json:"title"`
	CPUFacets  map[string]int        `json:"cpuFacets"`
	GPUFacets  map[string]int        `json:"gpuFacets"`
	Fallback   bool                  `json:"fallback"`
}

// Search runs the filter/sort/paginate pipeline over the cached catalog.
// GET /api/search?keyword=&maker=&cpu=&gpu=&memory=&storage=&priceMin=&priceMax=&onSale=&plus=&sort=&page=
//
// Query parameters are user-shared URLs; anything malformed decodes to the
// field default, so this handler never rejects a request over its query
// string.
func Search(c *gin.Context) {
	applied, page := search.Decode(c.Request.URL.Query())

	snapshot := productCache.Snapshot()

	start := time.Now()
	filtered := search.Evaluate(snapshot.Products, applied)
	sorted := search.Sort(filtered, applied.SortBy)
	items, info := search.Paginate(sorted, page, search.DefaultPageSize)
	search.RecordSearch(applied, len(filtered), time.Since(start))

	cpuFacets, gpuFacets := search.FamilyFacets(filtered)

	logger.Info().
		Str("filters", search.Summary(applied, info.CurrentPage)).
		Int("matched", len(filtered)).
		Msg("Search executed")

	c.JSON(http.StatusOK, SearchResponse{
		Products:   items,
		Pagination: info,
		Applied:    applied,
		Query:      search.Encode(applied, info.CurrentPage),
		Title:      search.Title(applied),
		CPUFacets:  cpuFacets,
		GPUFacets:  gpuFacets,
		Fallback:   snapshot.Fallback,
	})
}
