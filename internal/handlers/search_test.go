package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iyabazu/pc-search/internal/catalog"
	"github.com/iyabazu/pc-search/internal/options"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID: "p1", Name: "GALLERIA XA7C-R47", Maker: "ドスパラ",
			Type: "デスクトップ", Category: "desktop",
			Price: 250000, EffectivePrice: 230000, DiscountRate: 8,
			CPU: "Core i7-14700F", GPU: "RTX 4070 (12GB)",
			Memory: "32GB", Storage: "1TB NVMe SSD",
			IsActive: true,
		},
		{
			ID: "p2", Name: "LEVEL-M77M", Maker: "パソコン工房",
			Type: "デスクトップ", Category: "desktop",
			Price: 180000, EffectivePrice: 180000,
			CPU: "Core i5-14400F", GPU: "RTX 4060 (8GB)",
			Memory: "16GB", Storage: "500GB NVMe SSD",
			IsActive: true,
		},
		{
			ID: "p3", Name: "ThinkBook 16", Maker: "レノボ",
			Type: "ノートブック", Category: "notebook",
			Price: 120000, EffectivePrice: 99800, DiscountRate: 16,
			CPU: "Ryzen 7 7735HS", GPU: "Radeon 760M",
			Memory: "16GB", Storage: "512GB SSD",
			IsActive: true,
		},
		{
			ID: "p4", Name: "Retired Tower", Maker: "ドスパラ",
			Type: "デスクトップ", Category: "desktop",
			Price: 90000, EffectivePrice: 90000,
			CPU: "Core i3-12100", GPU: "UHD Graphics 730",
			Memory: "8GB", Storage: "256GB SSD",
			IsActive: false,
		},
	}
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewMemoryStore(testProducts())
	cache := catalog.NewCache(store, 0, zerolog.Nop())
	cache.Refresh(context.Background())

	Init(cache, store, options.Defaults(), zerolog.Nop())

	router := gin.New()
	router.GET("/api/search", Search)
	router.GET("/api/products", ListProducts)
	router.GET("/api/products/:id", GetProduct)
	router.GET("/api/filter-options", FilterOptionsHandler)
	router.GET("/health", HealthCheck)
	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearchDefault(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/search")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Desktop-only default over the active set: p1 and p2, cheapest first.
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "p2", resp.Products[0].ID)
	assert.Equal(t, "p1", resp.Products[1].ID)

	assert.Equal(t, 2, resp.Pagination.TotalItems)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
	assert.Equal(t, "", resp.Query)
	assert.False(t, resp.Fallback)
	assert.Contains(t, resp.Title, "イヤバズDB")
}

func TestSearchFiltered(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/search?maker=ドスパラ")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Products, 1)
	assert.Equal(t, "p1", resp.Products[0].ID)
	assert.Equal(t, []string{"ドスパラ"}, resp.Applied.Maker)
	assert.Contains(t, resp.Query, "maker=")
}

func TestSearchFacets(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/search?plus=desktop,notebook")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Products, 3)
	assert.Equal(t, 2, resp.CPUFacets["Core i 14th Gen"])
	assert.Equal(t, 1, resp.CPUFacets["Ryzen 7000シリーズ"])
	assert.Equal(t, 2, resp.GPUFacets["RTX 40シリーズ"])
	assert.Equal(t, 1, resp.GPUFacets["内蔵GPU"])
}

// Malformed query strings decode to defaults, never to an error response.
func TestSearchMalformedQuery(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/search?priceMin=abc&page=zero",
		"/api/search?sort=newest",
		"/api/search?page=-5",
	} {
		w := doRequest(router, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSearchPageClamp(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/search?page=999")
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
}

func TestListProducts(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The inactive product is not listed.
	assert.Equal(t, 3, resp.Total)
	assert.False(t, resp.Fallback)
}

func TestListProductsLimit(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/products?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestGetProduct(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/products/p1")
	require.Equal(t, http.StatusOK, w.Code)

	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "GALLERIA XA7C-R47", p.Name)
}

// Soft-deleted products stay reachable by id.
func TestGetProductInactive(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/products/p4")
	require.Equal(t, http.StatusOK, w.Code)

	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.False(t, p.IsActive)
}

func TestGetProductNotFound(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/products/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilterOptions(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/api/filter-options")
	require.Equal(t, http.StatusOK, w.Code)

	var opts options.FilterOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.NotEmpty(t, opts.Makers)
	assert.NotEmpty(t, opts.GPUOptionsHierarchy)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "live", resp.Catalog)
	assert.Equal(t, 3, resp.Products)
}
