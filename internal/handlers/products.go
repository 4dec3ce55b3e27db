package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iyabazu/pc-search/internal/catalog"
)

// MaxBulkLimit caps the bulk product fetch. The client-side pipeline pulls
// the whole collection in one request and paginates in memory.
const MaxBulkLimit = 5000

// ListProductsResponse is the bulk fetch payload.
type ListProductsResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Fallback bool              `json:"fallback"`
}

// ListProducts returns the full active product collection.
// GET /api/products?limit=5000
func ListProducts(c *gin.Context) {
	limit := MaxBulkLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n < MaxBulkLimit {
			limit = n
		}
	}

	snapshot := productCache.Snapshot()
	products := snapshot.Products
	if len(products) > limit {
		products = products[:limit]
	}

	c.JSON(http.StatusOK, ListProductsResponse{
		Products: products,
		Total:    len(products),
		Fallback: snapshot.Fallback,
	})
}

// GetProduct returns one product by id, soft-deleted ones included.
// GET /api/products/:id
func GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	product, err := productStore.GetByID(c.Request.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("Failed to fetch product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
