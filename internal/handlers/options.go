package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FilterOptionsHandler serves the filter reference data the UI renders its
// panels from.
// GET /api/filter-options
func FilterOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, filterOptions)
}
