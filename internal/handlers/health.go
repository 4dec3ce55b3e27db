package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string    `json:"status"`
	Catalog  string    `json:"catalog"`
	Products int       `json:"products"`
	LoadedAt time.Time `json:"loadedAt"`
}

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	snapshot := productCache.Snapshot()

	response := HealthResponse{
		Status:   "ok",
		Catalog:  "live",
		Products: len(snapshot.Products),
		LoadedAt: snapshot.LoadedAt,
	}
	if snapshot.Fallback {
		response.Catalog = "fallback"
	}

	c.JSON(http.StatusOK, response)
}
