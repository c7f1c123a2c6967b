package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Harshitduggal1/scheduling-software/internal/infrastructure/cache"
)

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// SetupHealthRoutes registers health check endpoints
func SetupHealthRoutes(router *gin.Engine, redis *cache.RedisClient) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})

	router.GET("/health/cache", func(c *gin.Context) {
		if redis == nil || !redis.IsHealthy() {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:    "unhealthy",
				Timestamp: time.Now().UTC(),
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	})
}
