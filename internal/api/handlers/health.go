package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      *gorm.DB
	redis   redis.Cmdable
	version string
}

// NewHealthHandler creates a new health handler. cache may be nil when token
// revocation is kept in memory.
func NewHealthHandler(db *gorm.DB, cache redis.Cmdable, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		redis:   cache,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// checkServices pings every backing service and reports whether all answered
func (h *HealthHandler) checkServices(ctx context.Context, okLabel, failLabel string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	healthy := true
	services := make(map[string]string)

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		healthy = false
		services["database"] = failLabel + ": " + err.Error()
	} else {
		services["database"] = okLabel
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			healthy = false
			services["redis"] = failLabel + ": " + err.Error()
		} else {
			services["redis"] = okLabel
		}
	}

	return services, healthy
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.checkServices(c.Request.Context(), "healthy", "error")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.checkServices(c.Request.Context(), "ready", "not ready")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
