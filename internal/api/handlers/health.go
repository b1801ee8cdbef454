package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eperson-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports database connectivity and metadata registry state
type HealthHandler struct {
	db      *gorm.DB
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Overall health including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"database": "healthy"},
	}

	status := http.StatusOK
	if err := h.ping(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

// Ready reports whether the database answers and the metadata registry is seeded
// @Summary Readiness check
// @Description Ready once the database answers and the metadata registry holds fields
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  map[string]string{"database": "ready", "metadata_registry": "ready"},
	}

	if err := h.ping(ctx); err != nil {
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
		response.Services["metadata_registry"] = "unknown"
	} else if err := h.registrySeeded(ctx); err != nil {
		response.Ready = false
		response.Services["metadata_registry"] = "not ready: " + err.Error()
	}

	status := http.StatusOK
	if !response.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (h *HealthHandler) registrySeeded(ctx context.Context) error {
	var fields int64
	if err := h.db.WithContext(ctx).Model(&models.MetadataField{}).Count(&fields).Error; err != nil {
		return err
	}
	if fields == 0 {
		return fmt.Errorf("no metadata fields registered")
	}
	return nil
}
