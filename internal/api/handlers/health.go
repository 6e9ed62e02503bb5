package handlers

import (
	"net/http"
	"time"

	"cavemap-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      *gorm.DB
	service string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, service string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		service: service,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health returns the health status of the service
// @Summary Health check
// @Description Get the health status of the service including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Service:   h.service,
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]string),
	}

	if err := database.Ping(h.db); err != nil {
		response.Status = "unhealthy"
		response.Checks["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Checks["database"] = "connected"

	c.JSON(http.StatusOK, response)
}
