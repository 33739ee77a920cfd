package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	outputDir string
	startTime time.Time
}

// NewHealthHandler creates a new health handler. outputDir is the configured
// output directory override, or "" when output goes next to each input.
func NewHealthHandler(outputDir string) *HealthHandler {
	return &HealthHandler{
		outputDir: outputDir,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp string        `json:"timestamp"`
	Uptime    string        `json:"uptime"`
	Services  ServiceHealth `json:"services"`
}

// ServiceHealth represents health of individual dependencies
type ServiceHealth struct {
	OutputDir string `json:"output_dir"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	dirStatus := "up"

	if err := h.checkOutputDir(); err != nil {
		status = "unhealthy"
		dirStatus = "down"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).String(),
		Services: ServiceHealth{
			OutputDir: dirStatus,
		},
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.checkOutputDir(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// checkOutputDir verifies the output directory override still exists.
// Without an override there is nothing shared to check.
func (h *HealthHandler) checkOutputDir() error {
	if h.outputDir == "" {
		return nil
	}
	info, err := os.Stat(h.outputDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", h.outputDir)
	}
	return nil
}
