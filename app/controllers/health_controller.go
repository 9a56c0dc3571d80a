package controllers

import (
	"net/http"
	"time"

	"microblog/app/models"
)

// HealthController handles the health check endpoint
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check handles GET /api/health
func (hc *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
