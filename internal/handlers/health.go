package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports liveness and pings the database.
func (h *HealthHandler) Check(ctx *gin.Context) {
	sqlDB, err := h.db.DB()

	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}

	if err != nil {
		respondError(ctx, fmt.Errorf("health check: %w", err))
		return
	}

	respondData(ctx, http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
