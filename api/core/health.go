package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler answers the liveness probe.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Handle(c *gin.Context) {
	health := gin.H{
		"status": "ok",
		"checks": gin.H{
			"database": h.checkDatabase(),
		},
	}

	httpStatus := http.StatusOK
	if health["checks"].(gin.H)["database"] != "ok" {
		health["status"] = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, health)
}

func (h *HealthHandler) checkDatabase() string {
	if h.db == nil {
		return "not initialized"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return "error: " + err.Error()
	}
	if err := sqlDB.Ping(); err != nil {
		return "unavailable: " + err.Error()
	}
	return "ok"
}
