package handlers

import (
	"classboard/internal/database"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness plus backing-store reachability.
func HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	if database.DB == nil {
		dbStatus = "uninitialized"
	} else if err := database.DB.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	status := http.StatusOK
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   "up",
		"database": dbStatus,
	})
}
