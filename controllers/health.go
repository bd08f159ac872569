package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/kv"
	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness plus the state of the two
// backing stores
type HealthController struct {
	db db.Database
	kv kv.KeyValueStore
}

func NewHealthController(database db.Database, kvStore kv.KeyValueStore) *HealthController {
	return &HealthController{db: database, kv: kvStore}
}

// Health handles the health check endpoint
func (ctrl HealthController) Health(c *gin.Context) {
	dbStatus := "ok"
	if err := ctrl.db.Ping(c.Request.Context()); err != nil {
		dbStatus = "unreachable"
	}

	kvStatus := "ok"
	if err := ctrl.kv.Ping(); err != nil {
		kvStatus = "unreachable"
	}

	status := http.StatusOK
	if dbStatus != "ok" || kvStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"cache":    kvStatus,
	})
}
