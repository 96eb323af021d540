package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Brandon-Mardis/Equip/internal/storage"
	"github.com/Brandon-Mardis/Equip/internal/util"
)

// sessionMaxAge is how long a relational session lives before the cleanup
// sweep removes it.
const sessionMaxAge = 24 * time.Hour

// SystemHandler serves health and maintenance endpoints that are not scoped
// to a session.
type SystemHandler struct {
	Store storage.Store
}

func NewSystemHandler(store storage.Store) *SystemHandler {
	return &SystemHandler{Store: store}
}

// Health reports liveness and which backend is active.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  h.Store.Persistent(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Cleanup expires sessions older than 24 hours. Triggered externally by a
// cron hit; a no-op when data lives in memory.
func (h *SystemHandler) Cleanup(c *gin.Context) {
	timestamp := time.Now().Format(time.RFC3339)

	if !h.Store.Persistent() {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Cleanup not needed in memory mode",
			"timestamp": timestamp,
		})
		return
	}

	deleted, err := h.Store.CleanupSessions(sessionMaxAge)
	if err != nil {
		slog.Error("cleanup sessions", "error", err)
		util.Error(c, http.StatusInternalServerError, "cleanup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted_sessions": deleted,
		"timestamp":        timestamp,
	})
}
