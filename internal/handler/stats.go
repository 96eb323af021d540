package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Brandon-Mardis/Equip/internal/middleware"
	"github.com/Brandon-Mardis/Equip/internal/storage"
	"github.com/Brandon-Mardis/Equip/internal/util"
)

// StatsHandler serves the aggregate dashboard counters.
type StatsHandler struct {
	Store storage.Store
}

func NewStatsHandler(store storage.Store) *StatsHandler {
	return &StatsHandler{Store: store}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.Store.Stats(middleware.SessionID(c))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
