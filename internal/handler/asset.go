package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Brandon-Mardis/Equip/internal/middleware"
	"github.com/Brandon-Mardis/Equip/internal/storage"
	"github.com/Brandon-Mardis/Equip/internal/util"
)

// AssetHandler serves the equipment inventory endpoints.
type AssetHandler struct {
	Store storage.Store
}

func NewAssetHandler(store storage.Store) *AssetHandler {
	return &AssetHandler{Store: store}
}

type createAssetReq struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Site     string `json:"site" binding:"required"`
	// accepted for frontend compatibility, not stored
	Notes string `json:"notes"`
}

// ListAssets returns the session's assets, optionally filtered by ?status=
// (the sentinel "all" means no filter) and ?user= (assignee).
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.Store.ListAssets(middleware.SessionID(c), storage.Filter{
		Status: c.Query("status"),
		User:   c.Query("user"),
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list assets")
		return
	}
	c.JSON(http.StatusOK, assets)
}

// CreateAsset registers a new asset: next id, generated tag, Available
// status, today's purchase date.
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req createAssetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	asset, err := h.Store.CreateAsset(middleware.SessionID(c), req.Name, req.Category, req.Site)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create asset")
		return
	}
	c.JSON(http.StatusOK, asset)
}

// DeleteAsset removes one asset by id within the session.
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.Store.DeleteAsset(middleware.SessionID(c), uint(id)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Asset not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, "failed to delete asset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted"})
}
