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

// RequestHandler serves the equipment-request (ticket) endpoints.
type RequestHandler struct {
	Store storage.Store
}

func NewRequestHandler(store storage.Store) *RequestHandler {
	return &RequestHandler{Store: store}
}

type createRequestReq struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	User        string `json:"user" binding:"required"`
}

type updateRequestReq struct {
	Status string `json:"status" binding:"required"`
}

// ListRequests returns the session's requests, optionally filtered by
// ?status= ("all" means no filter) and ?user= (submitter).
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.Store.ListRequests(middleware.SessionID(c), storage.Filter{
		Status: c.Query("status"),
		User:   c.Query("user"),
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CreateRequest files a new request: status Pending, no asset reference,
// today's date.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req createRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Store.CreateRequest(middleware.SessionID(c), req.Type, req.Description, req.Priority, req.User)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create request")
		return
	}
	c.JSON(http.StatusOK, request)
}

// UpdateRequestStatus sets a request's status. The value is stored verbatim;
// nothing restricts it to the canonical set.
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request id")
		return
	}

	var req updateRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Store.UpdateRequestStatus(middleware.SessionID(c), uint(id), req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Request not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, "failed to update request")
		return
	}
	c.JSON(http.StatusOK, request)
}
