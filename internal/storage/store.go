package storage

import (
	"errors"
	"time"

	"github.com/Brandon-Mardis/Equip/internal/models"
)

// ErrNotFound signals that an asset or request id does not exist within the
// given session. Handlers translate it to HTTP 404.
var ErrNotFound = errors.New("record not found")

// Filter narrows list operations. Status is ignored when empty or "all";
// User matches the asset assignee or the request submitter. Matches are
// exact and case-sensitive.
type Filter struct {
	Status string
	User   string
}

func (f Filter) matchStatus(status string) bool {
	return f.Status == "" || f.Status == "all" || f.Status == status
}

// Stats aggregates per-status counts for one session.
type Stats struct {
	TotalAssets       int64 `json:"totalAssets"`
	Assigned          int64 `json:"assigned"`
	Available         int64 `json:"available"`
	Maintenance       int64 `json:"maintenance"`
	Broken            int64 `json:"broken"`
	PendingRequests   int64 `json:"pendingRequests"`
	ApprovedRequests  int64 `json:"approvedRequests"`
	DeniedRequests    int64 `json:"deniedRequests"`
	CompletedRequests int64 `json:"completedRequests"`
}

// Store is the session-scoped storage contract. Both backends behave
// identically from the caller's point of view; the backend is chosen once at
// startup and handed to the handlers, never looked up per request.
//
// EnsureSession must run before any other operation touches a session for
// the first time; the session middleware takes care of that for HTTP
// callers. An unseen session is created and populated with the seed catalog.
type Store interface {
	EnsureSession(sessionID string) error

	ListAssets(sessionID string, f Filter) ([]models.Asset, error)
	CreateAsset(sessionID, name, category, site string) (*models.Asset, error)
	DeleteAsset(sessionID string, id uint) error

	ListRequests(sessionID string, f Filter) ([]models.Request, error)
	CreateRequest(sessionID, reqType, description, priority, user string) (*models.Request, error)
	UpdateRequestStatus(sessionID string, id uint, status string) (*models.Request, error)

	Stats(sessionID string) (*Stats, error)

	// CleanupSessions removes sessions older than maxAge together with their
	// assets and requests, returning how many were deleted. The in-memory
	// backend has no expiry and reports zero.
	CleanupSessions(maxAge time.Duration) (int64, error)

	// Persistent reports whether data survives a process restart.
	Persistent() bool
}
