package storage

import (
	"sync"
	"time"

	"github.com/Brandon-Mardis/Equip/internal/models"
)

// MemStore keeps every session in process memory. Used when no database URL
// is configured; data disappears on restart and sessions never expire.
// Unlike the relational backend, ids are per-session counters, so every
// session sees the same seed ids.
type MemStore struct {
	mu       sync.Mutex
	sessions map[string]*memSession
}

type memSession struct {
	assets        []models.Asset
	requests      []models.Request
	nextAssetID   uint
	nextRequestID uint
}

func NewMemStore() *MemStore {
	return &MemStore{sessions: make(map[string]*memSession)}
}

func (s *MemStore) Persistent() bool { return false }

// cloneAsset and cloneRequest detach the *string fields so returned records
// never alias store-internal memory.
func cloneAsset(a models.Asset) models.Asset {
	if a.AssignedTo != nil {
		v := *a.AssignedTo
		a.AssignedTo = &v
	}
	return a
}

func cloneRequest(r models.Request) models.Request {
	if r.Asset != nil {
		v := *r.Asset
		r.Asset = &v
	}
	return r
}

// session returns the named session, creating and seeding it on first use.
// Callers must hold s.mu.
func (s *MemStore) session(sessionID string) *memSession {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	sess := &memSession{
		assets:   seedAssets(),
		requests: seedRequests(),
	}
	for i := range sess.assets {
		sess.assets[i].ID = uint(i + 1)
		sess.assets[i].SessionID = sessionID
	}
	for i := range sess.requests {
		sess.requests[i].ID = uint(i + 1)
		sess.requests[i].SessionID = sessionID
	}
	sess.nextAssetID = uint(len(sess.assets) + 1)
	sess.nextRequestID = uint(len(sess.requests) + 1)
	s.sessions[sessionID] = sess
	return sess
}

func (s *MemStore) EnsureSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID)
	return nil
}

func (s *MemStore) ListAssets(sessionID string, f Filter) ([]models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	out := make([]models.Asset, 0, len(sess.assets))
	for _, a := range sess.assets {
		if !f.matchStatus(a.Status) {
			continue
		}
		if f.User != "" && (a.AssignedTo == nil || *a.AssignedTo != f.User) {
			continue
		}
		out = append(out, cloneAsset(a))
	}
	return out, nil
}

func (s *MemStore) CreateAsset(sessionID, name, category, site string) (*models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	var sameCategory int64
	for _, a := range sess.assets {
		if a.Category == category {
			sameCategory++
		}
	}

	asset := models.Asset{
		ID:           sess.nextAssetID,
		SessionID:    sessionID,
		Tag:          formatTag(category, sameCategory+1),
		Name:         name,
		Category:     category,
		Status:       models.AssetAvailable,
		Site:         site,
		PurchaseDate: models.Today(),
	}
	sess.assets = append(sess.assets, asset)
	sess.nextAssetID++
	return &asset, nil
}

func (s *MemStore) DeleteAsset(sessionID string, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	for i, a := range sess.assets {
		if a.ID == id {
			sess.assets = append(sess.assets[:i], sess.assets[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) ListRequests(sessionID string, f Filter) ([]models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	out := make([]models.Request, 0, len(sess.requests))
	for _, r := range sess.requests {
		if !f.matchStatus(r.Status) {
			continue
		}
		if f.User != "" && r.User != f.User {
			continue
		}
		out = append(out, cloneRequest(r))
	}
	return out, nil
}

func (s *MemStore) CreateRequest(sessionID, reqType, description, priority, user string) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	request := models.Request{
		ID:          sess.nextRequestID,
		SessionID:   sessionID,
		Type:        reqType,
		Description: description,
		Priority:    priority,
		Status:      models.RequestPending,
		User:        user,
		CreatedAt:   models.Today(),
	}
	sess.requests = append(sess.requests, request)
	sess.nextRequestID++
	return &request, nil
}

func (s *MemStore) UpdateRequestStatus(sessionID string, id uint, status string) (*models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	for i := range sess.requests {
		if sess.requests[i].ID == id {
			sess.requests[i].Status = status
			updated := cloneRequest(sess.requests[i])
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) Stats(sessionID string) (*Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(sessionID)

	st := Stats{TotalAssets: int64(len(sess.assets))}
	for _, a := range sess.assets {
		switch a.Status {
		case models.AssetAssigned:
			st.Assigned++
		case models.AssetAvailable:
			st.Available++
		case models.AssetMaintenance:
			st.Maintenance++
		case models.AssetBroken:
			st.Broken++
		}
	}
	for _, r := range sess.requests {
		switch r.Status {
		case models.RequestPending:
			st.PendingRequests++
		case models.RequestApproved:
			st.ApprovedRequests++
		case models.RequestDenied:
			st.DeniedRequests++
		case models.RequestCompleted:
			st.CompletedRequests++
		}
	}
	return &st, nil
}

// CleanupSessions is a no-op: in-memory sessions live until the process
// exits.
func (s *MemStore) CleanupSessions(time.Duration) (int64, error) {
	return 0, nil
}
