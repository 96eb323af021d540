package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brandon-Mardis/Equip/internal/models"
	"github.com/Brandon-Mardis/Equip/internal/storage"
)

// stubStore fakes a relational backend for system-endpoint tests without a
// database.
type stubStore struct {
	persistent bool
	deleted    int64
	cleanupErr error
}

func (s *stubStore) EnsureSession(string) error { return nil }
func (s *stubStore) ListAssets(string, storage.Filter) ([]models.Asset, error) {
	return nil, nil
}
func (s *stubStore) CreateAsset(string, string, string, string) (*models.Asset, error) {
	return nil, nil
}
func (s *stubStore) DeleteAsset(string, uint) error { return nil }
func (s *stubStore) ListRequests(string, storage.Filter) ([]models.Request, error) {
	return nil, nil
}
func (s *stubStore) CreateRequest(string, string, string, string, string) (*models.Request, error) {
	return nil, nil
}
func (s *stubStore) UpdateRequestStatus(string, uint, string) (*models.Request, error) {
	return nil, nil
}
func (s *stubStore) Stats(string) (*storage.Stats, error) { return &storage.Stats{}, nil }
func (s *stubStore) CleanupSessions(time.Duration) (int64, error) {
	return s.deleted, s.cleanupErr
}
func (s *stubStore) Persistent() bool { return s.persistent }

func serveSystem(t *testing.T, store storage.Store, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSystemHandler(store)
	r.GET("/api/health", h.Health)
	r.GET("/api/cleanup", h.Cleanup)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth_ReportsBackend(t *testing.T) {
	w := serveSystem(t, &stubStore{persistent: true}, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["database"])
}

func TestCleanup_DatabaseMode(t *testing.T) {
	w := serveSystem(t, &stubStore{persistent: true, deleted: 3}, "/api/cleanup")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["deleted_sessions"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotContains(t, body, "message")
}

func TestCleanup_Error(t *testing.T) {
	w := serveSystem(t, &stubStore{persistent: true, cleanupErr: errors.New("boom")}, "/api/cleanup")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
