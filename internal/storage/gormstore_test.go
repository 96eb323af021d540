package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Brandon-Mardis/Equip/internal/models"
)

// newTestStore builds a GormStore over a throwaway sqlite database. The
// production driver is postgres, but the store only issues portable gorm
// calls.
func newTestStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()

	// _foreign_keys in the DSN turns the pragma on for every pooled
	// connection, not just the one an Exec would run on
	dsn := filepath.Join(t.TempDir(), "equip.db") + "?_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Session{}, &models.Asset{}, &models.Request{}))
	return NewGormStore(db), db
}

func TestGormStore_EnsureSessionSeeds(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.EnsureSession("s1"))

	assets, err := s.ListAssets("s1", Filter{})
	require.NoError(t, err)
	require.Len(t, assets, 12)
	// fresh database, so the global sequence starts at 1
	for i, a := range assets {
		assert.Equal(t, uint(i+1), a.ID)
	}
	assert.Equal(t, "EQ-LAP-001", assets[0].Tag)
	assert.Equal(t, "2024-03-15", assets[0].PurchaseDate.String())
	require.NotNil(t, assets[0].AssignedTo)
	assert.Equal(t, "Sam Rivera", *assets[0].AssignedTo)
	assert.Nil(t, assets[1].AssignedTo)

	requests, err := s.ListRequests("s1", Filter{})
	require.NoError(t, err)
	require.Len(t, requests, 5)
	assert.Nil(t, requests[0].Asset)
	require.NotNil(t, requests[1].Asset)
	assert.Equal(t, "ThinkPad X1 Carbon", *requests[1].Asset)

	// idempotent: a second ensure does not reseed
	require.NoError(t, s.EnsureSession("s1"))
	assets, err = s.ListAssets("s1", Filter{})
	require.NoError(t, err)
	assert.Len(t, assets, 12)
}

func TestGormStore_CreateAsset(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureSession("s1"))

	asset, err := s.CreateAsset("s1", "Test Pad", "Laptop", "HQ")
	require.NoError(t, err)
	assert.Equal(t, uint(13), asset.ID)
	assert.Equal(t, "EQ-LAP-006", asset.Tag)
	assert.Equal(t, models.AssetAvailable, asset.Status)
	assert.Nil(t, asset.AssignedTo)
	assert.Equal(t, models.Today().String(), asset.PurchaseDate.String())

	// tag counts are per session: a second session restarts at 6 too
	require.NoError(t, s.EnsureSession("s2"))
	other, err := s.CreateAsset("s2", "Test Pad", "Laptop", "Remote")
	require.NoError(t, err)
	assert.Equal(t, "EQ-LAP-006", other.Tag)
	// but ids come from the shared sequence
	assert.Greater(t, other.ID, asset.ID)
}

func TestGormStore_Filters(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureSession("s1"))

	all, err := s.ListAssets("s1", Filter{})
	require.NoError(t, err)
	sentinel, err := s.ListAssets("s1", Filter{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, all, sentinel)

	broken, err := s.ListAssets("s1", Filter{Status: "Broken"})
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, "ThinkPad X1 Carbon", broken[0].Name)

	sams, err := s.ListRequests("s1", Filter{User: "Sam Rivera"})
	require.NoError(t, err)
	assert.Len(t, sams, 2)
}

func TestGormStore_DeleteAsset(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureSession("s1"))
	require.NoError(t, s.EnsureSession("s2"))

	require.NoError(t, s.DeleteAsset("s1", 3))
	assets, err := s.ListAssets("s1", Filter{})
	require.NoError(t, err)
	assert.Len(t, assets, 11)

	assert.ErrorIs(t, s.DeleteAsset("s1", 3), ErrNotFound)
	// ids belonging to another session are invisible
	assert.ErrorIs(t, s.DeleteAsset("s1", 14), ErrNotFound)
	assets, err = s.ListAssets("s2", Filter{})
	require.NoError(t, err)
	assert.Len(t, assets, 12)
}

func TestGormStore_UpdateRequestStatus(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureSession("s1"))

	updated, err := s.UpdateRequestStatus("s1", 1, models.RequestApproved)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, updated.Status)

	// arbitrary values pass through unvalidated
	odd, err := s.UpdateRequestStatus("s1", 2, "On Hold")
	require.NoError(t, err)
	assert.Equal(t, "On Hold", odd.Status)

	_, err = s.UpdateRequestStatus("s1", 999, models.RequestDenied)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_Stats(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.EnsureSession("s1"))

	st, err := s.Stats("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(12), st.TotalAssets)
	assert.Equal(t, int64(6), st.Assigned)
	assert.Equal(t, int64(4), st.Available)
	assert.Equal(t, int64(1), st.Maintenance)
	assert.Equal(t, int64(1), st.Broken)
	assert.Equal(t, int64(2), st.PendingRequests)
	assert.Equal(t, int64(1), st.ApprovedRequests)
	assert.Equal(t, int64(1), st.DeniedRequests)
	assert.Equal(t, int64(1), st.CompletedRequests)
}

func TestGormStore_CleanupSessions(t *testing.T) {
	s, db := newTestStore(t)
	require.NoError(t, s.EnsureSession("old"))
	require.NoError(t, s.EnsureSession("fresh"))

	// age one session past the expiry window
	stale := time.Now().Add(-25 * time.Hour)
	require.NoError(t, db.Model(&models.Session{}).
		Where("id = ?", "old").
		Update("created_at", stale).Error)

	deleted, err := s.CleanupSessions(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// children of the expired session went with it
	var orphans int64
	require.NoError(t, db.Model(&models.Asset{}).
		Where("session_id = ?", "old").
		Count(&orphans).Error)
	assert.Zero(t, orphans)

	assets, err := s.ListAssets("fresh", Filter{})
	require.NoError(t, err)
	assert.Len(t, assets, 12)
	assert.True(t, s.Persistent())
}
