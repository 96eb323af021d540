package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Brandon-Mardis/Equip/internal/models"
)

// GormStore is the relational backend. Record ids come from the table's
// global sequence; sessions only filter the view. Each operation is a single
// unit of work against the shared connection pool.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Persistent() bool { return true }

// EnsureSession creates and seeds the session row on first reference.
// Seeding is not atomic across the three inserts; acceptable for demo data.
func (s *GormStore) EnsureSession(sessionID string) error {
	err := s.db.Select("id").First(&models.Session{}, "id = ?", sessionID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup session: %w", err)
	}

	if err := s.db.Create(&models.Session{ID: sessionID}).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	assets := seedAssets()
	for i := range assets {
		assets[i].SessionID = sessionID
	}
	if err := s.db.Create(&assets).Error; err != nil {
		return fmt.Errorf("seed assets: %w", err)
	}
	requests := seedRequests()
	for i := range requests {
		requests[i].SessionID = sessionID
	}
	if err := s.db.Create(&requests).Error; err != nil {
		return fmt.Errorf("seed requests: %w", err)
	}
	return nil
}

func (s *GormStore) ListAssets(sessionID string, f Filter) ([]models.Asset, error) {
	q := s.db.Where("session_id = ?", sessionID)
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.User != "" {
		q = q.Where("assigned_to = ?", f.User)
	}
	var assets []models.Asset
	if err := q.Order("id").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (s *GormStore) CreateAsset(sessionID, name, category, site string) (*models.Asset, error) {
	var sameCategory int64
	if err := s.db.Model(&models.Asset{}).
		Where("session_id = ? AND category = ?", sessionID, category).
		Count(&sameCategory).Error; err != nil {
		return nil, fmt.Errorf("count category: %w", err)
	}

	asset := models.Asset{
		SessionID:    sessionID,
		Tag:          formatTag(category, sameCategory+1),
		Name:         name,
		Category:     category,
		Status:       models.AssetAvailable,
		Site:         site,
		PurchaseDate: models.Today(),
	}
	if err := s.db.Create(&asset).Error; err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return &asset, nil
}

func (s *GormStore) DeleteAsset(sessionID string, id uint) error {
	res := s.db.Where("id = ? AND session_id = ?", id, sessionID).Delete(&models.Asset{})
	if res.Error != nil {
		return fmt.Errorf("delete asset: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListRequests(sessionID string, f Filter) ([]models.Request, error) {
	q := s.db.Where("session_id = ?", sessionID)
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if f.User != "" {
		q = q.Where("user_name = ?", f.User)
	}
	var requests []models.Request
	if err := q.Order("id").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

func (s *GormStore) CreateRequest(sessionID, reqType, description, priority, user string) (*models.Request, error) {
	request := models.Request{
		SessionID:   sessionID,
		Type:        reqType,
		Description: description,
		Priority:    priority,
		Status:      models.RequestPending,
		User:        user,
		CreatedAt:   models.Today(),
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return &request, nil
}

func (s *GormStore) UpdateRequestStatus(sessionID string, id uint, status string) (*models.Request, error) {
	var request models.Request
	err := s.db.Where("id = ? AND session_id = ?", id, sessionID).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	request.Status = status
	if err := s.db.Save(&request).Error; err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	return &request, nil
}

func (s *GormStore) Stats(sessionID string) (*Stats, error) {
	var st Stats
	if err := s.db.Model(&models.Asset{}).
		Where("session_id = ?", sessionID).
		Count(&st.TotalAssets).Error; err != nil {
		return nil, fmt.Errorf("count assets: %w", err)
	}

	assetCounts := []struct {
		status string
		dst    *int64
	}{
		{models.AssetAssigned, &st.Assigned},
		{models.AssetAvailable, &st.Available},
		{models.AssetMaintenance, &st.Maintenance},
		{models.AssetBroken, &st.Broken},
	}
	for _, c := range assetCounts {
		if err := s.db.Model(&models.Asset{}).
			Where("session_id = ? AND status = ?", sessionID, c.status).
			Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count assets %s: %w", c.status, err)
		}
	}

	requestCounts := []struct {
		status string
		dst    *int64
	}{
		{models.RequestPending, &st.PendingRequests},
		{models.RequestApproved, &st.ApprovedRequests},
		{models.RequestDenied, &st.DeniedRequests},
		{models.RequestCompleted, &st.CompletedRequests},
	}
	for _, c := range requestCounts {
		if err := s.db.Model(&models.Request{}).
			Where("session_id = ? AND status = ?", sessionID, c.status).
			Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("count requests %s: %w", c.status, err)
		}
	}
	return &st, nil
}

// CleanupSessions drops sessions past maxAge; assets and requests go with
// them via the foreign-key cascade.
func (s *GormStore) CleanupSessions(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	res := s.db.Where("created_at < ?", cutoff).Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("cleanup sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
