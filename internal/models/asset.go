package models

// Asset is one piece of tracked equipment. Status and category are stored as
// free text; the canonical sets live in the frontend and are not enforced.
type Asset struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SessionID    string  `gorm:"index;size:64;not null" json:"-"`
	Tag          string  `gorm:"size:32;not null" json:"tag"`
	Name         string  `gorm:"size:128;not null" json:"name"`
	Category     string  `gorm:"size:32;not null" json:"category"`
	Status       string  `gorm:"size:16;not null;default:Available" json:"status"`
	Site         string  `gorm:"size:64;not null" json:"site"`
	AssignedTo   *string `gorm:"size:64" json:"assignedTo"`
	PurchaseDate Date    `gorm:"type:date" json:"purchaseDate"`
}

// Asset statuses used by seed data and stats.
const (
	AssetAvailable   = "Available"
	AssetAssigned    = "Assigned"
	AssetMaintenance = "Maintenance"
	AssetBroken      = "Broken"
)
