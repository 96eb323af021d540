package models

// Request is a repair/replacement/new-equipment ticket. The asset field is a
// free-text reference, not a foreign key; it stays nil for requests created
// through the API.
type Request struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SessionID   string  `gorm:"index;size:64;not null" json:"-"`
	Type        string  `gorm:"size:32;not null" json:"type"`
	Asset       *string `gorm:"size:128" json:"asset"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Priority    string  `gorm:"size:16;not null;default:Normal" json:"priority"`
	Status      string  `gorm:"size:16;not null;default:Pending" json:"status"`
	User        string  `gorm:"column:user_name;size:64;not null" json:"user"`
	CreatedAt   Date    `gorm:"type:date" json:"createdAt"`
}

// Request statuses used by seed data and stats.
const (
	RequestPending   = "Pending"
	RequestApproved  = "Approved"
	RequestDenied    = "Denied"
	RequestCompleted = "Completed"
)
