package models

import "time"

// Session scopes one caller's dataset. The id is an opaque token supplied by
// the client in X-Session-Id; it is never validated or authenticated.
// Deleting a session cascades to its assets and requests.
type Session struct {
	ID        string `gorm:"primaryKey;size:64"`
	CreatedAt time.Time

	Assets   []Asset   `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Requests []Request `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}
