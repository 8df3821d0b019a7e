package models

import "time"

// AuthToken is one issued bearer token. Only the SHA-256 digest is stored;
// the plaintext token leaves the server exactly once, in the login response.
type AuthToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Digest    string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
