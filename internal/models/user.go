package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:250;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Address      string `gorm:"size:500" json:"address"`
	PhoneNumber  string `gorm:"size:20" json:"phone_number"`
	FacebookLink string `gorm:"size:500" json:"facebook_link"`

	IsStaff     bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`

	// Incremented only when the client cancels an approved appointment.
	Cancels int `gorm:"default:0" json:"cancels"`

	// Flipped the first time a measurement record is saved for the user.
	HasMeasurements bool `gorm:"default:false" json:"has_measurements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
