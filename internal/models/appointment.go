package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Time string    `gorm:"size:255" json:"time"`

	AppointmentType string `gorm:"size:20;default:'fitting'" json:"appointment_type"`
	Description     string `gorm:"size:500" json:"description"`
	Image           string `gorm:"size:500" json:"image"`

	// Optional reference to a gallery item the client wants replicated.
	AttireID *uint   `json:"attire_id"`
	Attire   *Attire `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"attire,omitempty"`

	NotCome bool `gorm:"default:false" json:"not_come"`

	AppointmentStatus string `gorm:"size:20;default:'pending'" json:"appointment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type FollowUpAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Date time.Time `gorm:"type:date;not null" json:"date"`
	Time string    `gorm:"size:255" json:"time"`

	Status         string `gorm:"size:20;default:'pending'" json:"status"`
	ClientResponse string `gorm:"size:20;default:'none'" json:"client_response"`
	Notes          string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
