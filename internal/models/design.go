package models

import (
	"time"

	"gorm.io/datatypes"
)

type Design struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	// One design per approved appointment.
	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	AttireType   string    `gorm:"size:100;not null" json:"attire_type"`
	TargetedDate time.Time `gorm:"type:date;not null" json:"targeted_date"`
	Description  string    `gorm:"size:500" json:"description"`

	FittingDate       *time.Time `gorm:"type:date" json:"fitting_date"`
	FittingTime       string     `gorm:"size:255" json:"fitting_time"`
	FittingSuccessful bool       `gorm:"default:false" json:"fitting_successful"`

	ProcessStatus string `gorm:"size:20;default:'designing'" json:"process_status"`

	// PaymentStatus and Balance are derived from TotalAmount/AmountPaid and
	// recomputed on every persist. They are never accepted from callers.
	PaymentStatus string  `gorm:"size:20;default:'no_payment'" json:"payment_status"`
	TotalAmount   float64 `gorm:"not null" json:"total_amount"`
	AmountPaid    float64 `gorm:"default:0" json:"amount_paid"`
	Balance       float64 `gorm:"default:0" json:"balance"`

	ReferenceImage string `gorm:"size:500" json:"reference_image"`

	// Append-only audit trail of progress/payment updates.
	Updates datatypes.JSON `gorm:"type:jsonb" json:"updates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
