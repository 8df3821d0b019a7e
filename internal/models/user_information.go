package models

import "time"

// UserInformation holds a client's body measurements. Values are kept as
// free text so the designer can record units and notes inline.
type UserInformation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Height        string `gorm:"size:50" json:"height"`
	Weight        string `gorm:"size:50" json:"weight"`
	Chest         string `gorm:"size:50" json:"chest"`
	Waist         string `gorm:"size:50" json:"waist"`
	Hips          string `gorm:"size:50" json:"hips"`
	ShoulderWidth string `gorm:"size:50" json:"shoulder_width"`
	ArmLength     string `gorm:"size:50" json:"arm_length"`
	LegLength     string `gorm:"size:50" json:"leg_length"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
