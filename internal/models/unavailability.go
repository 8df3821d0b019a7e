package models

import "time"

// Unavailability stores booking-slot flags for one calendar date. A date with
// all five slots free has no row at all; absence means fully available.
type Unavailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`

	SlotOne   bool `gorm:"default:false" json:"slot_one"`   // 7:00 - 8:30
	SlotTwo   bool `gorm:"default:false" json:"slot_two"`   // 8:30 - 10:00
	SlotThree bool `gorm:"default:false" json:"slot_three"` // 10:00 - 11:30
	SlotFour  bool `gorm:"default:false" json:"slot_four"`  // 13:00 - 14:30
	SlotFive  bool `gorm:"default:false" json:"slot_five"`  // 14:30 - 16:00

	ReasonOne   string `gorm:"size:100" json:"reason_one"`
	ReasonTwo   string `gorm:"size:100" json:"reason_two"`
	ReasonThree string `gorm:"size:100" json:"reason_three"`
	ReasonFour  string `gorm:"size:100" json:"reason_four"`
	ReasonFive  string `gorm:"size:100" json:"reason_five"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
