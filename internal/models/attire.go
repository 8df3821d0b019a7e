package models

import "time"

type Attire struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`

	AttireName        string `gorm:"size:255;not null" json:"attire_name"`
	AttireType        string `gorm:"size:255" json:"attire_type"`
	AttireDescription string `gorm:"type:text" json:"attire_description"`
	TotalPrice        string `gorm:"size:255" json:"total_price"`

	ToShow      bool `gorm:"default:true" json:"to_show"`
	LandingPage bool `gorm:"default:false" json:"landing_page"`
	IsArchived  bool `gorm:"default:false" json:"is_archived"`

	Image1 string `gorm:"size:500" json:"image1"`
	Image2 string `gorm:"size:500" json:"image2"`
	Image3 string `gorm:"size:500" json:"image3"`
	Image4 string `gorm:"size:500" json:"image4"`
	Image5 string `gorm:"size:500" json:"image5"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
