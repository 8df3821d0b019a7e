package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReceiverID *uint `json:"receiver_id"`
	Receiver   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"receiver,omitempty"`

	Header  string `gorm:"size:255;not null" json:"header"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `gorm:"size:255" json:"link"`

	IsRead     bool `gorm:"default:false" json:"is_read"`
	IsArchived bool `gorm:"default:false" json:"is_archived"`

	// True for automated lifecycle notifications, false for manual ones.
	IsSystem bool `gorm:"default:false" json:"is_system"`

	CreatedAt time.Time `json:"created_at"`
}

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderID uint `json:"sender_id"`
	Sender   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`

	ReceiverID uint `json:"receiver_id"`
	Receiver   User `gorm:"foreignKey:ReceiverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"receiver"`

	Content string `gorm:"type:text;not null" json:"content"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
