package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
)

type MessageHandler struct {
	db *gorm.DB
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{db: db}
}

type SendMessageRequest struct {
	ReceiverID *uint  `json:"receiver_id"`
	Content    string `json:"content" binding:"required"`
}

// firstStaff is where client messages land when they cannot pick a
// receiver themselves.
func (h *MessageHandler) firstStaff() (*models.User, error) {
	var staff models.User
	err := h.db.Where("is_staff = ?", true).Order("id ASC").First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// Send creates a message. Clients always message the shop regardless of
// any receiver they submit; staff must name a receiver.
func (h *MessageHandler) Send(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	var receiverID uint
	if user.IsStaff {
		if req.ReceiverID == nil {
			httperr.Validation(c, gin.H{"receiver_id": "This field is required."})
			return
		}
		var receiver models.User
		if err := h.db.First(&receiver, *req.ReceiverID).Error; err != nil {
			httperr.NotFound(c, "user_not_found", "Receiver not found.")
			return
		}
		receiverID = receiver.ID
	} else {
		staff, err := h.firstStaff()
		if err != nil {
			httperr.Internal(c, "no_staff_available", "No staff account to receive the message.")
			return
		}
		receiverID = staff.ID
	}

	msg := models.Message{
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "message_create_failed", "Could not save the message.")
		return
	}

	httpresp.Created(c, msg)
}

// List returns the caller's conversation: everything they sent or
// received, oldest first. Staff see every thread in the shop.
func (h *MessageHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	q := h.db.
		Preload("Sender").
		Preload("Receiver").
		Order("created_at ASC")
	if !user.IsStaff {
		q = q.Where("sender_id = ? OR receiver_id = ?", user.ID, user.ID)
	}

	var rows []models.Message
	if err := q.Find(&rows).Error; err != nil {
		httperr.Internal(c, "message_list_failed", "Could not list messages.")
		return
	}

	httpresp.List(c, rows)
}

// MarkRead marks every message addressed to the caller as read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	user := middleware.CurrentUser(c)

	res := h.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)
	if res.Error != nil {
		httperr.Internal(c, "message_update_failed", "Could not update messages.")
		return
	}

	httpresp.OK(c, gin.H{"marked_read": res.RowsAffected})
}
