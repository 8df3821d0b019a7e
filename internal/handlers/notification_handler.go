package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
)

type NotificationHandler struct {
	db     *gorm.DB
	writer *notify.Writer
}

func NewNotificationHandler(db *gorm.DB, writer *notify.Writer) *NotificationHandler {
	return &NotificationHandler{db: db, writer: writer}
}

// List returns the caller's non-archived notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var rows []models.Notification
	if err := h.db.
		Where("receiver_id = ? AND is_archived = ?", user.ID, false).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "notification_list_failed", "Could not list notifications.")
		return
	}

	httpresp.List(c, rows)
}

type CreateNotificationRequest struct {
	ReceiverID *uint  `json:"receiver_id"`
	Header     string `json:"header" binding:"required"`
	Message    string `json:"message"`
	Link       string `json:"link"`
}

// Create writes a manual notification. Omitting receiver_id routes it to
// the shop admin, which is how clients raise issues to the shop.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	if req.ReceiverID != nil && !middleware.IsStaff(c) {
		httperr.Forbidden(c, "staff_only", "Only staff may address a specific receiver.")
		return
	}

	if err := h.writer.Write(notify.Event{
		ReceiverID: req.ReceiverID,
		Header:     req.Header,
		Message:    req.Message,
		Link:       req.Link,
		IsSystem:   false,
	}); err != nil {
		httperr.Internal(c, "notification_create_failed", "Could not save the notification.")
		return
	}

	httpresp.Message(c, http.StatusCreated, "Notification sent.")
}

func (h *NotificationHandler) ownNotification(c *gin.Context) (*models.Notification, bool) {
	user := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return nil, false
	}

	var n models.Notification
	if err := h.db.Where("id = ? AND receiver_id = ?", uint(id), user.ID).First(&n).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
		return nil, false
	}
	return &n, true
}

// MarkAsRead is idempotent: re-marking a read notification succeeds.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	n, ok := h.ownNotification(c)
	if !ok {
		return
	}

	if !n.IsRead {
		n.IsRead = true
		if err := h.db.Save(n).Error; err != nil {
			httperr.Internal(c, "notification_update_failed", "Could not update the notification.")
			return
		}
	}

	httpresp.OK(c, n)
}

// MarkAllAsRead flips every unread notification for the caller. Zero rows
// affected is still a success.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	user := middleware.CurrentUser(c)

	res := h.db.Model(&models.Notification{}).
		Where("receiver_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)
	if res.Error != nil {
		httperr.Internal(c, "notification_update_failed", "Could not update notifications.")
		return
	}

	httpresp.OK(c, gin.H{"marked_read": res.RowsAffected})
}

// Archive hides a notification from the caller's list.
func (h *NotificationHandler) Archive(c *gin.Context) {
	n, ok := h.ownNotification(c)
	if !ok {
		return
	}

	n.IsArchived = true
	if err := h.db.Save(n).Error; err != nil {
		httperr.Internal(c, "notification_update_failed", "Could not archive the notification.")
		return
	}

	httpresp.Message(c, http.StatusOK, "Notification archived.")
}
