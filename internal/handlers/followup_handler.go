package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// Follow-up contacts have their own lifecycle, independent of the
// appointment they chase.
type FollowUpHandler struct {
	db *gorm.DB
}

func NewFollowUpHandler(db *gorm.DB) *FollowUpHandler {
	return &FollowUpHandler{db: db}
}

type CreateFollowUpRequest struct {
	UserID uint   `json:"user_id"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time"`
	Notes  string `json:"notes"`
}

func (h *FollowUpHandler) Create(c *gin.Context) {
	var req CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.Validation(c, gin.H{"date": "Must be YYYY-MM-DD."})
		return
	}

	caller := middleware.CurrentUser(c)

	// Staff may schedule a follow-up for any client; everyone else only
	// for themselves.
	userID := caller.ID
	if caller.IsStaff && req.UserID != 0 {
		userID = req.UserID
	}

	fu := models.FollowUpAppointment{
		UserID:         userID,
		Date:           date,
		Time:           req.Time,
		Notes:          req.Notes,
		Status:         string(domain.FollowUpPending),
		ClientResponse: string(domain.ResponseNone),
	}

	if err := h.db.Create(&fu).Error; err != nil {
		httperr.Internal(c, "create_followup_failed", "Could not create the follow-up.")
		return
	}

	httpresp.Created(c, fu)
}

func (h *FollowUpHandler) List(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	q := h.db.Preload("User").Order("date DESC")
	if !caller.IsStaff {
		q = q.Where("user_id = ?", caller.ID)
	}

	var followups []models.FollowUpAppointment
	if err := q.Find(&followups).Error; err != nil {
		httperr.Internal(c, "list_followups_failed", "Could not list follow-ups.")
		return
	}

	httpresp.List(c, followups)
}

type UpdateFollowUpRequest struct {
	Date           *string `json:"date"`
	Time           *string `json:"time"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
	ClientResponse *string `json:"client_response"`
}

func (h *FollowUpHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid follow-up id.")
		return
	}

	caller := middleware.CurrentUser(c)

	q := h.db.Where("id = ?", id)
	if !caller.IsStaff {
		q = q.Where("user_id = ?", caller.ID)
	}

	var fu models.FollowUpAppointment
	if err := q.First(&fu).Error; err != nil {
		httperr.NotFound(c, "followup_not_found", "Follow-up not found.")
		return
	}

	var req UpdateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	if req.Date != nil {
		date, err := timezone.ParseDate(*req.Date)
		if err != nil {
			httperr.Validation(c, gin.H{"date": "Must be YYYY-MM-DD."})
			return
		}
		fu.Date = date
	}
	if req.Time != nil {
		fu.Time = *req.Time
	}
	if req.Notes != nil {
		fu.Notes = *req.Notes
	}
	if req.Status != nil {
		// Only staff close out follow-ups.
		if !caller.IsStaff {
			httperr.Forbidden(c, "staff_only", "Only staff may set the follow-up status.")
			return
		}
		if !domain.ValidFollowUpStatus(domain.FollowUpStatus(*req.Status)) {
			httperr.Validation(c, gin.H{"status": "Unknown follow-up status."})
			return
		}
		fu.Status = *req.Status
	}
	if req.ClientResponse != nil {
		if !domain.ValidClientResponse(domain.ClientResponse(*req.ClientResponse)) {
			httperr.Validation(c, gin.H{"client_response": "Unknown client response."})
			return
		}
		fu.ClientResponse = *req.ClientResponse
	}

	if err := h.db.Save(&fu).Error; err != nil {
		httperr.Internal(c, "update_followup_failed", "Could not update the follow-up.")
		return
	}

	httpresp.OK(c, fu)
}

func (h *FollowUpHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid follow-up id.")
		return
	}

	caller := middleware.CurrentUser(c)

	q := h.db.Where("id = ?", id)
	if !caller.IsStaff {
		q = q.Where("user_id = ?", caller.ID)
	}

	res := q.Delete(&models.FollowUpAppointment{})
	if res.Error != nil {
		httperr.Internal(c, "delete_followup_failed", "Could not delete the follow-up.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "followup_not_found", "Follow-up not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
