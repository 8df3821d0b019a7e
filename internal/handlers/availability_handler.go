package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/availability"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

type SetUnavailabilityRequest struct {
	Date string `json:"date" binding:"required"`

	SlotOne   *bool `json:"slot_one"`
	SlotTwo   *bool `json:"slot_two"`
	SlotThree *bool `json:"slot_three"`
	SlotFour  *bool `json:"slot_four"`
	SlotFive  *bool `json:"slot_five"`

	ReasonOne   string `json:"reason_one"`
	ReasonTwo   string `json:"reason_two"`
	ReasonThree string `json:"reason_three"`
	ReasonFour  string `json:"reason_four"`
	ReasonFive  string `json:"reason_five"`
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}

func dayToRow(date time.Time, day domain.Day) models.Unavailability {
	return models.Unavailability{
		Date:        date,
		SlotOne:     day.Slots[0],
		SlotTwo:     day.Slots[1],
		SlotThree:   day.Slots[2],
		SlotFour:    day.Slots[3],
		SlotFive:    day.Slots[4],
		ReasonOne:   day.Reasons[0],
		ReasonTwo:   day.Reasons[1],
		ReasonThree: day.Reasons[2],
		ReasonFour:  day.Reasons[3],
		ReasonFive:  day.Reasons[4],
	}
}

// Set is the upsert: a fully-available submission deletes the row for the
// date (or no-ops when none exists), anything else creates or rewrites it
// with normalized reasons.
func (h *AvailabilityHandler) Set(c *gin.Context) {
	var req SetUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.Validation(c, gin.H{"date": "Must be YYYY-MM-DD."})
		return
	}

	day := domain.Day{
		Slots: [5]bool{
			boolOrFalse(req.SlotOne),
			boolOrFalse(req.SlotTwo),
			boolOrFalse(req.SlotThree),
			boolOrFalse(req.SlotFour),
			boolOrFalse(req.SlotFive),
		},
		Reasons: [5]string{
			req.ReasonOne,
			req.ReasonTwo,
			req.ReasonThree,
			req.ReasonFour,
			req.ReasonFive,
		},
	}
	day.Normalize()

	var existing models.Unavailability
	findErr := h.db.Where("date = ?", date).First(&existing).Error
	if findErr != nil && findErr != gorm.ErrRecordNotFound {
		httperr.Internal(c, "availability_lookup_failed", "Could not look up the date.")
		return
	}

	switch domain.Decide(day, findErr == nil) {
	case domain.ActionNone:
		// Distinct from the delete case so clients can tell nothing
		// was mutated.
		httpresp.Message(c, http.StatusOK, "No action taken. All slots are already available.")

	case domain.ActionDelete:
		if err := h.db.Delete(&existing).Error; err != nil {
			httperr.Internal(c, "availability_delete_failed", "Could not remove the record.")
			return
		}
		// A 204 never carries a body, the status alone signals the removal.
		c.Status(http.StatusNoContent)

	case domain.ActionCreate:
		row := dayToRow(date, day)
		if err := h.db.Create(&row).Error; err != nil {
			httperr.Internal(c, "availability_create_failed", "Could not save the record.")
			return
		}
		httpresp.OK(c, row)

	case domain.ActionUpdate:
		row := dayToRow(date, day)
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
		if err := h.db.Save(&row).Error; err != nil {
			httperr.Internal(c, "availability_update_failed", "Could not save the record.")
			return
		}
		httpresp.OK(c, row)
	}
}

// PartialUpdate merges the submitted slots into the existing row, then
// applies the same all-available-deletes rule.
func (h *AvailabilityHandler) PartialUpdate(c *gin.Context) {
	var req SetUnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		httperr.Validation(c, gin.H{"date": "Must be YYYY-MM-DD."})
		return
	}

	var existing models.Unavailability
	if err := h.db.Where("date = ?", date).First(&existing).Error; err != nil {
		httperr.NotFound(c, "unavailability_not_found", "No record for that date.")
		return
	}

	day := domain.Day{
		Slots: [5]bool{
			existing.SlotOne, existing.SlotTwo, existing.SlotThree,
			existing.SlotFour, existing.SlotFive,
		},
		Reasons: [5]string{
			existing.ReasonOne, existing.ReasonTwo, existing.ReasonThree,
			existing.ReasonFour, existing.ReasonFive,
		},
	}

	slots := []*bool{req.SlotOne, req.SlotTwo, req.SlotThree, req.SlotFour, req.SlotFive}
	reasons := []string{req.ReasonOne, req.ReasonTwo, req.ReasonThree, req.ReasonFour, req.ReasonFive}
	for i, s := range slots {
		if s != nil {
			day.Slots[i] = *s
		}
		if reasons[i] != "" {
			day.Reasons[i] = reasons[i]
		}
	}
	day.Normalize()

	if day.AllAvailable() {
		if err := h.db.Delete(&existing).Error; err != nil {
			httperr.Internal(c, "availability_delete_failed", "Could not remove the record.")
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	existing.SlotOne, existing.SlotTwo, existing.SlotThree = day.Slots[0], day.Slots[1], day.Slots[2]
	existing.SlotFour, existing.SlotFive = day.Slots[3], day.Slots[4]
	existing.ReasonOne, existing.ReasonTwo, existing.ReasonThree = day.Reasons[0], day.Reasons[1], day.Reasons[2]
	existing.ReasonFour, existing.ReasonFive = day.Reasons[3], day.Reasons[4]

	if err := h.db.Save(&existing).Error; err != nil {
		httperr.Internal(c, "availability_update_failed", "Could not save the record.")
		return
	}

	httpresp.OK(c, existing)
}

// Display lists all records, optionally filtered to one exact date.
func (h *AvailabilityHandler) Display(c *gin.Context) {
	q := h.db.Order("date ASC")

	if raw := c.Query("date"); raw != "" {
		date, err := timezone.ParseDate(raw)
		if err != nil {
			httperr.Validation(c, gin.H{"date": "Must be YYYY-MM-DD."})
			return
		}
		q = q.Where("date = ?", date)
	}

	var rows []models.Unavailability
	if err := q.Find(&rows).Error; err != nil {
		httperr.Internal(c, "availability_list_failed", "Could not list records.")
		return
	}

	httpresp.List(c, rows)
}
