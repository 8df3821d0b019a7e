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
)

type UserInformationHandler struct {
	db *gorm.DB
}

func NewUserInformationHandler(db *gorm.DB) *UserInformationHandler {
	return &UserInformationHandler{db: db}
}

type MeasurementsRequest struct {
	UserID *uint `json:"user_id"`

	Height        string `json:"height"`
	Weight        string `json:"weight"`
	Chest         string `json:"chest"`
	Waist         string `json:"waist"`
	Hips          string `json:"hips"`
	ShoulderWidth string `json:"shoulder_width"`
	ArmLength     string `json:"arm_length"`
	LegLength     string `json:"leg_length"`
}

func applyMeasurements(info *models.UserInformation, req *MeasurementsRequest) {
	info.Height = req.Height
	info.Weight = req.Weight
	info.Chest = req.Chest
	info.Waist = req.Waist
	info.Hips = req.Hips
	info.ShoulderWidth = req.ShoulderWidth
	info.ArmLength = req.ArmLength
	info.LegLength = req.LegLength
}

// markHasMeasurements keeps the user flag in sync so the shop can see at
// a glance who still needs a fitting session.
func (h *UserInformationHandler) markHasMeasurements(userID uint) error {
	return h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("has_measurements", true).Error
}

// Create is staff-only: measurements are taken in person at the shop.
func (h *UserInformationHandler) Create(c *gin.Context) {
	var req MeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}
	if req.UserID == nil {
		httperr.Validation(c, gin.H{"user_id": "This field is required."})
		return
	}

	var client models.User
	if err := h.db.First(&client, *req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	info := models.UserInformation{UserID: client.ID}
	applyMeasurements(&info, &req)

	if err := h.db.Create(&info).Error; err != nil {
		httperr.BadRequest(c, "measurements_exist", "Measurements already recorded for this user.")
		return
	}
	if err := h.markHasMeasurements(client.ID); err != nil {
		httperr.Internal(c, "user_update_failed", "Could not flag the user.")
		return
	}

	httpresp.Created(c, info)
}

func (h *UserInformationHandler) List(c *gin.Context) {
	var rows []models.UserInformation
	if err := h.db.Preload("User").Order("id ASC").Find(&rows).Error; err != nil {
		httperr.Internal(c, "measurements_list_failed", "Could not list measurements.")
		return
	}
	httpresp.List(c, rows)
}

func (h *UserInformationHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var info models.UserInformation
	if err := h.db.Preload("User").First(&info, uint(id)).Error; err != nil {
		httperr.NotFound(c, "measurements_not_found", "Measurements not found.")
		return
	}
	httpresp.OK(c, info)
}

// Update is partial in practice but measurements are short enough that
// staff resubmit the whole set each time.
func (h *UserInformationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var info models.UserInformation
	if err := h.db.First(&info, uint(id)).Error; err != nil {
		httperr.NotFound(c, "measurements_not_found", "Measurements not found.")
		return
	}

	var req MeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}
	applyMeasurements(&info, &req)

	if err := h.db.Save(&info).Error; err != nil {
		httperr.Internal(c, "measurements_update_failed", "Could not save measurements.")
		return
	}
	if err := h.markHasMeasurements(info.UserID); err != nil {
		httperr.Internal(c, "user_update_failed", "Could not flag the user.")
		return
	}

	httpresp.OK(c, info)
}

func (h *UserInformationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, gin.H{"id": "Must be an integer."})
		return
	}

	var info models.UserInformation
	if err := h.db.First(&info, uint(id)).Error; err != nil {
		httperr.NotFound(c, "measurements_not_found", "Measurements not found.")
		return
	}

	if err := h.db.Delete(&info).Error; err != nil {
		httperr.Internal(c, "measurements_delete_failed", "Could not delete measurements.")
		return
	}

	// The flag goes back down so the shop knows to re-measure.
	if err := h.db.Model(&models.User{}).
		Where("id = ?", info.UserID).
		Update("has_measurements", false).Error; err != nil {
		httperr.Internal(c, "user_update_failed", "Could not flag the user.")
		return
	}

	c.Status(http.StatusNoContent)
}

// MyMeasurements lets a client read their own record.
func (h *UserInformationHandler) MyMeasurements(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var info models.UserInformation
	if err := h.db.Where("user_id = ?", user.ID).First(&info).Error; err != nil {
		httperr.NotFound(c, "measurements_not_found", "No measurements on file yet.")
		return
	}
	httpresp.OK(c, info)
}
