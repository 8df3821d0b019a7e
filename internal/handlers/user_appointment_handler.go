package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/storage"
	ucAppointment "github.com/markeugine/atelier-backend/internal/usecase/appointment"
)

// ======================================================
// OWNER-SIDE HANDLER
// ======================================================

type UserAppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListUserAppointments
	getUC    *ucAppointment.GetOwnAppointment
	updateUC *ucAppointment.UpdateOwnAppointment
	deleteUC *ucAppointment.DeleteOwnAppointment
	store    storage.Store
}

func NewUserAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListUserAppointments,
	getUC *ucAppointment.GetOwnAppointment,
	updateUC *ucAppointment.UpdateOwnAppointment,
	deleteUC *ucAppointment.DeleteOwnAppointment,
	store storage.Store,
) *UserAppointmentHandler {
	return &UserAppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		store:    store,
	}
}

// Create accepts multipart form data: the appointment fields plus an
// optional reference image.
func (h *UserAppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.PostForm("date")
	if date == "" {
		httperr.Validation(c, gin.H{"date": "This field is required."})
		return
	}

	var attireID *uint
	if raw := c.PostForm("attire_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Validation(c, gin.H{"attire_id": "Must be a numeric id."})
			return
		}
		v := uint(id)
		attireID = &v
	}

	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil {
		url, err := storage.SaveUpload(c.Request.Context(), h.store, "appointment_images", fh)
		if err != nil {
			httperr.Internal(c, "image_upload_failed", "Could not store the image.")
			return
		}
		imageURL = url
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:      userID,
		Date:        date,
		Time:        c.PostForm("time"),
		Type:        c.PostForm("appointment_type"),
		Description: c.PostForm("description"),
		Image:       imageURL,
		AttireID:    attireID,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Appointment created successfully")
}

func (h *UserAppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apps, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.List(c, apps)
}

func (h *UserAppointmentHandler) Retrieve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), uint(id), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, ap)
}

type OwnerUpdateAppointmentRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"appointment_type"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	AttireID    *uint   `json:"attire_id"`
	Status      *string `json:"appointment_status"`
}

func (h *UserAppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req OwnerUpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateOwnAppointmentInput{
		UserID:        userID,
		AppointmentID: uint(id),
		Date:          req.Date,
		Time:          req.Time,
		Type:          req.Type,
		Description:   req.Description,
		Image:         req.Image,
		AttireID:      req.AttireID,
		Status:        req.Status,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	resp := gin.H{"appointment": result.Appointment}
	if result.UserCancels != nil {
		// Surface the bumped counter so the client can warn about repeat
		// cancellations.
		resp["user_cancels"] = *result.UserCancels
	}

	httpresp.OK(c, resp)
}

func (h *UserAppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		respondBusiness(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
