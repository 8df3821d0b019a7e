package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	ucAppointment "github.com/markeugine/atelier-backend/internal/usecase/appointment"
)

// ======================================================
// STAFF-SIDE HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC   *ucAppointment.ListAppointments
	updateUC *ucAppointment.UpdateAppointment
	getUC    *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointment,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:   listUC,
		updateUC: updateUC,
		getUC:    getUC,
	}
}

// List sweeps expired pending requests into archived, then returns every
// appointment.
func (h *AppointmentHandler) List(c *gin.Context) {
	apps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.OK(c, ap)
}

type AdminUpdateAppointmentRequest struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"appointment_type"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	AttireID    *uint   `json:"attire_id"`
	NotCome     *bool   `json:"not_come"`
	Status      *string `json:"appointment_status"`
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req AdminUpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: uint(id),
		Date:          req.Date,
		Time:          req.Time,
		Type:          req.Type,
		Description:   req.Description,
		Image:         req.Image,
		AttireID:      req.AttireID,
		NotCome:       req.NotCome,
		Status:        req.Status,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}
