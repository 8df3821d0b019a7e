package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/storage"
	ucDesign "github.com/markeugine/atelier-backend/internal/usecase/design"
)

// ======================================================
// STAFF-SIDE HANDLER
// ======================================================

type DesignHandler struct {
	createUC    *ucDesign.CreateDesign
	updateUC    *ucDesign.UpdateDesign
	addUpdateUC *ucDesign.AddUpdate
	repo        ucDesign.ReadRepo
	store       storage.Store
}

func NewDesignHandler(
	createUC *ucDesign.CreateDesign,
	updateUC *ucDesign.UpdateDesign,
	addUpdateUC *ucDesign.AddUpdate,
	repo ucDesign.ReadRepo,
	store storage.Store,
) *DesignHandler {
	return &DesignHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		addUpdateUC: addUpdateUC,
		repo:        repo,
		store:       store,
	}
}

type CreateDesignRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	AttireType    string  `json:"attire_type" binding:"required"`
	TargetedDate  string  `json:"targeted_date" binding:"required"`
	Description   string  `json:"description"`
	TotalAmount   float64 `json:"total_amount" binding:"required"`
}

func (h *DesignHandler) Create(c *gin.Context) {
	var req CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	d, err := h.createUC.Execute(c.Request.Context(), ucDesign.CreateDesignInput{
		AppointmentID: req.AppointmentID,
		AttireType:    req.AttireType,
		TargetedDate:  req.TargetedDate,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Design created successfully.",
		"data":    d,
	})
}

func (h *DesignHandler) List(c *gin.Context) {
	designs, err := h.repo.ListDesigns(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_designs_failed", "Could not list designs.")
		return
	}
	httpresp.List(c, designs)
}

func (h *DesignHandler) Retrieve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid design id.")
		return
	}

	d, err := h.repo.GetDesign(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "design_not_found", "Design not found.")
		return
	}
	httpresp.OK(c, d)
}

type UpdateDesignRequest struct {
	AttireType        *string `json:"attire_type"`
	TargetedDate      *string `json:"targeted_date"`
	Description       *string `json:"description"`
	FittingDate       *string `json:"fitting_date"`
	FittingTime       *string `json:"fitting_time"`
	FittingSuccessful *bool   `json:"fitting_successful"`
	ProcessStatus     *string `json:"process_status"`
	ReferenceImage    *string `json:"reference_image"`
}

func (h *DesignHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid design id.")
		return
	}

	var req UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	d, err := h.updateUC.Execute(c.Request.Context(), ucDesign.UpdateDesignInput{
		DesignID:          uint(id),
		AttireType:        req.AttireType,
		TargetedDate:      req.TargetedDate,
		Description:       req.Description,
		FittingDate:       req.FittingDate,
		FittingTime:       req.FittingTime,
		FittingSuccessful: req.FittingSuccessful,
		ProcessStatus:     req.ProcessStatus,
		ReferenceImage:    req.ReferenceImage,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, d)
}

func (h *DesignHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid design id.")
		return
	}

	d, err := h.repo.GetDesign(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "design_not_found", "Design not found.")
		return
	}

	if err := h.repo.DeleteDesign(c.Request.Context(), d); err != nil {
		httperr.Internal(c, "delete_design_failed", "Could not delete the design.")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddUpdate appends one progress/payment entry to the design's ledger.
// Accepts multipart so a progress photo can ride along.
func (h *DesignHandler) AddUpdate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid design id.")
		return
	}

	message := c.PostForm("message")
	if message == "" {
		httperr.Validation(c, gin.H{"message": "This field is required."})
		return
	}

	amount := 0.0
	if raw := c.PostForm("amount_paid"); raw != "" {
		amount, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.Validation(c, gin.H{"amount_paid": "Must be a number."})
			return
		}
	}

	imageURL := ""
	if fh, err := c.FormFile("image_file"); err == nil {
		url, err := storage.SaveUpload(c.Request.Context(), h.store, "design_updates", fh)
		if err != nil {
			httperr.Internal(c, "image_upload_failed", "Could not store the image.")
			return
		}
		imageURL = url
	}

	d, err := h.addUpdateUC.Execute(c.Request.Context(), ucDesign.AddUpdateInput{
		DesignID:      uint(id),
		Message:       message,
		ProcessStatus: c.PostForm("process_status"),
		AmountPaid:    amount,
		Image:         imageURL,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Update added successfully.",
		"data":    d,
	})
}

// ======================================================
// OWNER-SIDE HANDLER (read only)
// ======================================================

type UserDesignHandler struct {
	listUC *ucDesign.ListUserDesigns
}

func NewUserDesignHandler(listUC *ucDesign.ListUserDesigns) *UserDesignHandler {
	return &UserDesignHandler{listUC: listUC}
}

func (h *UserDesignHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	designs, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.List(c, designs)
}
