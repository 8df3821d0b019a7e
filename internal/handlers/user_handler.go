package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/httpresp"
	"github.com/markeugine/atelier-backend/internal/middleware"
	"github.com/markeugine/atelier-backend/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetMe returns the authenticated caller's own profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

// ListAll is staff-only: every account in the system.
func (h *UserHandler) ListAll(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "list_users_failed", "Could not list users.")
		return
	}
	httpresp.List(c, users)
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phone_number"`
	FacebookLink *string `json:"facebook_link"`
}

// UpdateMe lets the caller edit their own contact fields. Email, role flags
// and counters are not touchable here.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.FacebookLink != nil {
		updates["facebook_link"] = *req.FacebookLink
	}

	if len(updates) > 0 {
		if err := h.db.Model(user).Updates(updates).Error; err != nil {
			httperr.Internal(c, "update_profile_failed", "Could not update the profile.")
			return
		}
	}

	httpresp.OK(c, user)
}
