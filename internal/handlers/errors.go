package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/markeugine/atelier-backend/internal/httperr"
)

// respondBusiness maps a use-case error onto the HTTP surface. Not-found
// codes become 404, ownership/permission codes 403, other business codes
// 400; anything else is an internal failure.
func respondBusiness(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch {
	case code == "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Resource not found.")
	case code == "status_not_allowed" || code == "staff_only":
		httperr.Forbidden(c, code, "You are not allowed to do that.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}
