package appointment

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/httperr"
)

// DeleteOwnAppointment hard-deletes an appointment owned by the caller.
// Unconditional: no status check, matching the self-service contract.
type DeleteOwnAppointment struct {
	repo domain.Repository
}

func NewDeleteOwnAppointment(repo domain.Repository) *DeleteOwnAppointment {
	return &DeleteOwnAppointment{repo: repo}
}

func (uc *DeleteOwnAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	return uc.repo.DeleteAppointment(ctx, ap)
}
