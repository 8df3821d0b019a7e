package appointment

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

// GetOwnAppointment is the owner-scoped read: other users' appointments
// look like they do not exist.
type GetOwnAppointment struct {
	repo domain.Repository
}

func NewGetOwnAppointment(repo domain.Repository) *GetOwnAppointment {
	return &GetOwnAppointment{repo: repo}
}

func (uc *GetOwnAppointment) Execute(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, id, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}
