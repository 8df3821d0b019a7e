package appointment

import (
	"context"
	"fmt"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	Date        string
	Time        string
	Type        string
	Description string
	Image       string
	AttireID    *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify notify.Notifier
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	apType := domain.Type(in.Type)
	if in.Type == "" {
		apType = domain.TypeFitting
	}
	if !domain.ValidType(apType) {
		return nil, httperr.ErrBusiness("invalid_appointment_type")
	}

	// The owner is always the authenticated caller, never client-supplied.
	ap := &models.Appointment{
		UserID:            in.UserID,
		Date:              date,
		Time:              in.Time,
		AppointmentType:   string(apType),
		Description:       in.Description,
		Image:             in.Image,
		AttireID:          in.AttireID,
		AppointmentStatus: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		ReceiverID: nil, // admin
		Header:     "New appointment request",
		Message:    fmt.Sprintf("A new %s appointment was requested for %s.", apType, in.Date),
		Link:       fmt.Sprintf("/appointments/%d", ap.ID),
		IsSystem:   true,
	})

	return ap, nil
}
