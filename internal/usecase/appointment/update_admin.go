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

type UpdateAppointmentInput struct {
	AppointmentID uint

	Date        *string
	Time        *string
	Type        *string
	Description *string
	Image       *string
	AttireID    *uint
	NotCome     *bool
	Status      *string
}

// UpdateAppointment is the staff-side partial update. Any field may change,
// including status; the client gets notified on status changes.
type UpdateAppointment struct {
	repo   domain.Repository
	notify notify.Notifier
}

func NewUpdateAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldStatus := ap.AppointmentStatus

	if in.Date != nil {
		date, err := timezone.ParseDate(*in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		ap.Date = date
	}
	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.Type != nil {
		if !domain.ValidType(domain.Type(*in.Type)) {
			return nil, httperr.ErrBusiness("invalid_appointment_type")
		}
		ap.AppointmentType = *in.Type
	}
	if in.Description != nil {
		ap.Description = *in.Description
	}
	if in.Image != nil {
		ap.Image = *in.Image
	}
	if in.AttireID != nil {
		ap.AttireID = in.AttireID
	}
	if in.NotCome != nil {
		ap.NotCome = *in.NotCome
	}
	if in.Status != nil {
		if !domain.ValidStatus(domain.Status(*in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		ap.AppointmentStatus = *in.Status
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if in.Status != nil && *in.Status != oldStatus {
		receiverID := ap.UserID
		uc.notify.Dispatch(notify.Event{
			ReceiverID: &receiverID,
			Header:     "Appointment status updated",
			Message:    fmt.Sprintf("Your appointment for %s is now %s.", ap.Date.Format("2006-01-02"), ap.AppointmentStatus),
			Link:       fmt.Sprintf("/appointments/%d", ap.ID),
			IsSystem:   true,
		})
	}

	return ap, nil
}
