package appointment

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// ======================================================
// INPUT (partial update, nil means "leave alone")
// ======================================================

type UpdateOwnAppointmentInput struct {
	UserID        uint
	AppointmentID uint

	Date        *string
	Time        *string
	Type        *string
	Description *string
	Image       *string
	AttireID    *uint
	Status      *string
}

type UpdateOwnAppointmentResult struct {
	Appointment *models.Appointment
	// Set only when this update incremented the owner's cancel counter.
	UserCancels *int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateOwnAppointment struct {
	repo   domain.Repository
	notify notify.Notifier
}

func NewUpdateOwnAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
) *UpdateOwnAppointment {
	return &UpdateOwnAppointment{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *UpdateOwnAppointment) Execute(
	ctx context.Context,
	in UpdateOwnAppointmentInput,
) (*UpdateOwnAppointmentResult, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, in.AppointmentID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	oldStatus := domain.Status(ap.AppointmentStatus)

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

	cancelling := false
	if in.Status != nil {
		// Owners cannot pick arbitrary statuses; the only self-service
		// transition is backing out of a request.
		if domain.Status(*in.Status) != domain.StatusCancelled {
			return nil, httperr.ErrBusiness("status_not_allowed")
		}
		cancelling = true
		ap.AppointmentStatus = string(domain.StatusCancelled)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	result := &UpdateOwnAppointmentResult{Appointment: ap}

	if cancelling && domain.CountsAsCancellation(oldStatus, domain.StatusCancelled) {
		cancels, err := uc.repo.IncrementUserCancels(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		result.UserCancels = &cancels

		uc.notify.Dispatch(notify.Event{
			ReceiverID: nil, // admin
			Header:     "Appointment cancelled",
			Message:    "A client cancelled an approved appointment.",
			IsSystem:   true,
		})
	}

	return result, nil
}
