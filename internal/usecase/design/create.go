package design

import (
	"context"
	"fmt"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateDesignInput struct {
	AppointmentID uint

	AttireType     string
	TargetedDate   string
	Description    string
	TotalAmount    float64
	ReferenceImage string
}

// ======================================================
// USE CASE
// ======================================================

type CreateDesign struct {
	repo   domain.Repository
	notify notify.Notifier
}

func NewCreateDesign(
	repo domain.Repository,
	notifier notify.Notifier,
) *CreateDesign {
	return &CreateDesign{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *CreateDesign) Execute(
	ctx context.Context,
	in CreateDesignInput,
) (*models.Design, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	exists, err := uc.repo.DesignExistsForAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("design_already_exists")
	}

	targeted, err := timezone.ParseDate(in.TargetedDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_targeted_date")
	}

	if in.TotalAmount < 0 {
		return nil, httperr.ErrBusiness("invalid_total_amount")
	}

	// The total price is fixed at intake; the ledger only ever moves
	// amount_paid from here on.
	balance, payStatus := domain.Recompute(in.TotalAmount, 0)

	d := &models.Design{
		UserID:         ap.UserID,
		AppointmentID:  ap.ID,
		AttireType:     in.AttireType,
		TargetedDate:   targeted,
		Description:    in.Description,
		ProcessStatus:  string(domain.ProcessDesigning),
		PaymentStatus:  string(payStatus),
		TotalAmount:    in.TotalAmount,
		AmountPaid:     0,
		Balance:        balance,
		ReferenceImage: in.ReferenceImage,
		Updates:        []byte("[]"),
	}

	if err := uc.repo.CreateDesign(ctx, d); err != nil {
		return nil, err
	}

	receiverID := ap.UserID
	uc.notify.Dispatch(notify.Event{
		ReceiverID: &receiverID,
		Header:     "Design created",
		Message:    fmt.Sprintf("A design for your %s has been opened.", in.AttireType),
		Link:       fmt.Sprintf("/designs/%d", d.ID),
		IsSystem:   true,
	})

	return d, nil
}
