package design

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

type UpdateDesignInput struct {
	DesignID uint

	AttireType        *string
	TargetedDate      *string
	Description       *string
	FittingDate       *string
	FittingTime       *string
	FittingSuccessful *bool
	ProcessStatus     *string
	ReferenceImage    *string

	// TotalAmount is intentionally absent: the price is fixed at creation
	// and silently ignored if submitted.
}

// UpdateDesign is the staff-side partial edit of design details. The
// derived ledger fields are recomputed on the way out, never taken from the
// caller.
type UpdateDesign struct {
	repo domain.Repository
}

func NewUpdateDesign(repo domain.Repository) *UpdateDesign {
	return &UpdateDesign{repo: repo}
}

func (uc *UpdateDesign) Execute(
	ctx context.Context,
	in UpdateDesignInput,
) (*models.Design, error) {

	d, err := uc.repo.GetDesign(ctx, in.DesignID)
	if err != nil {
		return nil, httperr.ErrBusiness("design_not_found")
	}

	if in.AttireType != nil {
		d.AttireType = *in.AttireType
	}
	if in.TargetedDate != nil {
		date, err := timezone.ParseDate(*in.TargetedDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_targeted_date")
		}
		d.TargetedDate = date
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.FittingDate != nil {
		date, err := timezone.ParseDate(*in.FittingDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_fitting_date")
		}
		d.FittingDate = &date
	}
	if in.FittingTime != nil {
		d.FittingTime = *in.FittingTime
	}
	if in.FittingSuccessful != nil {
		d.FittingSuccessful = *in.FittingSuccessful
	}
	if in.ProcessStatus != nil {
		if !domain.ValidProcessStatus(domain.ProcessStatus(*in.ProcessStatus)) {
			return nil, httperr.ErrBusiness("invalid_process_status")
		}
		d.ProcessStatus = *in.ProcessStatus
	}
	if in.ReferenceImage != nil {
		d.ReferenceImage = *in.ReferenceImage
	}

	// Invariant: derived fields are recomputed on every persist.
	balance, payStatus := domain.Recompute(d.TotalAmount, d.AmountPaid)
	d.Balance = balance
	d.PaymentStatus = string(payStatus)

	if err := uc.repo.UpdateDesign(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}
