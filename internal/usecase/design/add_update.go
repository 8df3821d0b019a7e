package design

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/httperr"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/notify"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AddUpdateInput struct {
	DesignID uint

	Message       string
	ProcessStatus string
	// Incremental payment, added to the running amount_paid.
	AmountPaid float64
	Image      string
}

// ======================================================
// USE CASE
// ======================================================

type AddUpdate struct {
	repo   domain.Repository
	notify notify.Notifier
}

func NewAddUpdate(
	repo domain.Repository,
	notifier notify.Notifier,
) *AddUpdate {
	return &AddUpdate{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *AddUpdate) Execute(
	ctx context.Context,
	in AddUpdateInput,
) (*models.Design, error) {

	if in.Message == "" {
		return nil, httperr.ErrBusiness("message_required")
	}
	if in.AmountPaid < 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if in.ProcessStatus != "" && !domain.ValidProcessStatus(domain.ProcessStatus(in.ProcessStatus)) {
		return nil, httperr.ErrBusiness("invalid_process_status")
	}

	d, err := uc.repo.AppendUpdate(ctx, in.DesignID, func(d *models.Design) error {
		newPaid, newBalance, newPayStatus, process, entry := domain.ApplyUpdate(
			d.TotalAmount,
			d.AmountPaid,
			domain.ProcessStatus(d.ProcessStatus),
			in.Message,
			domain.ProcessStatus(in.ProcessStatus),
			in.AmountPaid,
			in.Image,
			timezone.Now(),
		)

		var entries []domain.UpdateEntry
		if len(d.Updates) > 0 {
			if err := json.Unmarshal(d.Updates, &entries); err != nil {
				return err
			}
		}
		entries = append(entries, entry)

		raw, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		d.AmountPaid = newPaid
		d.Balance = newBalance
		d.PaymentStatus = string(newPayStatus)
		d.ProcessStatus = string(process)
		d.Updates = raw

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("design_not_found")
		}
		return nil, err
	}

	receiverID := d.UserID
	uc.notify.Dispatch(notify.Event{
		ReceiverID: &receiverID,
		Header:     "Design progress update",
		Message:    in.Message,
		Link:       fmt.Sprintf("/designs/%d", d.ID),
		IsSystem:   true,
	})

	return d, nil
}
