package appointment

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/models"
	"github.com/markeugine/atelier-backend/internal/timezone"
)

// ======================================================
// LIST (admin): sweep then list everything
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {

	// Expired pending requests are archived before every listing; the sweep
	// is idempotent so piggybacking it on reads is safe.
	if _, err := uc.repo.ArchiveExpiredPending(ctx, timezone.Today()); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointments(ctx)
}

// ======================================================
// LIST (owner): same sweep, own rows only
// ======================================================

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	if _, err := uc.repo.ArchiveExpiredPending(ctx, timezone.Today()); err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForUser(ctx, userID)
}
