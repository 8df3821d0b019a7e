package design

import (
	"context"

	"github.com/markeugine/atelier-backend/internal/models"
)

type Repository interface {
	CreateDesign(
		ctx context.Context,
		d *models.Design,
	) error

	// DesignExistsForAppointment backs the one-design-per-appointment
	// rule with a readable error instead of a unique-index violation.
	DesignExistsForAppointment(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	GetDesign(
		ctx context.Context,
		id uint,
	) (*models.Design, error)

	ListDesigns(
		ctx context.Context,
	) ([]models.Design, error)

	ListDesignsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Design, error)

	UpdateDesign(
		ctx context.Context,
		d *models.Design,
	) error

	DeleteDesign(
		ctx context.Context,
		d *models.Design,
	) error

	// AppendUpdate runs fn against the design row under a row lock inside
	// one transaction and persists the mutated design. fn receives the
	// freshly read row so concurrent payment increments cannot clobber
	// each other.
	AppendUpdate(
		ctx context.Context,
		designID uint,
		fn func(d *models.Design) error,
	) (*models.Design, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)
}
