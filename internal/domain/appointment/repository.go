package appointment

import (
	"context"
	"time"

	"github.com/markeugine/atelier-backend/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Sweep --------
	ArchiveExpiredPending(
		ctx context.Context,
		today time.Time,
	) (int64, error)

	// -------- Owner side effects --------
	IncrementUserCancels(
		ctx context.Context,
		userID uint,
	) (int, error)
}
