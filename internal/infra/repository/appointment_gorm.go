package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/markeugine/atelier-backend/internal/domain/appointment"
	"github.com/markeugine/atelier-backend/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("updated_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// --------------------------------------------------
// Sweep
// --------------------------------------------------

func (r *AppointmentGormRepository) ArchiveExpiredPending(
	ctx context.Context,
	today time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_status = ? AND date < ?", string(domain.StatusPending), today).
		Update("appointment_status", string(domain.StatusArchived))

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Owner side effects
// --------------------------------------------------

func (r *AppointmentGormRepository) IncrementUserCancels(
	ctx context.Context,
	userID uint,
) (int, error) {

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("cancels", gorm.Expr("cancels + 1")).Error; err != nil {
		return 0, err
	}

	var user models.User
	if err := r.db.WithContext(ctx).
		Select("cancels").
		First(&user, userID).Error; err != nil {
		return 0, err
	}

	return user.Cancels, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
