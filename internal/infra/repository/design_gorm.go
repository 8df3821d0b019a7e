package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/models"
)

type DesignGormRepository struct {
	db *gorm.DB
}

func NewDesignGormRepository(db *gorm.DB) *DesignGormRepository {
	return &DesignGormRepository{db: db}
}

func (r *DesignGormRepository) CreateDesign(
	ctx context.Context,
	d *models.Design,
) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DesignGormRepository) DesignExistsForAppointment(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Design{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DesignGormRepository) GetDesign(
	ctx context.Context,
	id uint,
) (*models.Design, error) {

	var d models.Design
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Appointment").
		First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DesignGormRepository) ListDesigns(
	ctx context.Context,
) ([]models.Design, error) {

	var designs []models.Design
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Appointment").
		Order("updated_at DESC").
		Find(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}

func (r *DesignGormRepository) ListDesignsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Design, error) {

	var designs []models.Design
	if err := r.db.WithContext(ctx).
		Preload("Appointment").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&designs).Error; err != nil {
		return nil, err
	}
	return designs, nil
}

func (r *DesignGormRepository) UpdateDesign(
	ctx context.Context,
	d *models.Design,
) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DesignGormRepository) DeleteDesign(
	ctx context.Context,
	d *models.Design,
) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

// AppendUpdate re-reads the design under FOR UPDATE so two payment
// increments against the same row serialize instead of clobbering each
// other, then saves whatever fn left on the row.
func (r *DesignGormRepository) AppendUpdate(
	ctx context.Context,
	designID uint,
	fn func(d *models.Design) error,
) (*models.Design, error) {

	var d models.Design

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&d, designID).Error; err != nil {
			return err
		}

		if err := fn(&d); err != nil {
			return err
		}

		return tx.Save(&d).Error
	})
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (r *DesignGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// Compile-time check
var _ domain.Repository = (*DesignGormRepository)(nil)
