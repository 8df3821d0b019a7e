package design

import (
	"context"

	"github.com/markeugine/atelier-backend/internal/models"
)

// ReadRepo is the slice of the design repository the staff handler needs
// for plain reads and deletes; the gorm repository satisfies it.
type ReadRepo interface {
	ListDesigns(ctx context.Context) ([]models.Design, error)
	GetDesign(ctx context.Context, id uint) (*models.Design, error)
	DeleteDesign(ctx context.Context, d *models.Design) error
}
