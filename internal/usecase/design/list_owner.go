package design

import (
	"context"

	domain "github.com/markeugine/atelier-backend/internal/domain/design"
	"github.com/markeugine/atelier-backend/internal/models"
)

// ListUserDesigns is the client's read-only view of their own designs,
// most recently updated first.
type ListUserDesigns struct {
	repo domain.Repository
}

func NewListUserDesigns(repo domain.Repository) *ListUserDesigns {
	return &ListUserDesigns{repo: repo}
}

func (uc *ListUserDesigns) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Design, error) {
	return uc.repo.ListDesignsForUser(ctx, userID)
}
