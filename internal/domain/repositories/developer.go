package repositories

import (
	"context"

	"estateadmin/internal/domain/models"
)

// DeveloperRepository defines data access operations for developers
type DeveloperRepository interface {
	Create(ctx context.Context, developer *models.Developer) error
	GetByID(ctx context.Context, id int64) (*models.Developer, error)
	List(ctx context.Context) ([]models.Developer, error)

	// ListActive retrieves active developers ordered by name
	ListActive(ctx context.Context) ([]models.Developer, error)

	Update(ctx context.Context, developer *models.Developer) error

	// Delete removes a developer; fails with a conflict while projects reference it
	Delete(ctx context.Context, id int64) error

	SetActive(ctx context.Context, id int64, active bool) error
	CountActive(ctx context.Context) (int64, error)
}
