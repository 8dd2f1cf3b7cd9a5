package services

import (
	"context"

	"estateadmin/internal/domain/models"
)

// DeveloperService defines business logic operations for developers
type DeveloperService interface {
	ListDevelopers(ctx context.Context) ([]models.Developer, error)

	// ListActiveDevelopers feeds the developer select box of the project form
	ListActiveDevelopers(ctx context.Context) ([]models.Developer, error)

	GetDeveloper(ctx context.Context, id int64) (*models.Developer, error)
	CreateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error)
	UpdateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error)
	DeleteDeveloper(ctx context.Context, id int64) error
	ActivateDeveloper(ctx context.Context, id int64) error
	DeactivateDeveloper(ctx context.Context, id int64) error
	CountActiveDevelopers(ctx context.Context) (int64, error)
}
