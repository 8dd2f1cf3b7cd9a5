package services

import (
	"context"

	"estateadmin/internal/domain/models"
)

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// ListProjects retrieves all projects
	ListProjects(ctx context.Context) ([]models.Project, error)

	// GetProject retrieves a project by ID; wraps domain.ErrNotFound when absent
	GetProject(ctx context.Context, id int64) (*models.Project, error)

	// CreateProject validates and persists a new, active project
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)

	// UpdateProject validates and persists the editable fields of an existing project
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)

	// DeleteProject removes a project
	DeleteProject(ctx context.Context, id int64) error

	ActivateProject(ctx context.Context, id int64) error
	DeactivateProject(ctx context.Context, id int64) error

	// CountProjectsByType counts active projects of one type (dashboard)
	CountProjectsByType(ctx context.Context, projectType models.ProjectType) (int64, error)

	// CountActiveProjects counts active projects (dashboard)
	CountActiveProjects(ctx context.Context) (int64, error)
}
