package repositories

import (
	"context"

	"estateadmin/internal/domain/models"
)

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// Create inserts a project as active and fills in ID and timestamps
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id int64) (*models.Project, error)

	// List retrieves all projects, newest first
	List(ctx context.Context) ([]models.Project, error)

	// Update overwrites the editable fields of a project; is_active is untouched
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project
	Delete(ctx context.Context, id int64) error

	// SetActive flips the active flag
	SetActive(ctx context.Context, id int64, active bool) error

	// CountByType counts active projects of the given type
	CountByType(ctx context.Context, projectType models.ProjectType) (int64, error)

	// CountActive counts active projects
	CountActive(ctx context.Context) (int64, error)
}
