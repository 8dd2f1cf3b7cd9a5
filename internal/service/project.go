package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"estateadmin/internal/config"
	"estateadmin/internal/domain"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/repositories"
	"estateadmin/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ListProjects retrieves all projects
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// CreateProject creates a new project
func (s *projectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	normalizeProject(project)
	if err := s.validateProject(project); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"type", project.Type,
	)

	return project, nil
}

// UpdateProject updates a project's editable fields
func (s *projectService) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	normalizeProject(project)
	if err := s.validateProject(project); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project updated",
		"id", project.ID,
		"name", project.Name,
	)

	return project, nil
}

// DeleteProject deletes a project
func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

// ActivateProject makes a project visible again
func (s *projectService) ActivateProject(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

// DeactivateProject hides a project
func (s *projectService) DeactivateProject(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

func (s *projectService) setActive(ctx context.Context, id int64, active bool) error {
	if err := s.projectRepo.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.logger.Info("project status changed", "id", id, "active", active)
	return nil
}

// CountProjectsByType counts active projects of one type
func (s *projectService) CountProjectsByType(ctx context.Context, projectType models.ProjectType) (int64, error) {
	return s.projectRepo.CountByType(ctx, projectType)
}

// CountActiveProjects counts active projects
func (s *projectService) CountActiveProjects(ctx context.Context) (int64, error) {
	return s.projectRepo.CountActive(ctx)
}

// validateProject validates the editable fields of a project
func (s *projectService) validateProject(p *models.Project) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(notBlank),
		),
		validation.Field(&p.Address, validation.Length(0, config.MaxAddressLength)),
		validation.Field(&p.Type, validation.Required, validation.In(projectTypeValues()...)),
		validation.Field(&p.Status, validation.Required, validation.In(projectStatusValues()...)),
		validation.Field(&p.Area, validation.Min(0.0)),
		validation.Field(&p.PriceFrom, validation.Min(int64(0))),
		validation.Field(&p.PriceTo,
			validation.Min(int64(0)),
			validation.When(p.PriceFrom > 0 && p.PriceTo > 0,
				validation.Min(p.PriceFrom).Error("must be no less than the starting price"),
			),
		),
		validation.Field(&p.TotalUnits, validation.Min(0)),
	)
}

func normalizeProject(p *models.Project) {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
}
