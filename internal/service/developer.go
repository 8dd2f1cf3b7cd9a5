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
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// developerService implements the DeveloperService interface
type developerService struct {
	developerRepo repositories.DeveloperRepository
	logger        *slog.Logger
}

// NewDeveloperService creates a new developer service
func NewDeveloperService(
	developerRepo repositories.DeveloperRepository,
	logger *slog.Logger,
) services.DeveloperService {
	return &developerService{
		developerRepo: developerRepo,
		logger:        logger,
	}
}

func (s *developerService) ListDevelopers(ctx context.Context) ([]models.Developer, error) {
	return s.developerRepo.List(ctx)
}

func (s *developerService) ListActiveDevelopers(ctx context.Context) ([]models.Developer, error) {
	return s.developerRepo.ListActive(ctx)
}

func (s *developerService) GetDeveloper(ctx context.Context, id int64) (*models.Developer, error) {
	return s.developerRepo.GetByID(ctx, id)
}

// CreateDeveloper creates a new developer
func (s *developerService) CreateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error) {
	normalizeDeveloper(developer)
	if err := s.validateDeveloper(developer); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	developer.CreatedAt = now
	developer.UpdatedAt = now

	if err := s.developerRepo.Create(ctx, developer); err != nil {
		return nil, err
	}

	s.logger.Info("developer created",
		"id", developer.ID,
		"name", developer.Name,
	)

	return developer, nil
}

// UpdateDeveloper updates a developer's editable fields
func (s *developerService) UpdateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error) {
	normalizeDeveloper(developer)
	if err := s.validateDeveloper(developer); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	developer.UpdatedAt = time.Now()

	if err := s.developerRepo.Update(ctx, developer); err != nil {
		return nil, err
	}

	s.logger.Info("developer updated",
		"id", developer.ID,
		"name", developer.Name,
	)

	return developer, nil
}

// DeleteDeveloper deletes a developer that no project references
func (s *developerService) DeleteDeveloper(ctx context.Context, id int64) error {
	if err := s.developerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("developer deleted", "id", id)
	return nil
}

func (s *developerService) ActivateDeveloper(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, true)
}

func (s *developerService) DeactivateDeveloper(ctx context.Context, id int64) error {
	return s.setActive(ctx, id, false)
}

func (s *developerService) setActive(ctx context.Context, id int64, active bool) error {
	if err := s.developerRepo.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.logger.Info("developer status changed", "id", id, "active", active)
	return nil
}

func (s *developerService) CountActiveDevelopers(ctx context.Context) (int64, error) {
	return s.developerRepo.CountActive(ctx)
}

func (s *developerService) validateDeveloper(d *models.Developer) error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Name,
			validation.Required,
			validation.Length(1, config.MaxDeveloperNameLength),
			validation.By(notBlank),
		),
		validation.Field(&d.Email, is.EmailFormat),
		validation.Field(&d.Website, is.URL),
	)
}

func normalizeDeveloper(d *models.Developer) {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Website = strings.TrimSpace(d.Website)
}
