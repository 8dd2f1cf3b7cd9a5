package mocks

import (
	"context"

	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/repositories"

	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repositories.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *ProjectRepository) CountByType(ctx context.Context, projectType models.ProjectType) (int64, error) {
	args := m.Called(ctx, projectType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProjectRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// DeveloperRepository is a mock for repositories.DeveloperRepository.
type DeveloperRepository struct {
	mock.Mock
}

func (m *DeveloperRepository) Create(ctx context.Context, developer *models.Developer) error {
	return m.Called(ctx, developer).Error(0)
}

func (m *DeveloperRepository) GetByID(ctx context.Context, id int64) (*models.Developer, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*models.Developer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperRepository) List(ctx context.Context) ([]models.Developer, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Developer); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperRepository) ListActive(ctx context.Context) ([]models.Developer, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Developer); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperRepository) Update(ctx context.Context, developer *models.Developer) error {
	return m.Called(ctx, developer).Error(0)
}

func (m *DeveloperRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DeveloperRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *DeveloperRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// UserRepository is a mock for repositories.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ repositories.ProjectRepository   = (*ProjectRepository)(nil)
	_ repositories.DeveloperRepository = (*DeveloperRepository)(nil)
	_ repositories.UserRepository      = (*UserRepository)(nil)
)
