package mocks

import (
	"context"

	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/services"

	"github.com/stretchr/testify/mock"
)

// ProjectService is a mock for services.ProjectService.
type ProjectService struct {
	mock.Mock
}

func (m *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	args := m.Called(ctx, project)
	if p, ok := args.Get(0).(*models.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectService) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	args := m.Called(ctx, project)
	if p, ok := args.Get(0).(*models.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectService) ActivateProject(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectService) DeactivateProject(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProjectService) CountProjectsByType(ctx context.Context, projectType models.ProjectType) (int64, error) {
	args := m.Called(ctx, projectType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProjectService) CountActiveProjects(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// DeveloperService is a mock for services.DeveloperService.
type DeveloperService struct {
	mock.Mock
}

func (m *DeveloperService) ListDevelopers(ctx context.Context) ([]models.Developer, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Developer); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperService) ListActiveDevelopers(ctx context.Context) ([]models.Developer, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Developer); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperService) GetDeveloper(ctx context.Context, id int64) (*models.Developer, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*models.Developer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperService) CreateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error) {
	args := m.Called(ctx, developer)
	if d, ok := args.Get(0).(*models.Developer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperService) UpdateDeveloper(ctx context.Context, developer *models.Developer) (*models.Developer, error) {
	args := m.Called(ctx, developer)
	if d, ok := args.Get(0).(*models.Developer); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DeveloperService) DeleteDeveloper(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DeveloperService) ActivateDeveloper(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DeveloperService) DeactivateDeveloper(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *DeveloperService) CountActiveDevelopers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// UserService is a mock for services.UserService.
type UserService struct {
	mock.Mock
}

func (m *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// FileStore is a mock for services.FileStore.
type FileStore struct {
	mock.Mock
}

func (m *FileStore) Save(ctx context.Context, file *services.UploadedFile, subDir string) (string, error) {
	args := m.Called(ctx, file, subDir)
	return args.String(0), args.Error(1)
}
