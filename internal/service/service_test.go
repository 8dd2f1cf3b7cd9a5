package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"estateadmin/internal/domain"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/domain/repositories/mocks"
	"estateadmin/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validProject() *models.Project {
	return &models.Project{
		Name:      "  Sunrise City  ",
		Type:      models.ProjectTypeApartment,
		Status:    models.ProjectStatusOpen,
		Area:      120.5,
		PriceFrom: 2_000_000_000,
		PriceTo:   5_000_000_000,
	}
}

func TestProjectService_CreateTrimsAndTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*models.Project")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Project).ID = 7 }).
		Return(nil)

	svc := service.NewProjectService(repo, discardLogger())
	created, err := svc.CreateProject(ctx, validProject())
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Sunrise City", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.Project)
	}{
		{"blank name", func(p *models.Project) { p.Name = "   " }},
		{"unknown type", func(p *models.Project) { p.Type = "CASTLE" }},
		{"missing status", func(p *models.Project) { p.Status = "" }},
		{"negative area", func(p *models.Project) { p.Area = -1 }},
		{"negative units", func(p *models.Project) { p.TotalUnits = -3 }},
		{"inverted price range", func(p *models.Project) { p.PriceFrom, p.PriceTo = 9, 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.ProjectRepository{}
			svc := service.NewProjectService(repo, discardLogger())

			p := validProject()
			tt.mutate(p)
			_, err := svc.CreateProject(context.Background(), p)
			require.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProjectService_OpenEndedPriceIsValid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	p := validProject()
	p.PriceFrom, p.PriceTo = 3_000_000_000, 0
	_, err := service.NewProjectService(repo, discardLogger()).CreateProject(ctx, p)
	require.NoError(t, err)
}

func TestProjectService_UpdatePassesNotFoundThrough(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Update", ctx, mock.Anything).Return(&domain.NotFoundError{Kind: "project", ID: 4})

	p := validProject()
	p.ID = 4
	_, err := service.NewProjectService(repo, discardLogger()).UpdateProject(ctx, p)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_ActivateAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("SetActive", ctx, int64(3), true).Return(nil).Once()
	repo.On("SetActive", ctx, int64(3), false).Return(nil).Once()

	svc := service.NewProjectService(repo, discardLogger())
	require.NoError(t, svc.ActivateProject(ctx, 3))
	require.NoError(t, svc.DeactivateProject(ctx, 3))
	repo.AssertExpectations(t)
}

func TestDeveloperService_Validation(t *testing.T) {
	tests := []struct {
		name    string
		dev     models.Developer
		wantErr bool
	}{
		{"minimal", models.Developer{Name: "Novaland"}, false},
		{"full", models.Developer{Name: "Vingroup", Email: "info@vingroup.net", Website: "https://vingroup.net"}, false},
		{"no name", models.Developer{Email: "a@b.vn"}, true},
		{"bad email", models.Developer{Name: "X", Email: "not-an-email"}, true},
		{"bad website", models.Developer{Name: "X", Website: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &mocks.DeveloperRepository{}
			repo.On("Create", ctx, mock.Anything).Return(nil).Maybe()

			dev := tt.dev
			_, err := service.NewDeveloperService(repo, discardLogger()).CreateDeveloper(ctx, &dev)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeveloperService_DeleteConflict(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.DeveloperRepository{}
	repo.On("Delete", ctx, int64(2)).Return(&domain.ConflictError{Message: "developer 2 is referenced by other records"})

	err := service.NewDeveloperService(repo, discardLogger()).DeleteDeveloper(ctx, 2)
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	var stored *models.User
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.User) }).
		Return(nil)

	svc := service.NewUserServiceWithCost(repo, bcrypt.MinCost, discardLogger())
	_, err := svc.CreateUser(ctx, &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Role:     models.UserRoleAdmin,
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestUserService_CreateRequiresPassword(t *testing.T) {
	repo := &mocks.UserRepository{}
	svc := service.NewUserServiceWithCost(repo, bcrypt.MinCost, discardLogger())

	_, err := svc.CreateUser(context.Background(), &models.User{
		Username: "agent1",
		Email:    "agent1@example.com",
		Role:     models.UserRoleAgent,
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_UpdateBlankPasswordKeepsHash(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 5 && u.PasswordHash == ""
	})).Return(nil)

	svc := service.NewUserServiceWithCost(repo, bcrypt.MinCost, discardLogger())
	_, err := svc.UpdateUser(ctx, &models.User{
		ID:           5,
		Username:     "agent1",
		Email:        "agent1@example.com",
		Role:         models.UserRoleAgent,
		PasswordHash: "bound-from-nowhere",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_UpdateRejectsShortPassword(t *testing.T) {
	repo := &mocks.UserRepository{}
	svc := service.NewUserServiceWithCost(repo, bcrypt.MinCost, discardLogger())

	_, err := svc.UpdateUser(context.Background(), &models.User{
		ID:       5,
		Username: "agent1",
		Email:    "agent1@example.com",
		Role:     models.UserRoleAgent,
		Password: "abc",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Validation(t *testing.T) {
	base := func() *models.User {
		return &models.User{Username: "buyer", Email: "buyer@example.com", Role: models.UserRoleCustomer, Password: "123456"}
	}
	tests := []struct {
		name   string
		mutate func(u *models.User)
	}{
		{"short username", func(u *models.User) { u.Username = "ab" }},
		{"bad email", func(u *models.User) { u.Email = "buyer" }},
		{"unknown role", func(u *models.User) { u.Role = "ROOT" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewUserServiceWithCost(&mocks.UserRepository{}, bcrypt.MinCost, discardLogger())
			u := base()
			tt.mutate(u)
			_, err := svc.CreateUser(context.Background(), u)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
