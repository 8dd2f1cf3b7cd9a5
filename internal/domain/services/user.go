package services

import (
	"context"

	"estateadmin/internal/domain/models"
)

// UserService defines business logic operations for user accounts.
// Password hashing happens here, never in callers.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// UpdateUser keeps the stored password when user.Password is blank
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)

	DeleteUser(ctx context.Context, id int64) error
}
