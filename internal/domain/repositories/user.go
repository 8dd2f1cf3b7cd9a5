package repositories

import (
	"context"

	"estateadmin/internal/domain/models"
)

// UserRepository defines data access operations for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)

	// Update writes profile fields, and password_hash only when user.PasswordHash is non-empty
	Update(ctx context.Context, user *models.User) error

	Delete(ctx context.Context, id int64) error
}
