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
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	hashCost int
	logger   *slog.Logger
}

// NewUserService creates a new user service hashing with bcrypt.DefaultCost
func NewUserService(userRepo repositories.UserRepository, logger *slog.Logger) services.UserService {
	return NewUserServiceWithCost(userRepo, bcrypt.DefaultCost, logger)
}

// NewUserServiceWithCost lets tests use bcrypt.MinCost
func NewUserServiceWithCost(userRepo repositories.UserRepository, cost int, logger *slog.Logger) services.UserService {
	return &userService{
		userRepo: userRepo,
		hashCost: cost,
		logger:   logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser validates the account, hashes its password and stores it
func (s *userService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	normalizeUser(user)
	if err := s.validateUser(user, true); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := s.hash(user.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.Password = ""

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"id", user.ID,
		"username", user.Username,
		"role", user.Role,
	)

	return user, nil
}

// UpdateUser updates profile fields; a blank password keeps the stored hash
func (s *userService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	normalizeUser(user)
	if err := s.validateUser(user, false); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user.PasswordHash = ""
	if user.Password != "" {
		hash, err := s.hash(user.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.Password = ""
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated",
		"id", user.ID,
		"username", user.Username,
	)

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)
	return nil
}

func (s *userService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *userService) validateUser(u *models.User, creating bool) error {
	passwordRules := []validation.Rule{
		validation.Length(config.MinPasswordLength, config.MaxPasswordLength),
	}
	if creating {
		passwordRules = append(passwordRules, validation.Required)
	}

	return validation.ValidateStruct(u,
		validation.Field(&u.Username,
			validation.Required,
			validation.Length(config.MinUsernameLength, config.MaxUsernameLength),
		),
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.Role, validation.Required, validation.In(userRoleValues()...)),
		validation.Field(&u.Password, passwordRules...),
	)
}

func normalizeUser(u *models.User) {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.FullName = strings.TrimSpace(u.FullName)
}
