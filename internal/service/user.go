package service

import (
	"database/sql"
	"errors"
	"fmt"

	"jobboard/internal/apperr"
	"jobboard/internal/crypto"
	"jobboard/internal/models"
	"jobboard/internal/repository"
	"jobboard/internal/sqlutil"

	"go.uber.org/zap"
)

// UserCreate is the admin-supplied input for a new user record.
type UserCreate struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UserUpdate holds the updatable subset of user fields. A supplied password
// is re-hashed before it reaches the persistence layer.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func (u UserUpdate) fields(passwordHash string) []sqlutil.Field {
	var fields []sqlutil.Field
	if u.FirstName != nil {
		fields = append(fields, sqlutil.Field{Name: "firstName", Value: *u.FirstName})
	}
	if u.LastName != nil {
		fields = append(fields, sqlutil.Field{Name: "lastName", Value: *u.LastName})
	}
	if u.Email != nil {
		fields = append(fields, sqlutil.Field{Name: "email", Value: *u.Email})
	}
	if u.Password != nil {
		fields = append(fields, sqlutil.Field{Name: "password", Value: passwordHash})
	}
	return fields
}

type UserService interface {
	Create(input UserCreate) (*models.User, error)
	List() ([]models.User, error)
	Get(username string) (*models.User, error)
	Update(username string, update UserUpdate) (*models.User, error)
	Delete(username string) error
}

type userService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{users: users, logger: logger}
}

func (s *userService) Create(input UserCreate) (*models.User, error) {
	existing, err := s.users.GetByUsername(input.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("Duplicate user: %s", input.Username))
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsAdmin:      input.IsAdmin,
	}
	if err := s.users.Create(user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) List() ([]models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) Get(username string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No user: %s", username))
		}
		s.logger.Error("Failed to get user", zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) Update(username string, update UserUpdate) (*models.User, error) {
	var passwordHash string
	if update.Password != nil {
		var err error
		passwordHash, err = crypto.HashPassword(*update.Password)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user, err := s.users.Update(username, update.fields(passwordHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound(fmt.Sprintf("No user: %s", username))
		}
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.logger.Error("Failed to update user", zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(username string) error {
	if err := s.users.Delete(username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("No user: %s", username))
		}
		s.logger.Error("Failed to delete user", zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
