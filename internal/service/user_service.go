package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"agrivoice/internal/auth"
	apperrors "agrivoice/internal/errors"
	"agrivoice/internal/model"
	"agrivoice/internal/repository"
)

// UserService handles registration, login and profile updates.
type UserService interface {
	Register(ctx context.Context, nom, telephone, pin, region string) (*model.User, error)
	Login(ctx context.Context, telephone, pin string) (*model.User, error)
	UpdateRegion(ctx context.Context, userID uint, region string) error
}

type userService struct {
	repo        repository.UserRepository
	credentials auth.CredentialStore
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, credentials auth.CredentialStore) UserService {
	return &userService{repo: repo, credentials: credentials}
}

// Register creates a new account. A second registration with the same phone
// number fails with ErrDuplicatePhone.
func (s *userService) Register(ctx context.Context, nom, telephone, pin, region string) (*model.User, error) {
	existing, err := s.repo.FindByPhone(ctx, telephone)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicatePhone
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check phone existence: %w", err)
	}

	user := &model.User{
		Nom:       nom,
		Telephone: telephone,
		Pin:       pin,
		Region:    region,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// The unique index on telephone is the authoritative guard; races
		// between the pre-check and the insert land here.
		if isDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicatePhone
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates by exact phone and PIN match.
func (s *userService) Login(ctx context.Context, telephone, pin string) (*model.User, error) {
	user, err := s.repo.FindByPhone(ctx, telephone)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.credentials.Verify(user.Pin, pin) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateRegion updates a user's region. An unknown user id affects zero rows
// and is reported as success.
func (s *userService) UpdateRegion(ctx context.Context, userID uint, region string) error {
	return s.repo.UpdateRegion(ctx, userID, region)
}

func isDuplicateKeyError(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	// MySQL duplicate entry errors are not always translated by the driver.
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
