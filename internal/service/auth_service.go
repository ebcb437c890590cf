package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"superdaily/internal/auth"
	apperrors "superdaily/internal/errors"
	"superdaily/internal/metrics"
	"superdaily/internal/model"
	"superdaily/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Login looks a user up by phone and checks the password. An unknown phone
// and a wrong password both yield ErrInvalidCredentials. The active flag is
// checked before the password.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, error) {
	phone = strings.Trim(phone, trimCutset)
	if phone == "" {
		metrics.IncLogin("rejected")
		return nil, apperrors.ErrPhoneEmpty
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.IncLogin("invalid")
			return nil, apperrors.ErrInvalidCredentials
		}
		metrics.IncLogin("failed")
		return nil, apperrors.Wrap(apperrors.ErrDatabase, err)
	}

	if !user.Active() {
		metrics.IncLogin("inactive")
		return nil, apperrors.ErrAccountInactive
	}

	if err := s.hasher.Verify(user.Password, password); err != nil {
		metrics.IncLogin("invalid")
		return nil, apperrors.ErrInvalidCredentials
	}

	metrics.IncLogin("success")
	return user, nil
}
