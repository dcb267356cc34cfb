package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	bcryptCost           = 10
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	adminRepo repository.AdminRepository
	secret    []byte
}

// NewAuthService creates an AuthService backed by the given repository,
// signing session tokens with the given secret.
func NewAuthService(adminRepo repository.AdminRepository, secret []byte) AuthService {
	return &authServiceImpl{adminRepo: adminRepo, secret: secret}
}

// Login verifies the credentials and issues a session token valid for
// auth.TokenTTL. Unknown username and wrong password are indistinguishable.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiry, err := auth.CreateSessionToken(admin.ID, admin.Username, s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	slog.Info("admin logged in", "username", admin.Username)
	return &LoginResult{Token: token, TokenExpiry: expiry, Admin: admin}, nil
}

// EnsureDefaultAdmin creates the admin/admin123 account at bootstrap when no
// admin record exists yet. A concurrent seed racing to the same username is
// treated as success.
func (s *authServiceImpl) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.adminRepo.FindByUsername(ctx, defaultAdminUsername)
	if err == nil {
		slog.Debug("default admin already exists")
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("find admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{Username: defaultAdminUsername, PasswordHash: string(hash)}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}

	slog.Info("default admin created", "username", defaultAdminUsername)
	return nil
}
