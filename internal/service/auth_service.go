package service

import (
	"context"
	"errors"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so the response does not leak which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult carries an issued session token and the admin's public fields.
type LoginResult struct {
	Token       string
	TokenExpiry time.Time
	Admin       *model.Admin
}

// AuthService defines credential verification and session-token issuance.
type AuthService interface {
	// Login verifies the username/password pair and issues a session token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// EnsureDefaultAdmin seeds the default admin account if absent.
	EnsureDefaultAdmin(ctx context.Context) error
}
