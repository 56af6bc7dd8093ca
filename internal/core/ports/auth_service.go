package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// AuthService authenticates dashboard operators.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token plus
	// the authenticated user. Returns domain.ErrInvalidCredentials or
	// domain.ErrUserNotFound on failure.
	Login(ctx context.Context, userName, password string) (string, *domain.AdminUser, error)
}
