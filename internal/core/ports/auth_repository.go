package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// AuthRepository defines read access to dashboard operator accounts, stored in
// the shared admin database.
type AuthRepository interface {
	// FindByUserName returns the admin user with the given name, or
	// domain.ErrUserNotFound.
	FindByUserName(ctx context.Context, userName string) (*domain.AdminUser, error)
}
