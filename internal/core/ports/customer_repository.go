package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// CustomerRepository defines read access to a tenant's booking-app customer
// accounts (collection "users").
type CustomerRepository interface {
	// List returns all customers ordered by creation date descending.
	List(ctx context.Context, tenantID string) ([]domain.Customer, error)
}

// ClienteRepository defines persistence for walk-in client records
// (collection "clientes").
type ClienteRepository interface {
	List(ctx context.Context, tenantID string) ([]domain.Cliente, error)
	// Create inserts the cliente and fills in its generated ID.
	Create(ctx context.Context, tenantID string, c *domain.Cliente) error
}
