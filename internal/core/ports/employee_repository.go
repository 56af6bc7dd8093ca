package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// EmployeeRepository defines persistence for a tenant's employees.
type EmployeeRepository interface {
	// List returns all employees ordered by name ascending.
	List(ctx context.Context, tenantID string) ([]domain.Employee, error)
	// Create inserts the employee and fills in its generated ID.
	Create(ctx context.Context, tenantID string, e *domain.Employee) error
	// Delete removes the employee by id and returns the removed document, or
	// domain.ErrEmployeeNotFound when no such employee exists.
	Delete(ctx context.Context, tenantID, id string) (*domain.Employee, error)
}
