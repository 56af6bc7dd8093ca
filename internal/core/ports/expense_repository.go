package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// ExpenseRepository defines persistence for a tenant's expenses.
type ExpenseRepository interface {
	// List returns all expenses ordered by date descending, then name ascending.
	List(ctx context.Context, tenantID string) ([]domain.Expense, error)
	// Create inserts the expense and fills in its generated ID.
	Create(ctx context.Context, tenantID string, e *domain.Expense) error
	// Delete removes the expense by id and returns the removed document, or
	// domain.ErrExpenseNotFound when no such expense exists.
	Delete(ctx context.Context, tenantID, id string) (*domain.Expense, error)
}
