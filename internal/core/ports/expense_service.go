package ports

import (
	"context"
	"time"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// ExpenseList is the expense page payload: the expense entries plus the
// employee roster and its salary total, which the page displays alongside.
type ExpenseList struct {
	Despesas      []domain.Expense
	Funcionarios  []domain.Employee
	TotalSalarios float64
	Barbearia     string
}

// TenantExpense is an expense tagged with the shop it belongs to, for the
// all-tenants expense view.
type TenantExpense struct {
	domain.Expense
	Barbearia string `json:"barbearia"`
}

// TenantEmployee is an employee tagged with the shop it belongs to.
type TenantEmployee struct {
	domain.Employee
	Barbearia string `json:"barbearia"`
}

// ExpenseListAll is the all-tenants expense page payload: every shop's
// expenses and roster merged into flat tagged lists, with the same monthly
// totals the per-tenant summary derives.
type ExpenseListAll struct {
	Despesas         []TenantExpense
	Funcionarios     []TenantEmployee
	TotalSalarios    float64
	TotalPeriodicas  float64
	TotalIndividuais float64
	TotalMensal      float64
	Barbearias       []string
}

// CreateExpenseInput carries the fields for recording an expense. A zero Data
// defaults to the current time.
type CreateExpenseInput struct {
	Nome        string
	Valor       float64
	Recorrencia domain.Recurrence
	Data        time.Time
}

// ExpenseService manages a tenant's expense entries.
type ExpenseService interface {
	List(ctx context.Context, tenantID string) (*ExpenseList, error)
	// ListAll merges every registered tenant's expenses and roster; failing
	// tenants are skipped so partial results are always returned.
	ListAll(ctx context.Context) (*ExpenseListAll, error)
	Create(ctx context.Context, tenantID string, input CreateExpenseInput) (*domain.Expense, error)
	// Delete removes the expense and returns the removed document, or
	// domain.ErrExpenseNotFound.
	Delete(ctx context.Context, tenantID, id string) (*domain.Expense, error)
}
