package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// EmployeeView is an employee plus the net salary derived at display time.
type EmployeeView struct {
	domain.Employee
	SalarioLiquido float64 `json:"salarioLiquido"`
}

// CreateEmployeeInput carries the fields for hiring an employee.
type CreateEmployeeInput struct {
	Nome            string
	SalarioBruto    float64
	INSS            float64
	FGTS            float64
	DataContratacao string
}

// EmployeeService manages a tenant's employee roster.
type EmployeeService interface {
	List(ctx context.Context, tenantID string) ([]EmployeeView, error)
	Create(ctx context.Context, tenantID string, input CreateEmployeeInput) (*domain.Employee, error)
	// Delete removes the employee and returns the removed document, or
	// domain.ErrEmployeeNotFound.
	Delete(ctx context.Context, tenantID, id string) (*domain.Employee, error)
}
