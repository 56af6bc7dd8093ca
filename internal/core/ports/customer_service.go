package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// CustomerDay groups the customers registered on one calendar day (YYYY-MM-DD),
// ordered by name.
type CustomerDay struct {
	Data     string            `json:"data"`
	Usuarios []domain.Customer `json:"usuarios"`
}

// TenantCustomers is one tenant's block in the all-tenants customer view.
type TenantCustomers struct {
	Barbearia       string        `json:"barbearia"`
	DBName          string        `json:"dbName"`
	UsuariosPorData []CustomerDay `json:"usuariosPorData"`
}

// CreateClienteInput carries the fields for registering a walk-in client.
type CreateClienteInput struct {
	Nome     string
	Email    string
	Telefone string
}

// CustomerService serves booking-app customer views and walk-in client CRUD.
type CustomerService interface {
	// GroupedByDate returns a tenant's customers grouped by signup date, most
	// recent day first.
	GroupedByDate(ctx context.Context, tenantID string) ([]CustomerDay, error)
	// GroupedByDateAll returns one block per tenant; empty or failing tenants
	// are omitted.
	GroupedByDateAll(ctx context.Context) ([]TenantCustomers, error)

	ListClientes(ctx context.Context, tenantID string) ([]domain.Cliente, error)
	CreateCliente(ctx context.Context, tenantID string, input CreateClienteInput) (*domain.Cliente, error)
}
