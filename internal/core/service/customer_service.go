package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type customerService struct {
	customers ports.CustomerRepository
	clientes  ports.ClienteRepository
	tenants   ports.TenantDirectory
	log       zerolog.Logger
}

// NewCustomerService returns a CustomerService.
func NewCustomerService(
	customers ports.CustomerRepository,
	clientes ports.ClienteRepository,
	tenants ports.TenantDirectory,
	log zerolog.Logger,
) ports.CustomerService {
	return &customerService{customers: customers, clientes: clientes, tenants: tenants, log: log}
}

// GroupedByDate returns the tenant's customers grouped by signup date, most
// recent day first, names ascending within a day.
func (s *customerService) GroupedByDate(ctx context.Context, tenantID string) ([]ports.CustomerDay, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	customers, err := s.customers.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]domain.Customer)
	for _, c := range customers {
		key := c.CreatedAt.UTC().Format(time.DateOnly)
		byDay[key] = append(byDay[key], c)
	}

	days := make([]ports.CustomerDay, 0, len(byDay))
	for data, group := range byDay {
		sort.Slice(group, func(i, j int) bool { return group[i].UserName < group[j].UserName })
		days = append(days, ports.CustomerDay{Data: data, Usuarios: group})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Data > days[j].Data })
	return days, nil
}

// GroupedByDateAll returns one block per tenant with registered customers.
// Failing tenants are logged and skipped.
func (s *customerService) GroupedByDateAll(ctx context.Context) ([]ports.TenantCustomers, error) {
	blocks := make([]ports.TenantCustomers, 0, len(s.tenants.Tenants()))
	for _, tenantID := range s.tenants.Tenants() {
		days, err := s.GroupedByDate(ctx, tenantID)
		if err != nil {
			s.log.Error().Err(err).Str("tenant", tenantID).Msg("tenant skipped in customer aggregation")
			continue
		}
		if len(days) == 0 {
			continue
		}
		dbName, _ := s.tenants.DatabaseName(tenantID)
		blocks = append(blocks, ports.TenantCustomers{
			Barbearia:       displayName(tenantID),
			DBName:          dbName,
			UsuariosPorData: days,
		})
	}
	return blocks, nil
}

func (s *customerService) ListClientes(ctx context.Context, tenantID string) ([]domain.Cliente, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}
	return s.clientes.List(ctx, tenantID)
}

func (s *customerService) CreateCliente(ctx context.Context, tenantID string, input ports.CreateClienteInput) (*domain.Cliente, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	cliente := &domain.Cliente{
		Nome:         input.Nome,
		Email:        input.Email,
		Telefone:     input.Telefone,
		DataCadastro: time.Now().UTC(),
	}
	if err := s.clientes.Create(ctx, tenantID, cliente); err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant", tenantID).Str("cliente", cliente.ID).Msg("cliente created")
	return cliente, nil
}
