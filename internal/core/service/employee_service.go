package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type employeeService struct {
	repo    ports.EmployeeRepository
	tenants ports.TenantDirectory
	log     zerolog.Logger
}

// NewEmployeeService returns an EmployeeService.
func NewEmployeeService(repo ports.EmployeeRepository, tenants ports.TenantDirectory, log zerolog.Logger) ports.EmployeeService {
	return &employeeService{repo: repo, tenants: tenants, log: log}
}

// List returns the tenant's employees with the net salary derived per entry.
func (s *employeeService) List(ctx context.Context, tenantID string) ([]ports.EmployeeView, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	employees, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.EmployeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, ports.EmployeeView{Employee: e, SalarioLiquido: e.SalarioLiquido()})
	}
	return views, nil
}

func (s *employeeService) Create(ctx context.Context, tenantID string, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Nome:            input.Nome,
		SalarioBruto:    input.SalarioBruto,
		INSS:            input.INSS,
		FGTS:            input.FGTS,
		DataContratacao: input.DataContratacao,
	}
	if err := s.repo.Create(ctx, tenantID, employee); err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant", tenantID).Str("funcionario", employee.ID).Msg("employee created")
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, tenantID, id string) (*domain.Employee, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant", tenantID).Str("funcionario", id).Msg("employee removed")
	return removed, nil
}
