package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type expenseService struct {
	expenses  ports.ExpenseRepository
	employees ports.EmployeeRepository
	tenants   ports.TenantDirectory
	log       zerolog.Logger
}

// NewExpenseService returns an ExpenseService.
func NewExpenseService(
	expenses ports.ExpenseRepository,
	employees ports.EmployeeRepository,
	tenants ports.TenantDirectory,
	log zerolog.Logger,
) ports.ExpenseService {
	return &expenseService{expenses: expenses, employees: employees, tenants: tenants, log: log}
}

// List returns the tenant's expenses alongside the employee roster and its
// gross salary total, which the expense page displays together.
func (s *expenseService) List(ctx context.Context, tenantID string) (*ports.ExpenseList, error) {
	dbName, err := s.tenants.DatabaseName(tenantID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var totalSalarios float64
	for _, e := range employees {
		totalSalarios += e.SalarioBruto
	}

	return &ports.ExpenseList{
		Despesas:      expenses,
		Funcionarios:  employees,
		TotalSalarios: totalSalarios,
		Barbearia:     dbName,
	}, nil
}

// ListAll merges every registered tenant's expenses and employee roster into
// flat lists tagged with the shop's display name, alongside the monthly
// totals. A failing tenant is logged and skipped.
func (s *expenseService) ListAll(ctx context.Context) (*ports.ExpenseListAll, error) {
	now := time.Now()
	all := &ports.ExpenseListAll{}
	for _, tenantID := range s.tenants.Tenants() {
		expenses, err := s.expenses.List(ctx, tenantID)
		if err != nil {
			s.log.Error().Err(err).Str("tenant", tenantID).Msg("tenant skipped in expense aggregation")
			continue
		}
		employees, err := s.employees.List(ctx, tenantID)
		if err != nil {
			s.log.Error().Err(err).Str("tenant", tenantID).Msg("tenant skipped in expense aggregation")
			continue
		}

		tag := displayName(tenantID)
		for _, e := range expenses {
			all.Despesas = append(all.Despesas, ports.TenantExpense{Expense: e, Barbearia: tag})
			switch {
			case e.Recorrencia == domain.RecurrencePeriodica:
				all.TotalPeriodicas += e.Valor
			case e.CountsIn(now):
				all.TotalIndividuais += e.Valor
			}
		}
		for _, emp := range employees {
			all.Funcionarios = append(all.Funcionarios, ports.TenantEmployee{Employee: emp, Barbearia: tag})
			all.TotalSalarios += emp.SalarioBruto
		}
		if dbName, err := s.tenants.DatabaseName(tenantID); err == nil {
			all.Barbearias = append(all.Barbearias, dbName)
		}
	}
	all.TotalMensal = all.TotalPeriodicas + all.TotalIndividuais + all.TotalSalarios
	return all, nil
}

func (s *expenseService) Create(ctx context.Context, tenantID string, input ports.CreateExpenseInput) (*domain.Expense, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	data := input.Data
	if data.IsZero() {
		data = time.Now().UTC()
	}
	expense := &domain.Expense{
		Nome:        input.Nome,
		Valor:       input.Valor,
		Recorrencia: input.Recorrencia,
		Data:        data,
	}
	if err := s.expenses.Create(ctx, tenantID, expense); err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant", tenantID).Str("despesa", expense.ID).Msg("expense created")
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, tenantID, id string) (*domain.Expense, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	removed, err := s.expenses.Delete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant", tenantID).Str("despesa", id).Msg("expense removed")
	return removed, nil
}
