package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type stubCustomerRepo struct {
	listFn func(ctx context.Context, tenantID string) ([]domain.Customer, error)
}

func (r *stubCustomerRepo) List(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	return r.listFn(ctx, tenantID)
}

type stubClienteRepo struct {
	listFn   func(ctx context.Context, tenantID string) ([]domain.Cliente, error)
	createFn func(ctx context.Context, tenantID string, c *domain.Cliente) error
}

func (r *stubClienteRepo) List(ctx context.Context, tenantID string) ([]domain.Cliente, error) {
	return r.listFn(ctx, tenantID)
}

func (r *stubClienteRepo) Create(ctx context.Context, tenantID string, c *domain.Cliente) error {
	return r.createFn(ctx, tenantID, c)
}

func TestCustomerService_GroupedByDate(t *testing.T) {
	day1 := time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, time.June, 11, 8, 0, 0, 0, time.UTC)
	customers := &stubCustomerRepo{listFn: func(context.Context, string) ([]domain.Customer, error) {
		return []domain.Customer{
			{UserName: "Caio", CreatedAt: day1},
			{UserName: "Ana", CreatedAt: day2},
			{UserName: "Bia", CreatedAt: day1},
		}, nil
	}}

	svc := NewCustomerService(customers, &stubClienteRepo{}, newStubTenants("barbearia01"), zerolog.Nop())

	days, err := svc.GroupedByDate(context.Background(), "barbearia01")
	if err != nil {
		t.Fatalf("GroupedByDate: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	// Most recent day first.
	if days[0].Data != "2024-06-11" || days[1].Data != "2024-06-10" {
		t.Errorf("day order = %q, %q, want descending", days[0].Data, days[1].Data)
	}
	// Names ascending within a day.
	older := days[1].Usuarios
	if older[0].UserName != "Bia" || older[1].UserName != "Caio" {
		t.Errorf("name order = %q, %q, want ascending", older[0].UserName, older[1].UserName)
	}
}

func TestCustomerService_CreateCliente_SetsRegistrationDate(t *testing.T) {
	var stored *domain.Cliente
	clientes := &stubClienteRepo{createFn: func(_ context.Context, _ string, c *domain.Cliente) error {
		c.ID = "generated"
		stored = c
		return nil
	}}

	svc := NewCustomerService(&stubCustomerRepo{}, clientes, newStubTenants("barbearia01"), zerolog.Nop())

	created, err := svc.CreateCliente(context.Background(), "barbearia01", ports.CreateClienteInput{
		Nome: "Ana", Email: "ana@example.com", Telefone: "11999990000",
	})
	if err != nil {
		t.Fatalf("CreateCliente: %v", err)
	}
	if created.ID != "generated" {
		t.Errorf("id = %q, want generated", created.ID)
	}
	if stored.DataCadastro.IsZero() {
		t.Error("dataCadastro should be set on create")
	}
}
