package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

func TestEmployeeService_List_DerivesNetSalary(t *testing.T) {
	repo := &stubEmployeeRepo{listFn: func(context.Context, string) ([]domain.Employee, error) {
		return []domain.Employee{{Nome: "Carlos", SalarioBruto: 2000, INSS: 8, FGTS: 2}}, nil
	}}

	svc := NewEmployeeService(repo, newStubTenants("barbearia01"), zerolog.Nop())

	views, err := svc.List(context.Background(), "barbearia01")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %d, want 1", len(views))
	}
	if views[0].SalarioLiquido != 1800 {
		t.Errorf("salarioLiquido = %v, want 1800", views[0].SalarioLiquido)
	}
}

func TestEmployeeService_Create_UnknownTenant(t *testing.T) {
	repo := &stubEmployeeRepo{createFn: func(context.Context, string, *domain.Employee) error {
		t.Fatal("repository should not be written for unknown tenants")
		return nil
	}}

	svc := NewEmployeeService(repo, newStubTenants("barbearia01"), zerolog.Nop())

	_, err := svc.Create(context.Background(), "salao99", ports.CreateEmployeeInput{Nome: "Carlos"})
	if !errors.Is(err, domain.ErrUnknownTenant) {
		t.Fatalf("err = %v, want ErrUnknownTenant", err)
	}
}

func TestEmployeeService_Delete_PropagatesNotFound(t *testing.T) {
	repo := &stubEmployeeRepo{deleteFn: func(context.Context, string, string) (*domain.Employee, error) {
		return nil, domain.ErrEmployeeNotFound
	}}

	svc := NewEmployeeService(repo, newStubTenants("barbearia01"), zerolog.Nop())

	_, err := svc.Delete(context.Background(), "barbearia01", "652c1f77bcf86cd799439011")
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestEmployeeService_Delete_ReturnsRemovedDocument(t *testing.T) {
	repo := &stubEmployeeRepo{deleteFn: func(_ context.Context, _ string, id string) (*domain.Employee, error) {
		return &domain.Employee{ID: id, Nome: "Pedro"}, nil
	}}

	svc := NewEmployeeService(repo, newStubTenants("barbearia01"), zerolog.Nop())

	removed, err := svc.Delete(context.Background(), "barbearia01", "abc123")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.Nome != "Pedro" {
		t.Errorf("removed = %+v, want Pedro", removed)
	}
}
