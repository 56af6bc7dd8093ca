package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type stubExpenseService struct {
	listFn    func(ctx context.Context, tenantID string) (*ports.ExpenseList, error)
	listAllFn func(ctx context.Context) (*ports.ExpenseListAll, error)
	createFn  func(ctx context.Context, tenantID string, input ports.CreateExpenseInput) (*domain.Expense, error)
	deleteFn  func(ctx context.Context, tenantID, id string) (*domain.Expense, error)
}

func (s *stubExpenseService) List(ctx context.Context, tenantID string) (*ports.ExpenseList, error) {
	return s.listFn(ctx, tenantID)
}

func (s *stubExpenseService) ListAll(ctx context.Context) (*ports.ExpenseListAll, error) {
	return s.listAllFn(ctx)
}

func (s *stubExpenseService) Create(ctx context.Context, tenantID string, input ports.CreateExpenseInput) (*domain.Expense, error) {
	return s.createFn(ctx, tenantID, input)
}

func (s *stubExpenseService) Delete(ctx context.Context, tenantID, id string) (*domain.Expense, error) {
	return s.deleteFn(ctx, tenantID, id)
}

func TestExpenseHandler_List_SingleTenant(t *testing.T) {
	e := echo.New()
	stub := &stubExpenseService{
		listFn: func(_ context.Context, tenantID string) (*ports.ExpenseList, error) {
			if tenantID != "barbearia01" {
				t.Fatalf("unexpected tenant: %s", tenantID)
			}
			return &ports.ExpenseList{
				Despesas:      []domain.Expense{{Nome: "Aluguel", Valor: 1200}},
				TotalSalarios: 2000,
				Barbearia:     "barbeariapub-01",
			}, nil
		},
		listAllFn: func(context.Context) (*ports.ExpenseListAll, error) {
			t.Fatal("all-tenants path should not be taken")
			return nil, nil
		},
	}
	handler := NewExpenseHandler(stub)

	c, rec := newReportContext(e, "/api/despesas/barbearia01", "barbearia01")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["barbearia"] != "barbeariapub-01" {
		t.Fatalf("barbearia = %v, want barbeariapub-01", resp["barbearia"])
	}
	if resp["totalSalarios"] != 2000.0 {
		t.Fatalf("totalSalarios = %v, want 2000", resp["totalSalarios"])
	}
}

func TestExpenseHandler_List_AllTenants(t *testing.T) {
	e := echo.New()
	stub := &stubExpenseService{
		listFn: func(context.Context, string) (*ports.ExpenseList, error) {
			t.Fatal("single-tenant path should not be taken")
			return nil, nil
		},
		listAllFn: func(context.Context) (*ports.ExpenseListAll, error) {
			return &ports.ExpenseListAll{
				Despesas: []ports.TenantExpense{
					{Expense: domain.Expense{Nome: "Aluguel", Valor: 1200}, Barbearia: "Barbearia 01"},
					{Expense: domain.Expense{Nome: "Pintura", Valor: 80}, Barbearia: "Barbearia 02"},
				},
				Funcionarios: []ports.TenantEmployee{
					{Employee: domain.Employee{Nome: "Carlos"}, Barbearia: "Barbearia 01"},
				},
				TotalMensal: 3280,
				Barbearias:  []string{"barbeariapub-01", "barbeariapub-02"},
			}, nil
		},
	}
	handler := NewExpenseHandler(stub)

	c, rec := newReportContext(e, "/api/despesas/todos", "todos")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	despesas := resp["despesas"].([]any)
	if len(despesas) != 2 {
		t.Fatalf("despesas = %v, want 2 entries", despesas)
	}
	first := despesas[0].(map[string]any)
	if first["barbearia"] != "Barbearia 01" {
		t.Fatalf("despesa tag = %v, want Barbearia 01", first["barbearia"])
	}
	if resp["totalMensal"] != 3280.0 {
		t.Fatalf("totalMensal = %v, want 3280", resp["totalMensal"])
	}
	barbearias := resp["barbearias"].([]any)
	if len(barbearias) != 2 {
		t.Fatalf("barbearias = %v, want 2 entries", barbearias)
	}
}
