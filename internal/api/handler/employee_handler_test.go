package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type stubEmployeeService struct {
	listFn   func(ctx context.Context, tenantID string) ([]ports.EmployeeView, error)
	createFn func(ctx context.Context, tenantID string, input ports.CreateEmployeeInput) (*domain.Employee, error)
	deleteFn func(ctx context.Context, tenantID, id string) (*domain.Employee, error)
}

func (s *stubEmployeeService) List(ctx context.Context, tenantID string) ([]ports.EmployeeView, error) {
	return s.listFn(ctx, tenantID)
}

func (s *stubEmployeeService) Create(ctx context.Context, tenantID string, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	return s.createFn(ctx, tenantID, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, tenantID, id string) (*domain.Employee, error) {
	return s.deleteFn(ctx, tenantID, id)
}

func newEmployeeContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/api/funcionarios/barbearia01", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramTenant)
	c.SetParamValues("barbearia01")
	return c, rec
}

func TestEmployeeHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		listFn: func(_ context.Context, tenantID string) ([]ports.EmployeeView, error) {
			if tenantID != "barbearia01" {
				t.Fatalf("unexpected tenant: %s", tenantID)
			}
			return []ports.EmployeeView{
				{Employee: domain.Employee{Nome: "Carlos", SalarioBruto: 2000}, SalarioLiquido: 1800},
			}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	c, rec := newEmployeeContext(e, http.MethodGet, "")
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
	list, ok := resp["funcionarios"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected funcionarios payload: %+v", resp["funcionarios"])
	}
	first := list[0].(map[string]any)
	if first["salarioLiquido"] != 1800.0 {
		t.Fatalf("salarioLiquido = %v, want 1800", first["salarioLiquido"])
	}
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubEmployeeService{
		createFn: func(_ context.Context, _ string, input ports.CreateEmployeeInput) (*domain.Employee, error) {
			if input.Nome != "Carlos" || input.SalarioBruto != 2000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Employee{ID: "new-id", Nome: input.Nome, SalarioBruto: input.SalarioBruto}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := `{"nome":"Carlos","salarioBruto":2000,"inss":8,"fgts":2,"dataContratacao":"01/02/2024"}`
	c, rec := newEmployeeContext(e, http.MethodPost, body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Funcionário criado com sucesso") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEmployeeHandler_Create_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubEmployeeService{
		createFn: func(context.Context, string, ports.CreateEmployeeInput) (*domain.Employee, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	c, _ := newEmployeeContext(e, http.MethodPost, `{"nome":"Carlos"}`)
	err := handler.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubEmployeeService{
		deleteFn: func(_ context.Context, _ string, id string) (*domain.Employee, error) {
			if id != "652c1f77bcf86cd799439011" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Employee{ID: id, Nome: "Pedro"}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	c, rec := newEmployeeContext(e, http.MethodDelete, `{"funcionarioId":"652c1f77bcf86cd799439011"}`)
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Funcionário removido com sucesso") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

// Not-found bubbles up untouched so the central error handler can map it to 404.
func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubEmployeeService{
		deleteFn: func(context.Context, string, string) (*domain.Employee, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	handler := NewEmployeeHandler(stub)

	c, _ := newEmployeeContext(e, http.MethodDelete, `{"funcionarioId":"missing"}`)
	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestEmployeeHandler_Delete_MissingID(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubEmployeeService{
		deleteFn: func(context.Context, string, string) (*domain.Employee, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	c, _ := newEmployeeContext(e, http.MethodDelete, `{}`)
	err := handler.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
