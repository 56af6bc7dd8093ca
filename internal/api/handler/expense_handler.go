package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// ExpenseHandler manages fixed and one-off expense endpoints.
type ExpenseHandler struct {
	expenses ports.ExpenseService
}

func NewExpenseHandler(expenses ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type expensesResponse struct {
	Success       bool              `json:"success"`
	Despesas      []domain.Expense  `json:"despesas"`
	Funcionarios  []domain.Employee `json:"funcionarios"`
	TotalSalarios float64           `json:"totalSalarios"`
	Barbearia     string            `json:"barbearia"`
}

type allExpensesResponse struct {
	Success          bool                   `json:"success"`
	Despesas         []ports.TenantExpense  `json:"despesas"`
	Funcionarios     []ports.TenantEmployee `json:"funcionarios"`
	TotalSalarios    float64                `json:"totalSalarios"`
	TotalPeriodicas  float64                `json:"totalPeriodicas"`
	TotalIndividuais float64                `json:"totalIndividuais"`
	TotalMensal      float64                `json:"totalMensal"`
	Barbearias       []string               `json:"barbearias"`
}

// List handles GET /api/despesas/:barbearia.
//
// @Summary      List expenses alongside payroll totals
// @Tags         expenses
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  expensesResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/despesas/{barbearia} [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	if isAllTenants(tenantID) {
		all, err := h.expenses.ListAll(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, allExpensesResponse{
			Success:          true,
			Despesas:         all.Despesas,
			Funcionarios:     all.Funcionarios,
			TotalSalarios:    all.TotalSalarios,
			TotalPeriodicas:  all.TotalPeriodicas,
			TotalIndividuais: all.TotalIndividuais,
			TotalMensal:      all.TotalMensal,
			Barbearias:       all.Barbearias,
		})
	}

	list, err := h.expenses.List(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expensesResponse{
		Success:       true,
		Despesas:      list.Despesas,
		Funcionarios:  list.Funcionarios,
		TotalSalarios: list.TotalSalarios,
		Barbearia:     list.Barbearia,
	})
}

type createExpenseRequest struct {
	Nome        string  `json:"nome" validate:"required"`
	Valor       float64 `json:"valor" validate:"required,gt=0"`
	Recorrencia string  `json:"recorrencia" validate:"required,oneof=individual periodica"`
	Data        string  `json:"data"`
}

type expenseMutationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Despesa domain.Expense `json:"despesa"`
}

// Create handles POST /api/despesas/:barbearia.
//
// @Summary      Register an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        barbearia  path      string                true  "Tenant id"
// @Param        body       body      createExpenseRequest  true  "Expense details"
// @Success      201        {object}  expenseMutationResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/despesas/{barbearia} [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var data time.Time
	if req.Data != "" {
		parsed, err := time.Parse(time.RFC3339, req.Data)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "data must be RFC 3339")
		}
		data = parsed
	}

	expense, err := h.expenses.Create(c.Request().Context(), c.Param(paramTenant), ports.CreateExpenseInput{
		Nome:        req.Nome,
		Valor:       req.Valor,
		Recorrencia: domain.Recurrence(req.Recorrencia),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, expenseMutationResponse{
		Success: true,
		Message: "Despesa criada com sucesso",
		Despesa: *expense,
	})
}

type deleteExpenseRequest struct {
	DespesaID string `json:"despesaId" validate:"required"`
}

// Delete handles DELETE /api/despesas/:barbearia with the id in the JSON body.
//
// @Summary      Remove an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        barbearia  path      string                true  "Tenant id"
// @Param        body       body      deleteExpenseRequest  true  "Expense id"
// @Success      200        {object}  expenseMutationResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/despesas/{barbearia} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	var req deleteExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	removed, err := h.expenses.Delete(c.Request().Context(), c.Param(paramTenant), req.DespesaID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenseMutationResponse{
		Success: true,
		Message: "Despesa removida com sucesso",
		Despesa: *removed,
	})
}
