package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// EmployeeHandler manages the employee roster endpoints.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type employeesResponse struct {
	Success      bool                 `json:"success"`
	Funcionarios []ports.EmployeeView `json:"funcionarios"`
}

// List handles GET /api/funcionarios/:barbearia.
//
// @Summary      List employees with derived net salary
// @Tags         employees
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id"
// @Success      200        {object}  employeesResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/funcionarios/{barbearia} [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	views, err := h.employees.List(c.Request().Context(), c.Param(paramTenant))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeesResponse{Success: true, Funcionarios: views})
}

type createEmployeeRequest struct {
	Nome            string  `json:"nome" validate:"required"`
	SalarioBruto    float64 `json:"salarioBruto" validate:"required,gt=0"`
	INSS            float64 `json:"inss" validate:"required,gte=0"`
	FGTS            float64 `json:"fgts" validate:"required,gte=0"`
	DataContratacao string  `json:"dataContratacao" validate:"required"`
}

type employeeMutationResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Funcionario domain.Employee `json:"funcionario"`
}

// Create handles POST /api/funcionarios/:barbearia.
//
// @Summary      Hire an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        barbearia  path      string                 true  "Tenant id"
// @Param        body       body      createEmployeeRequest  true  "Employee details"
// @Success      201        {object}  employeeMutationResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/funcionarios/{barbearia} [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employees.Create(c.Request().Context(), c.Param(paramTenant), ports.CreateEmployeeInput{
		Nome:            req.Nome,
		SalarioBruto:    req.SalarioBruto,
		INSS:            req.INSS,
		FGTS:            req.FGTS,
		DataContratacao: req.DataContratacao,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employeeMutationResponse{
		Success:     true,
		Message:     "Funcionário criado com sucesso",
		Funcionario: *employee,
	})
}

type deleteEmployeeRequest struct {
	FuncionarioID string `json:"funcionarioId" validate:"required"`
}

// Delete handles DELETE /api/funcionarios/:barbearia. The target id travels in
// the JSON body, matching the dashboard client.
//
// @Summary      Remove an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        barbearia  path      string                 true  "Tenant id"
// @Param        body       body      deleteEmployeeRequest  true  "Employee id"
// @Success      200        {object}  employeeMutationResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/funcionarios/{barbearia} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	var req deleteEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	removed, err := h.employees.Delete(c.Request().Context(), c.Param(paramTenant), req.FuncionarioID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employeeMutationResponse{
		Success:     true,
		Message:     "Funcionário removido com sucesso",
		Funcionario: *removed,
	})
}
