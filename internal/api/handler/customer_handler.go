package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// CustomerHandler serves booking-app customer views and walk-in client CRUD.
type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type usersByDateResponse struct {
	Success         bool                `json:"success"`
	UsuariosPorData []ports.CustomerDay `json:"usuariosPorData"`
}

type allUsersResponse struct {
	Success    bool                    `json:"success"`
	Barbearias []ports.TenantCustomers `json:"barbearias"`
}

// Users handles GET /api/usuarios/:barbearia.
//
// @Summary      Customers grouped by signup date, most recent first
// @Tags         customers
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  usersByDateResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/usuarios/{barbearia} [get]
func (h *CustomerHandler) Users(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	if isAllTenants(tenantID) {
		blocks, err := h.customers.GroupedByDateAll(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, allUsersResponse{Success: true, Barbearias: blocks})
	}

	days, err := h.customers.GroupedByDate(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersByDateResponse{Success: true, UsuariosPorData: days})
}

type clientesResponse struct {
	Success  bool             `json:"success"`
	Clientes []domain.Cliente `json:"clientes"`
}

// ListClientes handles GET /api/clientes/:barbearia.
//
// @Summary      List walk-in client records
// @Tags         customers
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id"
// @Success      200        {object}  clientesResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/clientes/{barbearia} [get]
func (h *CustomerHandler) ListClientes(c echo.Context) error {
	clientes, err := h.customers.ListClientes(c.Request().Context(), c.Param(paramTenant))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientesResponse{Success: true, Clientes: clientes})
}

type createClienteRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone" validate:"required"`
}

type createClienteResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Cliente domain.Cliente `json:"cliente"`
}

// CreateCliente handles POST /api/clientes/:barbearia.
//
// @Summary      Register a walk-in client
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        barbearia  path      string                true  "Tenant id"
// @Param        body       body      createClienteRequest  true  "Client details"
// @Success      201        {object}  createClienteResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/clientes/{barbearia} [post]
func (h *CustomerHandler) CreateCliente(c echo.Context) error {
	var req createClienteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cliente, err := h.customers.CreateCliente(c.Request().Context(), c.Param(paramTenant), ports.CreateClienteInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createClienteResponse{
		Success: true,
		Message: "Cliente criado com sucesso",
		Cliente: *cliente,
	})
}
