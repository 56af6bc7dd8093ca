package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// ScheduleHandler serves the upcoming-appointments views.
type ScheduleHandler struct {
	schedule ports.ScheduleService
}

func NewScheduleHandler(schedule ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

type appointmentsResponse struct {
	Success             bool                   `json:"success"`
	AgendamentosPorData []ports.AppointmentDay `json:"agendamentosPorData"`
}

type allAppointmentsResponse struct {
	Success    bool                       `json:"success"`
	Barbearias []ports.TenantAppointments `json:"barbearias"`
}

// Appointments handles GET /api/agendamentos/:barbearia.
//
// @Summary      Scheduled cuts grouped by day
// @Tags         appointments
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  appointmentsResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/agendamentos/{barbearia} [get]
func (h *ScheduleHandler) Appointments(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	if isAllTenants(tenantID) {
		blocks, err := h.schedule.AppointmentsAll(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, allAppointmentsResponse{Success: true, Barbearias: blocks})
	}

	days, err := h.schedule.Appointments(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentsResponse{Success: true, AgendamentosPorData: days})
}
