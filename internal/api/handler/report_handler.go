package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// ReportHandler serves the revenue and expense report endpoints.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type revenueResponse struct {
	Success     bool                 `json:"success"`
	Receitas    ports.RevenueBuckets `json:"receitas"`
	Expectativa ports.RevenueBuckets `json:"expectativa"`
	Barbearia   string               `json:"barbearia,omitempty"`
	Barbearias  []string             `json:"barbearias,omitempty"`
}

// Revenue handles GET /api/receitas/:barbearia.
//
// @Summary      Revenue buckets (realized and expected) for one tenant or all
// @Tags         reports
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  revenueResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/receitas/{barbearia} [get]
func (h *ReportHandler) Revenue(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	var (
		report *ports.RevenueReport
		err    error
	)
	if isAllTenants(tenantID) {
		report, err = h.reports.RevenueAll(c.Request().Context())
	} else {
		report, err = h.reports.Revenue(c.Request().Context(), tenantID)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, revenueResponse{
		Success:     true,
		Receitas:    report.Receitas,
		Expectativa: report.Expectativa,
		Barbearia:   report.Barbearia,
		Barbearias:  report.Barbearias,
	})
}

type chartResponse struct {
	Success     bool      `json:"success"`
	Labels      []string  `json:"labels"`
	Dados       []float64 `json:"dados"`
	TotalCortes int       `json:"totalCortes"`
	Barbearia   string    `json:"barbearia,omitempty"`
	Barbearias  []string  `json:"barbearias,omitempty"`
}

// Chart handles GET /api/grafico-receita/:barbearia.
//
// @Summary      30-day realized revenue series
// @Tags         reports
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  chartResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/grafico-receita/{barbearia} [get]
func (h *ReportHandler) Chart(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	var (
		chart *ports.RevenueChart
		err   error
	)
	if isAllTenants(tenantID) {
		chart, err = h.reports.ChartAll(c.Request().Context())
	} else {
		chart, err = h.reports.Chart(c.Request().Context(), tenantID)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chartResponse{
		Success:     true,
		Labels:      chart.Labels,
		Dados:       chart.Dados,
		TotalCortes: chart.TotalCortes,
		Barbearia:   chart.Barbearia,
		Barbearias:  chart.Barbearias,
	})
}

type expenseSummaryResponse struct {
	Success          bool     `json:"success"`
	TotalPeriodicas  float64  `json:"totalPeriodicas"`
	TotalIndividuais float64  `json:"totalIndividuais"`
	TotalSalarios    float64  `json:"totalSalarios"`
	TotalMensal      float64  `json:"totalMensal"`
	CustoDiario      float64  `json:"custoDiario"`
	DiasNoMes        int      `json:"diasNoMes"`
	Barbearia        string   `json:"barbearia,omitempty"`
	Barbearias       []string `json:"barbearias,omitempty"`
}

// ExpenseSummary handles GET /api/despesas-resumo/:barbearia.
//
// @Summary      Monthly cost breakdown including synthesized salaries
// @Tags         reports
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  expenseSummaryResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/despesas-resumo/{barbearia} [get]
func (h *ReportHandler) ExpenseSummary(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	var (
		summary *ports.ExpenseSummary
		err     error
	)
	if isAllTenants(tenantID) {
		summary, err = h.reports.ExpenseSummaryAll(c.Request().Context())
	} else {
		summary, err = h.reports.ExpenseSummary(c.Request().Context(), tenantID)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, expenseSummaryResponse{
		Success:          true,
		TotalPeriodicas:  summary.TotalPeriodicas,
		TotalIndividuais: summary.TotalIndividuais,
		TotalSalarios:    summary.TotalSalarios,
		TotalMensal:      summary.TotalMensal,
		CustoDiario:      summary.CustoDiario,
		DiasNoMes:        summary.DiasNoMes,
		Barbearia:        summary.Barbearia,
		Barbearias:       summary.Barbearias,
	})
}
