package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// LoyaltyHandler serves the loyalty points leaderboard.
type LoyaltyHandler struct {
	loyalty ports.LoyaltyService
}

func NewLoyaltyHandler(loyalty ports.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyalty: loyalty}
}

type leaderboardResponse struct {
	Success     bool          `json:"success"`
	Pontuacoes  []ports.Score `json:"pontuacoes"`
	Barbearia   string        `json:"barbearia"`
	TotalCortes int           `json:"totalCortes"`
}

type allLeaderboardsResponse struct {
	Success    bool                      `json:"success"`
	Barbearias []ports.TenantLeaderboard `json:"barbearias"`
}

// Scores handles GET /api/pontuacoes/:barbearia.
//
// @Summary      Loyalty points: confirmed cuts per customer, descending
// @Tags         loyalty
// @Produce      json
// @Param        barbearia  path      string  true  "Tenant id, or todos"
// @Success      200        {object}  leaderboardResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/pontuacoes/{barbearia} [get]
func (h *LoyaltyHandler) Scores(c echo.Context) error {
	tenantID := c.Param(paramTenant)

	if isAllTenants(tenantID) {
		blocks, err := h.loyalty.LeaderboardAll(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, allLeaderboardsResponse{Success: true, Barbearias: blocks})
	}

	board, err := h.loyalty.Leaderboard(c.Request().Context(), tenantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaderboardResponse{
		Success:     true,
		Pontuacoes:  board.Pontuacoes,
		Barbearia:   board.Barbearia,
		TotalCortes: board.TotalCortes,
	})
}
