package ports

import "context"

// Score is one customer's loyalty points: the count of their confirmed cuts.
type Score struct {
	Nome   string `json:"nome"`
	Pontos int    `json:"pontos"`
}

// Leaderboard is a tenant's loyalty ranking, sorted by points descending.
// Ties keep first-encounter order.
type Leaderboard struct {
	Pontuacoes  []Score
	TotalCortes int
	Barbearia   string
}

// TenantLeaderboard is one tenant's block in the all-tenants loyalty view.
type TenantLeaderboard struct {
	Barbearia   string  `json:"barbearia"`
	DBName      string  `json:"dbName"`
	Pontuacoes  []Score `json:"pontuacoes"`
	TotalCortes int     `json:"totalCortes"`
}

// LoyaltyService computes per-customer confirmed-cut counts.
type LoyaltyService interface {
	Leaderboard(ctx context.Context, tenantID string) (*Leaderboard, error)
	// LeaderboardAll returns one block per tenant; tenants with no confirmed
	// cuts (or that fail) are omitted.
	LeaderboardAll(ctx context.Context) ([]TenantLeaderboard, error)
}
