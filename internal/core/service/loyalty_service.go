package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type loyaltyService struct {
	cuts    ports.CutRepository
	tenants ports.TenantDirectory
	log     zerolog.Logger
}

// NewLoyaltyService returns a LoyaltyService.
func NewLoyaltyService(cuts ports.CutRepository, tenants ports.TenantDirectory, log zerolog.Logger) ports.LoyaltyService {
	return &loyaltyService{cuts: cuts, tenants: tenants, log: log}
}

// Leaderboard counts confirmed cuts per customer name for one tenant, sorted
// by points descending.
func (s *loyaltyService) Leaderboard(ctx context.Context, tenantID string) (*ports.Leaderboard, error) {
	dbName, err := s.tenants.DatabaseName(tenantID)
	if err != nil {
		return nil, err
	}

	cuts, err := s.cuts.Find(ctx, tenantID, ports.CutFilter{Statuses: []domain.CutStatus{domain.StatusConfirmed}})
	if err != nil {
		return nil, err
	}

	return &ports.Leaderboard{
		Pontuacoes:  scoresByName(cuts),
		TotalCortes: len(cuts),
		Barbearia:   dbName,
	}, nil
}

// LeaderboardAll returns one leaderboard block per tenant with confirmed cuts.
// Failing tenants are logged and skipped.
func (s *loyaltyService) LeaderboardAll(ctx context.Context) ([]ports.TenantLeaderboard, error) {
	blocks := make([]ports.TenantLeaderboard, 0, len(s.tenants.Tenants()))
	for _, tenantID := range s.tenants.Tenants() {
		board, err := s.Leaderboard(ctx, tenantID)
		if err != nil {
			s.log.Error().Err(err).Str("tenant", tenantID).Msg("tenant skipped in loyalty aggregation")
			continue
		}
		if board.TotalCortes == 0 {
			continue
		}
		blocks = append(blocks, ports.TenantLeaderboard{
			Barbearia:   displayName(tenantID),
			DBName:      board.Barbearia,
			Pontuacoes:  board.Pontuacoes,
			TotalCortes: board.TotalCortes,
		})
	}
	return blocks, nil
}

// scoresByName tallies cuts per customer name. Ties keep the order in which a
// name was first seen, so the sort must be stable.
func scoresByName(cuts []domain.Cut) []ports.Score {
	counts := make(map[string]int, len(cuts))
	order := make([]string, 0, len(cuts))
	for _, cut := range cuts {
		if _, seen := counts[cut.Nome]; !seen {
			order = append(order, cut.Nome)
		}
		counts[cut.Nome]++
	}

	scores := make([]ports.Score, 0, len(order))
	for _, nome := range order {
		scores = append(scores, ports.Score{Nome: nome, Pontos: counts[nome]})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Pontos > scores[j].Pontos })
	return scores
}

// displayName renders a tenant id like "barbearia03" as "Barbearia 03".
func displayName(tenantID string) string {
	if len(tenantID) > 2 {
		if suffix := tenantID[len(tenantID)-2:]; suffix[0] >= '0' && suffix[0] <= '9' {
			return fmt.Sprintf("Barbearia %s", suffix)
		}
	}
	return tenantID
}
