package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

func TestLoyaltyService_Leaderboard(t *testing.T) {
	repo := &stubCutRepo{findFn: func(_ context.Context, _ string, filter ports.CutFilter) ([]domain.Cut, error) {
		if len(filter.Statuses) != 1 || filter.Statuses[0] != domain.StatusConfirmed {
			t.Fatalf("expected confirmed-only filter, got %v", filter.Statuses)
		}
		return []domain.Cut{
			{Nome: "Ana"}, {Nome: "Bruno"}, {Nome: "Ana"}, {Nome: "Ana"},
		}, nil
	}}

	svc := NewLoyaltyService(repo, newStubTenants("barbearia01"), zerolog.Nop())

	board, err := svc.Leaderboard(context.Background(), "barbearia01")
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	if board.TotalCortes != 4 {
		t.Errorf("totalCortes = %d, want 4", board.TotalCortes)
	}
	want := []ports.Score{{Nome: "Ana", Pontos: 3}, {Nome: "Bruno", Pontos: 1}}
	if len(board.Pontuacoes) != len(want) {
		t.Fatalf("pontuacoes = %+v, want %+v", board.Pontuacoes, want)
	}
	for i, score := range want {
		if board.Pontuacoes[i] != score {
			t.Errorf("pontuacoes[%d] = %+v, want %+v", i, board.Pontuacoes[i], score)
		}
	}
	if board.Barbearia != "db-barbearia01" {
		t.Errorf("barbearia = %q, want db-barbearia01", board.Barbearia)
	}
}

func TestScoresByName_TiesKeepFirstSeenOrder(t *testing.T) {
	cuts := []domain.Cut{
		{Nome: "Bruno"}, {Nome: "Ana"}, {Nome: "Bruno"}, {Nome: "Ana"},
	}
	scores := scoresByName(cuts)
	if scores[0].Nome != "Bruno" || scores[1].Nome != "Ana" {
		t.Errorf("tie order = %+v, want Bruno before Ana", scores)
	}
}

func TestLoyaltyService_LeaderboardAll_OmitsEmptyAndFailing(t *testing.T) {
	repo := &stubCutRepo{findFn: func(_ context.Context, tenantID string, _ ports.CutFilter) ([]domain.Cut, error) {
		switch tenantID {
		case "barbearia01":
			return []domain.Cut{{Nome: "Ana"}}, nil
		case "barbearia02":
			return nil, nil
		default:
			return nil, errors.New("server selection timeout")
		}
	}}

	svc := NewLoyaltyService(repo, newStubTenants("barbearia01", "barbearia02", "barbearia03"), zerolog.Nop())

	blocks, err := svc.LeaderboardAll(context.Background())
	if err != nil {
		t.Fatalf("LeaderboardAll: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("blocks = %+v, want one block", blocks)
	}
	if blocks[0].Barbearia != "Barbearia 01" {
		t.Errorf("display name = %q, want Barbearia 01", blocks[0].Barbearia)
	}
	if blocks[0].DBName != "db-barbearia01" {
		t.Errorf("dbName = %q, want db-barbearia01", blocks[0].DBName)
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName("barbearia03"); got != "Barbearia 03" {
		t.Errorf("displayName = %q, want Barbearia 03", got)
	}
	if got := displayName("loja"); got != "loja" {
		t.Errorf("displayName = %q, want passthrough", got)
	}
}
