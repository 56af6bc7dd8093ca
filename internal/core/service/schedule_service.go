package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

type scheduleService struct {
	cuts    ports.CutRepository
	tenants ports.TenantDirectory
	log     zerolog.Logger
}

// NewScheduleService returns a ScheduleService.
func NewScheduleService(cuts ports.CutRepository, tenants ports.TenantDirectory, log zerolog.Logger) ports.ScheduleService {
	return &scheduleService{cuts: cuts, tenants: tenants, log: log}
}

// Appointments returns the tenant's scheduled cuts grouped by calendar day.
func (s *scheduleService) Appointments(ctx context.Context, tenantID string) ([]ports.AppointmentDay, error) {
	if _, err := s.tenants.DatabaseName(tenantID); err != nil {
		return nil, err
	}

	cuts, err := s.cuts.Find(ctx, tenantID, ports.CutFilter{
		Statuses: []domain.CutStatus{domain.StatusScheduled},
		SortAsc:  true,
	})
	if err != nil {
		return nil, err
	}
	return groupByDay(cuts), nil
}

// AppointmentsAll returns one block per tenant with scheduled cuts. Failing
// tenants are logged and skipped.
func (s *scheduleService) AppointmentsAll(ctx context.Context) ([]ports.TenantAppointments, error) {
	blocks := make([]ports.TenantAppointments, 0, len(s.tenants.Tenants()))
	for _, tenantID := range s.tenants.Tenants() {
		days, err := s.Appointments(ctx, tenantID)
		if err != nil {
			s.log.Error().Err(err).Str("tenant", tenantID).Msg("tenant skipped in appointment aggregation")
			continue
		}
		if len(days) == 0 {
			continue
		}
		dbName, _ := s.tenants.DatabaseName(tenantID)
		blocks = append(blocks, ports.TenantAppointments{
			Barbearia:           displayName(tenantID),
			DBName:              dbName,
			AgendamentosPorData: days,
		})
	}
	return blocks, nil
}

// groupByDay buckets cuts by their UTC calendar date (YYYY-MM-DD), ordering
// days ascending and entries within a day by time slot.
func groupByDay(cuts []domain.Cut) []ports.AppointmentDay {
	byDay := make(map[string][]domain.Cut)
	for _, cut := range cuts {
		key := cut.Data.UTC().Format(time.DateOnly)
		byDay[key] = append(byDay[key], cut)
	}

	days := make([]ports.AppointmentDay, 0, len(byDay))
	for data, group := range byDay {
		sort.Slice(group, func(i, j int) bool { return group[i].Horario < group[j].Horario })
		days = append(days, ports.AppointmentDay{Data: data, Agendamentos: group})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Data < days[j].Data })
	return days
}
