package ports

import (
	"context"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// AppointmentDay groups the scheduled cuts of one calendar day (YYYY-MM-DD),
// ordered by time slot.
type AppointmentDay struct {
	Data         string       `json:"data"`
	Agendamentos []domain.Cut `json:"agendamentos"`
}

// TenantAppointments is one tenant's block in the all-tenants appointment view.
type TenantAppointments struct {
	Barbearia           string           `json:"barbearia"`
	DBName              string           `json:"dbName"`
	AgendamentosPorData []AppointmentDay `json:"agendamentosPorData"`
}

// ScheduleService lists upcoming appointments.
type ScheduleService interface {
	// Appointments returns a tenant's scheduled cuts grouped by day, days ascending.
	Appointments(ctx context.Context, tenantID string) ([]AppointmentDay, error)
	// AppointmentsAll returns one block per tenant with scheduled cuts; tenants
	// with none (or that fail) are omitted.
	AppointmentsAll(ctx context.Context) ([]TenantAppointments, error)
}
