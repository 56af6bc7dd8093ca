package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/api/metrics"
	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

// chartWindowDays is the lookback of the revenue chart: the series covers
// today-29 through today, while the query fetches one extra day of slack the
// same way the dashboard always has.
const chartWindowDays = 30

// ReportCache abstracts the short-TTL report cache (Redis). A nil cache
// disables caching.
type ReportCache interface {
	// Get unmarshals the cached value for key into v, reporting whether a
	// cached entry existed.
	Get(ctx context.Context, key string, v any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type reportService struct {
	cuts      ports.CutRepository
	expenses  ports.ExpenseRepository
	employees ports.EmployeeRepository
	tenants   ports.TenantDirectory
	cache     ReportCache
	log       zerolog.Logger
}

// NewReportService returns a ReportService. cache may be nil.
func NewReportService(
	cuts ports.CutRepository,
	expenses ports.ExpenseRepository,
	employees ports.EmployeeRepository,
	tenants ports.TenantDirectory,
	cache ReportCache,
	log zerolog.Logger,
) ports.ReportService {
	return &reportService{
		cuts:      cuts,
		expenses:  expenses,
		employees: employees,
		tenants:   tenants,
		cache:     cache,
		log:       log,
	}
}

// Revenue computes the realized and expected revenue buckets for one tenant.
func (s *reportService) Revenue(ctx context.Context, tenantID string) (*ports.RevenueReport, error) {
	dbName, err := s.tenants.DatabaseName(tenantID)
	if err != nil {
		return nil, err
	}

	var cached ports.RevenueReport
	if s.cacheGet(ctx, "report:receitas:"+tenantID, &cached) {
		return &cached, nil
	}

	report, err := s.revenueForTenant(ctx, tenantID, time.Now())
	if err != nil {
		return nil, err
	}
	report.Barbearia = dbName

	metrics.ReportsGeneratedTotal.WithLabelValues("receitas", tenantID).Inc()
	s.cacheSet(ctx, "report:receitas:"+tenantID, report)
	return report, nil
}

// RevenueAll sums the independently computed revenue of every registered
// tenant. A failing tenant is logged and skipped; partial sums are returned.
func (s *reportService) RevenueAll(ctx context.Context) (*ports.RevenueReport, error) {
	var cached ports.RevenueReport
	if s.cacheGet(ctx, "report:receitas:todos", &cached) {
		return &cached, nil
	}

	now := time.Now()
	total := &ports.RevenueReport{}
	for _, tenantID := range s.tenants.Tenants() {
		report, err := s.revenueForTenant(ctx, tenantID, now)
		if err != nil {
			s.skipTenant(tenantID, "receitas", err)
			continue
		}
		addBuckets(&total.Receitas, report.Receitas)
		addBuckets(&total.Expectativa, report.Expectativa)
		if dbName, err := s.tenants.DatabaseName(tenantID); err == nil {
			total.Barbearias = append(total.Barbearias, dbName)
		}
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("receitas", "todos").Inc()
	s.cacheSet(ctx, "report:receitas:todos", total)
	return total, nil
}

func (s *reportService) revenueForTenant(ctx context.Context, tenantID string, now time.Time) (*ports.RevenueReport, error) {
	realized, err := s.cuts.Find(ctx, tenantID, ports.CutFilter{Statuses: domain.RealizedStatuses})
	if err != nil {
		return nil, err
	}
	expected, err := s.cuts.Find(ctx, tenantID, ports.CutFilter{Statuses: domain.ExpectedStatuses})
	if err != nil {
		return nil, err
	}
	return &ports.RevenueReport{
		Receitas:    bucketRevenue(realized, now),
		Expectativa: bucketRevenue(expected, now),
	}, nil
}

// Chart computes the 30-day realized-revenue series for one tenant.
func (s *reportService) Chart(ctx context.Context, tenantID string) (*ports.RevenueChart, error) {
	dbName, err := s.tenants.DatabaseName(tenantID)
	if err != nil {
		return nil, err
	}

	var cached ports.RevenueChart
	if s.cacheGet(ctx, "report:grafico:"+tenantID, &cached) {
		return &cached, nil
	}

	now := time.Now()
	cuts, err := s.realizedSince(ctx, tenantID, now)
	if err != nil {
		return nil, err
	}

	chart := &ports.RevenueChart{Barbearia: dbName, TotalCortes: len(cuts)}
	chart.Labels, chart.Dados = buildDailySeries(cuts, now)

	metrics.ReportsGeneratedTotal.WithLabelValues("grafico", tenantID).Inc()
	s.cacheSet(ctx, "report:grafico:"+tenantID, chart)
	return chart, nil
}

// ChartAll merges the 30-day series of every registered tenant into one.
func (s *reportService) ChartAll(ctx context.Context) (*ports.RevenueChart, error) {
	var cached ports.RevenueChart
	if s.cacheGet(ctx, "report:grafico:todos", &cached) {
		return &cached, nil
	}

	now := time.Now()
	chart := &ports.RevenueChart{}
	chart.Labels, chart.Dados = buildDailySeries(nil, now)

	for _, tenantID := range s.tenants.Tenants() {
		cuts, err := s.realizedSince(ctx, tenantID, now)
		if err != nil {
			s.skipTenant(tenantID, "grafico", err)
			continue
		}
		_, dados := buildDailySeries(cuts, now)
		for i, v := range dados {
			chart.Dados[i] += v
		}
		chart.TotalCortes += len(cuts)
		if dbName, err := s.tenants.DatabaseName(tenantID); err == nil {
			chart.Barbearias = append(chart.Barbearias, dbName)
		}
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("grafico", "todos").Inc()
	s.cacheSet(ctx, "report:grafico:todos", chart)
	return chart, nil
}

func (s *reportService) realizedSince(ctx context.Context, tenantID string, now time.Time) ([]domain.Cut, error) {
	return s.cuts.Find(ctx, tenantID, ports.CutFilter{
		Statuses: domain.RealizedStatuses,
		Since:    now.AddDate(0, 0, -chartWindowDays),
		SortAsc:  true,
	})
}

// ExpenseSummary computes the monthly cost breakdown for one tenant.
func (s *reportService) ExpenseSummary(ctx context.Context, tenantID string) (*ports.ExpenseSummary, error) {
	dbName, err := s.tenants.DatabaseName(tenantID)
	if err != nil {
		return nil, err
	}

	var cached ports.ExpenseSummary
	if s.cacheGet(ctx, "report:despesas:"+tenantID, &cached) {
		return &cached, nil
	}

	summary, err := s.expenseSummaryForTenant(ctx, tenantID, time.Now())
	if err != nil {
		return nil, err
	}
	summary.Barbearia = dbName

	metrics.ReportsGeneratedTotal.WithLabelValues("despesas-resumo", tenantID).Inc()
	s.cacheSet(ctx, "report:despesas:"+tenantID, summary)
	return summary, nil
}

// ExpenseSummaryAll sums the expense breakdown of every registered tenant.
func (s *reportService) ExpenseSummaryAll(ctx context.Context) (*ports.ExpenseSummary, error) {
	var cached ports.ExpenseSummary
	if s.cacheGet(ctx, "report:despesas:todos", &cached) {
		return &cached, nil
	}

	now := time.Now()
	total := &ports.ExpenseSummary{DiasNoMes: domain.DaysInMonth(now)}
	for _, tenantID := range s.tenants.Tenants() {
		summary, err := s.expenseSummaryForTenant(ctx, tenantID, now)
		if err != nil {
			s.skipTenant(tenantID, "despesas-resumo", err)
			continue
		}
		total.TotalPeriodicas += summary.TotalPeriodicas
		total.TotalIndividuais += summary.TotalIndividuais
		total.TotalSalarios += summary.TotalSalarios
		total.TotalMensal += summary.TotalMensal
		if dbName, err := s.tenants.DatabaseName(tenantID); err == nil {
			total.Barbearias = append(total.Barbearias, dbName)
		}
	}
	total.CustoDiario = total.TotalMensal / float64(total.DiasNoMes)

	metrics.ReportsGeneratedTotal.WithLabelValues("despesas-resumo", "todos").Inc()
	s.cacheSet(ctx, "report:despesas:todos", total)
	return total, nil
}

func (s *reportService) expenseSummaryForTenant(ctx context.Context, tenantID string, now time.Time) (*ports.ExpenseSummary, error) {
	expenses, err := s.expenses.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	summary := summarizeExpenses(expenses, employees, now)
	return &summary, nil
}

func (s *reportService) skipTenant(tenantID, kind string, err error) {
	metrics.TenantFailuresTotal.WithLabelValues(tenantID).Inc()
	s.log.Error().Err(err).Str("tenant", tenantID).Str("report", kind).Msg("tenant skipped in aggregation")
}

func (s *reportService) cacheGet(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.Get(ctx, key, v)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		return false
	}
	if hit {
		metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
	}
	return hit
}

func (s *reportService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}

// bucketRevenue classifies each cut into the day/week/month buckets relative
// to now and sums its service price into every bucket it falls in.
func bucketRevenue(cuts []domain.Cut, now time.Time) ports.RevenueBuckets {
	var b ports.RevenueBuckets
	for _, cut := range cuts {
		valor := cut.Service.Price()
		if domain.InPeriod(cut.Data, now, domain.PeriodDay) {
			b.Diaria.Valor += valor
			b.Diaria.Quantidade++
		}
		if domain.InPeriod(cut.Data, now, domain.PeriodWeek) {
			b.Semanal.Valor += valor
			b.Semanal.Quantidade++
		}
		if domain.InPeriod(cut.Data, now, domain.PeriodMonth) {
			b.Mensal.Valor += valor
			b.Mensal.Quantidade++
		}
	}
	return b
}

// buildDailySeries produces the 30-day chart arrays: one DD/MM label per day
// from now-29 through now, zero-filled, with each cut's price added to the day
// it falls on. Cuts outside the window are ignored.
func buildDailySeries(cuts []domain.Cut, now time.Time) ([]string, []float64) {
	labels := make([]string, 0, chartWindowDays)
	index := make(map[string]int, chartWindowDays)
	for i := chartWindowDays - 1; i >= 0; i-- {
		label := domain.DayMonthLabel(now.AddDate(0, 0, -i))
		index[label] = len(labels)
		labels = append(labels, label)
	}

	dados := make([]float64, len(labels))
	for _, cut := range cuts {
		if i, ok := index[domain.DayMonthLabel(cut.Data)]; ok {
			dados[i] += cut.Service.Price()
		}
	}
	return labels, dados
}

// summarizeExpenses partitions expenses by recurrence, folds in the salary
// total as a synthetic recurring cost, and derives the average daily cost for
// the month containing now.
func summarizeExpenses(expenses []domain.Expense, employees []domain.Employee, now time.Time) ports.ExpenseSummary {
	var summary ports.ExpenseSummary
	for _, e := range expenses {
		switch {
		case e.Recorrencia == domain.RecurrencePeriodica:
			summary.TotalPeriodicas += e.Valor
		case e.CountsIn(now):
			summary.TotalIndividuais += e.Valor
		}
	}
	for _, emp := range employees {
		summary.TotalSalarios += emp.SalarioBruto
	}
	summary.TotalMensal = summary.TotalPeriodicas + summary.TotalIndividuais + summary.TotalSalarios
	summary.DiasNoMes = domain.DaysInMonth(now)
	summary.CustoDiario = summary.TotalMensal / float64(summary.DiasNoMes)
	return summary
}

func addBuckets(dst *ports.RevenueBuckets, src ports.RevenueBuckets) {
	dst.Diaria.Valor += src.Diaria.Valor
	dst.Diaria.Quantidade += src.Diaria.Quantidade
	dst.Semanal.Valor += src.Semanal.Valor
	dst.Semanal.Quantidade += src.Semanal.Quantidade
	dst.Mensal.Valor += src.Mensal.Valor
	dst.Mensal.Quantidade += src.Mensal.Quantidade
}
