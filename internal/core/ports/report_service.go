package ports

import "context"

// BucketTotal is a summed value and record count for one calendar bucket.
type BucketTotal struct {
	Valor      float64 `json:"valor"`
	Quantidade int     `json:"quantidade"`
}

// RevenueBuckets holds the day/week/month totals of one aggregation pass.
type RevenueBuckets struct {
	Diaria  BucketTotal `json:"diaria"`
	Semanal BucketTotal `json:"semanal"`
	Mensal  BucketTotal `json:"mensal"`
}

// RevenueReport pairs realized revenue (confirmed and closed cuts) with
// expected revenue (scheduled cuts), both bucketed by day/week/month.
type RevenueReport struct {
	Receitas    RevenueBuckets
	Expectativa RevenueBuckets
	// Barbearia is the tenant database name, or empty for the all-tenants view.
	Barbearia string
	// Barbearias lists the databases covered by the all-tenants view.
	Barbearias []string
}

// RevenueChart is the 30-day realized-revenue series: Labels[i] is the DD/MM
// label for day today-29+i, Dados[i] the revenue summed for that day.
type RevenueChart struct {
	Labels      []string
	Dados       []float64
	TotalCortes int
	Barbearia   string
	Barbearias  []string
}

// ExpenseSummary is the monthly cost breakdown. TotalSalarios is synthesized
// from the employee roster and never persisted as an expense.
type ExpenseSummary struct {
	TotalPeriodicas  float64
	TotalIndividuais float64
	TotalSalarios    float64
	TotalMensal      float64
	CustoDiario      float64
	DiasNoMes        int
	Barbearia        string
	Barbearias       []string
}

// ReportService computes the revenue and expense reports. The *All variants
// run the same per-tenant logic over every registered tenant sequentially,
// summing totals; a failing tenant is logged and skipped so partial results
// are always returned.
type ReportService interface {
	Revenue(ctx context.Context, tenantID string) (*RevenueReport, error)
	RevenueAll(ctx context.Context) (*RevenueReport, error)
	Chart(ctx context.Context, tenantID string) (*RevenueChart, error)
	ChartAll(ctx context.Context) (*RevenueChart, error)
	ExpenseSummary(ctx context.Context, tenantID string) (*ExpenseSummary, error)
	ExpenseSummaryAll(ctx context.Context) (*ExpenseSummary, error)
}
