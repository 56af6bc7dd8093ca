package ports

import (
	"context"
	"time"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

// CutFilter carries the query parameters for fetching cuts.
type CutFilter struct {
	// Statuses restricts results to these statuses. Empty means no filter.
	Statuses []domain.CutStatus
	// Since, when non-zero, restricts results to cuts dated at or after it.
	Since time.Time
	// SortAsc orders results by date ascending when true, descending otherwise.
	SortAsc bool
}

// CutRepository defines read access to a tenant's cuts collection. Cuts are
// written by the booking application, never by this system.
type CutRepository interface {
	Find(ctx context.Context, tenantID string, filter CutFilter) ([]domain.Cut, error)
}
