package ports

// TenantDirectory exposes the fixed set of registered tenants. Implemented by
// the mongo tenant registry; services use it to drive cross-tenant loops and
// to label responses with the tenant's database name.
type TenantDirectory interface {
	// Tenants returns the ordered list of registered tenant ids.
	Tenants() []string
	// DatabaseName maps a tenant id to its database name, or returns
	// domain.ErrUnknownTenant for ids outside the allow-list.
	DatabaseName(tenantID string) (string, error)
}
