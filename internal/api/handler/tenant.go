package handler

// paramTenant is the route parameter carrying the tenant id.
const paramTenant = "barbearia"

// isAllTenants reports whether the tenant path segment selects the aggregate
// ("all shops") view instead of a single tenant.
func isAllTenants(tenantID string) bool {
	return tenantID == "todos" || tenantID == "all"
}
