package mongo

import (
	"github.com/barbeariapub/dashboard-api/internal/core/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

// TenantRegistry maps tenant ids to their logical database handles, validated
// against a fixed allow-list built at startup. Ids outside the list resolve to
// domain.ErrUnknownTenant; no database name is ever built from unchecked input.
type TenantRegistry struct {
	order   []string
	dbs     map[string]*mongo.Database
	names   map[string]string
	adminDB *mongo.Database
}

// NewTenantRegistry builds a registry over client. Each tenant id maps to the
// database named prefix + the id's trailing digits (barbearia01 with prefix
// "barbeariapub-" selects barbeariapub-01); ids without a digit suffix map to
// prefix + id. adminDBName selects the shared operator-account database.
func NewTenantRegistry(client *mongo.Client, tenantIDs []string, prefix, adminDBName string) *TenantRegistry {
	r := &TenantRegistry{
		order:   make([]string, 0, len(tenantIDs)),
		dbs:     make(map[string]*mongo.Database, len(tenantIDs)),
		names:   make(map[string]string, len(tenantIDs)),
		adminDB: client.Database(adminDBName),
	}
	for _, id := range tenantIDs {
		name := prefix + tenantSuffix(id)
		r.order = append(r.order, id)
		r.names[id] = name
		r.dbs[id] = client.Database(name)
	}
	return r
}

// Tenants returns the ordered list of registered tenant ids.
func (r *TenantRegistry) Tenants() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Database returns the tenant's database handle, or domain.ErrUnknownTenant.
func (r *TenantRegistry) Database(tenantID string) (*mongo.Database, error) {
	db, ok := r.dbs[tenantID]
	if !ok {
		return nil, domain.ErrUnknownTenant
	}
	return db, nil
}

// DatabaseName returns the tenant's database name, or domain.ErrUnknownTenant.
func (r *TenantRegistry) DatabaseName(tenantID string) (string, error) {
	name, ok := r.names[tenantID]
	if !ok {
		return "", domain.ErrUnknownTenant
	}
	return name, nil
}

// AdminDatabase returns the shared admin database handle.
func (r *TenantRegistry) AdminDatabase() *mongo.Database {
	return r.adminDB
}

// Client returns the underlying mongo client, for connectivity probes.
func (r *TenantRegistry) Client() *mongo.Client {
	return r.adminDB.Client()
}

// tenantSuffix extracts the trailing digit run of a tenant id ("barbearia01"
// -> "01"), falling back to the whole id when there is none.
func tenantSuffix(tenantID string) string {
	i := len(tenantID)
	for i > 0 && tenantID[i-1] >= '0' && tenantID[i-1] <= '9' {
		i--
	}
	if i == len(tenantID) {
		return tenantID
	}
	return tenantID[i:]
}
