package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

func testClient(t *testing.T) *mongo.Client {
	t.Helper()
	// Connect is lazy; no server is contacted until an operation runs.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestTenantRegistry_DatabaseNames(t *testing.T) {
	r := NewTenantRegistry(testClient(t), []string{"barbearia01", "barbearia02"}, "barbeariapub-", "barbeariapub-adm")

	name, err := r.DatabaseName("barbearia01")
	if err != nil {
		t.Fatalf("DatabaseName: %v", err)
	}
	if name != "barbeariapub-01" {
		t.Errorf("name = %q, want barbeariapub-01", name)
	}

	db, err := r.Database("barbearia02")
	if err != nil {
		t.Fatalf("Database: %v", err)
	}
	if db.Name() != "barbeariapub-02" {
		t.Errorf("db name = %q, want barbeariapub-02", db.Name())
	}
}

func TestTenantRegistry_UnknownTenant(t *testing.T) {
	r := NewTenantRegistry(testClient(t), []string{"barbearia01"}, "barbeariapub-", "barbeariapub-adm")

	if _, err := r.Database("barbearia99"); !errors.Is(err, domain.ErrUnknownTenant) {
		t.Errorf("Database err = %v, want ErrUnknownTenant", err)
	}
	if _, err := r.DatabaseName("todos"); !errors.Is(err, domain.ErrUnknownTenant) {
		t.Errorf("DatabaseName err = %v, want ErrUnknownTenant", err)
	}
}

func TestTenantRegistry_PreservesOrder(t *testing.T) {
	ids := []string{"barbearia03", "barbearia01", "barbearia02"}
	r := NewTenantRegistry(testClient(t), ids, "barbeariapub-", "barbeariapub-adm")

	got := r.Tenants()
	for i, id := range ids {
		if got[i] != id {
			t.Fatalf("tenants = %v, want configured order %v", got, ids)
		}
	}
}

func TestTenantRegistry_AdminDatabase(t *testing.T) {
	r := NewTenantRegistry(testClient(t), []string{"barbearia01"}, "barbeariapub-", "barbeariapub-adm")
	if r.AdminDatabase().Name() != "barbeariapub-adm" {
		t.Errorf("admin db = %q, want barbeariapub-adm", r.AdminDatabase().Name())
	}
}

func TestTenantSuffix(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"barbearia01", "01"},
		{"barbearia12", "12"},
		{"loja", "loja"},
	}
	for _, tc := range cases {
		if got := tenantSuffix(tc.id); got != tc.want {
			t.Errorf("tenantSuffix(%q) = %q, want %q", tc.id, got, tc.want)
		}
	}
}
