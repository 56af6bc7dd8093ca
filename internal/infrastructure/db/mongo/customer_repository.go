package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

const (
	collectionUsers    = "users"
	collectionClientes = "clientes"
)

// CustomerRepository reads the booking application's customer accounts.
type CustomerRepository struct {
	registry *TenantRegistry
}

func NewCustomerRepository(registry *TenantRegistry) *CustomerRepository {
	return &CustomerRepository{registry: registry}
}

type customerDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserName  string             `bson:"userName"`
	UserEmail string             `bson:"userEmail"`
	UserPhone string             `bson:"userPhone,omitempty"`
	UserDatas []time.Time        `bson:"userDatas"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// List returns all customers ordered by creation date descending.
func (r *CustomerRepository) List(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := db.Collection(collectionUsers).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}

	var docs []customerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(docs))
	for _, d := range docs {
		customers = append(customers, domain.Customer{
			ID:        d.ID.Hex(),
			UserName:  d.UserName,
			UserEmail: d.UserEmail,
			UserPhone: d.UserPhone,
			UserDatas: d.UserDatas,
			CreatedAt: d.CreatedAt,
		})
	}
	return customers, nil
}

// ClienteRepository persists walk-in client records.
type ClienteRepository struct {
	registry *TenantRegistry
}

func NewClienteRepository(registry *TenantRegistry) *ClienteRepository {
	return &ClienteRepository{registry: registry}
}

type clienteDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nome         string             `bson:"nome"`
	Email        string             `bson:"email"`
	Telefone     string             `bson:"telefone"`
	DataCadastro time.Time          `bson:"dataCadastro"`
}

func (d clienteDoc) toDomain() domain.Cliente {
	return domain.Cliente{
		ID:           d.ID.Hex(),
		Nome:         d.Nome,
		Email:        d.Email,
		Telefone:     d.Telefone,
		DataCadastro: d.DataCadastro,
	}
}

// List returns all clientes ordered by registration date descending.
func (r *ClienteRepository) List(ctx context.Context, tenantID string) ([]domain.Cliente, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := db.Collection(collectionClientes).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "dataCadastro", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find clientes: %w", err)
	}

	var docs []clienteDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}

	clientes := make([]domain.Cliente, 0, len(docs))
	for _, d := range docs {
		clientes = append(clientes, d.toDomain())
	}
	return clientes, nil
}

// Create inserts the cliente and fills in its generated ID.
func (r *ClienteRepository) Create(ctx context.Context, tenantID string, c *domain.Cliente) error {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := clienteDoc{
		Nome:         c.Nome,
		Email:        c.Email,
		Telefone:     c.Telefone,
		DataCadastro: c.DataCadastro,
	}
	result, err := db.Collection(collectionClientes).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}
