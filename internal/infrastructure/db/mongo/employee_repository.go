package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

const collectionEmployees = "funcionarios"

type EmployeeRepository struct {
	registry *TenantRegistry
}

func NewEmployeeRepository(registry *TenantRegistry) *EmployeeRepository {
	return &EmployeeRepository{registry: registry}
}

type employeeDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Nome            string             `bson:"nome"`
	SalarioBruto    float64            `bson:"salarioBruto"`
	INSS            float64            `bson:"inss"`
	FGTS            float64            `bson:"fgts"`
	DataContratacao string             `bson:"dataContratacao"`
}

func (d employeeDoc) toDomain() domain.Employee {
	return domain.Employee{
		ID:              d.ID.Hex(),
		Nome:            d.Nome,
		SalarioBruto:    d.SalarioBruto,
		INSS:            d.INSS,
		FGTS:            d.FGTS,
		DataContratacao: d.DataContratacao,
	}
}

// List returns all employees ordered by name ascending.
func (r *EmployeeRepository) List(ctx context.Context, tenantID string) ([]domain.Employee, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := db.Collection(collectionEmployees).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "nome", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}

	var docs []employeeDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	employees := make([]domain.Employee, 0, len(docs))
	for _, d := range docs {
		employees = append(employees, d.toDomain())
	}
	return employees, nil
}

// Create inserts the employee and fills in its generated ID.
func (r *EmployeeRepository) Create(ctx context.Context, tenantID string, e *domain.Employee) error {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := employeeDoc{
		Nome:            e.Nome,
		SalarioBruto:    e.SalarioBruto,
		INSS:            e.INSS,
		FGTS:            e.FGTS,
		DataContratacao: e.DataContratacao,
	}
	result, err := db.Collection(collectionEmployees).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}

// Delete removes the employee by id and returns the removed document.
// A malformed or unknown id maps to domain.ErrEmployeeNotFound.
func (r *EmployeeRepository) Delete(ctx context.Context, tenantID, id string) (*domain.Employee, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employeeDoc
	err = db.Collection(collectionEmployees).FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("delete employee: %w", err)
	}

	removed := doc.toDomain()
	return &removed, nil
}
