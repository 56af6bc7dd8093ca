package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

const collectionExpenses = "despesas"

type ExpenseRepository struct {
	registry *TenantRegistry
}

func NewExpenseRepository(registry *TenantRegistry) *ExpenseRepository {
	return &ExpenseRepository{registry: registry}
}

type expenseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nome        string             `bson:"nome"`
	Valor       float64            `bson:"valor"`
	Recorrencia string             `bson:"recorrencia"`
	Data        time.Time          `bson:"data"`
}

func (d expenseDoc) toDomain() domain.Expense {
	return domain.Expense{
		ID:          d.ID.Hex(),
		Nome:        d.Nome,
		Valor:       d.Valor,
		Recorrencia: domain.Recurrence(d.Recorrencia),
		Data:        d.Data,
	}
}

// List returns all expenses ordered by date descending, then name ascending.
func (r *ExpenseRepository) List(ctx context.Context, tenantID string) ([]domain.Expense, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := db.Collection(collectionExpenses).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "data", Value: -1}, {Key: "nome", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}

	var docs []expenseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}

	expenses := make([]domain.Expense, 0, len(docs))
	for _, d := range docs {
		expenses = append(expenses, d.toDomain())
	}
	return expenses, nil
}

// Create inserts the expense and fills in its generated ID.
func (r *ExpenseRepository) Create(ctx context.Context, tenantID string, e *domain.Expense) error {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := expenseDoc{
		Nome:        e.Nome,
		Valor:       e.Valor,
		Recorrencia: string(e.Recorrencia),
		Data:        e.Data,
	}
	result, err := db.Collection(collectionExpenses).InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid.Hex()
	}
	return nil
}

// Delete removes the expense by id and returns the removed document.
// A malformed or unknown id maps to domain.ErrExpenseNotFound.
func (r *ExpenseRepository) Delete(ctx context.Context, tenantID, id string) (*domain.Expense, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpenseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc expenseDoc
	err = db.Collection(collectionExpenses).FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("delete expense: %w", err)
	}

	removed := doc.toDomain()
	return &removed, nil
}
