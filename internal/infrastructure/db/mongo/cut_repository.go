package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
	"github.com/barbeariapub/dashboard-api/internal/core/ports"
)

const collectionCuts = "cortes"

type CutRepository struct {
	registry *TenantRegistry
}

func NewCutRepository(registry *TenantRegistry) *CutRepository {
	return &CutRepository{registry: registry}
}

type cutDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nome     string             `bson:"nome"`
	Telefone string             `bson:"telefone"`
	Status   string             `bson:"status"`
	Data     time.Time          `bson:"data"`
	Horario  string             `bson:"horario"`
	Barbeiro string             `bson:"barbeiro"`
	Service  string             `bson:"service"`
	UserID   string             `bson:"userId"`
}

// Find retrieves a tenant's cuts matching the filter, sorted by date.
func (r *CutRepository) Find(ctx context.Context, tenantID string, filter ports.CutFilter) ([]domain.Cut, error) {
	db, err := r.registry.Database(tenantID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if !filter.Since.IsZero() {
		query["data"] = bson.M{"$gte": filter.Since}
	}

	sortDir := -1
	if filter.SortAsc {
		sortDir = 1
	}

	cursor, err := db.Collection(collectionCuts).Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "data", Value: sortDir}}))
	if err != nil {
		return nil, fmt.Errorf("find cuts: %w", err)
	}

	var docs []cutDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cuts: %w", err)
	}

	cuts := make([]domain.Cut, 0, len(docs))
	for _, d := range docs {
		cuts = append(cuts, domain.Cut{
			ID:       d.ID.Hex(),
			Nome:     d.Nome,
			Telefone: d.Telefone,
			Status:   domain.CutStatus(d.Status),
			Data:     d.Data,
			Horario:  d.Horario,
			Barbeiro: d.Barbeiro,
			Service:  domain.ServiceType(d.Service),
			UserID:   d.UserID,
		})
	}
	return cuts, nil
}
