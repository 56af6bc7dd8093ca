package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/barbeariapub/dashboard-api/internal/core/domain"
)

const collectionAdmins = "userAdm"

// AuthRepository reads dashboard operator accounts from the shared admin
// database.
type AuthRepository struct {
	registry *TenantRegistry
}

func NewAuthRepository(registry *TenantRegistry) *AuthRepository {
	return &AuthRepository{registry: registry}
}

type adminDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserName string             `bson:"userName"`
	Pass     string             `bson:"pass"`
}

// FindByUserName returns the admin user with the given name.
func (r *AuthRepository) FindByUserName(ctx context.Context, userName string) (*domain.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc adminDoc
	err := r.registry.AdminDatabase().Collection(collectionAdmins).
		FindOne(ctx, bson.M{"userName": userName}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find admin user: %w", err)
	}

	return &domain.AdminUser{
		ID:       doc.ID.Hex(),
		UserName: doc.UserName,
		Pass:     doc.Pass,
	}, nil
}
