package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection("menus"),
	}
}

func (r *MenuRepository) GetMenu(ctx context.Context, kitchenID string) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var menu domain.KitchenMenu
	err := r.collection.FindOne(ctx, bson.M{"_id": kitchenID}).Decode(&menu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// no stored menu is a normal state, not an error
			return []domain.MenuItem{}, nil
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	if menu.Items == nil {
		return []domain.MenuItem{}, nil
	}

	return menu.Items, nil
}

func (r *MenuRepository) ReplaceMenu(ctx context.Context, kitchenID string, items []domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	menu := domain.KitchenMenu{
		KitchenID: kitchenID,
		Items:     items,
		UpdatedAt: time.Now(),
	}

	// single-document replace keeps the swap atomic for concurrent readers
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": kitchenID}, menu, opts); err != nil {
		return fmt.Errorf("failed to replace menu: %w", err)
	}

	return nil
}
