package repo

import (
	"context"
	"errors"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
)

var ErrDuplicateOrder = errors.New("order with this ID already exists")

type OrderRepository interface {
	// Append persists the order atomically and must be safe under
	// concurrent writers. Returns ErrDuplicateOrder on an ID collision.
	Append(ctx context.Context, order *domain.Order) error
	// ListByKitchen returns the kitchen's orders newest first.
	ListByKitchen(ctx context.Context, kitchenID string) ([]domain.Order, error)
}
