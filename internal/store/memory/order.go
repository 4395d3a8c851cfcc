package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
)

type OrderRepository struct {
	mu     sync.Mutex
	orders []domain.Order
	byID   map[string]struct{}
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]struct{}),
	}
}

func (r *OrderRepository) Append(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; exists {
		return repo.ErrDuplicateOrder
	}

	r.byID[order.ID] = struct{}{}
	r.orders = append(r.orders, *order)

	return nil
}

func (r *OrderRepository) ListByKitchen(_ context.Context, kitchenID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Order{}
	for _, o := range r.orders {
		if o.KitchenID == kitchenID {
			out = append(out, o)
		}
	}

	// newest first; append order breaks ties between equal timestamps
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
