// Package memory holds lock-guarded in-memory implementations of the
// repository interfaces. They back tests and storage-less development runs.
package memory

import (
	"context"
	"sync"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
)

type MenuRepository struct {
	mu    sync.RWMutex
	menus map[string][]domain.MenuItem
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{
		menus: make(map[string][]domain.MenuItem),
	}
}

func (r *MenuRepository) GetMenu(_ context.Context, kitchenID string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.menus[kitchenID]
	if !ok {
		return []domain.MenuItem{}, nil
	}

	// copy so callers never observe a half-applied replace
	out := make([]domain.MenuItem, len(items))
	copy(out, items)

	return out, nil
}

func (r *MenuRepository) ReplaceMenu(_ context.Context, kitchenID string, items []domain.MenuItem) error {
	in := make([]domain.MenuItem, len(items))
	copy(in, items)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.menus[kitchenID] = in

	return nil
}
