package repo

import (
	"context"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
)

type MenuRepository interface {
	// GetMenu returns an empty slice for kitchens with no stored menu.
	GetMenu(ctx context.Context, kitchenID string) ([]domain.MenuItem, error)
	// ReplaceMenu swaps the kitchen's entire menu atomically; concurrent
	// readers see either the old or the new menu, never a mix.
	ReplaceMenu(ctx context.Context, kitchenID string, items []domain.MenuItem) error
}
