package service

import (
	"context"
	"fmt"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
	"go.uber.org/zap"
)

type MenuService struct {
	menuRepo repo.MenuRepository
	logger   *zap.SugaredLogger
}

func NewMenuService(menuRepo repo.MenuRepository, logger *zap.SugaredLogger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

func (s *MenuService) GetMenu(ctx context.Context, kitchenID string) ([]domain.MenuItem, error) {
	items, err := s.menuRepo.GetMenu(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	return items, nil
}

func (s *MenuService) ReplaceMenu(ctx context.Context, kitchenID string, items []domain.MenuItem) error {
	if err := s.menuRepo.ReplaceMenu(ctx, kitchenID, items); err != nil {
		return fmt.Errorf("failed to replace menu: %w", err)
	}

	s.logger.Infow("menu replaced", "kitchen_id", kitchenID, "item_count", len(items))

	return nil
}
