package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo repo.OrderRepository
	auditRepo repo.OrderAuditRepository
	broker    queue.Broker
	logger    *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	auditRepo repo.OrderAuditRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		auditRepo: auditRepo,
		broker:    broker,
		logger:    logger,
	}
}

// SubmitOrder handles the direct submission path. The caller supplies the
// order id; duplicates are rejected rather than silently overwritten.
func (s *OrderService) SubmitOrder(ctx context.Context, order *domain.Order) error {
	if order.Status == "" {
		order.Status = domain.OrderStatusNew
	}
	if order.Customer.Source == "" {
		order.Customer.Source = domain.SourceWebForm
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if order.Time == "" {
		order.Time = order.CreatedAt.Format("03:04 PM")
	}

	return s.Place(ctx, order)
}

// Place appends the order and publishes the creation event. Event publishing
// is best effort: a broker failure never loses the order.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) error {
	if err := s.orderRepo.Append(ctx, order); err != nil {
		if err == repo.ErrDuplicateOrder {
			return err
		}
		return fmt.Errorf("failed to append order: %w", err)
	}

	s.logger.Infow("order created", "order_id", order.ID, "kitchen_id", order.KitchenID, "total", order.Total, "source", order.Customer.Source)

	event := domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		OrderID:   order.ID,
		KitchenID: order.KitchenID,
		Total:     order.Total,
		Source:    order.Customer.Source,
		Timestamp: order.CreatedAt,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", order.ID, "error", err)
		return nil
	}

	if err := s.broker.Publish(ctx, queue.QueueOrderEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", order.ID, "error", err)
	}

	return nil
}

func (s *OrderService) ListOrders(ctx context.Context, kitchenID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByKitchen(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ProcessOrderEvent folds a published order event into the audit trail. It
// runs on the order-events worker, not in the request path.
func (s *OrderService) ProcessOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	audit := &domain.OrderAudit{
		OrderID:   event.OrderID,
		EventType: event.EventType,
		KitchenID: event.KitchenID,
		Total:     event.Total,
		Source:    event.Source,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	s.logger.Infow("order audit created", "order_id", event.OrderID, "event_type", event.EventType)

	return nil
}

func (s *OrderService) GetOrderAudit(ctx context.Context, orderID string, limit int) ([]domain.OrderAudit, error) {
	audits, err := s.auditRepo.GetByOrderID(ctx, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get order audit: %w", err)
	}

	return audits, nil
}
