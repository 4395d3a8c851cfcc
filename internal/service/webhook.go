package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
	"go.uber.org/zap"
)

// PrimaryResolver is the model-backed resolution path. An error means the
// pipeline should fall back, not that the webhook failed.
type PrimaryResolver interface {
	Resolve(ctx context.Context, message string, menu []domain.MenuItem) (domain.Resolution, error)
}

// FallbackResolver never fails; worst case it reports the input unresolvable.
type FallbackResolver interface {
	Resolve(message string, menu []domain.MenuItem) domain.Resolution
}

type InboundMessage struct {
	Message   string
	Sender    string
	KitchenID string
	IsGroup   bool
}

const (
	groupRedirectText = "We messaged you personally! Check your DM."
	troubleText       = "Sorry, I'm having trouble understanding. Please use the menu link."
)

// WebhookService runs the order resolution pipeline: fetch menu, try the
// primary resolver, fall back on failure, and either persist an order or
// answer with a clarification. Every inbound message gets a text reply; the
// caller is a chat user, never a programmatic client.
type WebhookService struct {
	menuRepo repo.MenuRepository
	orders   *OrderService
	primary  PrimaryResolver
	fallback FallbackResolver
	appURL   string
	logger   *zap.SugaredLogger
}

func NewWebhookService(
	menuRepo repo.MenuRepository,
	orders *OrderService,
	primary PrimaryResolver,
	fallback FallbackResolver,
	appURL string,
	logger *zap.SugaredLogger,
) *WebhookService {
	return &WebhookService{
		menuRepo: menuRepo,
		orders:   orders,
		primary:  primary,
		fallback: fallback,
		appURL:   appURL,
		logger:   logger,
	}
}

func (s *WebhookService) HandleMessage(ctx context.Context, in InboundMessage) string {
	// group chats are redirected without touching menus, orders or resolvers
	if in.IsGroup {
		return groupRedirectText
	}

	menu, err := s.menuRepo.GetMenu(ctx, in.KitchenID)
	if err != nil {
		s.logger.Errorw("failed to fetch menu for webhook", "kitchen_id", in.KitchenID, "error", err)
		return troubleText
	}

	resolution, err := s.primary.Resolve(ctx, in.Message, menu)
	if err != nil {
		s.logger.Warnw("primary resolver failed, falling back", "kitchen_id", in.KitchenID, "error", err)
		return s.resolveWithFallback(ctx, in, menu)
	}

	switch resolution.Outcome {
	case domain.OutcomeNeedsClarification:
		return fmt.Sprintf("Sorry, I didn't catch that. Please check our menu here: %s", s.menuLink(in.KitchenID))
	case domain.OutcomeOrderReady:
		order, err := s.createOrder(ctx, in, resolution)
		if err != nil {
			s.logger.Errorw("failed to persist resolved order", "kitchen_id", in.KitchenID, "error", err)
			return troubleText
		}
		return fmt.Sprintf("✅ Order placed! %s. Total: ₹%d", order.ItemsSummary, order.Total)
	default:
		return s.resolveWithFallback(ctx, in, menu)
	}
}

func (s *WebhookService) resolveWithFallback(ctx context.Context, in InboundMessage, menu []domain.MenuItem) string {
	resolution := s.fallback.Resolve(in.Message, menu)
	if resolution.Outcome != domain.OutcomeOrderReady {
		return troubleText
	}

	order, err := s.createOrder(ctx, in, resolution)
	if err != nil {
		s.logger.Errorw("failed to persist fallback order", "kitchen_id", in.KitchenID, "error", err)
		return troubleText
	}

	// the Fallback marker tells operators the order skipped the model path
	return fmt.Sprintf("✅ Order placed (Fallback)! %s. Total: ₹%d", order.ItemsSummary, order.Total)
}

func (s *WebhookService) createOrder(ctx context.Context, in InboundMessage, resolution domain.Resolution) (*domain.Order, error) {
	now := time.Now()

	order := &domain.Order{
		ID:           fmt.Sprintf("WA-%d", now.Unix()),
		KitchenID:    in.KitchenID,
		ItemsSummary: domain.ItemsSummary(resolution.Items),
		Total:        resolution.Total,
		Status:       domain.OrderStatusNew,
		Time:         now.Format("03:04 PM"),
		CreatedAt:    now,
		Customer: domain.Customer{
			Name:   "WhatsApp User",
			Phone:  in.Sender,
			Source: domain.SourceWhatsApp,
		},
	}

	if err := s.orders.Place(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *WebhookService) menuLink(kitchenID string) string {
	return fmt.Sprintf("%s/customer.html?kitchenId=%s", s.appURL, kitchenID)
}
