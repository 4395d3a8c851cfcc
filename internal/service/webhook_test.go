package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPrimary struct {
	resolution domain.Resolution
	err        error
	calls      int
}

func (s *stubPrimary) Resolve(_ context.Context, _ string, _ []domain.MenuItem) (domain.Resolution, error) {
	s.calls++
	return s.resolution, s.err
}

type stubFallback struct {
	resolution domain.Resolution
	calls      int
}

func (s *stubFallback) Resolve(_ string, _ []domain.MenuItem) domain.Resolution {
	s.calls++
	return s.resolution
}

type webhookFixture struct {
	svc      *WebhookService
	primary  *stubPrimary
	fallback *stubFallback
	orders   *memory.OrderRepository
}

func newWebhookFixture(t *testing.T, primary *stubPrimary, fallback *stubFallback) *webhookFixture {
	t.Helper()

	logger := zap.NewNop().Sugar()
	menuRepo := memory.NewMenuRepository()
	orderRepo := memory.NewOrderRepository()
	auditRepo := memory.NewOrderAuditRepository()

	menu := []domain.MenuItem{
		{ID: 1, Name: "burger", Price: 100},
		{ID: 2, Name: "fries", Price: 50},
	}
	require.NoError(t, menuRepo.ReplaceMenu(context.Background(), "kitchen1", menu))

	orders := NewOrderService(orderRepo, auditRepo, queue.NoopBroker{}, logger)
	svc := NewWebhookService(menuRepo, orders, primary, fallback, "http://localhost:8001", logger)

	return &webhookFixture{svc: svc, primary: primary, fallback: fallback, orders: orderRepo}
}

func (f *webhookFixture) placedOrders(t *testing.T) []domain.Order {
	t.Helper()

	orders, err := f.orders.ListByKitchen(context.Background(), "kitchen1")
	require.NoError(t, err)
	return orders
}

func inbound(message string) InboundMessage {
	return InboundMessage{Message: message, Sender: "919876543210", KitchenID: "kitchen1"}
}

func TestWebhookResolvedOrderIsPlaced(t *testing.T) {
	primary := &stubPrimary{
		resolution: domain.OrderReady([]domain.ResolvedLineItem{
			{MenuItemID: 1, Name: "burger", UnitPrice: 100, Quantity: 2},
		}, 200),
	}
	f := newWebhookFixture(t, primary, &stubFallback{})

	reply := f.svc.HandleMessage(context.Background(), inbound("2 burger"))

	assert.Equal(t, "✅ Order placed! 2x burger. Total: ₹200", reply)
	assert.Equal(t, 0, f.fallback.calls)

	orders := f.placedOrders(t)
	require.Len(t, orders, 1)
	assert.Contains(t, orders[0].ID, "WA-")
	assert.Equal(t, "2x burger", orders[0].ItemsSummary)
	assert.Equal(t, 200, orders[0].Total)
	assert.Equal(t, domain.SourceWhatsApp, orders[0].Customer.Source)
	assert.Equal(t, "919876543210", orders[0].Customer.Phone)
}

func TestWebhookPrimaryErrorFallsBackOnce(t *testing.T) {
	primary := &stubPrimary{err: errors.New("model unavailable")}
	fallback := &stubFallback{
		resolution: domain.OrderReady([]domain.ResolvedLineItem{
			{MenuItemID: 2, Name: "fries", UnitPrice: 50, Quantity: 1},
		}, 50),
	}
	f := newWebhookFixture(t, primary, fallback)

	reply := f.svc.HandleMessage(context.Background(), inbound("fries"))

	assert.Equal(t, "✅ Order placed (Fallback)! 1x fries. Total: ₹50", reply)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	assert.Len(t, f.placedOrders(t), 1)
}

func TestWebhookClarificationSkipsFallback(t *testing.T) {
	primary := &stubPrimary{resolution: domain.NeedsClarification()}
	fallback := &stubFallback{
		resolution: domain.OrderReady([]domain.ResolvedLineItem{
			{MenuItemID: 1, Name: "burger", UnitPrice: 100, Quantity: 1},
		}, 100),
	}
	f := newWebhookFixture(t, primary, fallback)

	reply := f.svc.HandleMessage(context.Background(), inbound("something vague"))

	assert.Equal(t, "Sorry, I didn't catch that. Please check our menu here: http://localhost:8001/customer.html?kitchenId=kitchen1", reply)
	assert.Equal(t, 0, fallback.calls)
	assert.Empty(t, f.placedOrders(t))
}

func TestWebhookUnresolvableTriesFallback(t *testing.T) {
	primary := &stubPrimary{resolution: domain.Unresolvable()}
	fallback := &stubFallback{resolution: domain.Unresolvable()}
	f := newWebhookFixture(t, primary, fallback)

	reply := f.svc.HandleMessage(context.Background(), inbound("gibberish"))

	assert.Equal(t, troubleText, reply)
	assert.Equal(t, 1, fallback.calls)
	assert.Empty(t, f.placedOrders(t))
}

func TestWebhookGroupMessageBypassesPipeline(t *testing.T) {
	primary := &stubPrimary{}
	fallback := &stubFallback{}
	f := newWebhookFixture(t, primary, fallback)

	in := inbound("2 burger")
	in.IsGroup = true

	reply := f.svc.HandleMessage(context.Background(), in)

	assert.Equal(t, groupRedirectText, reply)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 0, fallback.calls)
	assert.Empty(t, f.placedOrders(t))
}
