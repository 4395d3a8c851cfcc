package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/repo"
	"github.com/Anant2019/home-kitchen-app/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingBroker struct {
	mu        sync.Mutex
	published map[string][][]byte
	err       error
}

func newRecordingBroker() *recordingBroker {
	return &recordingBroker{published: make(map[string][][]byte)}
}

func (b *recordingBroker) Publish(_ context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return b.err
	}
	b.published[queueName] = append(b.published[queueName], message)
	return nil
}

func (b *recordingBroker) Subscribe(_ context.Context, _ string, _ queue.MessageHandler) error {
	return nil
}

func (b *recordingBroker) Close() error { return nil }

func (b *recordingBroker) messages(queueName string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.published[queueName]
}

func newOrderService(broker queue.Broker) (*OrderService, *memory.OrderRepository, *memory.OrderAuditRepository) {
	orderRepo := memory.NewOrderRepository()
	auditRepo := memory.NewOrderAuditRepository()
	return NewOrderService(orderRepo, auditRepo, broker, zap.NewNop().Sugar()), orderRepo, auditRepo
}

func TestSubmitOrderFillsDefaults(t *testing.T) {
	svc, orderRepo, _ := newOrderService(queue.NoopBroker{})

	order := &domain.Order{ID: "WEB-1", KitchenID: "kitchen1", ItemsSummary: "1x burger", Total: 100}
	require.NoError(t, svc.SubmitOrder(context.Background(), order))

	orders, err := orderRepo.ListByKitchen(context.Background(), "kitchen1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, domain.OrderStatusNew, got.Status)
	assert.Equal(t, domain.SourceWebForm, got.Customer.Source)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt.Format("03:04 PM"), got.Time)
}

func TestSubmitOrderKeepsCallerValues(t *testing.T) {
	svc, orderRepo, _ := newOrderService(queue.NoopBroker{})

	created := time.Date(2026, time.March, 1, 18, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID:        "WEB-2",
		KitchenID: "kitchen1",
		Status:    domain.OrderStatusPreparing,
		Time:      "06:30 PM",
		CreatedAt: created,
		Customer:  domain.Customer{Name: "Asha", Source: domain.SourceWhatsApp},
	}
	require.NoError(t, svc.SubmitOrder(context.Background(), order))

	orders, err := orderRepo.ListByKitchen(context.Background(), "kitchen1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusPreparing, orders[0].Status)
	assert.Equal(t, domain.SourceWhatsApp, orders[0].Customer.Source)
	assert.Equal(t, created, orders[0].CreatedAt)
	assert.Equal(t, "06:30 PM", orders[0].Time)
}

func TestSubmitOrderRejectsDuplicateID(t *testing.T) {
	svc, _, _ := newOrderService(queue.NoopBroker{})
	ctx := context.Background()

	require.NoError(t, svc.SubmitOrder(ctx, &domain.Order{ID: "WEB-3", KitchenID: "kitchen1"}))

	err := svc.SubmitOrder(ctx, &domain.Order{ID: "WEB-3", KitchenID: "kitchen1"})
	assert.ErrorIs(t, err, repo.ErrDuplicateOrder)
}

func TestPlacePublishesOrderCreatedEvent(t *testing.T) {
	broker := newRecordingBroker()
	svc, _, _ := newOrderService(broker)

	order := &domain.Order{
		ID:        "WA-42",
		KitchenID: "kitchen1",
		Total:     250,
		CreatedAt: time.Now(),
		Customer:  domain.Customer{Source: domain.SourceWhatsApp},
	}
	require.NoError(t, svc.Place(context.Background(), order))

	msgs := broker.messages(queue.QueueOrderEvents)
	require.Len(t, msgs, 1)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(msgs[0], &event))
	assert.Equal(t, domain.EventOrderCreated, event.EventType)
	assert.Equal(t, "WA-42", event.OrderID)
	assert.Equal(t, "kitchen1", event.KitchenID)
	assert.Equal(t, 250, event.Total)
	assert.Equal(t, domain.SourceWhatsApp, event.Source)
}

func TestPlaceSurvivesBrokerFailure(t *testing.T) {
	broker := newRecordingBroker()
	broker.err = assert.AnError
	svc, orderRepo, _ := newOrderService(broker)

	require.NoError(t, svc.Place(context.Background(), &domain.Order{ID: "WA-43", KitchenID: "kitchen1"}))

	orders, err := orderRepo.ListByKitchen(context.Background(), "kitchen1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestProcessOrderEventWritesAudit(t *testing.T) {
	svc, _, _ := newOrderService(queue.NoopBroker{})
	ctx := context.Background()

	event := domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		OrderID:   "WA-44",
		KitchenID: "kitchen1",
		Total:     120,
		Source:    domain.SourceWhatsApp,
		Timestamp: time.Now(),
	}
	require.NoError(t, svc.ProcessOrderEvent(ctx, event))

	audits, err := svc.GetOrderAudit(ctx, "WA-44", 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, domain.EventOrderCreated, audits[0].EventType)
	assert.Equal(t, 120, audits[0].Total)
}
