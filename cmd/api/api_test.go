package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/domain"
	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/ratelimiter"
	"github.com/Anant2019/home-kitchen-app/internal/resolver"
	"github.com/Anant2019/home-kitchen-app/internal/service"
	"github.com/Anant2019/home-kitchen-app/internal/store/memory"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

type stubSheetSource struct {
	items []domain.MenuItem
	err   error
}

func (s *stubSheetSource) ParseMenu(_ context.Context, _ string) ([]domain.MenuItem, error) {
	return s.items, s.err
}

type testApplication struct {
	app       *application
	mux       http.Handler
	menuRepo  *memory.MenuRepository
	orderRepo *memory.OrderRepository
}

func newTestApplication(t *testing.T, gen *stubGenerator) *testApplication {
	t.Helper()

	logger := zap.NewNop().Sugar()
	broker := queue.NoopBroker{}

	menuRepo := memory.NewMenuRepository()
	orderRepo := memory.NewOrderRepository()
	auditRepo := memory.NewOrderAuditRepository()
	taskRepo := memory.NewImportTaskRepository()

	cfg := config{
		addr:           ":0",
		env:            "test",
		apiURL:         "http://localhost:8001",
		staticDir:      t.TempDir(),
		defaultKitchen: "kitchen1",
		storageDriver:  "memory",
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 100,
			TimeFrame:            time.Minute,
			Enabled:              false,
		},
	}

	orderService := service.NewOrderService(orderRepo, auditRepo, broker, logger)

	app := &application{
		config:       cfg,
		logger:       logger,
		rateLimiter:  ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		broker:       broker,
		menuService:  service.NewMenuService(menuRepo, logger),
		orderService: orderService,
		webhookService: service.NewWebhookService(
			menuRepo,
			orderService,
			resolver.NewPrimary(gen),
			resolver.NewFallback(),
			cfg.apiURL,
			logger,
		),
		genService:    service.NewGenerateService(gen, logger),
		importService: service.NewImportService(taskRepo, menuRepo, &stubSheetSource{}, broker, logger),
	}

	return &testApplication{
		app:       app,
		mux:       app.mount(),
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	if expected != actual {
		t.Errorf("expected response code %d, got %d", expected, actual)
	}
}
