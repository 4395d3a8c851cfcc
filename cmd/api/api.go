package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Anant2019/home-kitchen-app/internal/queue"
	"github.com/Anant2019/home-kitchen-app/internal/ratelimiter"
	"github.com/Anant2019/home-kitchen-app/internal/service"
	"github.com/Anant2019/home-kitchen-app/internal/store/mongo"
	"github.com/Anant2019/home-kitchen-app/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

type application struct {
	config         config
	logger         *zap.SugaredLogger
	rateLimiter    ratelimiter.Limiter
	storage        *mongo.Storage
	broker         queue.Broker
	menuService    *service.MenuService
	orderService   *service.OrderService
	webhookService *service.WebhookService
	genService     *service.GenerateService
	importService  *service.ImportService
	importWorker   *worker.MenuImportWorker
	eventsWorker   *worker.OrderEventsWorker
}

type config struct {
	addr           string
	env            string
	apiURL         string
	staticDir      string
	defaultKitchen string
	storageDriver  string
	rateLimiter    ratelimiter.Config
	mongo          mongoConfig
	rabbitMQ       rabbitMQConfig
	openAI         openAIConfig
	googleCreds    string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type openAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// per the original front-end contract, unknown POST paths are a plain 404
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.getMenuHandler)
		r.Post("/menu", app.replaceMenuHandler)

		r.Get("/orders", app.listOrdersHandler)
		r.Post("/orders", app.createOrderHandler)

		r.Post("/generate", app.generateHandler)

		r.With(app.rateLimiterMiddleware).Post("/whatsapp-webhook", app.whatsappWebhookHandler)

		r.Post("/import", app.createImportTaskHandler)
		r.Get("/import/{task_id}", app.getImportTaskHandler)
	})

	// everything else falls through to the bundled front-end
	fs := http.FileServer(http.Dir(app.config.staticDir))
	r.Get("/*", fs.ServeHTTP)

	return r
}

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// workers
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start import worker: %w", err)
		}
	}
	if app.eventsWorker != nil {
		if err := app.eventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.importWorker != nil {
			app.importWorker.Stop()
		}
		if app.eventsWorker != nil {
			app.eventsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing broker", "error", err)
			} else {
				app.logger.Info("broker closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
