package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Harish120/go-commerce/internal/config"
	"github.com/Harish120/go-commerce/internal/postgres"
	"github.com/Harish120/go-commerce/pkg/events"
	"github.com/Harish120/go-commerce/pkg/idempotency"
	"github.com/Harish120/go-commerce/pkg/ids"
	"github.com/Harish120/go-commerce/pkg/logging"
	"github.com/Harish120/go-commerce/pkg/shutdown"
	"github.com/Harish120/go-commerce/pkg/tracing"

	catalogapp "github.com/Harish120/go-commerce/internal/catalog/application"
	catalogdomain "github.com/Harish120/go-commerce/internal/catalog/domain"
	cataloghttp "github.com/Harish120/go-commerce/internal/catalog/infrastructure/http"
	catalogpg "github.com/Harish120/go-commerce/internal/catalog/infrastructure/postgres"
	customerapp "github.com/Harish120/go-commerce/internal/customer/application"
	customerdomain "github.com/Harish120/go-commerce/internal/customer/domain"
	customerhttp "github.com/Harish120/go-commerce/internal/customer/infrastructure/http"
	customerpg "github.com/Harish120/go-commerce/internal/customer/infrastructure/postgres"
	orderapp "github.com/Harish120/go-commerce/internal/ordering/application"
	orderdomain "github.com/Harish120/go-commerce/internal/ordering/domain"
	orderhttp "github.com/Harish120/go-commerce/internal/ordering/infrastructure/http"
	orderpg "github.com/Harish120/go-commerce/internal/ordering/infrastructure/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.ServiceName)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.Init(ctx, cfg.ServiceName, cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("pg connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() { _ = rdb.Close() }()

	bus := events.NewBus(log)
	subscribeEventLog(bus, log)

	idGen := ids.UUIDGenerator{}
	productRepo := catalogpg.NewRepository(log, pool)
	orderRepo := orderpg.NewRepository(log, pool)
	customerRepo := customerpg.NewRepository(log, pool)

	catalogSvc := catalogapp.NewService(log, productRepo, idGen, bus)
	orderSvc := orderapp.NewService(log, orderRepo, productRepo, idGen, bus)
	customerSvc := customerapp.NewService(log, customerRepo, idGen, bus)

	idem := idempotency.NewStore(rdb, 24*time.Hour)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(idempotency.Middleware(idem, log))
		cataloghttp.NewHandler(log, catalogSvc).Register(r)
		orderhttp.NewHandler(log, orderSvc).Register(r)
		customerhttp.NewHandler(log, customerSvc).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("shutdown complete")
}

// subscribeEventLog attaches a logging listener to every domain event so the
// in-process notifications show up in the service log.
func subscribeEventLog(bus *events.Bus, log *slog.Logger) {
	names := []string{
		orderdomain.OrderCreated{}.EventName(),
		orderdomain.OrderConfirmed{}.EventName(),
		catalogdomain.ProductCreated{}.EventName(),
		catalogdomain.ProductStockReduced{}.EventName(),
		customerdomain.CustomerCreated{}.EventName(),
	}
	for _, name := range names {
		bus.Subscribe(name, func(ctx context.Context, e events.Event) {
			log.Info("domain event", "event", e.EventName())
		})
	}
}
