package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/invenflow/invenflow-api/internal/api"
	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
	"github.com/invenflow/invenflow-api/internal/core/service"
	"github.com/invenflow/invenflow-api/internal/infrastructure/config"
	mongodb "github.com/invenflow/invenflow-api/internal/infrastructure/db/mongo"
	redisdb "github.com/invenflow/invenflow-api/internal/infrastructure/db/redis"
	"github.com/invenflow/invenflow-api/internal/infrastructure/memory"
	"github.com/invenflow/invenflow-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Redis: the session store is always required ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	sessions := redisdb.NewSessionStore(rdb)

	// --- Store driver: seeded memory stores, or Mongo for durable data ---
	stores := memory.NewStores()
	if err := stores.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding demo data failed")
	}

	var (
		users    ports.UserRepository    = stores.Users
		products ports.ProductRepository = stores.Products
		orders   ports.OrderRepository   = stores.Orders
	)

	deps := api.Dependencies{
		Registry: domain.NewRegistry(),
		Redis:    rdb,
		Logger:   log,
	}

	if cfg.StoreDriver == "mongo" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		userRepo := mongodb.NewUserRepository(db)
		productRepo := mongodb.NewProductRepository(db)
		orderRepo := mongodb.NewOrderRepository(db)
		for _, ensure := range []func(context.Context) error{
			userRepo.EnsureIndexes,
			productRepo.EnsureIndexes,
			orderRepo.EnsureIndexes,
		} {
			if err := ensure(ctx); err != nil {
				log.Fatal().Err(err).Msg("index creation failed")
			}
		}

		users, products, orders = userRepo, productRepo, orderRepo
		deps.Mongo = db
	}

	// --- Core services ---
	registry := deps.Registry
	views := service.NewViewService(registry)

	deps.Auth = service.NewAuthService(users, sessions, cfg.JWTSecret, cfg.SessionTTL, cfg.LoginDelay, log)
	deps.Views = views
	deps.Products = service.NewProductService(products, registry, log)
	deps.Orders = service.NewOrderService(orders, views, log)
	deps.Inventory = service.NewInventoryService(products, stores.Movements, registry, log)
	deps.Suppliers = service.NewSupplierService(stores.Suppliers, registry, log)
	deps.Users = service.NewUserService(users, registry, log)
	deps.Cart = service.NewCartService(stores.Carts, products, orders, registry, cfg.CheckoutDelay, log)
	deps.Reviews = service.NewReviewService(stores.Reviews, products, registry, log)
	deps.Dashboard = service.NewDashboardService(products, orders, stores.Movements, stores.Carts)

	e := api.NewRouter(deps)

	// --- Serve with graceful shutdown ---
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("store_driver", cfg.StoreDriver).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
