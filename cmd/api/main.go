package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/config"
	"ventas-dashboard/internal/db"
	"ventas-dashboard/internal/httpserver"
	"ventas-dashboard/internal/messaging/kafka"
	"ventas-dashboard/internal/migrate"
	cartrepo "ventas-dashboard/internal/repository/cart"
	categoryrepo "ventas-dashboard/internal/repository/category"
	productrepo "ventas-dashboard/internal/repository/product"
	salerepo "ventas-dashboard/internal/repository/sale"
	userrepo "ventas-dashboard/internal/repository/user"
	cartsvc "ventas-dashboard/internal/service/cart"
	categorysvc "ventas-dashboard/internal/service/category"
	dashboardsvc "ventas-dashboard/internal/service/dashboard"
	productsvc "ventas-dashboard/internal/service/product"
	usersvc "ventas-dashboard/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client, err := backend.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	if err != nil {
		logger.Fatalf("init api client: %v", err)
	}
	checks := map[string]httpserver.Pinger{"inventory api": client}

	productRepo := productrepo.NewAPI(client, logger)
	saleRepo := salerepo.NewAPI(client, logger)

	var cartRepo cartrepo.Repository
	switch cfg.CartStore {
	case config.CartStoreMemory:
		cartRepo = cartrepo.NewMemory()
	case config.CartStorePostgres:
		dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer dbpool.Close()
		if err := migrate.Apply(ctx, dbpool, logger); err != nil {
			logger.Fatalf("apply migrations: %v", err)
		}
		checks["database"] = dbpool
		cartRepo = cartrepo.NewPostgres(dbpool, logger)
	case config.CartStoreRedis:
		rdb, err := cartrepo.DialRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		checks["redis"] = httpserver.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		cartRepo = cartrepo.NewRedis(rdb, cfg.CartTTL, logger)
	default:
		logger.Fatalf("unknown cart store %q", cfg.CartStore)
	}
	logger.Printf("cart store: %s", cfg.CartStore)

	cartService := cartsvc.New(cartRepo, productRepo, saleRepo, logger)
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, logger)
		defer publisher.Close()
		cartService = cartService.WithEvents(publisher, cfg.KafkaSalesTopic)
		logger.Printf("publishing sale events to %s", cfg.KafkaSalesTopic)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, checks, httpserver.Deps{
		AuthSvc:      usersvc.New(userrepo.NewAPI(client, logger)),
		CategorySvc:  categorysvc.New(categoryrepo.NewAPI(client, logger)),
		ProductSvc:   productsvc.New(productRepo),
		DashboardSvc: dashboardsvc.New(productRepo, saleRepo, cfg.DashboardLimit, logger),
		CartSvc:      cartService,
		CORSOrigins:  cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (inventory api %s)", cfg.HTTPAddr, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
