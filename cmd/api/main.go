package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agrimart/agrimart-backend/api/routes"
	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	catalogsvc "github.com/agrimart/agrimart-backend/internal/catalog"
	orderssvc "github.com/agrimart/agrimart-backend/internal/orders"
	profilesvc "github.com/agrimart/agrimart-backend/internal/profile"
	"github.com/agrimart/agrimart-backend/pkg/config"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/metrics"
	"github.com/agrimart/agrimart-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Repo:    cartsvc.NewRepository(redisClient, cfg.Store.CartKey),
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orderssvc.NewService(orderssvc.ServiceParams{
		Repo:    orderssvc.NewRepository(redisClient, cfg.Store.OrdersKey),
		Logger:  logg,
		Metrics: storeMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	addressService, err := addresssvc.NewService(addresssvc.ServiceParams{
		Repo:   addresssvc.NewRepository(redisClient, cfg.Store.AddressesKey),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create address service", err)
		os.Exit(1)
	}

	profileService, err := profilesvc.NewService(profilesvc.ServiceParams{
		Store:  redisClient,
		Key:    cfg.Store.ProfileKey,
		OTP:    cfg.OTP,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:    cfg,
			Logger:    logg,
			Pinger:    redisClient,
			Registry:  registry,
			Carts:     cartService,
			Orders:    orderService,
			Addresses: addressService,
			Catalog:   catalogsvc.NewService(),
			Profile:   profileService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
