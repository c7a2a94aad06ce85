package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	addresssvc "github.com/agrimart/agrimart-backend/internal/address"
	cartsvc "github.com/agrimart/agrimart-backend/internal/cart"
	catalogsvc "github.com/agrimart/agrimart-backend/internal/catalog"
	"github.com/agrimart/agrimart-backend/pkg/config"
	"github.com/agrimart/agrimart-backend/pkg/logger"
	"github.com/agrimart/agrimart-backend/pkg/redis"
	"github.com/agrimart/agrimart-backend/pkg/types"
)

// Seeds the demo address book and a small cart for local development.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "error closing redis", err)
		}
	}()

	addressRepo := addresssvc.NewRepository(redisClient, cfg.Store.AddressesKey)
	if err := addressRepo.Save(ctx, []types.Address{
		{
			Kind:        "Home",
			AddressText: "12 Green Lane, Electronic City",
			Pincode:     "560100",
			Phone:       "+91 9123456789",
			IsDefault:   true,
		},
		{
			Kind:        "Work",
			AddressText: "4 Tech Park Road, Whitefield",
			Pincode:     "560037",
			Phone:       "+91 9123456780",
		},
	}); err != nil {
		logg.Error(ctx, "failed to seed address book", err)
		os.Exit(1)
	}

	catalog := catalogsvc.NewService()
	cartService, err := cartsvc.NewService(cartsvc.ServiceParams{
		Repo:   cartsvc.NewRepository(redisClient, cfg.Store.CartKey),
		Logger: logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	lines := make([]cartsvc.Line, 0, 2)
	for _, id := range []string{"groc-1", "groc-2"} {
		product, err := catalog.Get(id)
		if err != nil {
			logg.Error(ctx, "missing sample product", err)
			os.Exit(1)
		}
		lines = append(lines, product.ToLine(1))
	}
	cartService.Replace(ctx, lines)

	logg.Info(logg.WithFields(ctx, map[string]any{
		"addresses": 2,
		"cart":      len(lines),
	}), "seed complete")
}
