package main

import (
	"context"
	"flag"
	"os"
	"time"

	"catalog-orders/internal/config"
	"catalog-orders/internal/database"
	"catalog-orders/internal/logger"
	"catalog-orders/internal/repository"
	"catalog-orders/internal/service"

	"go.uber.org/zap"
)

// seed wipes the store and loads the demo catalog with random orders
func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code once every deferred cleanup has run
func run(args []string) int {
	cfg := config.Load()

	flags := flag.NewFlagSet("seed", flag.ContinueOnError)
	orders := flags.Int("orders", cfg.Seed.Orders, "number of random orders to create")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	log := logger.NewWithFallback(cfg.Server.Env, cfg.Server.LogLevel)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbService, err := database.New(ctx, cfg.Mongo, log)
	if err != nil {
		log.Error("Failed to connect to MongoDB", zap.Error(err))
		return 1
	}
	defer func() {
		if err := dbService.Close(context.Background()); err != nil {
			log.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	db := dbService.DB()
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	links := service.NewRelationshipMaintainer(productRepo, categoryRepo, log)

	seeder := service.NewSeeder(dbService, categoryRepo, productRepo, orderRepo, links, log)

	summary, err := seeder.Seed(ctx, *orders)
	if err != nil {
		log.Error("Seeding failed", zap.Error(err))
		return 1
	}

	log.Info("Database seeded",
		zap.Int("categories", summary.Categories),
		zap.Int("products", summary.Products),
		zap.Int("orders", summary.Orders),
	)
	return 0
}
