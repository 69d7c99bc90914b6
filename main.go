package main

import (
	"context"
	"log"

	"vehicle-rental/cmd"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/data/repository/memory"
	"vehicle-rental/internal/wire"
	"vehicle-rental/pkg/database"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store", config.App.Store),
		zap.Bool("debug", config.App.Debug),
	)

	// Pick the store backend
	var repos *repository.Repository
	switch config.App.Store {
	case "memory":
		repos = memory.NewRepository(memory.NewStore())
		if err := memory.Seed(context.Background(), repos); err != nil {
			logger.Fatal("Failed to seed store", zap.Error(err))
		}
		logger.Info("Using in-memory store with seed data")

	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	// Redis is optional; without it the catalog cache is off
	rdb := database.InitRedis(config.Redis)
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected, catalog cache enabled")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, rdb, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
