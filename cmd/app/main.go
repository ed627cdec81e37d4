package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eon-online/eon-server/internal/catalog"
	"github.com/eon-online/eon-server/internal/config"
	"github.com/eon-online/eon-server/internal/database"
	"github.com/eon-online/eon-server/internal/database/postgres"
	"github.com/eon-online/eon-server/internal/economy"
	"github.com/eon-online/eon-server/internal/instance"
	"github.com/eon-online/eon-server/internal/inventory"
	"github.com/eon-online/eon-server/internal/logger"
	"github.com/eon-online/eon-server/internal/player"
	"github.com/eon-online/eon-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel)

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	itemRepo := postgres.NewItemRepository(dbPool)
	playerRepo := postgres.NewPlayerRepository(dbPool)
	inventoryRepo := postgres.NewInventoryRepository(dbPool)
	economyRepo := postgres.NewEconomyRepository(dbPool)
	instanceRepo := postgres.NewInstanceRepository(dbPool)

	catalogService := catalog.NewService(itemRepo)

	ctx := context.Background()
	if err := catalogService.Seed(ctx); err != nil {
		slog.Error("Failed to seed item catalog", "error", err)
		os.Exit(1)
	}
	if err := catalogService.Reload(ctx); err != nil {
		slog.Error("Failed to load item catalog", "error", err)
		os.Exit(1)
	}

	playerService := player.NewService(playerRepo)
	inventoryService := inventory.NewService(inventoryRepo, catalogService)
	economyService := economy.NewService(economyRepo, catalogService)
	instanceService := instance.NewService(instanceRepo, catalogService)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.AdminAPIKey,
		cfg.TrustedProxies,
		dbPool,
		catalogService,
		playerService,
		inventoryService,
		economyService,
		instanceService,
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
