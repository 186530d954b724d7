package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openmarket-labs/bookmarket/internal/api"
	"github.com/openmarket-labs/bookmarket/internal/domain/ledger"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/config"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/logging"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/storage"
	"github.com/openmarket-labs/bookmarket/internal/market"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port    int
	Buyer   string
	Verbose bool
}

// RunServe runs the API server around a fresh market session.
func RunServe(cfg *config.Config, flags ServeFlags) error {
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(loggingCfg, "api")

	buyer := flags.Buyer
	if buyer == "" {
		buyer = cfg.Market.Buyer
	}
	buyer = NormalizeName(buyer)
	if buyer == "" {
		buyer = "BUYER"
	}

	var broker *ledger.Broker
	if cfg.Broker.Enabled {
		broker = &ledger.Broker{Name: cfg.Broker.Name, FlatFee: cfg.Broker.FlatFee}
	}

	repo := storage.NewMemoryRepository()
	defer func() { _ = repo.Close() }()

	m := market.New(market.Config{
		Buyer:      buyer,
		Sellers:    market.SellersFromConfig(cfg.Market),
		Broker:     broker,
		Repository: repo,
		Logger:     logger,
	})

	apiCfg := api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if flags.Port != 0 {
		apiCfg.Port = flags.Port
	}

	server := api.NewServer(apiCfg, m, repo, logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	// Start server (blocks until shutdown)
	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
