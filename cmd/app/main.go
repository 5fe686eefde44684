package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamevault/backend/internal/balance"
	"github.com/gamevault/backend/internal/bootstrap"
	"github.com/gamevault/backend/internal/config"
	"github.com/gamevault/backend/internal/database"
	"github.com/gamevault/backend/internal/database/postgres"
	"github.com/gamevault/backend/internal/gift"
	"github.com/gamevault/backend/internal/handler"
	"github.com/gamevault/backend/internal/lootbox"
	"github.com/gamevault/backend/internal/notify"
	"github.com/gamevault/backend/internal/pricehistory"
	"github.com/gamevault/backend/internal/promo"
	"github.com/gamevault/backend/internal/scheduler"
	"github.com/gamevault/backend/internal/server"
	"github.com/gamevault/backend/internal/wishlist"
	"github.com/gamevault/backend/internal/worker"
)

const (
	shutdownTimeout       = 10 * time.Second
	priceSnapshotInterval = 24 * time.Hour
	workerCount           = 2
	workerQueueSize       = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Service exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	slog.Info("Database connection established", "host", cfg.DBHost, "database", cfg.DBName)

	notifier, err := notify.NewDiscordNotifier(cfg.DiscordWebhookURL)
	if err != nil {
		return err
	}

	priceRepo := postgres.NewPriceHistoryRepository(pool)

	svcs := server.Services{
		Lootbox:      lootbox.NewService(postgres.NewLootboxRepository(pool), nil),
		Balance:      balance.NewService(postgres.NewBalanceRepository(pool)),
		Promo:        promo.NewService(postgres.NewPromoRepository(pool)),
		Wishlist:     wishlist.NewService(postgres.NewWishlistRepository(pool)),
		PriceHistory: pricehistory.NewService(priceRepo),
		Gift:         gift.NewService(postgres.NewGiftRepository(pool)),
		Notifier:     notifier,
	}

	handler.InitValidator()

	// Background price tracking
	workerPool := worker.NewPool(workerCount, workerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	sched.Schedule(priceSnapshotInterval, pricehistory.NewSnapshotJob(priceRepo))
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, pool, svcs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Shutdown complete")
	return nil
}
