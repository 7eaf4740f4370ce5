package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"moneygoup/internal/config"
	db "moneygoup/internal/db/query"
	"moneygoup/internal/news"
	"moneygoup/internal/prices"
	"moneygoup/internal/repository"
	"moneygoup/internal/scheduler"
	"moneygoup/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := run(); err != nil {
		log.Printf("[FATAL] %v", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(config.DefaultDotEnv); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	fallback, err := prices.ParseFallbackPolicy(cfg.Normalizer.AdjustedFallback)
	if err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.New(ctx, cfg.ConnString())
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn); err != nil {
		return err
	}

	priceClient := prices.NewApiClient(&http.Client{Timeout: cfg.Api.Timeout}, cfg.Api.BaseURL)
	syncService := service.NewSyncService(
		priceClient,
		repository.NewStockRepository(dbConn),
		repository.NewDailyPriceRepository(dbConn),
		repository.NewUserStockRepository(dbConn),
		repository.NewNewsRepository(dbConn),
		news.NewHeadlineSynthesizer(nil),
		service.SyncOptions{
			HistoricalRange: cfg.Api.HistoricalRange,
			Fallback:        fallback,
		},
	)

	if cfg.Schedule.Cron == "" {
		summary, err := syncService.Run(ctx)
		if err != nil {
			return fmt.Errorf("sync: %w", err)
		}
		log.Printf("[INFO] done: %d stocks, %d synced, %d skipped, %d failed", summary.Total, summary.Synced, summary.Skipped, summary.Failed)
		return nil
	}

	sched := scheduler.NewScheduler(ctx, syncService)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return err
	}
	sched.Start()
	log.Printf("[INFO] syncing on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)

	<-ctx.Done()
	log.Println("[INFO] shutdown signal received, stopping...")
	sched.Stop()
	return nil
}
