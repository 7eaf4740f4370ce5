package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"moneygoup/internal/config"
	"moneygoup/internal/tickers"
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

	httpClient := &http.Client{Timeout: cfg.Api.Timeout}
	n, err := tickers.Download(context.Background(), httpClient, cfg.Tickers.URL, cfg.Tickers.OutputPath)
	if err != nil {
		return err
	}
	log.Printf("[INFO] wrote %d bytes to %s", n, cfg.Tickers.OutputPath)
	return nil
}
