package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	moneygoup_errors "moneygoup/internal"
	"moneygoup/internal/domain"
	"moneygoup/internal/news"
	"moneygoup/internal/prices"
	"moneygoup/internal/repository"

	"github.com/google/uuid"
)

// Summary counts the outcome of one pass over every stock.
type Summary struct {
	Total   int
	Synced  int
	Skipped int
	Failed  int
}

type SyncOptions struct {
	HistoricalRange string
	Fallback        prices.FallbackPolicy
}

// SyncService refreshes daily prices, the latest price and news for
// every tracked stock.
type SyncService interface {
	// Run syncs every stock in id order. Errors for a single stock are
	// logged and counted; only failing to load the stock list or the
	// ownership links aborts the pass.
	Run(ctx context.Context) (Summary, error)
	SyncStock(ctx context.Context, stock domain.Stock, owners []int32) error
}

func NewSyncService(
	priceClient prices.PriceClient,
	stockRepository repository.StockRepository,
	dailyPriceRepository repository.DailyPriceRepository,
	userStockRepository repository.UserStockRepository,
	newsRepository repository.NewsRepository,
	synthesizer news.Synthesizer,
	opts SyncOptions,
) SyncService {
	if opts.HistoricalRange == "" {
		opts.HistoricalRange = "max"
	}
	if opts.Fallback == "" {
		opts.Fallback = prices.FallbackOnMissingOrZero
	}
	return syncServiceHandler{
		PriceClient:          priceClient,
		StockRepository:      stockRepository,
		DailyPriceRepository: dailyPriceRepository,
		UserStockRepository:  userStockRepository,
		NewsRepository:       newsRepository,
		Synthesizer:          synthesizer,
		Options:              opts,
	}
}

type syncServiceHandler struct {
	PriceClient          prices.PriceClient
	StockRepository      repository.StockRepository
	DailyPriceRepository repository.DailyPriceRepository
	UserStockRepository  repository.UserStockRepository
	NewsRepository       repository.NewsRepository
	Synthesizer          news.Synthesizer
	Options              SyncOptions
}

func (h syncServiceHandler) Run(ctx context.Context) (Summary, error) {
	runID := uuid.New()
	summary := Summary{}

	stocks, err := h.StockRepository.List(ctx)
	if err != nil {
		return summary, err
	}
	owners, err := h.UserStockRepository.ListOwnersByStock(ctx)
	if err != nil {
		return summary, err
	}

	summary.Total = len(stocks)
	log.Printf("[INFO] run %s: syncing %d stocks", runID.String(), len(stocks))

	for _, stock := range stocks {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		err := h.SyncStock(ctx, stock, owners[stock.StockID])
		switch {
		case err == nil:
			summary.Synced++
		case isSkip(err):
			log.Printf("[WARN] run %s: skipping %s: %v", runID.String(), stock.Symbol, err)
			summary.Skipped++
		default:
			log.Printf("[ERROR] run %s: failed to sync %s: %v", runID.String(), stock.Symbol, err)
			summary.Failed++
		}
	}

	log.Printf(
		"[INFO] run %s: finished, %d synced, %d skipped, %d failed",
		runID.String(),
		summary.Synced,
		summary.Skipped,
		summary.Failed,
	)
	return summary, nil
}

func isSkip(err error) bool {
	var apiErr moneygoup_errors.ErrApiResponse
	var malformedErr moneygoup_errors.ErrMalformedResponse
	var noDataErr moneygoup_errors.ErrNoHistoricalData
	return errors.As(err, &apiErr) ||
		errors.As(err, &malformedErr) ||
		errors.As(err, &noDataErr)
}

func (h syncServiceHandler) SyncStock(ctx context.Context, stock domain.Stock, owners []int32) error {
	symbol := stock.Symbol

	quote, err := h.PriceClient.GetLatestQuote(ctx, symbol)
	if err != nil {
		log.Printf("[WARN] no live quote for %s, falling back to last close: %v", symbol, err)
		quote = nil
	}

	var raw prices.Series
	switch resp := h.PriceClient.GetHistoricalSeries(ctx, symbol, h.Options.HistoricalRange).(type) {
	case prices.ApiError:
		return moneygoup_errors.ErrApiResponse{
			Symbol:  symbol,
			Message: resp.Message,
			Details: resp.Details,
		}
	case prices.Malformed:
		return moneygoup_errors.ErrMalformedResponse{
			Symbol: symbol,
			Err:    resp.Err,
		}
	case prices.Series:
		raw = resp
	default:
		return fmt.Errorf("unexpected historical response %T for %s", resp, symbol)
	}

	records := prices.Normalize(raw, h.Options.Fallback)
	if len(records) == 0 {
		return moneygoup_errors.ErrNoHistoricalData{Symbol: symbol}
	}

	n, err := h.DailyPriceRepository.Upsert(ctx, stock.StockID, records)
	if err != nil {
		return fmt.Errorf("failed to store daily prices for %s: %w", symbol, err)
	}
	log.Printf("[INFO] upserted %d daily prices for %s (%d rows affected)", len(records), symbol, n)

	if price, ok := prices.LatestPrice(quote, records); ok {
		if err := h.StockRepository.UpdateLatestPrice(ctx, stock.StockID, price); err != nil {
			log.Printf("[ERROR] failed to update latest price for %s: %v", symbol, err)
		} else {
			log.Printf("[INFO] %s price %s -> %s", symbol, previousPrice(stock), price.String())
		}
	} else {
		log.Printf("[WARN] no latest price available for %s", symbol)
	}

	h.syncNews(ctx, stock, owners)
	return nil
}

func previousPrice(stock domain.Stock) string {
	if stock.Price == nil {
		return "none"
	}
	return stock.Price.String()
}

// syncNews never fails the stock; its errors are logged only.
func (h syncServiceHandler) syncNews(ctx context.Context, stock domain.Stock, owners []int32) {
	items := h.Synthesizer.Synthesize(stock.Symbol, stock.CompanyName)
	if len(items) == 0 {
		return
	}

	newsIDs, err := h.NewsRepository.Upsert(ctx, items)
	if err != nil {
		log.Printf("[ERROR] failed to store news for %s: %v", stock.Symbol, err)
		return
	}

	if len(owners) == 0 {
		log.Printf("[INFO] %s has no owners, not linking news", stock.Symbol)
		return
	}
	for _, userID := range owners {
		if _, err := h.NewsRepository.Link(ctx, userID, stock.StockID, newsIDs); err != nil {
			log.Printf("[ERROR] failed to link news for %s to user %d: %v", stock.Symbol, userID, err)
		}
	}
}
