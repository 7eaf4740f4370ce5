package service

import (
	"context"
	"errors"
	"testing"
	"time"

	moneygoup_errors "moneygoup/internal"
	"moneygoup/internal/domain"
	"moneygoup/internal/news"
	"moneygoup/internal/prices"
	"moneygoup/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type syncMocks struct {
	priceClient          *prices.MockPriceClient
	stockRepository      *repository.MockStockRepository
	dailyPriceRepository *repository.MockDailyPriceRepository
	userStockRepository  *repository.MockUserStockRepository
	newsRepository       *repository.MockNewsRepository
	synthesizer          news.Synthesizer
}

func newSyncService(t *testing.T) (SyncService, syncMocks) {
	ctrl := gomock.NewController(t)
	m := syncMocks{
		priceClient:          prices.NewMockPriceClient(ctrl),
		stockRepository:      repository.NewMockStockRepository(ctrl),
		dailyPriceRepository: repository.NewMockDailyPriceRepository(ctrl),
		userStockRepository:  repository.NewMockUserStockRepository(ctrl),
		newsRepository:       repository.NewMockNewsRepository(ctrl),
		synthesizer: news.NewHeadlineSynthesizer(func() time.Time {
			return time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC)
		}),
	}
	svc := NewSyncService(
		m.priceClient,
		m.stockRepository,
		m.dailyPriceRepository,
		m.userStockRepository,
		m.newsRepository,
		m.synthesizer,
		SyncOptions{},
	)
	return svc, m
}

var (
	aapl = domain.Stock{StockID: 1, Symbol: "AAPL", CompanyName: "Apple Inc."}
	msft = domain.Stock{StockID: 2, Symbol: "MSFT", CompanyName: "Microsoft Corporation"}
)

func series() prices.Series {
	return prices.Series{
		{Date: null.StringFrom("2024-01-03"), Close: null.FloatFrom(105)},
		{Date: null.StringFrom("2024-01-02T00:00:00"), Close: null.FloatFrom(100)},
	}
}

func normalized() []domain.DailyPrice {
	return prices.Normalize(series(), prices.FallbackOnMissingOrZero)
}

func TestSyncService_SyncStock(t *testing.T) {
	ctx := context.Background()

	t.Run("prices, latest quote and news for every owner", func(t *testing.T) {
		svc, m := newSyncService(t)
		quote := &prices.Quote{Symbol: "AAPL", Price: decimal.RequireFromString("185.92")}
		items := m.synthesizer.Synthesize("AAPL", "Apple Inc.")
		newsIDs := []int32{11, 12, 13, 14, 15}

		gomock.InOrder(
			m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(quote, nil),
			m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series()),
			m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), normalized()).Return(int64(2), nil),
			m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), quote.Price).Return(nil),
			m.newsRepository.EXPECT().Upsert(ctx, items).Return(newsIDs, nil),
			m.newsRepository.EXPECT().Link(ctx, int32(7), int32(1), newsIDs).Return(int64(5), nil),
			m.newsRepository.EXPECT().Link(ctx, int32(9), int32(1), newsIDs).Return(int64(5), nil),
		)

		err := svc.SyncStock(ctx, aapl, []int32{7, 9})
		require.NoError(t, err)
	})

	t.Run("daily change is computed on sorted records", func(t *testing.T) {
		records := normalized()
		require.Equal(t, 0.0, records[0].DailyChange)
		require.Equal(t, 5.0, records[1].DailyChange)
	})

	t.Run("quote failure falls back to last close", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), decimal.NewFromFloat(105)).Return(nil)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return([]int32{1, 2, 3, 4, 5}, nil)

		err := svc.SyncStock(ctx, aapl, nil)
		require.NoError(t, err)
	})

	t.Run("no owners means no links", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), gomock.Any()).Return(nil)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return([]int32{1, 2, 3, 4, 5}, nil)
		m.newsRepository.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.SyncStock(ctx, aapl, []int32{})
		require.NoError(t, err)
	})

	t.Run("api error skips the stock", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(prices.ApiError{Message: "rate limited"})

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.ErrorAs(t, err, &moneygoup_errors.ErrApiResponse{})
	})

	t.Run("malformed response skips the stock", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(prices.Malformed{Err: errors.New("no series")})

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.ErrorAs(t, err, &moneygoup_errors.ErrMalformedResponse{})
	})

	t.Run("empty series skips the stock", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(prices.Series{})

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.ErrorAs(t, err, &moneygoup_errors.ErrNoHistoricalData{})
	})

	t.Run("series with no dated records skips the stock", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(prices.Series{{Close: null.FloatFrom(1)}})

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.ErrorAs(t, err, &moneygoup_errors.ErrNoHistoricalData{})
	})

	t.Run("price batch failure skips price and news", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.Error(t, err)
		require.False(t, isSkip(err))
	})

	t.Run("latest price failure still syncs news", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), gomock.Any()).Return(moneygoup_errors.ErrStockNotFound{StockID: 1})
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return([]int32{1, 2, 3, 4, 5}, nil)
		m.newsRepository.EXPECT().Link(ctx, int32(7), int32(1), []int32{1, 2, 3, 4, 5}).Return(int64(5), nil)

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.NoError(t, err)
	})

	t.Run("no latest price when last close is missing", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(prices.Series{{Date: null.StringFrom("2024-01-02")}})
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(1), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return([]int32{1, 2, 3, 4, 5}, nil)

		err := svc.SyncStock(ctx, aapl, nil)
		require.NoError(t, err)
	})

	t.Run("news failure skips linking", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), gomock.Any()).Return(nil)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, errors.New("check constraint"))
		m.newsRepository.EXPECT().Link(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.SyncStock(ctx, aapl, []int32{7})
		require.NoError(t, err)
	})

	t.Run("link failure for one owner still links the next", func(t *testing.T) {
		svc, m := newSyncService(t)
		ids := []int32{1, 2, 3, 4, 5}

		m.priceClient.EXPECT().GetLatestQuote(ctx, "AAPL").Return(nil, errors.New("quote unavailable"))
		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(1), gomock.Any()).Return(nil)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return(ids, nil)
		m.newsRepository.EXPECT().Link(ctx, int32(7), int32(1), ids).Return(int64(0), errors.New("deadlock"))
		m.newsRepository.EXPECT().Link(ctx, int32(9), int32(1), ids).Return(int64(5), nil)

		err := svc.SyncStock(ctx, aapl, []int32{7, 9})
		require.NoError(t, err)
	})
}

func Test_previousPrice(t *testing.T) {
	require.Equal(t, "none", previousPrice(aapl))

	price := decimal.RequireFromString("184.25")
	require.Equal(t, "184.25", previousPrice(domain.Stock{Symbol: "AAPL", Price: &price}))
}

func TestSyncService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("one failing stock does not stop the rest", func(t *testing.T) {
		svc, m := newSyncService(t)
		nvda := domain.Stock{StockID: 3, Symbol: "NVDA"}

		m.stockRepository.EXPECT().List(ctx).Return([]domain.Stock{aapl, msft, nvda}, nil)
		m.userStockRepository.EXPECT().ListOwnersByStock(ctx).Return(domain.OwnersByStock{2: {7}}, nil)

		m.priceClient.EXPECT().GetLatestQuote(ctx, gomock.Any()).Return(nil, errors.New("quote unavailable")).Times(3)

		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "AAPL", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(1), gomock.Any()).Return(int64(0), errors.New("connection reset"))

		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "MSFT", "max").Return(series())
		m.dailyPriceRepository.EXPECT().Upsert(ctx, int32(2), gomock.Any()).Return(int64(2), nil)
		m.stockRepository.EXPECT().UpdateLatestPrice(ctx, int32(2), decimal.NewFromFloat(105)).Return(nil)
		m.newsRepository.EXPECT().Upsert(ctx, gomock.Any()).Return([]int32{1, 2, 3, 4, 5}, nil)
		m.newsRepository.EXPECT().Link(ctx, int32(7), int32(2), []int32{1, 2, 3, 4, 5}).Return(int64(5), nil)

		m.priceClient.EXPECT().GetHistoricalSeries(ctx, "NVDA", "max").Return(prices.ApiError{Message: "unknown symbol"})

		summary, err := svc.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, Summary{Total: 3, Synced: 1, Skipped: 1, Failed: 1}, summary)
	})

	t.Run("no stocks", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.stockRepository.EXPECT().List(ctx).Return([]domain.Stock{}, nil)
		m.userStockRepository.EXPECT().ListOwnersByStock(ctx).Return(domain.OwnersByStock{}, nil)

		summary, err := svc.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, Summary{}, summary)
	})

	t.Run("loading stocks fails", func(t *testing.T) {
		svc, m := newSyncService(t)

		m.stockRepository.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

		_, err := svc.Run(ctx)
		require.Error(t, err)
	})

	t.Run("cancelled context stops between stocks", func(t *testing.T) {
		svc, m := newSyncService(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		m.stockRepository.EXPECT().List(cancelled).Return([]domain.Stock{aapl}, nil)
		m.userStockRepository.EXPECT().ListOwnersByStock(cancelled).Return(domain.OwnersByStock{}, nil)

		summary, err := svc.Run(cancelled)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, summary.Total)
		require.Equal(t, 0, summary.Synced)
	})
}
