package prices

import "context"

//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=prices

type PriceClient interface {
	GetHistoricalSeries(ctx context.Context, symbol, period string) SeriesResponse
	GetLatestQuote(ctx context.Context, symbol string) (*Quote, error)
}
