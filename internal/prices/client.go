package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// ApiClient reads prices from the app's own stock API, which fronts
// Tiingo / Twelve Data for history and Yahoo for quotes.
type ApiClient struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewApiClient(httpClient *http.Client, baseURL string) ApiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return ApiClient{
		HttpClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type Quote struct {
	Symbol string
	Price  decimal.Decimal
}

type quoteResult struct {
	Symbol string              `json:"symbol"`
	Price  decimal.NullDecimal `json:"price"`
}

// GetHistoricalSeries never returns an error. Transport failures and
// non-2xx responses are logged and come back as an empty Series.
func (c ApiClient) GetHistoricalSeries(ctx context.Context, symbol, period string) SeriesResponse {
	endpoint := fmt.Sprintf("%s/api/stock/%s/historical/%s", c.BaseURL, url.PathEscape(symbol), url.PathEscape(period))
	log.Printf("[INFO] fetching historical data for %s from %s", symbol, endpoint)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		log.Printf("[ERROR] error fetching historical stock data for %s: %v", symbol, err)
		return Series(nil)
	}

	return parseSeriesResponse(body)
}

func (c ApiClient) GetLatestQuote(ctx context.Context, symbol string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/api/stock/quote/%s", c.BaseURL, url.PathEscape(symbol))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}

	var responseJson quoteResult
	err = json.Unmarshal(body, &responseJson)
	if err != nil {
		return nil, fmt.Errorf("failed to decode quote for %s: %w", symbol, err)
	}
	if !responseJson.Price.Valid {
		return nil, fmt.Errorf("quote for %s has no price", symbol)
	}

	return &Quote{
		Symbol: symbol,
		Price:  responseJson.Price.Decimal,
	}, nil
}

// error bodies are only logged, keep them short
const maxErrorBody = 1024

func (c ApiClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return nil, fmt.Errorf("unexpected status %d from %s: %s", response.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	return io.ReadAll(response.Body)
}
