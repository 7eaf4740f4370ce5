package prices

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseSeriesResponse(t *testing.T) {
	t.Run("bare list", func(t *testing.T) {
		out := parseSeriesResponse([]byte(`[{"date": "2024-01-02", "close": 1}]`))
		series, ok := out.(Series)
		require.True(t, ok)
		require.Len(t, series, 1)
		require.Equal(t, null.FloatFrom(1), series[0].Close)
	})
	t.Run("wrapped list", func(t *testing.T) {
		out := parseSeriesResponse([]byte(`{"meta": {"symbol": "AAPL"}, "values": [{"datetime": "2024-01-02", "close": "1.5"}]}`))
		series, ok := out.(Series)
		require.True(t, ok)
		require.Len(t, series, 1)
		require.Equal(t, null.StringFrom("2024-01-02"), series[0].Datetime)
	})
	t.Run("error object", func(t *testing.T) {
		out := parseSeriesResponse([]byte(`{"error": "rate limited"}`))
		require.Equal(t, ApiError{Message: "rate limited"}, out)
	})
	t.Run("error object with details", func(t *testing.T) {
		out := parseSeriesResponse([]byte(`{"error": "Failed to fetch historical data from both providers", "details": "Tiingo API: Not Found"}`))
		require.Equal(t, ApiError{
			Message: "Failed to fetch historical data from both providers",
			Details: "Tiingo API: Not Found",
		}, out)
	})
	t.Run("empty list", func(t *testing.T) {
		out := parseSeriesResponse([]byte(`[]`))
		require.Equal(t, Series{}, out)
	})
	t.Run("object without a series", func(t *testing.T) {
		_, ok := parseSeriesResponse([]byte(`{"symbol": "AAPL"}`)).(Malformed)
		require.True(t, ok)
	})
	t.Run("invalid json", func(t *testing.T) {
		_, ok := parseSeriesResponse([]byte(`[{"date": `)).(Malformed)
		require.True(t, ok)
	})
	t.Run("wrong record shape", func(t *testing.T) {
		_, ok := parseSeriesResponse([]byte(`[{"date": 20240102}]`)).(Malformed)
		require.True(t, ok)
	})
	t.Run("scalar body", func(t *testing.T) {
		_, ok := parseSeriesResponse([]byte(`"hello"`)).(Malformed)
		require.True(t, ok)
	})
}

func newTestServer(t *testing.T, handler http.HandlerFunc) ApiClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewApiClient(server.Client(), server.URL+"/")
}

func TestApiClient_GetHistoricalSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("requests the historical route", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/stock/AAPL/historical/max", r.URL.Path)
			w.Write([]byte(`[{"date": "2024-01-02", "close": 100}]`))
		})

		series, ok := client.GetHistoricalSeries(ctx, "AAPL", "max").(Series)
		require.True(t, ok)
		require.Len(t, series, 1)
	})

	t.Run("error object with 200", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error": "rate limited"}`))
		})

		out := client.GetHistoricalSeries(ctx, "AAPL", "max")
		require.Equal(t, ApiError{Message: "rate limited"}, out)
	})

	t.Run("http failure is an empty series", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "both providers failed"}`))
		})

		out := client.GetHistoricalSeries(ctx, "AAPL", "max")
		series, ok := out.(Series)
		require.True(t, ok)
		require.Empty(t, series)
	})

	t.Run("http failure keeps the body in the error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "Failed to fetch historical data from both providers", "details": "Tiingo API: Not Found"}`))
		})

		_, err := client.get(ctx, client.BaseURL+"/api/stock/AAPL/historical/max")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected status 500")
		require.Contains(t, err.Error(), "Tiingo API: Not Found")
	})

	t.Run("transport failure is an empty series", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		client := NewApiClient(server.Client(), server.URL)
		server.Close()

		series, ok := client.GetHistoricalSeries(ctx, "AAPL", "max").(Series)
		require.True(t, ok)
		require.Empty(t, series)
	})
}

func TestApiClient_GetLatestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("price", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/stock/quote/MSFT", r.URL.Path)
			w.Write([]byte(`{"symbol": "MSFT", "price": 415.5}`))
		})

		quote, err := client.GetLatestQuote(ctx, "MSFT")
		require.NoError(t, err)
		require.Equal(t, "MSFT", quote.Symbol)
		require.Equal(t, "415.5", quote.Price.String())
	})

	t.Run("missing price", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"symbol": "MSFT"}`))
		})

		_, err := client.GetLatestQuote(ctx, "MSFT")
		require.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetLatestQuote(ctx, "MSFT")
		require.Error(t, err)
	})
}
