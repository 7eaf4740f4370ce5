package moneygoup_errors

import (
	"fmt"
)

// ErrApiResponse is returned when the price API answers with an error
// object instead of a series.
type ErrApiResponse struct {
	Symbol  string
	Message string
	Details string
}

func (e ErrApiResponse) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api returned an error for %s: %s (%s)", e.Symbol, e.Message, e.Details)
	}
	return fmt.Sprintf("api returned an error for %s: %s", e.Symbol, e.Message)
}

type ErrMalformedResponse struct {
	Symbol string
	Err    error
}

func (e ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed historical response for %s: %v", e.Symbol, e.Err)
}

func (e ErrMalformedResponse) Unwrap() error {
	return e.Err
}

// ErrNoHistoricalData covers both an empty series and a series in which
// no record survived normalization.
type ErrNoHistoricalData struct {
	Symbol string
}

func (e ErrNoHistoricalData) Error() string {
	return fmt.Sprintf("no historical data returned for %s", e.Symbol)
}

type ErrStockNotFound struct {
	StockID int32
}

func (e ErrStockNotFound) Error() string {
	return fmt.Sprintf("stock_id %d does not exist", e.StockID)
}
