package prices

import (
	"moneygoup/internal/domain"

	"github.com/shopspring/decimal"
)

// LatestPrice picks the value for stocks.price. A live quote wins;
// otherwise the close of the last normalized record is used. ok is false
// when neither is available.
func LatestPrice(quote *Quote, records []domain.DailyPrice) (price decimal.Decimal, ok bool) {
	if quote != nil {
		return quote.Price, true
	}
	if len(records) == 0 {
		return decimal.Zero, false
	}
	last := records[len(records)-1].Close
	if !last.Valid {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(last.Float64), true
}
