package domain

import (
	"time"

	"github.com/guregu/null/v6"
)

// DailyPrice is one normalized bar of a stock's history. Numeric fields
// are optional so that a missing value and a real zero stay distinct.
type DailyPrice struct {
	Date      time.Time
	Open      null.Float
	High      null.Float
	Low       null.Float
	Close     null.Float
	Volume    null.Float
	AdjOpen   null.Float
	AdjHigh   null.Float
	AdjLow    null.Float
	AdjClose  null.Float
	AdjVolume null.Float
	// absolute change in close from the previous trading day
	DailyChange float64
}

func (p DailyPrice) DateString() string {
	return p.Date.Format(time.DateOnly)
}
