package prices

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moneygoup/internal/domain"

	"github.com/guregu/null/v6"
)

// FallbackPolicy decides when an adjusted field is replaced by its
// unadjusted counterpart.
type FallbackPolicy string

const (
	// FallbackOnMissingOrZero treats 0 like a missing value. It is the
	// default.
	FallbackOnMissingOrZero FallbackPolicy = "missing_or_zero"
	// FallbackOnMissing keeps a real zero.
	FallbackOnMissing FallbackPolicy = "missing"
)

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(s); p {
	case FallbackOnMissingOrZero, FallbackOnMissing:
		return p, nil
	case "":
		return FallbackOnMissingOrZero, nil
	}
	return "", fmt.Errorf("unknown adjusted fallback policy %q", s)
}

func (p FallbackPolicy) pick(adjusted, unadjusted null.Float) null.Float {
	if !adjusted.Valid {
		return unadjusted
	}
	if p != FallbackOnMissing && adjusted.Float64 == 0 {
		return unadjusted
	}
	return adjusted
}

// Normalize maps raw API records onto daily prices ordered by date.
// Records without a usable date are dropped. When the same date appears
// more than once the last one wins, as it would in the upsert.
func Normalize(records []RawRecord, policy FallbackPolicy) []domain.DailyPrice {
	type dated struct {
		key    string
		record domain.DailyPrice
	}

	kept := make([]dated, 0, len(records))
	for _, r := range records {
		key, ok := extractDate(r)
		if !ok {
			continue
		}
		date, err := time.Parse(time.DateOnly, key)
		if err != nil {
			continue
		}
		kept = append(kept, dated{
			key: key,
			record: domain.DailyPrice{
				Date:      date,
				Open:      r.Open,
				High:      r.High,
				Low:       r.Low,
				Close:     r.Close,
				Volume:    r.Volume,
				AdjOpen:   policy.pick(r.AdjOpen, r.Open),
				AdjHigh:   policy.pick(r.AdjHigh, r.High),
				AdjLow:    policy.pick(r.AdjLow, r.Low),
				AdjClose:  policy.pick(r.AdjClose, r.Close),
				AdjVolume: policy.pick(r.AdjVolume, r.Volume),
			},
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].key < kept[j].key
	})

	out := make([]domain.DailyPrice, 0, len(kept))
	for i, d := range kept {
		if i+1 < len(kept) && kept[i+1].key == d.key {
			continue
		}
		out = append(out, d.record)
	}

	for i := range out {
		if i == 0 {
			out[i].DailyChange = 0
			continue
		}
		prev, cur := out[i-1].Close, out[i].Close
		if prev.Valid && cur.Valid {
			out[i].DailyChange = cur.Float64 - prev.Float64
		}
	}

	return out
}

// extractDate returns the calendar date portion of the first non-empty
// of timestamp, date and datetime.
func extractDate(r RawRecord) (string, bool) {
	var raw string
	switch {
	case r.Timestamp.Valid && r.Timestamp.String != "":
		raw = r.Timestamp.String
	case r.Date.Valid && r.Date.String != "":
		raw = r.Date.String
	case r.Datetime.Valid && r.Datetime.String != "":
		raw = r.Datetime.String
	default:
		return "", false
	}

	raw, _, _ = strings.Cut(raw, "T")
	raw, _, _ = strings.Cut(raw, " ")
	return raw, raw != ""
}
