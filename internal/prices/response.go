package prices

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guregu/null/v6"
)

// RawRecord is one daily bar as the price API returns it. Depending on
// the upstream provider the date is under timestamp, date or datetime,
// and numbers may arrive as JSON numbers or numeric strings.
type RawRecord struct {
	Timestamp null.String `json:"timestamp"`
	Date      null.String `json:"date"`
	Datetime  null.String `json:"datetime"`

	Open   null.Float `json:"open"`
	High   null.Float `json:"high"`
	Low    null.Float `json:"low"`
	Close  null.Float `json:"close"`
	Volume null.Float `json:"volume"`

	AdjOpen   null.Float `json:"adjOpen"`
	AdjHigh   null.Float `json:"adjHigh"`
	AdjLow    null.Float `json:"adjLow"`
	AdjClose  null.Float `json:"adjClose"`
	AdjVolume null.Float `json:"adjVolume"`
}

// SeriesResponse is the parsed body of a historical request: exactly one
// of Series, ApiError or Malformed.
type SeriesResponse interface {
	isSeriesResponse()
}

// Series is a successful response. An empty Series also stands for a
// failed request, which the client has already logged.
type Series []RawRecord

type ApiError struct {
	Message string
	Details string
}

type Malformed struct {
	Err error
}

func (Series) isSeriesResponse()    {}
func (ApiError) isSeriesResponse()  {}
func (Malformed) isSeriesResponse() {}

// object fields that may wrap the list of records
var seriesFields = []string{"values", "data", "prices", "historical"}

func parseSeriesResponse(body []byte) SeriesResponse {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Malformed{Err: errors.New("empty response body")}
	}

	switch body[0] {
	case '[':
		records := []RawRecord{}
		if err := json.Unmarshal(body, &records); err != nil {
			return Malformed{Err: fmt.Errorf("failed to decode series: %w", err)}
		}
		return Series(records)
	case '{':
		return parseSeriesObject(body)
	case 'n':
		// a literal null is the upstream's way of saying "nothing"
		if string(body) == "null" {
			return Series(nil)
		}
	}
	return Malformed{Err: fmt.Errorf("unexpected response body starting with %q", body[0])}
}

func parseSeriesObject(body []byte) SeriesResponse {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return Malformed{Err: fmt.Errorf("failed to decode response object: %w", err)}
	}

	if rawErr, ok := fields["error"]; ok {
		return ApiError{
			Message: jsonText(rawErr),
			Details: jsonText(fields["details"]),
		}
	}

	for _, name := range seriesFields {
		rawList, ok := fields[name]
		if !ok {
			continue
		}
		records := []RawRecord{}
		if err := json.Unmarshal(rawList, &records); err != nil {
			return Malformed{Err: fmt.Errorf("failed to decode %s: %w", name, err)}
		}
		return Series(records)
	}

	return Malformed{Err: errors.New("response object has no series field")}
}

// jsonText renders a JSON value as text, unquoting plain strings.
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
