package news

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"moneygoup/internal/domain"
)

const (
	mockSource   = "MoneyGoUp Wire"
	mockLinkBase = "https://news.moneygoup.local"
)

// Synthesizer produces the news items attached to a stock on each sync.
type Synthesizer interface {
	Synthesize(symbol, companyName string) []domain.NewsItem
}

var headlineTemplates = []struct {
	format string
	hour   int
}{
	{"%s shares surge after strong quarterly earnings beat", 13},
	{"Analysts upgrade %s, citing robust growth outlook", 14},
	{"%s faces regulatory scrutiny over disclosure concerns", 15},
	{"%s announces new product line amid steady demand", 16},
	{"Investors worry as %s reports weak guidance", 20},
}

// HeadlineSynthesizer generates a fixed set of headlines per stock per
// day. Links embed the symbol and the UTC date, so repeated runs on the
// same day produce the same links.
type HeadlineSynthesizer struct {
	Now func() time.Time
}

func NewHeadlineSynthesizer(now func() time.Time) HeadlineSynthesizer {
	if now == nil {
		now = time.Now
	}
	return HeadlineSynthesizer{Now: now}
}

func (h HeadlineSynthesizer) Synthesize(symbol, companyName string) []domain.NewsItem {
	symbol = strings.ToUpper(symbol)
	subject := companyName
	if subject == "" {
		subject = symbol
	}

	today := h.Now().UTC()
	date := today.Format(time.DateOnly)

	out := make([]domain.NewsItem, len(headlineTemplates))
	for i, tmpl := range headlineTemplates {
		title := fmt.Sprintf(tmpl.format, subject)
		out[i] = domain.NewsItem{
			Title:          title,
			Link:           fmt.Sprintf("%s/%s/%s/%d", mockLinkBase, url.PathEscape(symbol), date, i+1),
			PublishedAt:    time.Date(today.Year(), today.Month(), today.Day(), tmpl.hour, 0, 0, 0, time.UTC),
			Source:         mockSource,
			SentimentScore: Score(title),
		}
	}
	return out
}
