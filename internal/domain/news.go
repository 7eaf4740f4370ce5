package domain

import "time"

type NewsItem struct {
	NewsID         *int32
	Title          string
	Link           string
	PublishedAt    time.Time
	Source         string
	SentimentScore float64
}
