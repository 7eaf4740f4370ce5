package news

import (
	"math"
	"sync"

	"github.com/jonreiter/govader"
)

// the lexicon is loaded once and only read afterwards
var analyzer = sync.OnceValue(govader.NewSentimentIntensityAnalyzer)

// Score returns the VADER compound polarity of text in [-1, 1], rounded
// to 4 decimals.
func Score(text string) float64 {
	if text == "" {
		return 0
	}
	compound := analyzer().PolarityScores(text).Compound
	return math.Round(compound*10000) / 10000
}
