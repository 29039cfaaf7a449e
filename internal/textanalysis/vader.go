package textanalysis

import (
	"fmt"

	"github.com/jonreiter/govader"

	"TickerLens/internal/model"
)

// Compound-score band below which VADER considers a text neutral.
const neutralBand = 0.05

// VaderSentiment implements SentimentExtractor on the VADER lexicon model.
type VaderSentiment struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderSentiment creates the VADER-backed sentiment extractor.
func NewVaderSentiment() *VaderSentiment {
	return &VaderSentiment{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderSentiment) Classify(text string) (model.SentimentResult, error) {
	if text == "" {
		return model.SentimentResult{}, fmt.Errorf("classify: empty text")
	}
	s := v.analyzer.PolarityScores(text)
	switch {
	case s.Compound >= neutralBand:
		return model.SentimentResult{Label: model.SentimentPositive, Score: clamp01(s.Compound)}, nil
	case s.Compound <= -neutralBand:
		return model.SentimentResult{Label: model.SentimentNegative, Score: clamp01(-s.Compound)}, nil
	default:
		return model.SentimentResult{Label: model.SentimentNeutral, Score: clamp01(s.Neutral)}, nil
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
