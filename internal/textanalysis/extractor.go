// Package textanalysis annotates headline batches with sentiment and
// named entities, and harvests the word multiset for visualization.
package textanalysis

import "TickerLens/internal/model"

// SentimentExtractor classifies one text item into a label plus a
// confidence score in [0,1].
type SentimentExtractor interface {
	Classify(text string) (model.SentimentResult, error)
}

// EntityExtractor extracts named entities from one text item and
// tokenizes it into words.
type EntityExtractor interface {
	Extract(text string) (entities []model.Entity, tokens []string, err error)
}
