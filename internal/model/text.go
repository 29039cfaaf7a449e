package model

// SentimentLabel classifies the tone of one headline.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// Headline is one short natural-language text item tied to a symbol.
type Headline struct {
	Symbol string
	Text   string
}

// SentimentResult is the classification of exactly one headline.
type SentimentResult struct {
	Label SentimentLabel
	Score float64 // confidence in [0,1]
}

// Entity is a named entity extracted from a headline.
type Entity struct {
	Text  string
	Label string // e.g. PERSON, GPE, ORG
}

// AnnotatedHeadline joins entity and sentiment output for one headline.
type AnnotatedHeadline struct {
	Headline  Headline
	Entities  []Entity
	Sentiment SentimentResult
}

// FallbackSentiment is the per-item degraded result used when an
// extractor fails on a single headline.
var FallbackSentiment = SentimentResult{Label: SentimentNeutral, Score: 0}

// WordFreq is the frequency-weighted multiset of alphabetic tokens
// harvested from one analysis batch.
type WordFreq map[string]int
