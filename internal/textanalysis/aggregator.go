package textanalysis

import (
	"log"
	"strings"
	"sync"
	"unicode"

	"TickerLens/internal/model"
)

const defaultConcurrency = 4

// Aggregator runs both extractors over a headline batch. Items are
// processed concurrently but the returned list keeps input order, and a
// failure on one item degrades only that item.
type Aggregator struct {
	Sentiment   SentimentExtractor
	Entities    EntityExtractor
	Concurrency int
}

// NewAggregator creates an Aggregator over the given extractor backends.
func NewAggregator(sentiment SentimentExtractor, entities EntityExtractor) *Aggregator {
	return &Aggregator{
		Sentiment:   sentiment,
		Entities:    entities,
		Concurrency: defaultConcurrency,
	}
}

// Analyze annotates every headline and returns the batch-wide word
// multiset. Only alphabetic tokens enter the multiset.
func (a *Aggregator) Analyze(items []model.Headline) ([]model.AnnotatedHeadline, model.WordFreq) {
	results := make([]model.AnnotatedHeadline, len(items))
	tokenLists := make([][]string, len(items))

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for i := range items {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx], tokenLists[idx] = a.analyzeOne(items[idx])
		}(i)
	}
	wg.Wait()

	// Merge after the barrier so no goroutine touches the shared map.
	words := model.WordFreq{}
	for _, tokens := range tokenLists {
		for _, tok := range tokens {
			if isAlphabetic(tok) {
				words[strings.ToLower(tok)]++
			}
		}
	}
	return results, words
}

// analyzeOne annotates a single headline. Either extractor failing
// degrades this item to the neutral/empty fallback; the batch goes on.
func (a *Aggregator) analyzeOne(item model.Headline) (model.AnnotatedHeadline, []string) {
	out := model.AnnotatedHeadline{Headline: item}

	entities, tokens, err := a.Entities.Extract(item.Text)
	if err != nil {
		log.Printf("[WARN] entity extraction failed for %q: %v, using fallback", item.Text, err)
		out.Entities = []model.Entity{}
		out.Sentiment = model.FallbackSentiment
		return out, nil
	}
	out.Entities = entities

	sentiment, err := a.Sentiment.Classify(item.Text)
	if err != nil {
		log.Printf("[WARN] sentiment classification failed for %q: %v, using fallback", item.Text, err)
		out.Entities = []model.Entity{}
		out.Sentiment = model.FallbackSentiment
		return out, nil
	}
	out.Sentiment = sentiment
	return out, tokens
}

func isAlphabetic(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
