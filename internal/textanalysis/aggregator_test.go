package textanalysis

import (
	"errors"
	"strings"
	"testing"

	"TickerLens/internal/model"
)

type fakeSentiment struct {
	failOn string
}

func (f *fakeSentiment) Classify(text string) (model.SentimentResult, error) {
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return model.SentimentResult{}, errors.New("classifier offline")
	}
	if strings.Contains(text, "surges") {
		return model.SentimentResult{Label: model.SentimentPositive, Score: 0.9}, nil
	}
	if strings.Contains(text, "concerns") {
		return model.SentimentResult{Label: model.SentimentNegative, Score: 0.7}, nil
	}
	return model.SentimentResult{Label: model.SentimentNeutral, Score: 0.5}, nil
}

type fakeEntities struct {
	failOn string
}

func (f *fakeEntities) Extract(text string) ([]model.Entity, []string, error) {
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, nil, errors.New("tagger offline")
	}
	tokens := strings.Fields(text)
	return []model.Entity{{Text: tokens[0], Label: "ORG"}}, tokens, nil
}

func batch(symbol string) []model.Headline {
	texts := []string{
		symbol + " stock surges after record earnings",
		"Analysts stay neutral on " + symbol,
		"Regulatory concerns weigh on " + symbol + " shares",
		symbol + " unveils new product line",
		symbol + " CEO discusses growth strategy",
	}
	items := make([]model.Headline, len(texts))
	for i, txt := range texts {
		items[i] = model.Headline{Symbol: symbol, Text: txt}
	}
	return items
}

func TestAnalyze_OrderAndLabels(t *testing.T) {
	agg := NewAggregator(&fakeSentiment{}, &fakeEntities{})
	items := batch("AAPL")

	results, words := agg.Analyze(items)

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	valid := map[model.SentimentLabel]bool{
		model.SentimentPositive: true,
		model.SentimentNegative: true,
		model.SentimentNeutral:  true,
	}
	for i, r := range results {
		if r.Headline.Text != items[i].Text {
			t.Errorf("result %d out of order: %q", i, r.Headline.Text)
		}
		if !valid[r.Sentiment.Label] {
			t.Errorf("result %d: invalid label %q", i, r.Sentiment.Label)
		}
		if r.Sentiment.Score < 0 || r.Sentiment.Score > 1 {
			t.Errorf("result %d: score %v out of [0,1]", i, r.Sentiment.Score)
		}
	}
	if len(words) == 0 {
		t.Fatal("expected non-empty word multiset")
	}
}

func TestAnalyze_SingleItemFailureIsContained(t *testing.T) {
	items := batch("TSLA")
	// Force the sentiment backend to fail on item index 2 only.
	agg := NewAggregator(&fakeSentiment{failOn: "Regulatory"}, &fakeEntities{})

	results, _ := agg.Analyze(items)

	if len(results) != 5 {
		t.Fatalf("expected 5 results despite one failure, got %d", len(results))
	}
	failed := results[2]
	if failed.Sentiment != model.FallbackSentiment {
		t.Errorf("item 2 sentiment = %+v, want fallback", failed.Sentiment)
	}
	if len(failed.Entities) != 0 {
		t.Errorf("item 2 entities = %v, want empty", failed.Entities)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if results[i].Sentiment == model.FallbackSentiment {
			t.Errorf("item %d unexpectedly degraded", i)
		}
		if len(results[i].Entities) == 0 {
			t.Errorf("item %d lost its entities", i)
		}
	}
}

func TestAnalyze_EntityFailureIsContained(t *testing.T) {
	items := batch("NVDA")
	agg := NewAggregator(&fakeSentiment{}, &fakeEntities{failOn: "unveils"})

	results, _ := agg.Analyze(items)

	if results[3].Sentiment != model.FallbackSentiment || len(results[3].Entities) != 0 {
		t.Errorf("item 3 not degraded to fallback: %+v", results[3])
	}
	if results[0].Sentiment == model.FallbackSentiment {
		t.Error("item 0 unexpectedly degraded")
	}
}

func TestAnalyze_AlphabeticTokensOnly(t *testing.T) {
	agg := NewAggregator(&fakeSentiment{}, &fakeEntities{})
	items := []model.Headline{
		{Symbol: "AAPL", Text: "Earnings up 5% in Q3 2025, shares rally"},
	}

	_, words := agg.Analyze(items)

	for _, want := range []string{"earnings", "up", "in", "shares", "rally"} {
		if words[want] == 0 {
			t.Errorf("word %q missing from multiset", want)
		}
	}
	for word := range words {
		for _, r := range word {
			if r >= '0' && r <= '9' {
				t.Errorf("non-alphabetic token %q in multiset", word)
			}
		}
	}
	if words["5%"] != 0 || words["2025"] != 0 {
		t.Error("punctuation/numeric tokens leaked into multiset")
	}
}
