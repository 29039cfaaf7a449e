package model

import "time"

// PricePoint represents a single OHLCV bar.
type PricePoint struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds the ordered price history for one symbol, ascending by
// timestamp. An empty Series is a valid state meaning "no data for this
// symbol in the window", not a fault.
type Series struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Empty reports whether the series carries no bars.
func (s Series) Empty() bool { return len(s.Points) == 0 }

// Closes returns a fresh slice of close prices, so callers can
// transform it without touching the shared series.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Times returns a fresh slice of bar timestamps.
func (s Series) Times() []time.Time {
	times := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		times[i] = p.Time
	}
	return times
}
