package marketdata

import (
	"time"

	"TickerLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Bars      int
	Data      map[string][]model.PricePoint // per-symbol override; nil entry means unknown symbol
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(symbol, _ string) (model.Series, error) {
	if m.Err != nil {
		return model.Series{Symbol: symbol}, m.Err
	}
	if m.Data != nil {
		return model.Series{Symbol: symbol, Points: m.Data[symbol], FetchedAt: time.Now()}, nil
	}
	count := m.Bars
	if count == 0 {
		count = 60
	}
	return model.Series{Symbol: symbol, Points: GenerateBars(m.BasePrice, count), FetchedAt: time.Now()}, nil
}

// GenerateBars builds a deterministic synthetic bar sequence around a base price.
func GenerateBars(basePrice float64, count int) []model.PricePoint {
	if basePrice == 0 {
		basePrice = 100
	}
	points := make([]model.PricePoint, count)
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.PricePoint{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000 + float64(i)*1000,
		}
	}
	return points
}
