package marketdata

import "TickerLens/internal/model"

// Fetcher defines the interface for fetching market data.
//
// An unknown symbol or an empty window yields an empty Series with a
// nil error; that is a normal outcome, not a fault. A non-nil error
// means the upstream source itself was unreachable or unusable.
type Fetcher interface {
	FetchSeries(symbol, period string) (model.Series, error)
	Name() string
}
