package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TickerLens/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// validPeriods maps the configured lookback period onto Yahoo's range
// parameter. Unlisted values fall back to "3mo".
var validPeriods = map[string]bool{
	"5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true,
}

// FetchSeries fetches daily bars for the symbol over the lookback period.
func (f *YahooFetcher) FetchSeries(symbol, period string) (model.Series, error) {
	if !validPeriods[period] {
		period = "3mo"
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), period)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return model.Series{Symbol: symbol}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Series{Symbol: symbol}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Series{Symbol: symbol}, fmt.Errorf("yahoo read body: %w", err)
	}
	// Yahoo answers 404 with a structured "Not Found" error for unknown
	// symbols; that is the empty-series case, not an upstream fault.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return model.Series{Symbol: symbol}, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return model.Series{Symbol: symbol}, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return model.Series{Symbol: symbol, FetchedAt: time.Now()}, nil
	}
	if len(chart.Chart.Result) == 0 ||
		len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return model.Series{Symbol: symbol, FetchedAt: time.Now()}, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	// A truncated quote block would leave the arrays shorter than the
	// timestamp index; treat it as no data rather than indexing past it.
	n := len(result.Timestamp)
	if len(quote.Open) != n || len(quote.High) != n || len(quote.Low) != n ||
		len(quote.Close) != n || len(quote.Volume) != n {
		log.Printf("[WARN] yahoo: quote arrays do not match %d timestamps for %s, treating as no data", n, symbol)
		return model.Series{Symbol: symbol, FetchedAt: time.Now()}, nil
	}

	points := make([]model.PricePoint, 0, n)

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, model.PricePoint{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return model.Series{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}
