package marketdata

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"TickerLens/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted bars API. The
// response body is walked with gjson so minor schema drift in the
// upstream deployment does not require a struct change here.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// FetchSeries fetches daily bars from GET {base}/api/v1/bars.
func (f *RESTFetcher) FetchSeries(symbol, period string) (model.Series, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars?symbol=%s&period=%s",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(period))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return model.Series{Symbol: symbol}, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Series{Symbol: symbol}, fmt.Errorf("rest fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Series{Symbol: symbol}, fmt.Errorf("rest read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return model.Series{Symbol: symbol, FetchedAt: time.Now()}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return model.Series{Symbol: symbol}, fmt.Errorf("rest: status %d, body: %s", resp.StatusCode, string(body))
	}

	bars := gjson.GetBytes(body, "bars")
	if !bars.Exists() || len(bars.Array()) == 0 {
		return model.Series{Symbol: symbol, FetchedAt: time.Now()}, nil
	}

	points := make([]model.PricePoint, 0, len(bars.Array()))
	bars.ForEach(func(_, bar gjson.Result) bool {
		ts := bar.Get("timestamp").Int()
		if ts == 0 {
			return true // skip malformed bars
		}
		points = append(points, model.PricePoint{
			Time:   time.Unix(ts, 0),
			Open:   bar.Get("open").Float(),
			High:   bar.Get("high").Float(),
			Low:    bar.Get("low").Float(),
			Close:  bar.Get("close").Float(),
			Volume: bar.Get("volume").Float(),
		})
		return true
	})

	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return model.Series{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}
