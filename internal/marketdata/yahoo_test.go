package marketdata

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func stubYahoo(status int, body string) *YahooFetcher {
	f := NewYahooFetcher("")
	f.Client.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})
	return f
}

func TestFetchSeries_ParsesBars(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{
			"open":[10.0,10.5,11.0],"high":[10.8,11.2,11.6],
			"low":[9.8,10.1,10.7],"close":[10.5,11.0,11.4],
			"volume":[1000,1200,900]}]}}],"error":null}}`
	f := stubYahoo(http.StatusOK, body)

	series, err := f.FetchSeries("AAPL", "3mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Points) != 3 {
		t.Fatalf("got %d bars, want 3", len(series.Points))
	}
	if series.Points[2].Close != 11.4 || series.Points[2].Volume != 900 {
		t.Errorf("last bar = %+v", series.Points[2])
	}
	if !series.Points[0].Time.Before(series.Points[1].Time) {
		t.Error("bars not in ascending time order")
	}
}

func TestFetchSeries_UnknownSymbolIsEmptyNotError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	f := stubYahoo(http.StatusNotFound, body)

	series, err := f.FetchSeries("ZZZZ123", "3mo")
	if err != nil {
		t.Fatalf("unknown symbol must not be an error, got: %v", err)
	}
	if !series.Empty() {
		t.Fatalf("expected empty series, got %d bars", len(series.Points))
	}
	if series.Symbol != "ZZZZ123" {
		t.Errorf("symbol = %q", series.Symbol)
	}
}

func TestFetchSeries_TruncatedQuoteBlockIsEmptyNotPanic(t *testing.T) {
	// Three timestamps but only one entry per quote array.
	body := `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{
			"open":[10.0],"high":[10.8],"low":[9.8],"close":[10.5],"volume":[1000]}]}}],"error":null}}`
	f := stubYahoo(http.StatusOK, body)

	series, err := f.FetchSeries("AAPL", "3mo")
	if err != nil {
		t.Fatalf("truncated quote block must not be an error, got: %v", err)
	}
	if !series.Empty() {
		t.Fatalf("expected empty series for truncated quote block, got %d bars", len(series.Points))
	}
}
