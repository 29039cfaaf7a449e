package chart

import (
	"math"
	"testing"
	"time"

	"TickerLens/internal/model"
)

func makeSeries(symbol string, n int) model.Series {
	points := make([]model.PricePoint, n)
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		base := 100.0 + float64(i)
		points[i] = model.PricePoint{
			Time:   start.AddDate(0, 0, i),
			Open:   base - 0.5,
			High:   base + 1,
			Low:    base - 1,
			Close:  base,
			Volume: 1000 * float64(i+1),
		}
	}
	return model.Series{Symbol: symbol, Points: points}
}

func TestMovingAverageView_LengthAndGaps(t *testing.T) {
	series := makeSeries("AAPL", 10)
	view := MovingAverageView(series, 3, 5)

	if view.Placeholder {
		t.Fatal("expected real view for non-empty series")
	}
	if len(view.Lines) != 3 {
		t.Fatalf("expected 3 lines (close + 2 SMAs), got %d", len(view.Lines))
	}
	for _, line := range view.Lines {
		if len(line.Y) != len(series.Points) {
			t.Errorf("line %s: length %d, want %d", line.Name, len(line.Y), len(series.Points))
		}
	}

	sma3 := view.Lines[1].Y
	for i := 0; i < 2; i++ {
		if !math.IsNaN(sma3[i]) {
			t.Errorf("SMA3[%d] = %v, want NaN gap", i, sma3[i])
		}
	}
	// closes are 100..109, so SMA3 at index 2 is (100+101+102)/3
	if got, want := sma3[2], 101.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("SMA3[2] = %v, want %v", got, want)
	}
	if got, want := sma3[9], 108.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("SMA3[9] = %v, want %v", got, want)
	}

	sma5 := view.Lines[2].Y
	for i := 0; i < 4; i++ {
		if !math.IsNaN(sma5[i]) {
			t.Errorf("SMA5[%d] = %v, want NaN gap", i, sma5[i])
		}
	}
	if got, want := sma5[4], 102.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("SMA5[4] = %v, want %v", got, want)
	}
}

func TestViews_EmptySeriesPlaceholders(t *testing.T) {
	empty := model.Series{Symbol: "ZZZZ123"}
	views := []model.ChartView{
		PriceView(empty),
		VolumeView(empty),
		MovingAverageView(empty, 20, 50),
		CandlestickView(empty),
	}
	for _, v := range views {
		if !v.Placeholder {
			t.Errorf("%s: expected placeholder for empty series", v.Title)
		}
		if v.Note != "no data for ZZZZ123" {
			t.Errorf("%s: note = %q", v.Title, v.Note)
		}
		if len(v.X) != 0 || len(v.Lines) != 0 || len(v.Candles) != 0 {
			t.Errorf("%s: placeholder must carry no data", v.Title)
		}
	}
}

func TestViews_DoNotMutateInput(t *testing.T) {
	series := makeSeries("MSFT", 8)
	before := make([]model.PricePoint, len(series.Points))
	copy(before, series.Points)

	PriceView(series)
	VolumeView(series)
	MovingAverageView(series, 3, 5)
	view := CandlestickView(series)

	for i := range before {
		if series.Points[i] != before[i] {
			t.Fatalf("point %d mutated: %+v != %+v", i, series.Points[i], before[i])
		}
	}

	// The candlestick view owns its own copy of the bars.
	view.Candles[0].Close = -1
	if series.Points[0].Close == -1 {
		t.Fatal("candlestick view shares storage with the input series")
	}
}

func TestPriceAndVolumeViews(t *testing.T) {
	series := makeSeries("AAPL", 4)

	price := PriceView(series)
	if price.Kind != model.ViewLine || len(price.Lines) != 1 {
		t.Fatalf("unexpected price view shape: %+v", price)
	}
	for i, p := range series.Points {
		if price.Lines[0].Y[i] != p.Close {
			t.Errorf("close[%d] = %v, want %v", i, price.Lines[0].Y[i], p.Close)
		}
	}

	volume := VolumeView(series)
	if volume.Kind != model.ViewBar {
		t.Fatalf("volume view kind = %s", volume.Kind)
	}
	if got, want := volume.Lines[0].Y[3], 4000.0; got != want {
		t.Errorf("volume[3] = %v, want %v", got, want)
	}

	candle := CandlestickView(series)
	if candle.Kind != model.ViewOHLC || len(candle.Candles) != 4 {
		t.Fatalf("unexpected candlestick view shape: %+v", candle)
	}
}
