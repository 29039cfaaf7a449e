// Package chart derives renderer-agnostic chart descriptors from a
// price series. Every builder is pure: the input series is borrowed
// read-only and each output owns its own slices.
package chart

import (
	"fmt"
	"math"

	"TickerLens/internal/model"
)

// placeholder builds the "no data" descriptor shared by all four views.
func placeholder(title string, kind model.ViewKind, symbol string) model.ChartView {
	return model.ChartView{
		Title:       title,
		Kind:        kind,
		Placeholder: true,
		Note:        fmt.Sprintf("no data for %s", symbol),
	}
}

// PriceView produces one line of close prices vs. timestamp.
func PriceView(series model.Series) model.ChartView {
	if series.Empty() {
		return placeholder("Closing Price", model.ViewLine, series.Symbol)
	}
	return model.ChartView{
		Title: "Closing Price",
		Kind:  model.ViewLine,
		X:     series.Times(),
		Lines: []model.Line{{Name: "Close", Y: series.Closes()}},
	}
}

// VolumeView produces one bar series of volume vs. timestamp.
func VolumeView(series model.Series) model.ChartView {
	if series.Empty() {
		return placeholder("Trading Volume", model.ViewBar, series.Symbol)
	}
	volumes := make([]float64, len(series.Points))
	for i, p := range series.Points {
		volumes[i] = p.Volume
	}
	return model.ChartView{
		Title: "Trading Volume",
		Kind:  model.ViewBar,
		X:     series.Times(),
		Lines: []model.Line{{Name: "Volume", Y: volumes}},
	}
}

// MovingAverageView overlays the raw close price with two simple moving
// averages. The first window-1 positions of each average are NaN and
// must render as gaps, not zeros.
func MovingAverageView(series model.Series, shortWindow, longWindow int) model.ChartView {
	if series.Empty() {
		return placeholder("Moving Averages", model.ViewOverlay, series.Symbol)
	}
	closes := series.Closes()
	return model.ChartView{
		Title: "Moving Averages",
		Kind:  model.ViewOverlay,
		X:     series.Times(),
		Lines: []model.Line{
			{Name: "Close", Y: closes},
			{Name: fmt.Sprintf("SMA%d", shortWindow), Y: rollingSMA(closes, shortWindow)},
			{Name: fmt.Sprintf("SMA%d", longWindow), Y: rollingSMA(closes, longWindow)},
		},
	}
}

// CandlestickView produces the OHLC quadruple per timestamp.
func CandlestickView(series model.Series) model.ChartView {
	if series.Empty() {
		return placeholder("Candlestick", model.ViewOHLC, series.Symbol)
	}
	candles := make([]model.PricePoint, len(series.Points))
	copy(candles, series.Points)
	return model.ChartView{
		Title:   "Candlestick",
		Kind:    model.ViewOHLC,
		X:       series.Times(),
		Candles: candles,
	}
}

// rollingSMA computes the trailing simple moving average at every index.
// Output length equals input length; positions before window-1 are NaN.
func rollingSMA(prices []float64, window int) []float64 {
	out := make([]float64, len(prices))
	if window <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
