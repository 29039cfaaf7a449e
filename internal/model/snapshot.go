package model

import "time"

// ViewKind tells the presentation layer how a ChartView wants to be drawn.
type ViewKind string

const (
	ViewLine    ViewKind = "line"
	ViewBar     ViewKind = "bar"
	ViewOverlay ViewKind = "overlay"
	ViewOHLC    ViewKind = "ohlc"
)

// Line is one named Y sequence aligned to a ChartView's X axis.
// Undefined positions (e.g. the first window-1 points of a moving
// average) are math.NaN and must render as gaps, not zeros.
type Line struct {
	Name string
	Y    []float64
}

// ChartView is a renderer-agnostic chart descriptor: shared X axis,
// named Y sequences, optional OHLC candles, plus display metadata.
// A placeholder view stands in when the underlying series is empty.
type ChartView struct {
	Title       string
	Kind        ViewKind
	X           []time.Time
	Lines       []Line
	Candles     []PricePoint
	Placeholder bool
	Note        string // "no data for <symbol>" on placeholders
}

// ImageArtifact is an encoded raster image. The zero value is the
// defined empty placeholder published when there is nothing to draw.
type ImageArtifact struct {
	MIME   string
	Base64 string
	Width  int
	Height int
}

// Empty reports whether the artifact is the placeholder.
func (a ImageArtifact) Empty() bool { return a.Base64 == "" }

// Snapshot is the atomic output bundle for one symbol. Every field is
// derived from the same fetch and the same headline batch; the
// orchestrator never publishes a snapshot mixing stale and fresh views.
type Snapshot struct {
	ID      string
	Symbol  string
	TakenAt time.Time

	Price         ChartView
	Volume        ChartView
	MovingAverage ChartView
	Candlestick   ChartView

	Headlines []AnnotatedHeadline
	WordCloud ImageArtifact

	// Diagnostic carries the human-readable reason when the snapshot is
	// degraded (no data, upstream unreachable). Empty on a full refresh.
	Diagnostic string
}
