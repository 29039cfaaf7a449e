// Package presenter is the shipped presentation collaborator: it
// renders a published snapshot as a plain-text report. The core has no
// opinion on layout; a GUI shell can replace this without touching the
// orchestrator.
package presenter

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"TickerLens/internal/model"
)

// Console writes snapshot reports to an io.Writer.
type Console struct {
	Out io.Writer
}

// NewConsole creates a console presenter.
func NewConsole(out io.Writer) *Console { return &Console{Out: out} }

// Publish renders one snapshot.
func (c *Console) Publish(snap *model.Snapshot) {
	if _, err := io.WriteString(c.Out, FormatSnapshot(snap)); err != nil {
		log.Printf("[ERROR] write snapshot report: %v", err)
	}
}

// FormatSnapshot formats the full snapshot report.
func FormatSnapshot(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s | %s ===\n", snap.Symbol, snap.TakenAt.Format("2006-01-02 15:04:05")))

	if snap.Diagnostic != "" {
		b.WriteString(fmt.Sprintf("%s\n\n", snap.Diagnostic))
		return b.String()
	}

	b.WriteString(formatView(snap.Price))
	b.WriteString(formatView(snap.Volume))
	b.WriteString(formatView(snap.MovingAverage))
	b.WriteString(formatView(snap.Candlestick))

	if len(snap.Headlines) > 0 {
		b.WriteString("\nHeadlines:\n")
		for _, h := range snap.Headlines {
			b.WriteString(fmt.Sprintf("  [%s %.2f] %s\n", h.Sentiment.Label, h.Sentiment.Score, h.Headline.Text))
			for _, e := range h.Entities {
				b.WriteString(fmt.Sprintf("      %s (%s)\n", e.Text, e.Label))
			}
		}
	}

	if !snap.WordCloud.Empty() {
		b.WriteString(fmt.Sprintf("\nWord cloud: %s, %dx%d, %s encoded\n",
			snap.WordCloud.MIME, snap.WordCloud.Width, snap.WordCloud.Height,
			humanize.Bytes(uint64(len(snap.WordCloud.Base64)))))
	}

	b.WriteString("\n")
	return b.String()
}

func formatView(v model.ChartView) string {
	if v.Placeholder {
		return fmt.Sprintf("%-16s %s\n", v.Title+":", v.Note)
	}
	switch v.Kind {
	case model.ViewBar:
		var total float64
		for _, y := range v.Lines[0].Y {
			total += y
		}
		return fmt.Sprintf("%-16s %d bars, %s shares total\n",
			v.Title+":", len(v.X), humanize.Comma(int64(total)))
	case model.ViewOHLC:
		last := v.Candles[len(v.Candles)-1]
		return fmt.Sprintf("%-16s %d candles, last O=%.2f H=%.2f L=%.2f C=%.2f\n",
			v.Title+":", len(v.Candles), last.Open, last.High, last.Low, last.Close)
	default:
		names := make([]string, len(v.Lines))
		for i, l := range v.Lines {
			names[i] = l.Name
		}
		span := ""
		if len(v.X) > 0 {
			span = fmt.Sprintf(" (%s to %s)", v.X[0].Format(time.DateOnly), v.X[len(v.X)-1].Format(time.DateOnly))
		}
		return fmt.Sprintf("%-16s %d points, lines: %s%s\n",
			v.Title+":", len(v.X), strings.Join(names, ", "), span)
	}
}
