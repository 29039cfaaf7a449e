// Package wordcloud rasterizes a word-frequency multiset into an
// encoded PNG artifact.
package wordcloud

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"sort"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"TickerLens/internal/model"
)

const (
	minFontSize = 14.0
	maxFontSize = 72.0
	// placement attempts per word before it is skipped
	maxAttempts = 300
)

// palette cycles across placed words.
var palette = [][3]float64{
	{0.13, 0.35, 0.65},
	{0.80, 0.33, 0.10},
	{0.16, 0.50, 0.25},
	{0.55, 0.20, 0.55},
	{0.75, 0.60, 0.10},
}

// Renderer draws word clouds onto a fixed-size canvas. Layout is
// pseudo-random but seeded from the multiset itself, so the same input
// yields the same artifact.
type Renderer struct {
	Width    int
	Height   int
	MaxWords int
	font     *truetype.Font
}

// NewRenderer parses the bundled typeface and returns a Renderer.
func NewRenderer(width, height, maxWords int) (*Renderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Renderer{Width: width, Height: height, MaxWords: maxWords, font: f}, nil
}

type placed struct {
	x, y, w, h float64
}

func overlaps(a placed, boxes []placed) bool {
	for _, b := range boxes {
		if a.x < b.x+b.w && a.x+a.w > b.x && a.y < b.y+b.h && a.y+a.h > b.y {
			return true
		}
	}
	return false
}

// Render encodes the multiset as a base64 PNG. An empty multiset (and
// any internal draw failure) yields the empty placeholder artifact,
// never an error: a degenerate word set must not blank the dashboard.
func (r *Renderer) Render(words model.WordFreq) model.ImageArtifact {
	if len(words) == 0 {
		return model.ImageArtifact{}
	}

	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(words))
	maxCount := 0
	for w, c := range words {
		ranked = append(ranked, wc{w, c})
		if c > maxCount {
			maxCount = c
		}
	}
	// Deterministic order: frequency desc, then alphabetical.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})
	if r.MaxWords > 0 && len(ranked) > r.MaxWords {
		ranked = ranked[:r.MaxWords]
	}

	// Seed from the ranked words so layout is stable per multiset.
	var seed int64
	for _, e := range ranked {
		for _, ch := range e.word {
			seed = seed*31 + int64(ch)
		}
		seed += int64(e.count)
	}
	rng := rand.New(rand.NewSource(seed))

	dc := gg.NewContext(r.Width, r.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	var boxes []placed
	for i, e := range ranked {
		size := minFontSize
		if maxCount > 1 {
			size += (maxFontSize - minFontSize) * float64(e.count-1) / float64(maxCount-1)
		}
		face := truetype.NewFace(r.font, &truetype.Options{Size: size})
		dc.SetFontFace(face)
		w, h := dc.MeasureString(e.word)
		if w >= float64(r.Width) || h >= float64(r.Height) {
			continue
		}

		for attempt := 0; attempt < maxAttempts; attempt++ {
			x := rng.Float64() * (float64(r.Width) - w)
			y := rng.Float64() * (float64(r.Height) - h)
			box := placed{x: x, y: y, w: w, h: h}
			if overlaps(box, boxes) {
				continue
			}
			c := palette[i%len(palette)]
			dc.SetRGB(c[0], c[1], c[2])
			dc.DrawStringAnchored(e.word, x+w/2, y+h/2, 0.5, 0.5)
			boxes = append(boxes, box)
			break
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		log.Printf("[WARN] word cloud encode failed: %v, using empty artifact", err)
		return model.ImageArtifact{}
	}
	return model.ImageArtifact{
		MIME:   "image/png",
		Base64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  r.Width,
		Height: r.Height,
	}
}
