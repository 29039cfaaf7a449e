// Package dashboard contains the reactive core: one mutable input (the
// current symbol) drives independent derivation stages whose outputs
// are published together as one atomic snapshot.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"TickerLens/internal/chart"
	"TickerLens/internal/headlines"
	"TickerLens/internal/marketdata"
	"TickerLens/internal/model"
	"TickerLens/internal/recorder"
)

// State names the orchestrator's position in the refresh cycle.
type State string

const (
	StateIdle     State = "IDLE"
	StateFetching State = "FETCHING"
	StateEmpty    State = "EMPTY"
	StateReady    State = "READY"
)

// Publisher receives each completed snapshot. Publication is atomic:
// the presentation layer never sees a partially refreshed view set.
type Publisher interface {
	Publish(snap *model.Snapshot)
}

// Analyzer annotates a headline batch and harvests its word multiset.
type Analyzer interface {
	Analyze(items []model.Headline) ([]model.AnnotatedHeadline, model.WordFreq)
}

// CloudRenderer turns a word multiset into an image artifact.
type CloudRenderer interface {
	Render(words model.WordFreq) model.ImageArtifact
}

// Options carry the presentation defaults the pipeline runs with.
type Options struct {
	Period      string
	ShortWindow int
	LongWindow  int
	Debounce    time.Duration
}

// Orchestrator owns the current snapshot. It is the single writer; all
// other components only ever read immutable snapshots it hands out.
type Orchestrator struct {
	fetcher   marketdata.Fetcher
	corpus    headlines.Source
	analyzer  Analyzer
	cloud     CloudRenderer
	publisher Publisher
	recorder  recorder.Recorder
	opts      Options

	inputs chan string
	seq    atomic.Uint64 // id of the most recently dispatched request

	// pubMu serializes publication: snapshot install and delivery to
	// the Publisher happen as one step, in install order.
	pubMu sync.Mutex

	mu       sync.RWMutex
	state    State
	snapshot *model.Snapshot
}

// New creates an Orchestrator.
func New(fetcher marketdata.Fetcher, corpus headlines.Source, analyzer Analyzer,
	cloud CloudRenderer, publisher Publisher, rec recorder.Recorder, opts Options) *Orchestrator {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Orchestrator{
		fetcher:   fetcher,
		corpus:    corpus,
		analyzer:  analyzer,
		cloud:     cloud,
		publisher: publisher,
		recorder:  rec,
		opts:      opts,
		inputs:    make(chan string, 64),
		state:     StateIdle,
	}
}

// Start runs the debounce loop until the context is cancelled.
func (o *Orchestrator) Start(ctx context.Context) {
	go o.loop(ctx)
}

// SetSymbol feeds one input change. Rapid changes coalesce: only the
// value that survives the quiet period triggers a fetch.
func (o *Orchestrator) SetSymbol(symbol string) {
	if symbol == "" {
		return
	}
	o.inputs <- symbol
}

// Refresh runs one full pipeline cycle synchronously, bypassing the
// debounce. Used for the startup symbol and manual re-runs.
func (o *Orchestrator) Refresh(symbol string) {
	if symbol == "" {
		return
	}
	o.refresh(o.seq.Add(1), symbol)
}

// Snapshot returns the most recently published snapshot, or nil before
// the first publication. Callers must treat it as read-only.
func (o *Orchestrator) Snapshot() *model.Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snapshot
}

// State returns the current cycle state.
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

func (o *Orchestrator) loop(ctx context.Context) {
	timer := time.NewTimer(o.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var pending string
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-o.inputs:
			pending = s
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(o.opts.Debounce)
		case <-timer.C:
			if pending == "" {
				continue
			}
			symbol := pending
			pending = ""
			go o.refresh(o.seq.Add(1), symbol)
		}
	}
}

// refresh runs the whole pipeline for one request. No work here touches
// shared state until publish, so in-flight requests never interfere.
func (o *Orchestrator) refresh(id uint64, symbol string) {
	o.setState(id, StateFetching)
	log.Printf("[INFO] fetching %s via %s", symbol, o.fetcher.Name())

	series, err := o.fetcher.FetchSeries(symbol, o.opts.Period)
	if err != nil {
		log.Printf("[ERROR] fetch %s: %v", symbol, err)
		o.setState(id, StateEmpty)
		o.publish(id, o.degraded(symbol, fmt.Sprintf("data source unavailable: %v", err)))
		return
	}

	if series.Empty() {
		// Short-circuit: no extractor or renderer work on empty data.
		log.Printf("[INFO] no data for %s, publishing placeholder snapshot", symbol)
		o.setState(id, StateEmpty)
		o.publish(id, o.degraded(symbol, fmt.Sprintf("no data for %s", symbol)))
		return
	}

	// The four view builds are independent and borrow the series
	// read-only; each writes its own result slot.
	var price, volume, ma, candle model.ChartView
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); price = chart.PriceView(series) }()
	go func() { defer wg.Done(); volume = chart.VolumeView(series) }()
	go func() {
		defer wg.Done()
		ma = chart.MovingAverageView(series, o.opts.ShortWindow, o.opts.LongWindow)
	}()
	go func() { defer wg.Done(); candle = chart.CandlestickView(series) }()

	items := o.corpus.ForSymbol(symbol)
	annotated, words := o.analyzer.Analyze(items)
	cloud := o.cloud.Render(words)
	wg.Wait()

	o.setState(id, StateReady)
	o.publish(id, &model.Snapshot{
		ID:            uuid.NewString(),
		Symbol:        symbol,
		TakenAt:       time.Now(),
		Price:         price,
		Volume:        volume,
		MovingAverage: ma,
		Candlestick:   candle,
		Headlines:     annotated,
		WordCloud:     cloud,
	})
}

// degraded synthesizes the placeholder snapshot for empty or
// unreachable data: four placeholder views, no headline list, no cloud.
func (o *Orchestrator) degraded(symbol, diagnostic string) *model.Snapshot {
	empty := model.Series{Symbol: symbol}
	return &model.Snapshot{
		ID:            uuid.NewString(),
		Symbol:        symbol,
		TakenAt:       time.Now(),
		Price:         chart.PriceView(empty),
		Volume:        chart.VolumeView(empty),
		MovingAverage: chart.MovingAverageView(empty, o.opts.ShortWindow, o.opts.LongWindow),
		Candlestick:   chart.CandlestickView(empty),
		Diagnostic:    diagnostic,
	}
}

// publish installs and delivers the snapshot unless a newer request
// has been dispatched since this one (last-write-wins by request order,
// not by completion order). Install and delivery share one critical
// section, so the presentation layer sees snapshots strictly in
// install order and never two deliveries at once.
func (o *Orchestrator) publish(id uint64, snap *model.Snapshot) {
	o.pubMu.Lock()
	defer o.pubMu.Unlock()

	o.mu.Lock()
	if id != o.seq.Load() {
		// A superseded request owns no part of the shared cell; the
		// current request's state stands untouched.
		o.mu.Unlock()
		log.Printf("[INFO] discarding superseded snapshot for %s", snap.Symbol)
		return
	}
	o.snapshot = snap
	o.state = StateIdle
	o.mu.Unlock()

	if o.publisher != nil {
		o.publisher.Publish(snap)
	}
	if err := o.recorder.RecordSnapshot(snap); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}

// setState records a cycle transition for one request. Only the most
// recently dispatched request may write the shared cell, so a slow
// superseded refresh cannot leave a dirty state behind.
func (o *Orchestrator) setState(id uint64, s State) {
	o.mu.Lock()
	if id == o.seq.Load() {
		o.state = s
	}
	o.mu.Unlock()
}
