package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"TickerLens/internal/config"
	"TickerLens/internal/dashboard"
	"TickerLens/internal/headlines"
	"TickerLens/internal/marketdata"
	"TickerLens/internal/presenter"
	"TickerLens/internal/recorder"
	"TickerLens/internal/textanalysis"
	"TickerLens/internal/wordcloud"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerLens starting...")

	// .env is optional
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init market data fetcher
	var fetcher marketdata.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = marketdata.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = marketdata.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init text analysis
	aggregator := textanalysis.NewAggregator(
		textanalysis.NewVaderSentiment(),
		textanalysis.NewProseExtractor(),
	)

	// Init word cloud renderer
	cloud, err := wordcloud.NewRenderer(cfg.WordCloud.Width, cfg.WordCloud.Height, cfg.WordCloud.MaxWords)
	if err != nil {
		log.Fatalf("[FATAL] init word cloud renderer: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init orchestrator
	orch := dashboard.New(
		fetcher,
		headlines.NewTemplateSource(),
		aggregator,
		cloud,
		presenter.NewConsole(os.Stdout),
		rec,
		dashboard.Options{
			Period:      cfg.Dashboard.Period,
			ShortWindow: cfg.Dashboard.ShortWindow,
			LongWindow:  cfg.Dashboard.LongWindow,
			Debounce:    time.Duration(cfg.Dashboard.DebounceMS) * time.Millisecond,
		},
	)
	orch.Start(ctx)

	if cfg.Dashboard.Symbol != "" {
		log.Printf("[INFO] refreshing startup symbol %s", cfg.Dashboard.Symbol)
		go orch.Refresh(cfg.Dashboard.Symbol)
	}

	// Feed symbol changes from stdin; each line is one input change and
	// rapid lines coalesce through the debounce.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			orch.SetSymbol(strings.TrimSpace(scanner.Text()))
		}
	}()

	log.Println("[INFO] TickerLens is running. Type a symbol and press enter; Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TickerLens stopped")
}
