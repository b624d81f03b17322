package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockPulse/internal/config"
	"StockPulse/internal/marketclock"
	"StockPulse/internal/provider"
	"StockPulse/internal/recorder"
	"StockPulse/internal/scheduler"
	"StockPulse/internal/service"
	"StockPulse/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockPulse starting...")

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
	if cfg.Provider.APIKey == "" {
		log.Println("[WARN] no API key configured, all data will be synthetic")
	}

	// Init provider client
	limiter := provider.NewRateLimiter(time.Duration(cfg.RateLimit.MinIntervalMs)*time.Millisecond, cfg.RateLimit.DailyCap)
	seed := cfg.FallbackSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallback := provider.NewFallbackGenerator(seed)
	client := provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy, limiter, fallback)

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

	// Init service
	svc := service.New(client,
		store.NewSymbolStore(),
		store.NewSearchCache(time.Duration(cfg.Search.CacheTTLSeconds)*time.Second),
		rec,
		cfg.Provider.Interval,
		cfg.Provider.OutputSize,
	)

	// Init scheduler
	sched := scheduler.New(ctx, svc, marketclock.NewClock())
	if err := sched.Register(cfg.Refresh.QuoteCron, cfg.Refresh.MarketCron); err != nil {
		log.Fatalf("[FATAL] register refresh ticks: %v", err)
	}
	svc.AttachScheduler(sched)

	// Load the default symbol before ticking starts
	if cfg.DefaultSymbol != "" {
		if record, err := svc.SelectSymbol(ctx, cfg.DefaultSymbol); err != nil {
			log.Printf("[ERROR] select default symbol: %v", err)
		} else {
			log.Printf("[INFO] selected %s: price=%.2f realtime=%v", record.Symbol, record.Quote.Price, record.IsRealTimeData)
		}
	}

	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] StockPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockPulse stopped")
}
