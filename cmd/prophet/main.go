package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"PriceProphet/internal/collector"
	"PriceProphet/internal/config"
	"PriceProphet/internal/forecast"
	"PriceProphet/internal/notifier"
	"PriceProphet/internal/recorder"
	"PriceProphet/internal/report"
	"PriceProphet/internal/resolver"
	"PriceProphet/internal/scheduler"
	"PriceProphet/internal/server"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  prophet <company name>   run one forecast and print the report")
	fmt.Fprintln(os.Stderr, "  prophet serve            run the HTTP API (and cron watchlist if configured)")
	os.Exit(2)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceProphet starting...")

	if len(os.Args) < 2 {
		usage()
	}

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

	// Init market data fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init ticker resolver
	res := resolver.NewGeminiResolver(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Proxy, fetcher)

	// Init recorder
	var rec recorder.Recorder
	switch {
	case cfg.Database.PostgresDSN != "":
		pr, err := recorder.NewPostgresRecorder(cfg.Database.PostgresDSN)
		if err != nil {
			log.Printf("[WARN] init postgres recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = pr
			defer pr.Close()
		}
	case cfg.Database.SQLitePath != "":
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	default:
		rec = recorder.NewNoopRecorder()
	}

	pipeline := forecast.NewPipeline(res, col, rec, cfg)

	if os.Args[1] == "serve" {
		runServe(pipeline, cfg)
		return
	}

	// One-shot run
	company := strings.Join(os.Args[1:], " ")
	rep, err := pipeline.Run(company)
	if err != nil {
		log.Fatalf("[FATAL] forecast failed: %v", err)
	}
	fmt.Println(report.FormatFull(rep))
}

func runServe(pipeline *forecast.Pipeline, cfg *config.Config) {
	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional cron watchlist
	if cfg.Schedule.Cron != "" {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		sched := scheduler.NewScheduler(ctx, pipeline, tn, cfg.Schedule.Watchlist)
		if err := sched.Register(cfg.Schedule.Cron); err != nil {
			log.Fatalf("[FATAL] register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := server.NewServer(pipeline, cfg)
	go func() {
		if err := srv.Run(cfg.Server.Listen); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] PriceProphet is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] PriceProphet stopped")
}
