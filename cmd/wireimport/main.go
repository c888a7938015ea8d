// Package main imports headlines from a wire RSS/Atom feed into the breaking-news ticker.
// Usage: wireimport -url https://wire.example.com/latest.rss [-priority N] [-max N] [-timeout D]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"herald/internal/config"
	"herald/internal/infra/adapter/persistence/mongodb"
	"herald/internal/infra/db"
	"herald/internal/infra/feed"
	"herald/internal/observability/logging"
	bnUC "herald/internal/usecase/breakingnews"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		feedURL  string
		priority int
		maxItems int
		timeout  time.Duration
	)
	flag.StringVar(&feedURL, "url", "", "Wire feed URL (RSS or Atom)")
	flag.IntVar(&priority, "priority", 0, "Priority of imported items (0 means default)")
	flag.IntVar(&maxItems, "max", bnUC.DefaultImportMax, "Maximum number of items to add")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "Overall timeout")
	flag.Parse()

	if feedURL == "" {
		fmt.Fprintln(os.Stderr, "Error: -url is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: wireimport -url https://wire.example.com/latest.rss [-priority N] [-max N]")
		return 2
	}

	_ = godotenv.Load()
	logger := logging.NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	storeCfg, err := config.LoadStoreConfig()
	if err != nil {
		logger.Error("failed to load store configuration", slog.Any("error", err))
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := db.Open(ctx, storeCfg)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		return 1
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	svc := &bnUC.Service{
		Repo: mongodb.NewBreakingNewsRepo(store.Collection(db.BreakingNewsCollection), store.OpTimeout()),
		Feed: feed.NewWireParser(&http.Client{Timeout: 30 * time.Second}),
	}

	res, err := svc.ImportFeed(ctx, feedURL, priority, maxItems)
	if err != nil {
		logger.Error("import failed", slog.String("url", feedURL), slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Imported %d item(s), skipped %d, failed %d\n", len(res.Added), res.Skipped, len(res.Failed))
	for _, it := range res.Added {
		fmt.Printf("  [%d] %s\n", it.Priority, it.Text)
	}
	for _, f := range res.Failed {
		fmt.Printf("  [failed] %s: %s\n", f.Text, f.Message)
	}
	if len(res.Failed) > 0 {
		return 1
	}
	return 0
}
