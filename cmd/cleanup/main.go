// Command cleanup removes translations, with their word definitions, older
// than the given number of days. It is intended to be invoked by an external
// cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/bireader/internal/adapter/postgres"
	"github.com/heartmarshall/bireader/internal/adapter/postgres/translation"
	"github.com/heartmarshall/bireader/internal/app"
	"github.com/heartmarshall/bireader/internal/config"
)

func main() {
	days := flag.Int("days", 90, "delete translations created more than this many days ago")
	flag.Parse()

	if *days <= 0 {
		log.Fatal("days must be positive")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -*days)

	deleted, err := translation.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
