// Command reader is the terminal client for the bireader API.
//
// Logs go to READER_LOG_FILE since the terminal is owned by the UI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/bireader/internal/app"
	"github.com/heartmarshall/bireader/internal/client"
	"github.com/heartmarshall/bireader/internal/config"
	"github.com/heartmarshall/bireader/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reader: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.LoadReader()
	if err != nil {
		return err
	}

	logger, closer, err := app.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithTimeout(cfg.Timeout),
		client.WithUserAgent(app.UserAgent("reader")),
	}
	if cfg.Token != "" {
		opts = append(opts, client.WithToken(cfg.Token))
	}
	api := client.New(cfg.BaseURL, opts...)

	logger.Info("reader starting",
		slog.String("version", app.BuildVersion()),
		slog.String("base_url", cfg.BaseURL),
	)

	model := tui.New(tui.Config{
		API:       api,
		Logger:    logger,
		PopupGap:  cfg.PopupGap,
		WrapWidth: cfg.WrapWidth,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
