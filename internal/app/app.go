package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bireader/internal/adapter/postgres"
	definitionrepo "github.com/heartmarshall/bireader/internal/adapter/postgres/definition"
	translationrepo "github.com/heartmarshall/bireader/internal/adapter/postgres/translation"
	"github.com/heartmarshall/bireader/internal/provider"
	"github.com/heartmarshall/bireader/internal/adapter/provider/article"
	"github.com/heartmarshall/bireader/internal/adapter/provider/freedict"
	"github.com/heartmarshall/bireader/internal/adapter/provider/llm"
	"github.com/heartmarshall/bireader/internal/adapter/provider/translate"
	"github.com/heartmarshall/bireader/internal/auth"
	"github.com/heartmarshall/bireader/internal/config"
	"github.com/heartmarshall/bireader/internal/service/definition"
	"github.com/heartmarshall/bireader/internal/service/translation"
	"github.com/heartmarshall/bireader/internal/transport/middleware"
	"github.com/heartmarshall/bireader/internal/transport/rest"
)

type translator interface {
	Translate(ctx context.Context, text string) (*provider.TranslationResult, error)
}

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations, wires services and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("translator", cfg.Translator.Provider),
		slog.Bool("auth", cfg.Auth.Enabled()),
	)

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, pool, limiter, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newHandler(cfg *config.Config, pool *pgxpool.Pool, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	translations := translationrepo.New(pool)
	definitions := definitionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	translationSvc := translation.NewService(
		logger,
		translations,
		definitions,
		newTranslator(cfg.Translator, logger),
		article.NewProvider(logger),
		txManager,
		cfg.Translator.TargetLanguage,
	)
	definitionSvc := newDefinitionService(cfg.Dictionary, definitions, logger)

	routerCfg := rest.RouterConfig{
		Translations: rest.NewTranslationHandler(translationSvc, logger),
		Definitions:  rest.NewDefinitionHandler(definitionSvc, logger),
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
			"database": rest.PingFunc(pool.Ping),
		}),
		Batcher:            definitionSvc,
		Limiter:            limiter,
		TranslatePerMinute: cfg.RateLimit.TranslatePerMinute,
		CORS:               cfg.CORS,
		Logger:             logger,
	}
	if cfg.Auth.Enabled() {
		routerCfg.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	}

	return rest.NewRouter(routerCfg)
}

func newTranslator(cfg config.TranslatorConfig, logger *slog.Logger) translator {
	if cfg.Provider == config.ProviderAnthropic {
		return llm.NewTranslator(cfg, logger)
	}
	return translate.NewStub()
}

func newDefinitionService(cfg config.DictionaryConfig, definitions *definitionrepo.Repo, logger *slog.Logger) *definition.Service {
	if !cfg.FallbackEnabled {
		return definition.NewService(logger, definitions, nil)
	}
	fallback := freedict.NewProviderWithURL(cfg.FallbackURL, logger).WithMaxMeanings(cfg.MaxMeanings)
	return definition.NewService(logger, definitions, fallback)
}
