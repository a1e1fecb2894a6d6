package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bireader/internal/config"
	"github.com/heartmarshall/bireader/internal/transport/dataloader"
	"github.com/heartmarshall/bireader/internal/transport/middleware"
)

type tokenValidator interface {
	Validate(token string) (string, error)
}

type definitionBatcher interface {
	LookupMany(ctx context.Context, words []string) (map[string][]string, error)
}

// RouterConfig collects the handlers and policies mounted by NewRouter.
type RouterConfig struct {
	Translations *TranslationHandler
	Definitions  *DefinitionHandler
	Health       *HealthHandler

	// Batcher backs the per-request definition loaders.
	Batcher definitionBatcher

	// Tokens guards mutating routes. Nil leaves them open.
	Tokens tokenValidator

	// Limiter throttles translate routes. Nil disables throttling.
	Limiter            *middleware.RateLimiter
	TranslatePerMinute int

	CORS   config.CORSConfig
	Logger *slog.Logger
}

// NewRouter builds the HTTP handler serving the API and health probes.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	write := middleware.When(cfg.Tokens != nil, middleware.RequireToken(cfg.Tokens))
	translate := write
	if cfg.Limiter != nil {
		translate = middleware.Chain(write, cfg.Limiter.Limit(cfg.TranslatePerMinute))
	}
	loaders := dataloader.Middleware(cfg.Batcher)

	th := cfg.Translations
	mux.HandleFunc("GET /api/translations", th.List)
	mux.HandleFunc("GET /api/translations/{id}", th.Get)
	mux.Handle("GET /api/translations/{id}/interleaved", loaders(http.HandlerFunc(th.Interleaved)))
	mux.Handle("DELETE /api/translations/{id}", write(http.HandlerFunc(th.Delete)))
	mux.Handle("POST /api/newtranslation", translate(http.HandlerFunc(th.Create)))
	mux.Handle("POST /api/newtranslation/url", translate(http.HandlerFunc(th.ImportURL)))

	mux.HandleFunc("GET /api/definitions/{word}", cfg.Definitions.Lookup)

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
