package app

import (
	"log/slog"
	"testing"

	"github.com/heartmarshall/bireader/internal/adapter/provider/llm"
	"github.com/heartmarshall/bireader/internal/adapter/provider/translate"
	"github.com/heartmarshall/bireader/internal/config"
)

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	if _, ok := newTranslator(config.TranslatorConfig{Provider: config.ProviderStub}, logger).(*translate.Stub); !ok {
		t.Error("expected stub translator")
	}

	cfg := config.TranslatorConfig{Provider: config.ProviderAnthropic, APIKey: "key", Model: "m", MaxTokens: 10}
	if _, ok := newTranslator(cfg, logger).(*llm.Translator); !ok {
		t.Error("expected anthropic translator")
	}
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	if got, want := UserAgent("reader"), "bireader-reader/"+Version; got != want {
		t.Errorf("UserAgent = %q, want %q", got, want)
	}
}
