package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Translator providers.
const (
	ProviderStub      = "stub"
	ProviderAnthropic = "anthropic"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Translator.validate(); err != nil {
		return fmt.Errorf("translator: %w", err)
	}

	if c.Dictionary.FallbackEnabled {
		if _, err := url.ParseRequestURI(c.Dictionary.FallbackURL); err != nil {
			return fmt.Errorf("dictionary.fallback_url: %w", err)
		}
	}
	if c.Dictionary.MaxMeanings <= 0 {
		return fmt.Errorf("dictionary.max_meanings must be > 0 (got %d)", c.Dictionary.MaxMeanings)
	}

	if c.RateLimit.TranslatePerMinute < 0 {
		return fmt.Errorf("rate_limit.translate_per_minute must be >= 0 (got %d)", c.RateLimit.TranslatePerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (t *TranslatorConfig) validate() error {
	switch t.Provider {
	case ProviderStub:
	case ProviderAnthropic:
		if t.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", t.Provider)
		}
		if t.Model == "" {
			return fmt.Errorf("model is required for provider %q", t.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", t.Provider)
	}
	if t.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", t.MaxTokens)
	}
	if strings.TrimSpace(t.TargetLanguage) == "" {
		return fmt.Errorf("target_language is required")
	}
	return nil
}

// Validate checks the reader configuration.
func (c *ReaderConfig) Validate() error {
	u, err := url.ParseRequestURI(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: unsupported scheme %q", u.Scheme)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", c.Timeout)
	}
	if c.PopupGap < 0 {
		return fmt.Errorf("popup_gap must be >= 0 (got %d)", c.PopupGap)
	}
	return nil
}
