package config

import "time"

// Config is the root server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Translator TranslatorConfig `yaml:"translator"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Auth       AuthConfig       `yaml:"auth"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// TranslatorConfig selects and configures the translation provider.
type TranslatorConfig struct {
	Provider       string        `yaml:"provider"        env:"TRANSLATOR_PROVIDER"        env-default:"stub"`
	APIKey         string        `yaml:"api_key"         env:"ANTHROPIC_API_KEY"`
	Model          string        `yaml:"model"           env:"TRANSLATOR_MODEL"           env-default:"claude-haiku-4-5"`
	MaxTokens      int64         `yaml:"max_tokens"      env:"TRANSLATOR_MAX_TOKENS"      env-default:"4096"`
	SourceLanguage string        `yaml:"source_language" env:"TRANSLATOR_SOURCE_LANGUAGE" env-default:"German"`
	TargetLanguage string        `yaml:"target_language" env:"TRANSLATOR_TARGET_LANGUAGE" env-default:"English"`
	Timeout        time.Duration `yaml:"timeout"         env:"TRANSLATOR_TIMEOUT"         env-default:"90s"`
}

// DictionaryConfig configures the fallback dictionary used when a word has no
// stored definitions.
type DictionaryConfig struct {
	FallbackEnabled bool   `yaml:"fallback_enabled" env:"DICT_FALLBACK_ENABLED" env-default:"false"`
	FallbackURL     string `yaml:"fallback_url"     env:"DICT_FALLBACK_URL"     env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	MaxMeanings     int    `yaml:"max_meanings"     env:"DICT_MAX_MEANINGS"     env-default:"3"`
}

// AuthConfig holds API token settings. An empty secret leaves write endpoints open.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"bireader"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"720h"`
}

// Enabled reports whether write endpoints require a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// RateLimitConfig limits translate requests per client IP.
type RateLimitConfig struct {
	TranslatePerMinute int           `yaml:"translate_per_minute" env:"RATE_LIMIT_TRANSLATE_PER_MINUTE" env-default:"10"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReaderConfig configures the terminal reader. It is read from the
// environment only.
type ReaderConfig struct {
	BaseURL   string        `env:"READER_BASE_URL"   env-default:"http://localhost:8080"`
	Token     string        `env:"READER_TOKEN"`
	Timeout   time.Duration `env:"READER_TIMEOUT"    env-default:"0s"`
	PopupGap  int           `env:"READER_POPUP_GAP"  env-default:"1"`
	LogFile   string        `env:"READER_LOG_FILE"`
	LogLevel  string        `env:"READER_LOG_LEVEL"  env-default:"debug"`
	WrapWidth int           `env:"READER_WRAP_WIDTH" env-default:"0"`
}
