// Package config provides configuration loading and validation for the
// validator service and CLI. Configuration is layered:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Schema sources.
const (
	SchemaSourceEmbedded = "embedded"
	SchemaSourceRegistry = "registry"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Validation ValidationConfig `koanf:"validation"`
	Schema     SchemaConfig     `koanf:"schema"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ReadinessTimeout bounds each dependency check of /health/ready.
	ReadinessTimeout time.Duration `koanf:"readiness_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ValidationConfig tunes the validation pipeline.
type ValidationConfig struct {
	// DefaultVersion is the schema version used when a request names none.
	DefaultVersion string `koanf:"default_version"`
	// MaxUploadBytes caps the size of an uploaded workbook.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
	// ParallelPasses runs the content and entity passes concurrently.
	ParallelPasses bool `koanf:"parallel_passes"`
	// CheckTypes enables the column type check.
	CheckTypes bool `koanf:"check_types"`
}

// SchemaConfig selects where field catalogues come from.
type SchemaConfig struct {
	// Source is SchemaSourceEmbedded or SchemaSourceRegistry.
	Source   string        `koanf:"source"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
	Registry ClientConfig  `koanf:"registry"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`

	// APIKey is sent as X-Api-Key when set. Supply it through
	// APP_SCHEMA_REGISTRY_API_KEY rather than a config file.
	APIKey string `koanf:"api_key"`

	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
