package config

const (
	defaultServerPort = 8080

	defaultMaxUploadBytes = 32 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"server.readiness_timeout": "2s",

		"log.level":  "info",
		"log.format": "json",

		"validation.default_version":  "20200601",
		"validation.max_upload_bytes": defaultMaxUploadBytes,
		"validation.parallel_passes":  false,
		"validation.check_types":      false,

		"schema.source":    SchemaSourceEmbedded,
		"schema.cache_ttl": "10m",

		"schema.registry.base_url":                        "http://localhost:8081",
		"schema.registry.timeout":                         "10s",
		"schema.registry.api_key":                         "",
		"schema.registry.retry.max_attempts":              defaultRetryMaxAttempts,
		"schema.registry.retry.initial_interval":          "100ms",
		"schema.registry.retry.max_interval":              "5s",
		"schema.registry.retry.multiplier":                defaultRetryMultiplier,
		"schema.registry.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"schema.registry.circuit_breaker.timeout":         "30s",
		"schema.registry.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"schema.registry.rate_limit.requests_per_second":  0,
		"schema.registry.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "mirri-validator",
	}
}
