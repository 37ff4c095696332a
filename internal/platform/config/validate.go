package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Validation.validate(),
		c.Schema.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.ReadinessTimeout <= 0 {
		errs = append(errs, errors.New("server.readiness_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of: %s; got %q",
			strings.Join(logging.Levels, ", "), l.Level))
	}

	switch l.Format {
	case logging.FormatJSON, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (v *ValidationConfig) validate() error {
	var errs []error

	if v.DefaultVersion == "" {
		errs = append(errs, errors.New("validation.default_version must not be empty"))
	}
	if v.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("validation.max_upload_bytes must be positive, got %d", v.MaxUploadBytes))
	}

	return errors.Join(errs...)
}

func (s *SchemaConfig) validate() error {
	switch s.Source {
	case SchemaSourceEmbedded:
		return nil
	case SchemaSourceRegistry:
		return s.Registry.validate("schema.registry")
	default:
		return fmt.Errorf("schema.source must be one of: %s, %s; got %q",
			SchemaSourceEmbedded, SchemaSourceRegistry, s.Source)
	}
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", prefix))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
