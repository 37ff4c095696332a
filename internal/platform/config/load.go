package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one configuration source, applied in order.
type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

func defaultsLayer() layer {
	return layer{name: "defaults", provider: confmap.Provider(defaults(), ".")}
}

func fileLayer(path string) layer {
	return layer{name: path, provider: file.Provider(path), parser: yaml.Parser()}
}

// Load reads configuration for profile. Later layers override earlier ones:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables
//
// Environment variables are matched against the keys already loaded, so
// field names containing underscores resolve correctly:
//
//	APP_SERVER_READ_TIMEOUT                 -> server.read_timeout
//	APP_VALIDATION_CHECK_TYPES              -> validation.check_types
//	APP_SCHEMA_REGISTRY_RETRY_MAX_ATTEMPTS  -> schema.registry.retry.max_attempts
//	APP_SCHEMA_REGISTRY_API_KEY             -> schema.registry.api_key
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	return build(
		defaultsLayer(),
		fileLayer(filepath.Join(o.configDir, "base.yaml")),
		fileLayer(filepath.Join(o.configDir, profile+".yaml")),
	)
}

// Default builds a configuration from the built-in defaults and APP_
// environment variables. The CLI uses it since it ships without config
// files.
func Default() (*Config, error) {
	return build(defaultsLayer())
}

func build(layers ...layer) (*Config, error) {
	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envTransform maps APP_SCHEMA_CACHE_TTL to schema.cache_ttl when that key
// is known, and falls back to replacing every underscore with a dot.
func envTransform(keys []string) func(key, value string) (string, any) {
	known := make(map[string]string, len(keys))
	for _, k := range keys {
		known[strings.ReplaceAll(k, ".", "_")] = k
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if k, ok := known[key]; ok {
			return k, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

// validateProfile keeps the profile name from escaping the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile %q must not contain path separators", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must not contain path traversal", profile)
	default:
		return nil
	}
}
