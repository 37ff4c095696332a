package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about, such as the
// schema registry client or the default schema catalogue.
type HealthChecker interface {
	// Name labels the dependency in readiness output, e.g. "schema-registry".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must honour
	// ctx cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the outcome by name;
	// nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
