// Package middleware provides the inbound HTTP pipeline of the validation
// service. The server installs it as
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware
