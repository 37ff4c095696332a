package logging

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders holds the lowercase names of HTTP headers that carry
// credentials. The access log masks them and so does the redactor.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// sensitiveFields are attribute keys whose values are always masked.
var sensitiveFields = []string{"password", "secret", "token", "api_key", "apikey"}

// sensitivePrefixes mask key families such as "secret_key" or "api_key_registry".
var sensitivePrefixes = []string{"secret_", "api_key_"}

// sensitiveValues catch credentials logged under an innocent key: bearer
// tokens, JWTs and inline "api_key=..." pairs.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key)\s*[:=]\s*\S+`),
}

// redactor returns the ReplaceAttr hook shared by every logger from New.
// Header names are registered both lowercase and canonical since the access
// log keys attributes by canonical header name.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, 2*len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for name := range SensitiveHeaders {
		opts = append(opts,
			masq.WithFieldName(name),
			masq.WithFieldName(http.CanonicalHeaderKey(name)),
		)
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
