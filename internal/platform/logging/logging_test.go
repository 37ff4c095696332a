package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{logging.FormatJSON, `"msg":"workbook validated"`},
		{logging.FormatText, `msg="workbook validated"`},
		{"xml", `"msg":"workbook validated"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("workbook validated")
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level      string
		emit       slog.Level
		wantOutput bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DEBUG", slog.LevelDebug, true},
		{"info", slog.LevelDebug, false},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelInfo, false},
		{"error", slog.LevelWarn, false},
		{"verbose", slog.LevelDebug, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.emit.String(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New(tt.level, "json", &buf).Log(context.Background(), tt.emit, "adding errors")
			if got := buf.Len() > 0; got != tt.wantOutput {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.wantOutput, buf.String())
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debug, info bytes.Buffer
	logging.New("debug", "json", &debug).Info("validating structure")
	logging.New("info", "json", &info).Info("validating structure")

	if !strings.Contains(debug.String(), `"source"`) {
		t.Errorf("debug output = %q, want a source attribute", debug.String())
	}
	if strings.Contains(info.String(), `"source"`) {
		t.Errorf("info output = %q, want no source attribute", info.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v", name, got, err, want)
		}
	}

	for _, name := range []string{"", "verbose", "warn+2", "INFO-4"} {
		if _, err := logging.ParseLevel(name); err == nil {
			t.Errorf("ParseLevel(%q) error = nil, want an error", name)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on a bare context should return slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := first.With(slog.String("run_id", "r-1"))

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext did not return the most recently stored logger")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization header", slog.String("authorization", "Bearer reg-token-1"), "reg-token-1"},
		{"canonical header", slog.String("X-Api-Key", "k-998877"), "k-998877"},
		{"registry api key", slog.String("api_key", "k-112233"), "k-112233"},
		{"api key prefix", slog.String("api_key_registry", "k-445566"), "k-445566"},
		{"password", slog.String("password", "hunter2"), "hunter2"},
		{"bearer in value", slog.String("detail", "sent Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"inline api key", slog.String("url", "https://registry.local/schemas?api_key=k-778899"), "k-778899"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("calling registry", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output leaks %q: %s", tt.secret, out)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("workbook validated",
		slog.String("workbook", "strains_2024"),
		slog.String("schema_version", "20200601"),
		slog.String("path", "/api/v1/validations"),
	)

	out := buf.String()
	for _, want := range []string{"strains_2024", "20200601", "/api/v1/validations"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}
