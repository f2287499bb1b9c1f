package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/arimodu/shopper/internal/platform/config"
	"github.com/arimodu/shopper/internal/platform/logging"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cfg        config.LogConfig
		emit       func(*slog.Logger)
		wantEmpty  bool
		wantSubstr []string
		wantAbsent []string
	}{
		{
			name:       "json info",
			cfg:        config.LogConfig{Level: "info", Format: "json"},
			emit:       func(l *slog.Logger) { l.Info("list created") },
			wantSubstr: []string{`"level":"INFO"`, `"msg":"list created"`},
			wantAbsent: []string{`"source"`},
		},
		{
			name:       "text info",
			cfg:        config.LogConfig{Level: "info", Format: "text"},
			emit:       func(l *slog.Logger) { l.Info("list created") },
			wantSubstr: []string{"level=INFO", `msg="list created"`},
		},
		{
			name:       "unknown format falls back to json",
			cfg:        config.LogConfig{Level: "info", Format: "xml"},
			emit:       func(l *slog.Logger) { l.Info("x") },
			wantSubstr: []string{`"level":"INFO"`},
		},
		{
			name:       "debug adds source",
			cfg:        config.LogConfig{Level: "debug", Format: "json"},
			emit:       func(l *slog.Logger) { l.Debug("resolved session") },
			wantSubstr: []string{`"source"`, "resolved session"},
		},
		{
			name:       "level is case-insensitive",
			cfg:        config.LogConfig{Level: "DEBUG", Format: "json"},
			emit:       func(l *slog.Logger) { l.Debug("kept") },
			wantSubstr: []string{"kept"},
		},
		{
			name:      "info drops debug",
			cfg:       config.LogConfig{Level: "info", Format: "json"},
			emit:      func(l *slog.Logger) { l.Debug("dropped") },
			wantEmpty: true,
		},
		{
			name:      "error drops warn",
			cfg:       config.LogConfig{Level: "error", Format: "json"},
			emit:      func(l *slog.Logger) { l.Warn("dropped") },
			wantEmpty: true,
		},
		{
			name:      "unknown level falls back to info",
			cfg:       config.LogConfig{Level: "verbose", Format: "json"},
			emit:      func(l *slog.Logger) { l.Debug("dropped") },
			wantEmpty: true,
		},
		{
			name: "offset level",
			cfg:  config.LogConfig{Level: "warn+4", Format: "json"},
			emit: func(l *slog.Logger) {
				l.Warn("dropped")
				l.Error("kept")
			},
			wantSubstr: []string{"kept"},
			wantAbsent: []string{"dropped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.emit(logging.New(tt.cfg, &buf))
			out := buf.String()

			if tt.wantEmpty && out != "" {
				t.Errorf("output = %q, want nothing", out)
			}
			for _, want := range tt.wantSubstr {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want %s", out, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(out, absent) {
					t.Errorf("output = %q, want no %s", out, absent)
				}
			}
		})
	}
}

// --- Context tests ---

func TestFromContext_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	ctx := logging.WithLogger(context.Background(), logger)
	got := logging.FromContext(ctx)

	if got != logger {
		t.Error("FromContext returned different logger than the one stored with WithLogger")
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	t.Parallel()

	got := logging.FromContext(context.Background())

	if got != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}
}

func TestWithLogger_OverwritesPrevious(t *testing.T) {
	t.Parallel()

	var buf1, buf2 bytes.Buffer
	logger1 := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf1)
	logger2 := logging.New(config.LogConfig{Level: "debug", Format: "json"}, &buf2)

	ctx := logging.WithLogger(context.Background(), logger1)
	ctx = logging.WithLogger(ctx, logger2)

	got := logging.FromContext(ctx)
	if got != logger2 {
		t.Error("FromContext returned first logger, want second (overwritten) logger")
	}
}

// --- Redaction tests ---

func TestNew_DoesNotRedactNonSensitiveFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("event",
		slog.String("user_id", "usr-123"),
		slog.String("path", "/api/v1/list/create"),
	)

	out := buf.String()
	if !strings.Contains(out, "usr-123") {
		t.Error("log output missing user_id, non-sensitive field should not be redacted")
	}
	if !strings.Contains(out, "/api/v1/list/create") {
		t.Error("log output missing path, non-sensitive field should not be redacted")
	}
}

func TestNew_RedactsSessionSecrets(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ab", 32)
	hash := "$2a$12$" + strings.Repeat("R9h/cIPz0gi.URNNX3kh2O", 3)[:53]
	tests := []struct {
		name string
		attr slog.Attr
		raw  string
	}{
		{name: "authorization header", attr: slog.String("authorization", "Bearer supersecret-token"), raw: "supersecret-token"},
		{name: "password field", attr: slog.String("password", "hunter2"), raw: "hunter2"},
		{name: "bearer in free text", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), raw: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "password hash field", attr: slog.String("password_hash", "$2a$10$abcdefghij"), raw: "$2a$10$abcdefghij"},
		{name: "bcrypt hash in error text", attr: slog.String("error", "compare failed for "+hash), raw: hash},
		{name: "session prefix", attr: slog.String("session_key", "opaque-value"), raw: "opaque-value"},
		{name: "raw hex token", attr: slog.String("note", "cookie was "+token), raw: token},
		{name: "set-cookie header", attr: slog.String("set-cookie", "shopper_session=xyz"), raw: "shopper_session=xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

			logger.Info("event", tt.attr)

			if strings.Contains(buf.String(), tt.raw) {
				t.Errorf("log output = %s, want %q redacted", buf.String(), tt.raw)
			}
			if !strings.Contains(buf.String(), "[REDACTED]") {
				t.Errorf("log output = %s, want a [REDACTED] marker", buf.String())
			}
		})
	}
}

func TestNew_RedactsPasswordHashInStruct(t *testing.T) {
	t.Parallel()

	type account struct {
		ID           string
		PasswordHash string
	}

	var buf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("loaded", slog.Any("user", account{ID: "u-1", PasswordHash: "bcrypt-secret"}))

	out := buf.String()
	if strings.Contains(out, "bcrypt-secret") {
		t.Error("log output contains the password hash, want it redacted")
	}
	if !strings.Contains(out, "u-1") {
		t.Error("log output missing the user id")
	}
}
