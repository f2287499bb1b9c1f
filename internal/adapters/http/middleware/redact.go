package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/arimodu/shopper/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders returns the request headers as a "headers" log group with
// stable key order. Values of names in logging.SensitiveHeaders, the session
// cookie among them, are replaced; repeated values are comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, key := range keys {
		val := strings.Join(headers[key], ",")
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			val = redacted
		}
		attrs = append(attrs, slog.String(key, val))
	}
	return slog.Group("headers", attrs...)
}
