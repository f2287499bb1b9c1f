package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// log. middleware.RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// sensitiveFields are attribute and struct field names masked wherever they
// appear, including inside nested groups and structs.
var sensitiveFields = []string{
	"password",
	"new_password",
	"password_hash",
	"PasswordHash",
	"token",
	"Token",
}

// sensitivePrefixes catch variants such as session_token or session_key.
var sensitivePrefixes = []string{"session_", "secret"}

var (
	// sessionTokenPattern matches hex session tokens and their sha256 keys.
	sessionTokenPattern = regexp.MustCompile(`\b[0-9a-f]{64}\b`)
	// bcryptPattern matches encoded bcrypt hashes.
	bcryptPattern = regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{53}`)
	// bearerPattern matches "Bearer <credential>" in free text.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
)

// newRedactAttr builds the masq ReplaceAttr used by every handler New
// returns. Names are matched first; the regexes cover secrets that end up in
// free-form strings such as error messages.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+3)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(sessionTokenPattern),
		masq.WithRegex(bcryptPattern),
		masq.WithRegex(bearerPattern),
	)
	return masq.New(opts...)
}
