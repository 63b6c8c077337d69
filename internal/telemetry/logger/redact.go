package logger

import (
	"log/slog"
	"strings"
	"unicode"
)

// tokenPrefix marks plaintext session tokens, which are masked wherever
// they appear.
const tokenPrefix = "mhtk_"

// redactedValue replaces values under sensitive keys.
const redactedValue = "***REDACTED***"

// sensitiveKeyWords are matched against whole words of a key, so "author"
// is not mistaken for "auth".
var sensitiveKeyWords = map[string]bool{
	"password":      true,
	"passwd":        true,
	"secret":        true,
	"token":         true,
	"cookie":        true,
	"credential":    true,
	"credentials":   true,
	"auth":          true,
	"authorization": true,
}

func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if strings.HasPrefix(s, tokenPrefix) {
			return slog.String(a.Key, maskToken(s))
		}
		if s != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

// maskToken keeps the prefix and three characters from each end of the body.
func maskToken(s string) string {
	body := s[len(tokenPrefix):]
	if len(body) <= 6 {
		return tokenPrefix + "***"
	}
	return tokenPrefix + body[:3] + "..." + body[len(body)-3:]
}

// RedactString masks s if it is a session token.
func RedactString(s string) string {
	if IsSensitiveValue(s) {
		return maskToken(s)
	}
	return s
}

// IsSensitiveKey reports whether any word of key names a credential.
// Words are split on case changes and non-letters ("X-Auth", "sessionToken").
func IsSensitiveKey(key string) bool {
	for _, w := range keyWords(key) {
		if sensitiveKeyWords[w] {
			return true
		}
	}
	return false
}

// IsSensitiveValue reports whether s is a plaintext session token.
func IsSensitiveValue(s string) bool {
	return strings.HasPrefix(s, tokenPrefix)
}

func keyWords(key string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range key {
		switch {
		case !unicode.IsLetter(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && len(cur) > 0 && unicode.IsLower(cur[len(cur)-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}
