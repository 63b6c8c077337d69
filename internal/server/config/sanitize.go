package config

import "fmt"

// Sanitize returns a copy of cfg that is safe to log.
// The cookie secret is replaced by its length so operators can still tell
// whether one is configured.
func Sanitize(cfg *ServerConfig) *ServerConfig {
	out := *cfg
	out.Session.CookieSecret = redactSecret(cfg.Session.CookieSecret)
	return &out
}

func redactSecret(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("[redacted %d bytes]", len(s))
}
