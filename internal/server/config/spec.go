package config

import "time"

// ServerConfig is the root configuration for memohalo-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Storage  StorageSection  `koanf:"storage"`
	Session  SessionSection  `koanf:"session"`
	Security SecuritySection `koanf:"security"`
	Memo     MemoSection     `koanf:"memo"`
	Metrics  MetricsSection  `koanf:"metrics"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr              string        `koanf:"addr"`
	TLSCertFile       string        `koanf:"tls_cert_file"`
	TLSKeyFile        string        `koanf:"tls_key_file"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
}

// TLSEnabled reports whether both TLS files are configured.
func (c HTTPConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// StorageSection configures the in-process stores.
// Nothing is persisted; the badger engine runs in in-memory mode.
type StorageSection struct {
	IdentityEngine  string `koanf:"identity_engine"`
	BadgerCacheSize int64  `koanf:"badger_cache_size"`
}

// SessionSection configures the session cookie.
type SessionSection struct {
	CookieName   string `koanf:"cookie_name"`
	CookieSecret string `koanf:"cookie_secret"`
	CookieSecure bool   `koanf:"cookie_secure"`
}

// SecuritySection configures credential rules and sign-in throttling.
type SecuritySection struct {
	MinPasswordLength int     `koanf:"min_password_length"`
	SignInRateLimit   float64 `koanf:"sign_in_rate_limit"` // per client IP, requests/second; 0 disables
	SignInBurst       int     `koanf:"sign_in_burst"`
}

// MemoSection configures the memo list.
type MemoSection struct {
	Seed bool `koanf:"seed"`
}

// MetricsSection configures the /metrics endpoint.
type MetricsSection struct {
	Enabled bool `koanf:"enabled"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
