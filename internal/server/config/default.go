package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr          = "127.0.0.1:5080"
	DefaultReadHeaderTimeout = 5 * time.Second

	DefaultIdentityEngine  = "memory"
	DefaultBadgerCacheSize = 16 << 20

	DefaultCookieName = "token"

	DefaultMinPasswordLength = 8
	DefaultSignInRateLimit   = 5
	DefaultSignInBurst       = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:              DefaultHTTPAddr,
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
			},
		},
		Storage: StorageSection{
			IdentityEngine:  DefaultIdentityEngine,
			BadgerCacheSize: DefaultBadgerCacheSize,
		},
		Session: SessionSection{
			CookieName: DefaultCookieName,
		},
		Security: SecuritySection{
			MinPasswordLength: DefaultMinPasswordLength,
			SignInRateLimit:   DefaultSignInRateLimit,
			SignInBurst:       DefaultSignInBurst,
		},
		Memo: MemoSection{
			Seed: true,
		},
		Metrics: MetricsSection{
			Enabled: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
