package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifySession(&cfg.Session); err != nil {
		return err
	}
	if err := verifySecurity(&cfg.Security); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server.http.addr: %w", err)
	}
	if cfg.HTTP.ReadHeaderTimeout <= 0 {
		return errors.New("server.http.read_header_timeout must be positive")
	}

	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http.tls_cert_file and tls_key_file must be set together")
	}
	for _, path := range []string{cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("tls file %s: %w", path, err)
		}
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	switch cfg.IdentityEngine {
	case "memory", "badger":
	default:
		return fmt.Errorf("storage.identity_engine must be memory or badger, got %q", cfg.IdentityEngine)
	}
	if cfg.BadgerCacheSize < 0 {
		return errors.New("storage.badger_cache_size must not be negative")
	}
	return nil
}

func verifySession(cfg *SessionSection) error {
	if cfg.CookieName == "" {
		return errors.New("session.cookie_name is required")
	}
	if strings.ContainsAny(cfg.CookieName, " ;,=\t\r\n") {
		return fmt.Errorf("session.cookie_name %q contains invalid characters", cfg.CookieName)
	}
	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	if cfg.MinPasswordLength < 1 {
		return errors.New("security.min_password_length must be at least 1")
	}
	if cfg.SignInRateLimit < 0 {
		return errors.New("security.sign_in_rate_limit must not be negative")
	}
	if cfg.SignInRateLimit > 0 && cfg.SignInBurst < 1 {
		return errors.New("security.sign_in_burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.Format)
	}
	return nil
}
