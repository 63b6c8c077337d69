package config

import (
	"fmt"

	"github.com/yndnr/memohalo-go/internal/infra/confloader"
)

// Load reads defaults, then the file at path (if any), then MEMOHALO_
// environment variables, and verifies the result.
func Load(path string) (*ServerConfig, error) {
	cfg := Default()

	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
