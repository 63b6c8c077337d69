// Package config holds the memohalo-server settings: the ServerConfig
// tree, its defaults, and the checks run before the server starts.
//
// Values are layered by internal/infra/confloader (defaults, then a
// YAML file, then MEMOHALO_* environment variables). Use Sanitize before
// logging a config; it hides the cookie secret.
package config
