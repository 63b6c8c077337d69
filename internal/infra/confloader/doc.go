// Package confloader provides the configuration loading mechanism.
//
// It layers koanf sources over a pre-filled target struct:
//
//  1. Default values (already set on the target)
//  2. Configuration file (YAML)
//  3. Environment variables (MEMOHALO_ prefix)
//  4. Explicit maps (tests, flags)
//
// Later sources override earlier ones. A Watcher reports writes to the
// configuration file so callers can re-read it at runtime.
package confloader
