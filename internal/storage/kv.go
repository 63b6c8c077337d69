package storage

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrKeyExists   = errors.New("key already exists")
	ErrClosed      = errors.New("kv engine closed")
)

// KVEngine defines the interface for embedded key-value storage.
//
// Implementations must be safe for concurrent use.
type KVEngine interface {
	// Get retrieves a value by key.
	// Returns ErrKeyNotFound if key doesn't exist.
	Get(ctx context.Context, key []byte) ([]byte, error)

	// Set stores a key-value pair.
	Set(ctx context.Context, key, value []byte) error

	// SetIfAbsent stores a key-value pair only if the key is absent.
	// Returns ErrKeyExists otherwise.
	SetIfAbsent(ctx context.Context, key, value []byte) error

	// Delete removes a key.
	Delete(ctx context.Context, key []byte) error

	// Scan iterates over keys with a given prefix.
	// Callback returns false to stop iteration.
	Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) bool) error

	// Stats returns storage statistics.
	Stats(ctx context.Context) (*KVStats, error)

	// Close gracefully shuts down the KV engine.
	Close() error
}

// KVStats contains storage engine statistics.
type KVStats struct {
	// TotalKeys is the number of live keys.
	TotalKeys uint64

	// LSMSize is the LSM tree size in bytes.
	LSMSize uint64

	// ValueLogSize is the value log size in bytes.
	ValueLogSize uint64
}

// BadgerConfig contains Badger tuning parameters.
type BadgerConfig struct {
	// CacheSize is the block cache size in bytes.
	// Default: 16MB
	CacheSize int64

	// NumMemtables is the number of memtables.
	// Default: 2
	NumMemtables int

	// DetectConflicts enables transaction conflict detection.
	// Default: true (SetIfAbsent relies on it)
	DetectConflicts bool
}

// DefaultBadgerConfig returns the default Badger configuration.
func DefaultBadgerConfig() BadgerConfig {
	return BadgerConfig{
		CacheSize:       16 << 20, // 16MB
		NumMemtables:    2,
		DetectConflicts: true,
	}
}
