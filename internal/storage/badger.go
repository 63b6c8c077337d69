package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dgraph-io/badger/v3"
	"github.com/prometheus/client_golang/prometheus"
)

// BadgerEngine implements KVEngine using Badger v3 in in-memory mode.
// Nothing is written to disk.
type BadgerEngine struct {
	db     *badger.DB
	cfg    BadgerConfig
	logger *slog.Logger
	closed atomic.Bool
}

// NewBadgerEngine opens an in-memory Badger database.
func NewBadgerEngine(cfg BadgerConfig, logger *slog.Logger) (*BadgerEngine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = &badgerLogger{logger: logger}
	if cfg.CacheSize > 0 {
		opts.BlockCacheSize = cfg.CacheSize
	}
	if cfg.NumMemtables > 0 {
		opts.NumMemtables = cfg.NumMemtables
	}
	opts.DetectConflicts = cfg.DetectConflicts

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	logger.Info("badger engine started",
		"mode", "in-memory",
		"cache_size", opts.BlockCacheSize)

	return &BadgerEngine{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Get retrieves a value by key.
func (e *BadgerEngine) Get(_ context.Context, key []byte) ([]byte, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	var value []byte
	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores a key-value pair.
func (e *BadgerEngine) Set(_ context.Context, key, value []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}
	return e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// maxConflictRetries bounds SetIfAbsent retries after badger.ErrConflict.
const maxConflictRetries = 3

// SetIfAbsent stores a key-value pair if the key does not exist yet.
//
// The read and write share one transaction. A concurrent writer of the
// same key aborts it with badger.ErrConflict; the transaction is then
// retried and observes the winner's key.
func (e *BadgerEngine) SetIfAbsent(_ context.Context, key, value []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}

	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = e.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			switch {
			case err == nil:
				return ErrKeyExists
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}
			return txn.Set(key, value)
		})
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// Delete removes a key.
func (e *BadgerEngine) Delete(_ context.Context, key []byte) error {
	if e.closed.Load() {
		return ErrClosed
	}
	return e.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Scan iterates over keys with a given prefix.
func (e *BadgerEngine) Scan(_ context.Context, prefix []byte, fn func(key, value []byte) bool) error {
	if e.closed.Load() {
		return ErrClosed
	}
	return e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			if !fn(item.KeyCopy(nil), value) {
				break
			}
		}

		return nil
	})
}

// Stats returns storage statistics.
func (e *BadgerEngine) Stats(_ context.Context) (*KVStats, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	var keys uint64
	err := e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lsm, vlog := e.db.Size()
	return &KVStats{
		TotalKeys:    keys,
		LSMSize:      uint64(lsm),
		ValueLogSize: uint64(vlog),
	}, nil
}

// Close shuts down the Badger engine. It is safe to call more than once.
func (e *BadgerEngine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	e.logger.Info("shutting down badger engine")
	if err := e.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	return nil
}

// RegisterMetrics registers Badger gauges with Prometheus.
//
// This should be called once during initialization.
// Returns the engine for method chaining.
func (e *BadgerEngine) RegisterMetrics(registry prometheus.Registerer) *BadgerEngine {
	stat := func(pick func(*KVStats) uint64) func() float64 {
		return func() float64 {
			stats, err := e.Stats(context.Background())
			if err != nil {
				return 0
			}
			return float64(pick(stats))
		}
	}

	registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "memohalo",
			Subsystem: "badger",
			Name:      "keys",
			Help:      "Number of live keys in the Badger engine",
		}, stat(func(s *KVStats) uint64 { return s.TotalKeys })),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "memohalo",
			Subsystem: "badger",
			Name:      "lsm_size_bytes",
			Help:      "Badger LSM tree size in bytes",
		}, stat(func(s *KVStats) uint64 { return s.LSMSize })),
	)

	return e
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
