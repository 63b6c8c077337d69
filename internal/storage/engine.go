package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yndnr/memohalo-go/internal/core/service"
	"github.com/yndnr/memohalo-go/internal/storage/memory"
)

// Identity engine names.
const (
	IdentityEngineMemory = "memory"
	IdentityEngineBadger = "badger"
)

// Config configures the storage engine.
type Config struct {
	// IdentityEngine selects the identity store ("memory" or "badger").
	// Default: "memory"
	IdentityEngine string

	// Badger configures the in-memory Badger engine when selected.
	Badger BadgerConfig

	// SeedMemo starts the memo list with the seed memo.
	SeedMemo bool

	// Logger is the structured logger.
	Logger *slog.Logger
}

// DefaultConfig returns the default storage configuration.
func DefaultConfig() Config {
	return Config{
		IdentityEngine: IdentityEngineMemory,
		Badger:         DefaultBadgerConfig(),
		SeedMemo:       true,
		Logger:         slog.Default(),
	}
}

// Engine owns every store for the process lifetime.
type Engine struct {
	Identities service.IdentityRepository
	Sessions   service.SessionRepository
	Memos      service.MemoRepository

	// KV is the Badger engine when the identity engine is "badger".
	KV *BadgerEngine

	logger *slog.Logger
}

// New creates the configured stores.
func New(cfg Config) (*Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	e := &Engine{
		Sessions: memory.NewSessionStore(),
		Memos:    memory.NewMemoStore(memory.WithSeed(cfg.SeedMemo)),
		logger:   cfg.Logger,
	}

	switch cfg.IdentityEngine {
	case "", IdentityEngineMemory:
		e.Identities = memory.NewIdentityStore()
	case IdentityEngineBadger:
		kv, err := NewBadgerEngine(cfg.Badger, cfg.Logger.With("component", "badger"))
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		e.KV = kv
		e.Identities = NewKVIdentityStore(kv)
	default:
		return nil, fmt.Errorf("storage: unknown identity engine %q", cfg.IdentityEngine)
	}

	e.logger.Info("storage engine ready",
		"identity_engine", identityEngineName(cfg.IdentityEngine),
		"seed_memo", cfg.SeedMemo)

	return e, nil
}

func identityEngineName(name string) string {
	if name == "" {
		return IdentityEngineMemory
	}
	return name
}

// Stats is a point-in-time view of store sizes.
type Stats struct {
	Identities int `json:"identities"`
	Sessions   int `json:"sessions"`
	Memos      int `json:"memos"`
}

// Stats returns the current store sizes.
func (e *Engine) Stats(ctx context.Context) (*Stats, error) {
	identities, err := e.Identities.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count identities: %w", err)
	}
	sessions, err := e.Sessions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	memos, err := e.Memos.Len(ctx)
	if err != nil {
		return nil, fmt.Errorf("count memos: %w", err)
	}

	return &Stats{
		Identities: identities,
		Sessions:   sessions,
		Memos:      memos,
	}, nil
}

// Close releases the Badger engine if one was opened.
func (e *Engine) Close() error {
	if e.KV == nil {
		return nil
	}
	return e.KV.Close()
}
