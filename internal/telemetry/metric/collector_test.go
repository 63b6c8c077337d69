package metric

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	c := NewCollector(func(context.Context) (StoreStats, error) {
		return StoreStats{Identities: 2, Sessions: 1, Memos: 3}, nil
	})

	expected := `
# HELP memohalo_store_identities Registered identities
# TYPE memohalo_store_identities gauge
memohalo_store_identities 2
# HELP memohalo_store_memos Memos in the shared list
# TYPE memohalo_store_memos gauge
memohalo_store_memos 3
# HELP memohalo_store_sessions_active Live sessions
# TYPE memohalo_store_sessions_active gauge
memohalo_store_sessions_active 1
# HELP memohalo_store_up Whether the last stats read succeeded
# TYPE memohalo_store_up gauge
memohalo_store_up 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

func TestCollector_Error(t *testing.T) {
	c := NewCollector(func(context.Context) (StoreStats, error) {
		return StoreStats{}, errors.New("unavailable")
	})

	if n := testutil.CollectAndCount(c); n != 1 {
		t.Errorf("collected %d metrics on error, want only the up gauge", n)
	}
	if got := testutil.ToFloat64(c); got != 0 {
		t.Errorf("up = %v, want 0", got)
	}
}

func TestCollector_Registers(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewCollector(func(context.Context) (StoreStats, error) {
		return StoreStats{Memos: 1}, nil
	}))

	if body := scrape(t, r); !strings.Contains(body, "memohalo_store_memos 1") {
		t.Error("registered collector missing from /metrics")
	}
}
