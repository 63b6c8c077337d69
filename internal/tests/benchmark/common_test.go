package benchmark

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/memohalo-go/internal/core/domain"
	"github.com/yndnr/memohalo-go/internal/core/service"
	"github.com/yndnr/memohalo-go/internal/storage/memory"
)

// ListSizes defines the memo list sizes for benchmarking.
var ListSizes = []int{100, 1000, 10000}

// SessionCounts defines the live session counts for benchmarking.
var SessionCounts = []int{1000, 10000, 50000}

// prefillMemos fills a store with count memos.
func prefillMemos(ctx context.Context, store *memory.MemoStore, count int) {
	for i := 0; i < count; i++ {
		store.Add(ctx, domain.Memo{Data: fmt.Sprintf("memo %d", i), Author: fmt.Sprintf("user-%d", i%100)})
	}
}

// prefillSessions signs in count times and returns the issued tokens.
func prefillSessions(b *testing.B, ctx context.Context, svc *service.SessionService, count int) []string {
	b.Helper()
	identity := &domain.Identity{Username: "bench"}

	tokens := make([]string, count)
	for i := range tokens {
		resp, err := svc.Create(ctx, identity)
		if err != nil {
			b.Fatalf("Create failed: %v", err)
		}
		tokens[i] = resp.Token
	}
	return tokens
}

// reportMemory reports heap usage after a benchmark.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.HeapAlloc)/1024/1024, prefix+"_heap_MB")
}

// runWithSizes runs benchFn once per size as a sub-benchmark.
func runWithSizes(b *testing.B, sizes []int, benchFn func(b *testing.B, size int)) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("n_%d", size), func(b *testing.B) {
			benchFn(b, size)
		})
	}
}
