package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	s, _ := domain.NewSession("alice", "mhth_1")
	s.LastActive = 1
	if err := store.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup, _ := domain.NewSession("bob", "mhth_1")
	if err := store.Create(ctx, dup); !errors.Is(err, domain.ErrTokenConflict) {
		t.Fatalf("Create duplicate err = %v, want ErrTokenConflict", err)
	}

	touched, err := store.Touch(ctx, "mhth_1")
	if err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if touched.Username != "alice" || touched.LastActive <= 1 {
		t.Errorf("Touch() = %+v", touched)
	}

	again, err := store.Touch(ctx, "mhth_1")
	if err != nil {
		t.Fatalf("second Touch: %v", err)
	}
	if again.LastActive < touched.LastActive {
		t.Error("Touch() did not persist LastActive")
	}

	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}

	if err := store.Delete(ctx, "mhth_1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Touch(ctx, "mhth_1"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("Touch after Delete err = %v", err)
	}
	if err := store.Delete(ctx, "mhth_1"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("second Delete err = %v", err)
	}
}

func TestSessionStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	s, _ := domain.NewSession("alice", "mhth_1")
	_ = store.Create(ctx, s)
	s.Username = "mallory"

	got, _ := store.Touch(ctx, "mhth_1")
	if got.Username != "alice" {
		t.Error("store shares the session passed to Create")
	}
	got.Username = "mallory"
	again, _ := store.Touch(ctx, "mhth_1")
	if again.Username != "alice" {
		t.Error("store shares the session returned by Touch")
	}
}
