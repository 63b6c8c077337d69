package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// MemoStore is the single shared, ordered memo sequence.
//
// A memo's address is its index. Remove shifts every later memo down by
// one, so addresses are not stable across deletions.
type MemoStore struct {
	mu    sync.RWMutex
	memos []domain.Memo
	seed  bool
}

// MemoOption configures the MemoStore.
type MemoOption func(*MemoStore)

// WithSeed controls whether the store starts with the seed memo.
func WithSeed(seed bool) MemoOption {
	return func(s *MemoStore) {
		s.seed = seed
	}
}

// NewMemoStore creates a memo store holding the seed memo.
func NewMemoStore(opts ...MemoOption) *MemoStore {
	s := &MemoStore{seed: true}
	for _, opt := range opts {
		opt(s)
	}

	s.memos = make([]domain.Memo, 0, 8)
	if s.seed {
		s.memos = append(s.memos, domain.SeedMemo())
	}
	return s
}

// checkIndex must be called with mu held.
func (s *MemoStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.memos) {
		return domain.ErrInvalidIndex.WithDetails(fmt.Sprintf("index %d, length %d", index, len(s.memos)))
	}
	return nil
}

// Add appends memo and returns a snapshot of all memos.
func (s *MemoStore) Add(_ context.Context, memo domain.Memo) ([]domain.Memo, error) {
	if err := memo.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.memos = append(s.memos, memo)
	return domain.CloneMemos(s.memos), nil
}

// Get returns the memo at index.
func (s *MemoStore) Get(_ context.Context, index int) (domain.Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkIndex(index); err != nil {
		return domain.Memo{}, err
	}
	return s.memos[index], nil
}

// Update merges patch into the memo at index and returns the updated memo.
// Nothing changes when validation fails.
func (s *MemoStore) Update(_ context.Context, index int, patch domain.MemoPatch) (domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return domain.Memo{}, err
	}

	merged, err := patch.Apply(s.memos[index])
	if err != nil {
		return domain.Memo{}, err
	}
	s.memos[index] = merged
	return merged, nil
}

// Remove deletes the memo at index and returns the remaining memos.
func (s *MemoStore) Remove(_ context.Context, index int) ([]domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return nil, err
	}

	copy(s.memos[index:], s.memos[index+1:])
	s.memos[len(s.memos)-1] = domain.Memo{}
	s.memos = s.memos[:len(s.memos)-1]
	return domain.CloneMemos(s.memos), nil
}

// List returns a snapshot of all memos.
func (s *MemoStore) List(_ context.Context) ([]domain.Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneMemos(s.memos), nil
}

// Clear removes every memo and returns the empty snapshot.
// It is not exposed over HTTP.
func (s *MemoStore) Clear(_ context.Context) []domain.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memos = s.memos[:0:0]
	return []domain.Memo{}
}

// Len returns the number of memos.
func (s *MemoStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memos), nil
}
