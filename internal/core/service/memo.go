// Package service provides domain services for MemoHalo.
//
// MemoService fronts the shared memo list. Author is always the caller's
// resolved username; no ownership check is made on read, update or delete.
package service

import (
	"context"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// MemoRepository defines the storage interface for the shared memo list.
// Every method returns copies; callers never hold the live sequence.
type MemoRepository interface {
	// List returns all memos in order.
	List(ctx context.Context) ([]domain.Memo, error)

	// Add appends memo and returns the full list.
	Add(ctx context.Context, memo domain.Memo) ([]domain.Memo, error)

	// Get returns the memo at index.
	Get(ctx context.Context, index int) (domain.Memo, error)

	// Update merges patch into the memo at index and returns the result.
	Update(ctx context.Context, index int, patch domain.MemoPatch) (domain.Memo, error)

	// Remove deletes the memo at index, shifting later memos down by one,
	// and returns the remaining list.
	Remove(ctx context.Context, index int) ([]domain.Memo, error)

	// Len returns the number of memos.
	Len(ctx context.Context) (int, error)
}

// MemoService handles memo operations.
type MemoService struct {
	repo MemoRepository
}

// NewMemoService creates a new MemoService.
func NewMemoService(repo MemoRepository) *MemoService {
	return &MemoService{repo: repo}
}

// List returns every memo.
func (s *MemoService) List(ctx context.Context) ([]domain.Memo, error) {
	memos, err := s.repo.List(ctx)
	return memos, storageErr(err)
}

// Create appends a memo written by author and returns the full list.
func (s *MemoService) Create(ctx context.Context, author, data string) ([]domain.Memo, error) {
	memos, err := s.repo.Add(ctx, domain.Memo{Data: data, Author: author})
	return memos, storageErr(err)
}

// Get returns the memo at index.
func (s *MemoService) Get(ctx context.Context, index int) (domain.Memo, error) {
	memo, err := s.repo.Get(ctx, index)
	return memo, storageErr(err)
}

// Update replaces the data of the memo at index. The author becomes the
// caller.
func (s *MemoService) Update(ctx context.Context, author string, index int, data string) (domain.Memo, error) {
	patch := domain.MemoPatch{Data: &data, Author: &author}
	memo, err := s.repo.Update(ctx, index, patch)
	return memo, storageErr(err)
}

// Delete removes the memo at index and returns the remaining list.
func (s *MemoService) Delete(ctx context.Context, index int) ([]domain.Memo, error) {
	memos, err := s.repo.Remove(ctx, index)
	return memos, storageErr(err)
}

// Count returns the number of memos.
func (s *MemoService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Len(ctx)
	return n, storageErr(err)
}
