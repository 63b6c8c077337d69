package service

import (
	"context"
	"errors"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

var errBackend = errors.New("backend down")

// mockIdentityRepo is a mock implementation of IdentityRepository for testing.
type mockIdentityRepo struct {
	identities map[string]*domain.Identity
	err        error
}

func newMockIdentityRepo() *mockIdentityRepo {
	return &mockIdentityRepo{identities: make(map[string]*domain.Identity)}
}

func (m *mockIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	if m.err != nil {
		return m.err
	}
	if _, exists := m.identities[identity.Username]; exists {
		return domain.ErrIdentityExists
	}
	m.identities[identity.Username] = identity.Clone()
	return nil
}

func (m *mockIdentityRepo) Get(_ context.Context, username string) (*domain.Identity, error) {
	if m.err != nil {
		return nil, m.err
	}
	identity, ok := m.identities[username]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return identity.Clone(), nil
}

func (m *mockIdentityRepo) Count(_ context.Context) (int, error) {
	return len(m.identities), m.err
}

// mockSessionRepo is a mock implementation of SessionRepository for testing.
type mockSessionRepo struct {
	sessions map[string]*domain.Session
	creates  int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *domain.Session) error {
	m.creates++
	if _, exists := m.sessions[session.TokenHash]; exists {
		return domain.ErrTokenConflict
	}
	m.sessions[session.TokenHash] = session.Clone()
	return nil
}

func (m *mockSessionRepo) Touch(_ context.Context, tokenHash string) (*domain.Session, error) {
	session, ok := m.sessions[tokenHash]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	session.Touch()
	return session.Clone(), nil
}

func (m *mockSessionRepo) Delete(_ context.Context, tokenHash string) error {
	if _, ok := m.sessions[tokenHash]; !ok {
		return domain.ErrUnauthenticated
	}
	delete(m.sessions, tokenHash)
	return nil
}

func (m *mockSessionRepo) Count(_ context.Context) (int, error) {
	return len(m.sessions), nil
}

// mockMemoRepo is a slice-backed MemoRepository for testing.
type mockMemoRepo struct {
	memos []domain.Memo
	err   error
}

func (m *mockMemoRepo) check(index int) error {
	if index < 0 || index >= len(m.memos) {
		return domain.ErrInvalidIndex
	}
	return nil
}

func (m *mockMemoRepo) List(_ context.Context) ([]domain.Memo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.CloneMemos(m.memos), nil
}

func (m *mockMemoRepo) Add(_ context.Context, memo domain.Memo) ([]domain.Memo, error) {
	if err := memo.Validate(); err != nil {
		return nil, err
	}
	m.memos = append(m.memos, memo)
	return domain.CloneMemos(m.memos), nil
}

func (m *mockMemoRepo) Get(_ context.Context, index int) (domain.Memo, error) {
	if err := m.check(index); err != nil {
		return domain.Memo{}, err
	}
	return m.memos[index], nil
}

func (m *mockMemoRepo) Update(_ context.Context, index int, patch domain.MemoPatch) (domain.Memo, error) {
	if err := m.check(index); err != nil {
		return domain.Memo{}, err
	}
	merged, err := patch.Apply(m.memos[index])
	if err != nil {
		return domain.Memo{}, err
	}
	m.memos[index] = merged
	return merged, nil
}

func (m *mockMemoRepo) Remove(_ context.Context, index int) ([]domain.Memo, error) {
	if err := m.check(index); err != nil {
		return nil, err
	}
	m.memos = append(m.memos[:index], m.memos[index+1:]...)
	return domain.CloneMemos(m.memos), nil
}

func (m *mockMemoRepo) Len(_ context.Context) (int, error) {
	return len(m.memos), m.err
}
