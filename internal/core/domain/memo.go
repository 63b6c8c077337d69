package domain

// Seed memo present in every freshly constructed memo store.
const (
	SeedMemoData   = "Moonhalo"
	SeedMemoAuthor = "saltyaom"
)

// Memo is a piece of text attributed to an author.
//
// Memos have no identity of their own; they are addressed by their
// position in the shared sequence, and that position shifts when an
// earlier memo is removed.
type Memo struct {
	Data   string `json:"data" yaml:"data"`
	Author string `json:"author" yaml:"author"`
}

// SeedMemo returns the memo a new store starts with.
func SeedMemo() Memo {
	return Memo{Data: SeedMemoData, Author: SeedMemoAuthor}
}

// Validate returns ErrInvalidMemo when a field is empty.
func (m Memo) Validate() error {
	switch {
	case m.Data == "":
		return ErrInvalidMemo.WithDetails("data is required")
	case m.Author == "":
		return ErrInvalidMemo.WithDetails("author is required")
	}
	return nil
}

// MemoPatch is a partial update. Nil fields are left unchanged.
type MemoPatch struct {
	Data   *string `json:"data,omitempty"`
	Author *string `json:"author,omitempty"`
}

// IsEmpty reports whether the patch supplies no field.
func (p MemoPatch) IsEmpty() bool {
	return p.Data == nil && p.Author == nil
}

// Apply merges the patch into m and validates the result.
// m is returned unchanged alongside any error.
func (p MemoPatch) Apply(m Memo) (Memo, error) {
	if p.IsEmpty() {
		return m, ErrInvalidMemo.WithDetails("update supplies no field")
	}

	merged := m
	if p.Data != nil {
		merged.Data = *p.Data
	}
	if p.Author != nil {
		merged.Author = *p.Author
	}
	if err := merged.Validate(); err != nil {
		return m, err
	}
	return merged, nil
}

// CloneMemos returns a copy of memos that shares no backing array.
// The result is never nil.
func CloneMemos(memos []Memo) []Memo {
	out := make([]Memo, len(memos))
	copy(out, memos)
	return out
}
