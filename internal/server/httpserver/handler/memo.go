package handler

import (
	"net/http"

	"github.com/yndnr/memohalo-go/internal/core/domain"
)

// author returns the caller's username or writes 401.
func (h *Handler) author(w http.ResponseWriter, r *http.Request) (string, bool) {
	username := UsernameFromContext(r.Context())
	if username == "" {
		h.writeError(w, r, domain.ErrUnauthenticated)
		return "", false
	}
	return username, true
}

// readMemoData decodes a MemoRequest. Data is required on create and update.
func readMemoData(w http.ResponseWriter, r *http.Request) (string, error) {
	var req MemoRequest
	if err := decode(w, r, &req); err != nil {
		return "", err
	}
	if req.Data == nil {
		return "", domain.ErrInvalidMemo.WithDetails("data is required")
	}
	return *req.Data, nil
}

// ListMemos handles GET /memo.
func (h *Handler) ListMemos(w http.ResponseWriter, r *http.Request) {
	memos, err := h.memos.List(r.Context())
	h.recordMemo("list", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, memos)
}

// CreateMemo handles PUT /memo.
func (h *Handler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	author, ok := h.author(w, r)
	if !ok {
		return
	}

	data, err := readMemoData(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	memos, err := h.memos.Create(r.Context(), author, data)
	h.recordMemo("create", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, memos)
}

// GetMemo handles GET /memo/{index}.
func (h *Handler) GetMemo(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	memo, err := h.memos.Get(r.Context(), index)
	h.recordMemo("get", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, memo)
}

// UpdateMemo handles PATCH /memo/{index}. The author becomes the caller.
func (h *Handler) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	author, ok := h.author(w, r)
	if !ok {
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := readMemoData(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	memo, err := h.memos.Update(r.Context(), author, index, data)
	h.recordMemo("update", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, memo)
}

// DeleteMemo handles DELETE /memo/{index}.
func (h *Handler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	memos, err := h.memos.Delete(r.Context(), index)
	h.recordMemo("delete", err)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, memos)
}
