package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/memohalo-go/internal/core/domain"
	"github.com/yndnr/memohalo-go/internal/infra/buildinfo"
)

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	h.writeJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   info.Version,
		Commit:    info.Commit,
		GoVersion: info.GoVersion,
		Time:      time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready. It reports store sizes and fails with 503
// when the stores cannot be read.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := ReadyResponse{Status: "ready", Version: buildinfo.Get().Version}

	if h.stats != nil {
		stats, err := h.stats(r.Context())
		if err != nil {
			h.logger.Error("readiness check failed", "request_id", requestID(r), "error", err)
			w.Header().Set("X-Error-Code", domain.ErrStorageError.Code)
			h.writeJSON(w, r, http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Version: resp.Version})
			return
		}
		resp.Identities = stats.Identities
		resp.Sessions = stats.Sessions
		resp.Memos = stats.Memos
	}

	h.writeJSON(w, r, http.StatusOK, resp)
}
