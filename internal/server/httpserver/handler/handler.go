package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/yndnr/memohalo-go/internal/core/domain"
	"github.com/yndnr/memohalo-go/internal/core/service"
	"github.com/yndnr/memohalo-go/internal/telemetry/logger"
	"github.com/yndnr/memohalo-go/internal/telemetry/metric"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Config holds the dependencies of a Handler.
type Config struct {
	Identities *service.IdentityService
	Sessions   *service.SessionService
	Memos      *service.MemoService
	Cookies    *Cookies

	// MinPasswordLength is enforced on sign-up and sign-in bodies.
	MinPasswordLength int

	// Metrics is optional.
	Metrics *metric.Registry

	// Stats backs GET /ready. Optional.
	Stats metric.StatsFunc

	Logger *slog.Logger
}

// Handler serves the MemoHalo HTTP API.
type Handler struct {
	identities *service.IdentityService
	sessions   *service.SessionService
	memos      *service.MemoService
	cookies    *Cookies
	minPwLen   int
	metrics    *metric.Registry
	stats      metric.StatsFunc
	logger     *slog.Logger
}

// New creates a new Handler.
func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Cookies == nil {
		cfg.Cookies = &Cookies{Name: DefaultCookieName}
	}
	if cfg.MinPasswordLength < 1 {
		cfg.MinPasswordLength = 1
	}
	return &Handler{
		identities: cfg.Identities,
		sessions:   cfg.Sessions,
		memos:      cfg.Memos,
		cookies:    cfg.Cookies,
		minPwLen:   cfg.MinPasswordLength,
		metrics:    cfg.Metrics,
		stats:      cfg.Stats,
		logger:     cfg.Logger,
	}
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	reqID := requestID(r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(NewResponse(reqID, data)); err != nil {
		h.logger.Error("failed to encode response", "request_id", reqID, "error", err)
	}
}

// WriteError writes err as an error envelope. Non-domain errors become
// MH-SYS-5000 and are logged; their text never reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	reqID := requestID(r)

	var de *domain.DomainError
	if !errors.As(err, &de) {
		de = domain.ErrInternalServer
	}
	status := StatusForCode(de.Code)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "request_id", reqID, "code", de.Code, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", de.Code)
	w.WriteHeader(status)

	var details any
	if de.Details != "" {
		details = de.Details
	}
	json.NewEncoder(w).Encode(NewErrorResponse(reqID, de.Code, de.Message, details))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, r, h.logger, err)
}

// StatusForCode maps an error code to its HTTP status. The last segment
// of a code starts with the status (MH-MEMO-4040 is 404); MH-ARG-* codes
// are 400.
func StatusForCode(code string) int {
	if strings.HasPrefix(code, "MH-ARG-") {
		return http.StatusBadRequest
	}
	if i := strings.LastIndex(code, "-"); i >= 0 && len(code)-i-1 >= 3 {
		if status, err := strconv.Atoi(code[i+1 : i+4]); err == nil && status >= 400 && status < 600 {
			return status
		}
	}
	return http.StatusInternalServerError
}

// decode reads a JSON body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrBadRequest.WithDetails("invalid JSON body")
	}
	return nil
}

// pathIndex parses the {index} path value.
func pathIndex(r *http.Request) (int, error) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		// A well-formed integer that overflows int is out of any list's range.
		return 0, domain.ErrInvalidIndex
	}
	if err != nil {
		return 0, domain.ErrInvalidArgument.WithDetails("index must be an integer")
	}
	return index, nil
}

func requestID(r *http.Request) string {
	return logger.RequestIDFromContext(r.Context())
}

func (h *Handler) recordAuth(event string, err error) {
	if h.metrics != nil {
		h.metrics.RecordAuth(event, err)
	}
}

func (h *Handler) recordMemo(op string, err error) {
	if h.metrics != nil {
		h.metrics.RecordMemoOp(op, err)
	}
}

type sessionKey struct{}

// WithSession stores the resolved session in ctx.
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the resolved session, or nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	s, _ := ctx.Value(sessionKey{}).(*domain.Session)
	return s
}

// UsernameFromContext returns the username of the resolved session, or "".
func UsernameFromContext(ctx context.Context) string {
	if s := SessionFromContext(ctx); s != nil {
		return s.Username
	}
	return ""
}
