package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/yndnr/memohalo-go/internal/core/service"
	"github.com/yndnr/memohalo-go/internal/server/httpserver/handler"
	"github.com/yndnr/memohalo-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	Handler  *handler.Handler
	Sessions *service.SessionService
	Cookies  *handler.Cookies

	// Metrics enables /metrics and request metrics when set.
	Metrics *metric.Registry

	// SignInRateLimit is requests/second per client IP; 0 disables.
	SignInRateLimit float64
	SignInBurst     int

	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	h := cfg.Handler
	identity := Identity(cfg.Sessions, cfg.Cookies, log)

	withIdentity := func(fn http.HandlerFunc) http.Handler {
		return Chain(fn, identity)
	}

	var signIn http.Handler = http.HandlerFunc(h.SignIn)
	if cfg.SignInRateLimit > 0 {
		signIn = NewRateLimiter(cfg.SignInRateLimit, cfg.SignInBurst).Middleware(log)(signIn)
	}

	mux := http.NewServeMux()

	// Health endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	// User endpoints
	mux.HandleFunc("POST /user/sign-up", h.SignUp)
	mux.Handle("POST /user/sign-in", signIn)
	mux.Handle("POST /user/sign-out", withIdentity(h.SignOut))
	mux.Handle("GET /user/profile", withIdentity(h.Profile))

	// Memo endpoints
	mux.HandleFunc("GET /memo", h.ListMemos)
	mux.Handle("PUT /memo", withIdentity(h.CreateMemo))
	mux.Handle("GET /memo/{index}", withIdentity(h.GetMemo))
	mux.Handle("PATCH /memo/{index}", withIdentity(h.UpdateMemo))
	mux.Handle("DELETE /memo/{index}", withIdentity(h.DeleteMemo))

	// Order: RequestID -> Recover -> Audit -> Metrics -> mux
	middlewares := []Middleware{RequestID(), Recover(log), Audit(log)}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}
	return Chain(mux, middlewares...)
}
