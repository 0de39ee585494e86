package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bankpanel-backend/internal/config"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, []string, error)
}

type metricsRecorder interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// RouterDeps collects everything NewRouter wires into the mux.
type RouterDeps struct {
	Health  *HealthHandler
	Account *AccountHandler
	Clients *ClientHandler

	Tokens  tokenValidator
	CORS    config.CORSConfig
	Limiter *middleware.RateLimiter
	// AccountPerMinute limits /api/account/* per client IP. Zero disables it.
	AccountPerMinute int

	// Recorder and MetricsHandler are optional.
	Recorder       metricsRecorder
	MetricsHandler http.Handler
}

// NewRouter builds the HTTP handler: global middleware around a method-aware
// ServeMux, with per-route metrics, rate limits and role checks.
func NewRouter(logger *slog.Logger, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		if deps.Recorder != nil {
			mws = append([]middleware.Middleware{middleware.Metrics(deps.Recorder)}, mws...)
		}
		mux.Handle(pattern, middleware.Chain(mws...)(h))
	}

	admin := middleware.RequireRole(domain.RoleAdmin)

	// Nil when rate limiting is off; Chain skips it.
	var accountLimit middleware.Middleware
	if deps.Limiter != nil && deps.AccountPerMinute > 0 {
		accountLimit = deps.Limiter.Limit(deps.AccountPerMinute)
	}

	// Health.
	route("GET /live", deps.Health.Live)
	route("GET /ready", deps.Health.Ready)
	route("GET /health", deps.Health.Health)
	if deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", deps.MetricsHandler)
	}

	// Account.
	route("POST /api/account/register", deps.Account.Register, accountLimit)
	route("POST /api/account/login", deps.Account.Login, accountLimit)
	route("POST /api/account/assign-role", deps.Account.AssignRole, accountLimit, admin)

	// Clients.
	route("GET /api/clients", deps.Clients.List, admin)
	route("POST /api/clients/addClientWithAccounts", deps.Clients.Create, admin)
	route("GET /api/clients/search-history", deps.Clients.SearchHistory, admin)
	route("GET /api/clients/search-history-db", deps.Clients.StoredSearchHistory, admin)
	route("GET /api/clients/{id}", deps.Clients.Get, admin)
	route("PUT /api/clients/{id}", deps.Clients.Update, admin)
	route("DELETE /api/clients/{id}", deps.Clients.Delete, admin)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
	)(mux)
}
