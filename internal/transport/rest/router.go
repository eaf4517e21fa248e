package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/helpdesk-backend/internal/config"
	"github.com/heartmarshall/helpdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/helpdesk-backend/pkg/ctxutil"
)

// adminChecker verifies the HTTP Basic admin credential.
type adminChecker interface {
	Check(username, password string) (ctxutil.AdminPrincipal, error)
}

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Tickets *TicketHandler
	Admin   *AdminHandler
	Auth    *AuthHandler
	Health  *HealthHandler

	Checker adminChecker
	Limiter middleware.RateLimitStore

	Server    config.ServerConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Logger    *slog.Logger
}

// Rate-limit rule names. Ticket creation and requester messages share
// one counter.
const (
	loginRule  = "login"
	ticketRule = "ticket"
)

// NewRouter builds the HTTP handler with all routes and the global
// middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	// Both limits stay nil when rate limiting is disabled.
	var loginLimit, ticketLimit middleware.Middleware
	if d.RateLimit.Enabled {
		loginLimit = middleware.RateLimit(d.Limiter, middleware.RateLimitRule{
			Name:   loginRule,
			Max:    d.RateLimit.LoginMax,
			Window: d.RateLimit.LoginWindow,
		}, d.Logger)
		ticketLimit = middleware.RateLimit(d.Limiter, middleware.RateLimitRule{
			Name:   ticketRule,
			Max:    d.RateLimit.TicketMax,
			Window: d.RateLimit.TicketWindow,
		}, d.Logger)
	}
	admin := middleware.RequireAdmin(d.Checker, d.Logger)

	mux := http.NewServeMux()

	// Public requester API.
	mux.Handle("POST /tickets", middleware.Wrap(d.Tickets.Create, ticketLimit))
	mux.HandleFunc("GET /tickets/{id}", d.Tickets.Get)
	mux.Handle("POST /tickets/{id}/messages", middleware.Wrap(d.Tickets.AddMessage, ticketLimit))

	// Auth.
	mux.Handle("POST /auth/login", middleware.Wrap(d.Auth.Login, loginLimit))
	mux.HandleFunc("POST /auth/logout", d.Auth.Logout)

	// Admin API.
	mux.Handle("GET /admin/tickets", middleware.Wrap(d.Admin.List, admin))
	mux.Handle("GET /admin/tickets/{id}", middleware.Wrap(d.Admin.Get, admin))
	mux.Handle("POST /admin/tickets/{id}/messages", middleware.Wrap(d.Admin.AddMessage, admin))
	mux.Handle("PATCH /admin/tickets/{id}", middleware.Wrap(d.Admin.Update, admin))

	// Operations.
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.SecurityHeaders(),
		middleware.CORS(d.CORS),
		middleware.BodyLimit(d.Server.MaxBodyBytes),
		middleware.Metrics(),
	)(mux)
}
