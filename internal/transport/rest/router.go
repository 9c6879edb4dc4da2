package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/config"
	"github.com/homefax/homefax-backend/internal/transport/middleware"
)

// TokenValidator checks an access token and returns the authenticated
// user's ID and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps bundles everything NewRouter needs to assemble the HTTP surface.
type RouterDeps struct {
	Cfg        *config.Config
	Log        *slog.Logger
	Validator  TokenValidator
	Limiter    *middleware.RateLimiter
	Health     *HealthHandler
	Auth       *AuthHandler
	Users      *UserHandler
	Properties *PropertyHandler
	Reports    *ReportHandler
	Community  *CommunityHandler
	Contractor *ContractorHandler
	Admin      *AdminHandler
}

// NewRouter builds the full route table. Probes are served outside the API
// middleware stack; everything under /api goes through request-id, logging,
// recovery, CORS, rate limiting, and bearer-token resolution, with role
// gates applied per route group.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	api := http.NewServeMux()

	authed := middleware.RequireAuth
	adminOnly := middleware.RequireRole("admin")
	homeownerOnly := middleware.RequireRole("homeowner")
	contractorOnly := middleware.RequireRole("contractor")
	propertyWriters := middleware.RequireRole("admin", "homeowner")

	// Auth.
	api.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	api.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	api.HandleFunc("POST /api/auth/refresh", deps.Auth.Refresh)
	api.Handle("POST /api/auth/logout", authed(http.HandlerFunc(deps.Auth.Logout)))
	api.Handle("GET /api/auth/me", authed(http.HandlerFunc(deps.Users.Me)))
	api.Handle("PUT /api/auth/me", authed(http.HandlerFunc(deps.Users.UpdateMe)))
	api.Handle("GET /api/auth/users", adminOnly(http.HandlerFunc(deps.Users.List)))

	// Properties.
	api.Handle("GET /api/properties", authed(http.HandlerFunc(deps.Properties.List)))
	api.Handle("GET /api/properties/{id}", authed(http.HandlerFunc(deps.Properties.Get)))
	api.Handle("POST /api/properties", propertyWriters(http.HandlerFunc(deps.Properties.Create)))
	api.Handle("PUT /api/properties/{id}", propertyWriters(http.HandlerFunc(deps.Properties.Update)))
	api.Handle("DELETE /api/properties/{id}", adminOnly(http.HandlerFunc(deps.Properties.Delete)))
	api.Handle("POST /api/properties/{id}/claim", homeownerOnly(http.HandlerFunc(deps.Properties.Claim)))
	api.Handle("POST /api/properties/{id}/verify", adminOnly(http.HandlerFunc(deps.Properties.Verify)))

	// Reports.
	api.Handle("GET /api/reports", authed(http.HandlerFunc(deps.Reports.List)))
	api.Handle("GET /api/reports/{id}", authed(http.HandlerFunc(deps.Reports.Get)))
	api.Handle("POST /api/reports", authed(http.HandlerFunc(deps.Reports.Create)))
	api.Handle("PUT /api/reports/{id}", authed(http.HandlerFunc(deps.Reports.Update)))
	api.Handle("PATCH /api/reports/{id}/approve", adminOnly(http.HandlerFunc(deps.Reports.Approve)))
	api.Handle("PATCH /api/reports/{id}/reject", adminOnly(http.HandlerFunc(deps.Reports.Reject)))

	// Community updates.
	api.Handle("GET /api/community", authed(http.HandlerFunc(deps.Community.List)))
	api.Handle("GET /api/community/{id}", authed(http.HandlerFunc(deps.Community.Get)))
	api.Handle("POST /api/community", authed(http.HandlerFunc(deps.Community.Create)))
	api.Handle("PUT /api/community/{id}", authed(http.HandlerFunc(deps.Community.Update)))
	api.Handle("DELETE /api/community/{id}", adminOnly(http.HandlerFunc(deps.Community.Delete)))

	// Contractor workspace.
	api.Handle("GET /api/contractor/assignments", contractorOnly(http.HandlerFunc(deps.Contractor.ListAssignments)))
	api.Handle("PATCH /api/contractor/assignments/{id}/status", contractorOnly(http.HandlerFunc(deps.Contractor.AdvanceAssignment)))
	api.Handle("GET /api/contractor/projects", contractorOnly(http.HandlerFunc(deps.Contractor.ListProjects)))
	api.Handle("POST /api/contractor/project-submission", contractorOnly(http.HandlerFunc(deps.Contractor.SubmitProject)))
	api.Handle("PUT /api/contractor/project-submission/{id}", contractorOnly(http.HandlerFunc(deps.Contractor.UpdateProject)))
	api.Handle("PATCH /api/contractor/project-submission/{id}/complete", contractorOnly(http.HandlerFunc(deps.Contractor.CompleteProject)))

	// Admin dashboard.
	api.Handle("GET /api/admin/pending-reports", adminOnly(http.HandlerFunc(deps.Admin.PendingReports)))
	api.Handle("GET /api/admin/pending-updates", adminOnly(http.HandlerFunc(deps.Admin.PendingUpdates)))
	api.Handle("PATCH /api/admin/approve-report/{id}", adminOnly(http.HandlerFunc(deps.Admin.ApproveReport)))
	api.Handle("PATCH /api/admin/reject-report/{id}", adminOnly(http.HandlerFunc(deps.Admin.RejectReport)))
	api.Handle("PATCH /api/admin/approve-update/{id}", adminOnly(http.HandlerFunc(deps.Admin.ApproveUpdate)))
	api.Handle("PATCH /api/admin/reject-update/{id}", adminOnly(http.HandlerFunc(deps.Admin.RejectUpdate)))
	api.Handle("PATCH /api/admin/verify-renovation/{id}", adminOnly(http.HandlerFunc(deps.Admin.VerifyRenovation)))
	api.Handle("GET /api/admin/stats", adminOnly(http.HandlerFunc(deps.Admin.Stats)))
	api.Handle("POST /api/admin/notify-neighborhood/{id}", adminOnly(http.HandlerFunc(deps.Admin.NotifyNeighborhood)))
	api.Handle("PATCH /api/admin/users/{id}/role", adminOnly(http.HandlerFunc(deps.Users.SetRole)))

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.Cfg.CORS),
	}
	if deps.Cfg.Rate.Enabled && deps.Limiter != nil {
		maxPerMinute := int(deps.Cfg.Rate.RequestsPerSecond * 60)
		mws = append(mws, deps.Limiter.Limit(maxPerMinute))
	}
	mws = append(mws, middleware.Auth(deps.Validator))

	mux.Handle("/api/", middleware.Chain(mws...)(api))

	return mux
}
