package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/service"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/httpx"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/democat/api/catalog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Location is used to read date-only inputs such as "2025-07-01".
	// Defaults to UTC.
	Location *time.Location

	AuthService      *service.AuthService
	BootstrapService *service.BootstrapService
	AdminService     *service.AdminService
	ClientService    *service.ClientService
	RequestService   *service.RequestService
	DemoService      *service.DemoService
	ActivityService  *service.ActivityService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Location:     time.UTC,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBootstrap()
	r.registerAdmins()
	r.registerClients()
	r.registerRequests()
	r.registerDemos()
	r.registerActivity()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Democat Catalog Service API
//	@version		0.1.0
//	@description	Administration API for the demo catalog: clients with bounded access windows,
//	@description	renewal requests and their review queue, demos and the activity log.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/democat
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with token verification, a scope check and a per-user
// rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig, scopes ...string) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Login attempts are limited per IP and email to slow password guessing.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmins() {
	h := &AdminsHandler{AdminService: r.AdminService}

	r.Mux.Handle("GET /v1/admins", r.secured(h.HandleList, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("POST /v1/admins", r.secured(h.HandleCreate, httpx.ModerateLimit, "admin:write"))
}

func (r *Router) registerClients() {
	h := &ClientsHandler{
		ClientService:  r.ClientService,
		RequestService: r.RequestService,
		Location:       r.Location,
	}

	r.Mux.Handle("GET /v1/clients", r.secured(h.HandleList, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("POST /v1/clients", r.secured(h.HandleCreate, httpx.ModerateLimit, "admin:write"))
	// Viewers may read their own record.
	r.Mux.Handle("GET /v1/clients/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "admin:read", "profile:read"))
	r.Mux.Handle("PUT /v1/clients/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "admin:write"))
	r.Mux.Handle("DELETE /v1/clients/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "admin:write"))
	r.Mux.Handle("POST /v1/clients/{id}/revoke", r.secured(h.HandleRevoke, httpx.ModerateLimit, "admin:write"))

	r.Mux.Handle("GET /v1/me", r.secured(h.HandleMe, httpx.LenientLimit, "profile:read"))
	r.Mux.Handle("GET /v1/me/requests", r.secured(h.HandleMyRequests, httpx.LenientLimit, "profile:read"))
	r.Mux.Handle("GET /v1/stats/clients", r.secured(h.HandleStats, httpx.LenientLimit, "admin:read"))
}

func (r *Router) registerRequests() {
	h := &RequestsHandler{RequestService: r.RequestService, Location: r.Location}

	r.Mux.Handle("GET /v1/requests", r.secured(h.HandleList, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("POST /v1/requests", r.secured(h.HandleCreate, httpx.ModerateLimit, "requests:create", "admin:write"))
	r.Mux.Handle("GET /v1/requests/pending", r.secured(h.HandlePending, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("GET /v1/requests/counts", r.secured(h.HandleCounts, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("GET /v1/requests/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "admin:read", "profile:read"))
	r.Mux.Handle("POST /v1/requests/{id}/approve", r.secured(h.HandleApprove, httpx.ModerateLimit, "admin:write"))
	r.Mux.Handle("POST /v1/requests/{id}/reject", r.secured(h.HandleReject, httpx.ModerateLimit, "admin:write"))
}

func (r *Router) registerDemos() {
	h := &DemosHandler{DemoService: r.DemoService}

	r.Mux.Handle("GET /v1/demos", r.secured(h.HandleList, httpx.LenientLimit, "catalog:read"))
	r.Mux.Handle("GET /v1/demos/{id}", r.secured(h.HandleGet, httpx.LenientLimit, "catalog:read"))
	r.Mux.Handle("POST /v1/demos", r.secured(h.HandleCreate, httpx.ModerateLimit, "admin:write"))
	r.Mux.Handle("PUT /v1/demos/{id}", r.secured(h.HandleUpdate, httpx.ModerateLimit, "admin:write"))
	r.Mux.Handle("DELETE /v1/demos/{id}", r.secured(h.HandleDelete, httpx.ModerateLimit, "admin:write"))
}

func (r *Router) registerActivity() {
	h := &ActivityHandler{ActivityService: r.ActivityService}

	r.Mux.Handle("POST /v1/activity", r.secured(h.HandleRecord, httpx.LenientLimit, "activity:write", "admin:write"))
	r.Mux.Handle("GET /v1/activity", r.secured(h.HandleList, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("GET /v1/activity/stats", r.secured(h.HandleStats, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("GET /v1/stats/client-usage", r.secured(h.HandleClientUsage, httpx.LenientLimit, "admin:read"))
	r.Mux.Handle("GET /v1/stats/client-usage/{id}", r.secured(h.HandleClientUsageByID, httpx.LenientLimit, "admin:read"))
}

func (r *Router) registerSystem() {
	// Health checks and scrapes poll often; keep their limits generous.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(promhttp.Handler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
