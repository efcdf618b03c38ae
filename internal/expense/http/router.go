package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/spendtrack/internal/expense/service"
	"github.com/aussiebroadwan/spendtrack/internal/expense/store"
	"github.com/aussiebroadwan/spendtrack/pkg/httpx"
	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
	"github.com/aussiebroadwan/spendtrack/pkg/slogx"

	_ "github.com/aussiebroadwan/spendtrack/api/expense" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	UserService        *service.UserService
	ExpenseService     *service.ExpenseService
	LeaderboardService *service.LeaderboardService
	ExportService      *service.ExportService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerExpenses()
	r.registerLeaderboard()
	r.registerExport()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SpendTrack API
//	@version		0.1.0
//	@description	Expense tracking service: per-user expense records with a transactionally
//	@description	maintained running total, a ranked spending leaderboard, and snapshot
//	@description	exports to object storage.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/spendtrack
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

func (r *Router) registerUsers() {
	// Public endpoints - strict rate limits by IP (credential guessing)
	r.Mux.Handle("POST /v1/users/signup",
		httpx.Chain(&SignupHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/login",
		httpx.Chain(&LoginHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Authenticated profile endpoint - lenient rate limit by user
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(&UserInfoHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerExpenses() {
	listHandler := &ExpenseListHandler{ExpenseService: r.ExpenseService}

	// Writes require expense:write and get a moderate per-user limit
	securedCreate := httpx.Chain(&ExpenseCreateHandler{ExpenseService: r.ExpenseService},
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("expense:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedUpdate := httpx.Chain(&ExpenseUpdateHandler{ExpenseService: r.ExpenseService},
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("expense:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(&ExpenseDeleteHandler{ExpenseService: r.ExpenseService},
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("expense:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// Reads require expense:read and get a lenient per-user limit
	securedListAll := httpx.Chain(http.HandlerFunc(listHandler.HandleListAll),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("expense:read"),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedListMine := httpx.Chain(http.HandlerFunc(listHandler.HandleListMine),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope("expense:read"),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("POST /v1/expenses", securedCreate)
	r.Mux.Handle("GET /v1/expenses", securedListAll)
	r.Mux.Handle("GET /v1/expenses/mine", securedListMine)
	r.Mux.Handle("PUT /v1/expenses/{id}", securedUpdate)
	r.Mux.Handle("DELETE /v1/expenses/{id}", securedDelete)
}

func (r *Router) registerLeaderboard() {
	r.Mux.Handle("GET /v1/leaderboard",
		httpx.Chain(&LeaderboardHandler{LeaderboardService: r.LeaderboardService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("expense:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerExport() {
	// Export does an object-storage round trip per call, keep it moderate
	r.Mux.Handle("GET /v1/export",
		httpx.Chain(&ExportHandler{ExportService: r.ExportService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("expense:read"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
