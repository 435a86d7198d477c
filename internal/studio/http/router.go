package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fotosdotap/studio/api/docs" // Swagger docs
	"github.com/fotosdotap/studio/internal/studio/service"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/httpx"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// Router holds shared dependencies for the HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger       *slog.Logger
	buildVersion string
	startTime    time.Time
	dir          *store.Directory

	Sessions *service.SessionService
	Admin    *service.AdminService
}

func NewRouter(logger *slog.Logger, buildVersion string, dir *store.Directory, allowedOrigins []string) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		logger:       logger,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		dir:          dir,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
//
//	@title			Fotos do Tap Client Directory API
//	@version		0.1.0
//	@description	Client directory, session bootstrap and admin console backend for the studio's portal.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Operator bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	h := &LoginHandler{Sessions: r.Sessions}

	// The status probe is read-only; the two credential endpoints get the
	// strict profile since the state machine itself never locks out.
	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(h.HandleStatus),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /cadastrar-senha",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{Admin: r.Admin}

	r.Mux.Handle("POST /admin/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	protect := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			requireAdmin(r.Admin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /admin/clientes", protect(h.HandleList))
	r.Mux.Handle("GET /admin/cliente", protect(h.HandleGet))
	r.Mux.Handle("POST /admin/cliente", protect(h.HandleCreate))
	r.Mux.Handle("PUT /admin/cliente", protect(h.HandleUpdate))
	r.Mux.Handle("DELETE /admin/cliente", protect(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.dir))
}
