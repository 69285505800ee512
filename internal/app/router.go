package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/coursedesk/coursedesk/internal/courses"
	"github.com/coursedesk/coursedesk/internal/platform/httpx"
	"github.com/coursedesk/coursedesk/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	UsersHandler   *users.Handler
	CoursesHandler *courses.Handler
}

// NewRouter constructs the chi.Router with Coursedesk defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	if params.Config != nil && params.Config.ErrorLogging {
		r.Use(chimw.Logger)
	}

	// Every unmatched request answers the same 404 body, wrong-method
	// requests included. Registered before the subrouters so they inherit
	// both handlers.
	routeNotFound := func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusNotFound, map[string]string{
			"message": "Route Not Found",
		})
	}
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the REST API project!",
		})
	})

	r.Route("/api", func(api chi.Router) {
		params.UsersHandler.MountRoutes(api)
		params.CoursesHandler.MountRoutes(api)
	})

	return r
}
