package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgo/places/api/internal/middleware"
	"github.com/forgo/places/api/internal/model"
)

// RouterConfig holds the dependencies for NewRouter
type RouterConfig struct {
	Places         *PlaceHandler
	Users          *UserHandler
	Health         *HealthHandler
	AllowedOrigins []string
	// AuthLimiter throttles signup and login. Nil disables rate limiting.
	AuthLimiter *middleware.RateLimiter
}

// NewRouter creates the application router with all routes and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, model.NewNotFoundError("Could not find this route."))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, model.NewMethodNotAllowedError(r.Method))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/places", func(r chi.Router) {
			r.Get("/", cfg.Places.List)
			r.Post("/", cfg.Places.Create)
			r.Get("/user/{uid}", cfg.Places.ListByUser)
			r.Get("/{pid}", cfg.Places.Get)
			r.Patch("/{pid}", cfg.Places.Update)
			r.Put("/{pid}", cfg.Places.Update)
			r.Delete("/{pid}", cfg.Places.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", cfg.Users.List)
			r.Group(func(r chi.Router) {
				if cfg.AuthLimiter != nil {
					r.Use(middleware.RateLimit(cfg.AuthLimiter))
				}
				r.Post("/signup", cfg.Users.Signup)
				r.Post("/login", cfg.Users.Login)
			})
			r.Get("/{uid}", cfg.Users.Get)
			r.Delete("/{uid}", cfg.Users.Delete)
		})
	})

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Health)
	}

	return r
}
