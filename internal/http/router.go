package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/dogfinder/docs"
	"github.com/rogerio-castellano/dogfinder/internal/auth"
	"github.com/rogerio-castellano/dogfinder/internal/http/handlers"
	rl "github.com/rogerio-castellano/dogfinder/internal/http/rate_limiter"
	"github.com/rogerio-castellano/dogfinder/internal/logging"
)

type RouterOptions struct {
	Tokens         *auth.TokenService
	Limiter        *rl.Limiter
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires the sandbox endpoints. Repositories are injected through
// the handlers setters beforehand.
func NewRouter(opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	handlers.SetTokenService(opts.Tokens)
	handlers.SetLogger(logger)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware)
	}

	r.Post("/auth/login", handlers.LoginHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(opts.Tokens))

		r.Post("/auth/logout", handlers.LogoutHandler)

		r.Get("/dogs/breeds", handlers.BreedsHandler)
		r.Get("/dogs/search", handlers.SearchDogsHandler)
		r.Post("/dogs", handlers.GetDogsHandler)
		r.Post("/dogs/match", handlers.MatchHandler)

		r.Post("/locations", handlers.GetLocationsHandler)
		r.Post("/locations/search", handlers.SearchLocationsHandler)
	})

	return r
}
