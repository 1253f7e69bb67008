package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passforge/passforge/internal/crypto"
	"github.com/passforge/passforge/internal/middleware"
)

// Routes collects the handlers mounted by NewRouter. Auth and Presets are
// optional; their routes are only mounted when the database is configured.
type Routes struct {
	Logger    *slog.Logger
	Generator *GeneratorHandler
	Auth      *AuthHandler
	Presets   *PresetHandler
	Tokens    *crypto.Tokens

	GenerateLimiter *middleware.RateLimiter
	AuthLimiter     *middleware.RateLimiter
}

// NewRouter builds the HTTP API. Rate limits key on the connection's remote
// address; forwarding headers are ignored.
func NewRouter(rt Routes) http.Handler {
	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if rt.GenerateLimiter != nil {
			r.Use(rt.GenerateLimiter.Handler)
		}
		r.Post("/api/v1/generate", rt.Generator.HandleGenerate)
	})
	r.Post("/api/v1/strength", rt.Generator.HandleStrength)

	if rt.Auth != nil {
		r.Group(func(r chi.Router) {
			if rt.AuthLimiter != nil {
				r.Use(rt.AuthLimiter.Handler)
			}
			r.Post("/api/v1/auth/register", rt.Auth.HandleRegister)
			r.Post("/api/v1/auth/login", rt.Auth.HandleLogin)
		})
	}

	if rt.Tokens != nil && (rt.Auth != nil || rt.Presets != nil) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(rt.Tokens))

			if rt.Auth != nil {
				r.Get("/api/v1/auth/me", rt.Auth.HandleMe)
			}
			if rt.Presets != nil {
				r.Get("/api/v1/presets", rt.Presets.HandleList)
				r.Post("/api/v1/presets", rt.Presets.HandleCreate)
				r.Get("/api/v1/presets/{id}", rt.Presets.HandleGet)
				r.Put("/api/v1/presets/{id}", rt.Presets.HandleUpdate)
				r.Delete("/api/v1/presets/{id}", rt.Presets.HandleDelete)
				r.Post("/api/v1/presets/{id}/generate", rt.Presets.HandleGenerate)
			}
		})
	}

	return r
}
