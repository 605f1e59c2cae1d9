/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request, echoed in logs
  2. RealIP:     Client address behind a proxy
  3. Logger:     logrus request logging (see middleware.go)
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. CORS:       Cross-origin requests from the form

ROUTE GROUPS:
  /api/rewards/*        Calculation, defaults, formulas
  /api/scenarios/*      Scenario catalog
  /healthz              Liveness
  /                     Endpoint index

SECURITY NOTE:
  No authentication. Every endpoint is read-only and stateless.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/rewards", func(r chi.Router) {
			r.Post("/calculate", h.Calculate)
			r.Get("/defaults", h.Defaults)
			r.Get("/formulas", h.ListFormulas)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/{id}", h.GetScenario)
			r.Post("/{id}/run", h.RunScenario)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(indexPage))
	})

	return r
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>Crypto Rewards Calculator</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Crypto Rewards Calculator API</h1>
<h2>API Endpoints</h2>
<ul>
<li>POST /api/rewards/calculate - Calculate a reward</li>
<li><a href="/api/rewards/defaults">/api/rewards/defaults</a> - Form defaults</li>
<li><a href="/api/rewards/formulas">/api/rewards/formulas</a> - Formulas</li>
<li><a href="/api/scenarios">/api/scenarios</a> - Scenarios</li>
</ul>
</body>
</html>`
