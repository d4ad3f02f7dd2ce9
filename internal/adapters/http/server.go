package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
	"tikkeul/internal/ports"
)

// Services are the application ports the handlers call into.
type Services struct {
	Lookups   ports.Lookups
	Workers   ports.Workers
	Incidents ports.Incidents
	Auth      ports.Auth
	Uploads   ports.Uploads
	Dashboard ports.Dashboard
}

// Server implements the generated StrictServerInterface.
type Server struct {
	svc         Services
	corsOrigins []string
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(svc Services, corsOrigins []string) *Server {
	return &Server{svc: svc, corsOrigins: corsOrigins}
}

// Routes mounts the generated handlers next to the raw image routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Content-Range"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/image/{key}", s.getImage)
	r.With(middleware.Timeout(time.Minute)).Put("/image/upload/{key}", s.putImageChunk)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: writeError,
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(maxBodyBytes))
		api.HandlerWithOptions(handler, api.ChiServerOptions{
			BaseRouter:       r,
			Middlewares:      []api.MiddlewareFunc{s.requireBearer},
			ErrorHandlerFunc: badRequest,
		})
	})
	return r
}

// badRequest reports parameter and body binding failures.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, domain.Invalid(err.Error()))
}

func (s *Server) GetHealthz(_ context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}
