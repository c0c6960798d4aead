package server

import (
	"net/http"

	"github.com/adrianliechti/avatar/config"
	"github.com/adrianliechti/avatar/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	return &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "server"),
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.handler)
}
