package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/avatar/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Get("/models", h.handleModels)
	r.Get("/voices", h.handleVoices)

	r.Group(func(r chi.Router) {
		r.Use(h.authorize)

		r.Post("/generate-avatar", h.handleGenerate)
	})
}

func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		for _, a := range h.Authorizers {
			if ctx, err := a.Authenticate(r.Context(), r); err == nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		writeError(w, http.StatusUnauthorized, errors.New("invalid or missing API key"))
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(ErrorResponse{Error: text})
}
