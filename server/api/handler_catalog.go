package api

import (
	"net/http"

	"github.com/adrianliechti/avatar/pkg/catalog"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, HealthResponse{Status: "ok"})
}

func (h *Handler) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJson(w, ModelsResponse{Avatars: catalog.Avatars})
}

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	writeJson(w, VoicesResponse{Voices: catalog.Voices})
}
